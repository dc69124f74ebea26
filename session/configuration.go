// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"fmt"
	"time"

	"github.com/emersion/go-imap/client"
)

type ConfigFunc func(c *configuration) error

// DialFunc opens an unauthenticated client connection to addr.
type DialFunc func(addr string) (*client.Client, error)

// Insecure connects without TLS regardless of the connection config.
func Insecure() ConfigFunc {
	return func(c *configuration) error {
		c.Insecure = true
		return nil
	}
}

// Compress enables COMPRESS=DEFLATE when the server announces it.
func Compress() ConfigFunc {
	return func(c *configuration) error {
		c.Compress = true
		return nil
	}
}

func Timeout(timeout time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		c.Timeout = timeout
		return nil
	}
}

func Dialer(dial DialFunc) ConfigFunc {
	return func(c *configuration) error {
		if dial == nil {
			return fmt.Errorf("dialer cannot be nil")
		}
		c.Dial = dial
		return nil
	}
}

type configuration struct {
	Insecure bool
	Compress bool
	Timeout  time.Duration
	Dial     DialFunc
}
