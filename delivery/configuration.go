// SPDX-License-Identifier: GPL-3.0-or-later
package delivery

import (
	"fmt"
	"time"

	"github.com/emersion/go-smtp"
)

type ConfigFunc func(c *configuration) error

// DialFunc opens an unauthenticated submission connection to addr.
type DialFunc func(addr string) (*smtp.Client, error)

func Dialer(dial DialFunc) ConfigFunc {
	return func(c *configuration) error {
		if dial == nil {
			return fmt.Errorf("dialer cannot be nil")
		}
		c.Dial = dial
		return nil
	}
}

func Clock(now func() time.Time) ConfigFunc {
	return func(c *configuration) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		c.Now = now
		return nil
	}
}

type configuration struct {
	Dial DialFunc
	Now  func() time.Time
}
