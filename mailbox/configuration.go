// SPDX-License-Identifier: GPL-3.0-or-later
package mailbox

import (
	"fmt"
	"time"
)

type ConfigFunc func(c *configuration) error

// NativeMove uses UID MOVE when the server supports it instead of copy, flag and expunge.
func NativeMove() ConfigFunc {
	return func(c *configuration) error {
		c.NativeMove = true
		return nil
	}
}

// From sets the sender used when composing drafts.
func From(address string) ConfigFunc {
	return func(c *configuration) error {
		if len(address) == 0 {
			return fmt.Errorf("from address cannot be empty")
		}
		c.From = address
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
	NativeMove bool
	From       string
	Now        func() time.Time
}
