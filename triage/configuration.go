// SPDX-License-Identifier: GPL-3.0-or-later
package triage

import "fmt"

type ConfigFunc func(c *configuration) error

func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

func MoveSpam(spamMoveFolder string) ConfigFunc {
	return func(c *configuration) error {
		if len(spamMoveFolder) == 0 {
			return fmt.Errorf("SpamMoveFolder cannot be null")
		}

		c.MoveSpam = true
		c.SpamFolder = spamMoveFolder
		return nil
	}
}

func Concurrency(n int) ConfigFunc {
	return func(c *configuration) error {
		if n <= 0 {
			return fmt.Errorf("concurrency must be positive, got %d", n)
		}

		c.Concurrency = n
		return nil
	}
}

type configuration struct {
	DryRun bool

	MoveSpam   bool
	SpamFolder string

	Concurrency int
}
