// SPDX-License-Identifier: GPL-3.0-or-later
package catalog

import (
	"fmt"

	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/folder"
)

type ConfigFunc func(c *configuration) error

// Patterns replaces the embedded allow-list and hidden folder tables.
func Patterns(patterns *folder.Patterns) ConfigFunc {
	return func(c *configuration) error {
		if patterns == nil {
			return fmt.Errorf("patterns cannot be nil")
		}
		c.Patterns = patterns
		return nil
	}
}

func LineParser(parser domain.FolderLineParser) ConfigFunc {
	return func(c *configuration) error {
		if parser == nil {
			return fmt.Errorf("line parser cannot be nil")
		}
		c.Parser = parser
		return nil
	}
}

// Persist records every folder seen by DiscoverFolders.
func Persist(persistence domain.Persistence) ConfigFunc {
	return func(c *configuration) error {
		if persistence == nil {
			return fmt.Errorf("persistence cannot be nil")
		}
		c.Persistence = persistence
		return nil
	}
}

type configuration struct {
	Patterns    *folder.Patterns
	Parser      domain.FolderLineParser
	Persistence domain.Persistence
}
