// SPDX-License-Identifier: GPL-3.0-or-later
package folder

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed folders.toml
var defaultPatterns string

const (
	CanonicalInbox   = "INBOX"
	CanonicalDrafts  = "INBOX.Drafts"
	CanonicalSent    = "INBOX.Sent"
	CanonicalSpam    = "INBOX.spam"
	CanonicalTrash   = "INBOX.Trash"
	CanonicalArchive = "INBOX.Archive"
)

type AllowEntry struct {
	Canonical string   `toml:"canonical"`
	Variants  []string `toml:"variants"`
}

// Patterns is the data driving hidden folder detection and the folder allow-list.
type Patterns struct {
	HiddenAttributes []string            `toml:"hidden_attributes"`
	Hidden           map[string][]string `toml:"hidden"`
	Allow            []AllowEntry        `toml:"allow"`
}

func LoadPatterns(data string) (*Patterns, error) {
	p := &Patterns{}
	_, err := toml.Decode(data, p)
	if err != nil {
		return nil, fmt.Errorf("could not decode folder patterns: %w", err)
	}

	for i, a := range p.Allow {
		if len(strings.TrimSpace(a.Canonical)) == 0 || len(a.Variants) == 0 {
			return nil, fmt.Errorf("allow-list entry %d needs a canonical name and at least one variant", i)
		}
	}

	return p, nil
}

var (
	defaultOnce sync.Once
	defaults    *Patterns
)

// DefaultPatterns returns the embedded folder tables.
func DefaultPatterns() *Patterns {
	defaultOnce.Do(func() {
		p, err := LoadPatterns(defaultPatterns)
		if err != nil {
			panic(err)
		}
		defaults = p
	})

	return defaults
}

func (p *Patterns) IsHidden(name string, attributes []string) bool {
	for _, attr := range attributes {
		for _, hidden := range p.HiddenAttributes {
			if strings.EqualFold(attr, hidden) {
				return true
			}
		}
	}

	lower := strings.ToLower(name)
	for _, vendor := range p.Hidden {
		for _, pattern := range vendor {
			if strings.Contains(lower, pattern) {
				return true
			}
		}
	}

	return false
}

func (p *Patterns) AllowList() []AllowEntry {
	return p.Allow
}
