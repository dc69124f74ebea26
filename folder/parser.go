// SPDX-License-Identifier: GPL-3.0-or-later
package folder

import (
	"regexp"
	"strings"

	"github.com/CrawX/go-nimbusrelay/domain"
)

const DefaultDelimiter = "/"

// quoted strings may carry backslash escapes, see unquote
var (
	quotedQuoted   = regexp.MustCompile(`^\(([^)]*)\)\s+"((?:[^"\\]|\\.)*)"\s+"((?:[^"\\]|\\.)*)"`)
	quotedUnquoted = regexp.MustCompile(`^\(([^)]*)\)\s+"((?:[^"\\]|\\.)*)"\s+(.+)`)
	nilQuoted      = regexp.MustCompile(`(?i)^\(([^)]*)\)\s+NIL\s+"((?:[^"\\]|\\.)*)"`)
	nilUnquoted    = regexp.MustCompile(`(?i)^\(([^)]*)\)\s+NIL\s+(\S.*)`)
	anyQuoted      = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
	escaped        = regexp.MustCompile(`\\(.)`)
)

// Parser turns one folder listing line, "(attributes) delimiter name", into a Folder.
type Parser struct {
	patterns *Patterns
}

func NewParser(patterns *Patterns) *Parser {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	return &Parser{patterns: patterns}
}

// ParseLine returns nil for lines that match no grammar and carry no quoted string.
func (p *Parser) ParseLine(line string) *domain.Folder {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var attrs, delimiter, name string
	if m := quotedQuoted.FindStringSubmatch(line); m != nil {
		attrs, delimiter, name = m[1], unquote(m[2]), unquote(m[3])
	} else if m := quotedUnquoted.FindStringSubmatch(line); m != nil {
		attrs, delimiter, name = m[1], unquote(m[2]), strings.Trim(strings.TrimSpace(m[3]), `"`)
	} else if m := nilQuoted.FindStringSubmatch(line); m != nil {
		attrs, delimiter, name = m[1], DefaultDelimiter, unquote(m[2])
	} else if m := nilUnquoted.FindStringSubmatch(line); m != nil {
		attrs, delimiter, name = m[1], DefaultDelimiter, strings.TrimSpace(m[2])
	} else {
		quoted := anyQuoted.FindAllStringSubmatch(line, -1)
		if len(quoted) == 0 {
			return nil
		}
		return p.newFolder(unquote(quoted[len(quoted)-1][1]), DefaultDelimiter, []string{})
	}

	if delimiter == "" || strings.EqualFold(delimiter, "NIL") {
		delimiter = DefaultDelimiter
	}

	return p.newFolder(name, delimiter, parseAttributes(attrs))
}

func (p *Parser) newFolder(name, delimiter string, attributes []string) *domain.Folder {
	if name == "" {
		return nil
	}

	return &domain.Folder{
		Name:         name,
		DisplayName:  DisplayName(name),
		Type:         Classify(name),
		Attributes:   attributes,
		IsHidden:     p.patterns.IsHidden(name, attributes),
		IsSelectable: isSelectable(attributes),
		Delimiter:    delimiter,
	}
}

func unquote(s string) string {
	return escaped.ReplaceAllString(s, "$1")
}

func parseAttributes(raw string) []string {
	attributes := []string{}
	for _, attr := range strings.Fields(raw) {
		clean := strings.TrimLeft(attr, `\`)
		if clean != "" {
			attributes = append(attributes, clean)
		}
	}
	return attributes
}

func isSelectable(attributes []string) bool {
	for _, attr := range attributes {
		if strings.EqualFold(attr, "Noselect") {
			return false
		}
	}
	return true
}
