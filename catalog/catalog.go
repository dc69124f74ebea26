// SPDX-License-Identifier: GPL-3.0-or-later
package catalog

import (
	"fmt"

	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/folder"
	"github.com/CrawX/go-nimbusrelay/log"

	"github.com/sirupsen/logrus"
)

// Catalog enumerates folders. It probes a fixed allow-list instead of trusting LIST and
// remembers which spelling of each canonical folder the server uses.
type Catalog struct {
	session       domain.MailSession
	configuration *configuration

	// canonical name -> server spelling
	resolved map[string]string

	l *logrus.Logger
}

func New(session domain.MailSession, configFunc ...ConfigFunc) (*Catalog, error) {
	c := &configuration{}
	for _, f := range configFunc {
		err := f(c)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}
	if c.Patterns == nil {
		c.Patterns = folder.DefaultPatterns()
	}
	if c.Parser == nil {
		c.Parser = folder.NewParser(c.Patterns)
	}

	return &Catalog{
		session:       session,
		configuration: c,
		resolved:      map[string]string{},
		l:             log.Logger(log.LOG_CATALOG),
	}, nil
}

// ListFolders returns one entry per canonical role whose variant could be selected, named
// by the canonical name. Allow-list folders are never hidden, includeHidden only matters
// for DiscoverFolders.
func (c *Catalog) ListFolders(includeHidden bool) ([]*domain.Folder, error) {
	err := c.session.EnsureAlive()
	if err != nil {
		return nil, fmt.Errorf("could not list folders: %w", err)
	}

	folders := []*domain.Folder{}
	for _, entry := range c.configuration.Patterns.AllowList() {
		variant, ok := c.probe(entry)
		if !ok {
			continue
		}

		c.resolved[entry.Canonical] = variant
		folders = append(folders, canonicalFolder(entry.Canonical, folder.Delimiter(variant)))
	}

	if len(folders) == 0 {
		c.l.Warn("No allow-listed folder could be selected, assuming a bare inbox")
		folders = append(folders, canonicalFolder(folder.CanonicalInbox, folder.DefaultDelimiter))
	}

	folder.Sort(folders)
	c.l.WithFields(logrus.Fields{"count": len(folders), "includeHidden": includeHidden}).Debug("Listed folders")

	return folders, nil
}

func (c *Catalog) probe(entry folder.AllowEntry) (string, bool) {
	for _, variant := range entry.Variants {
		_, err := c.session.Select(variant, true)
		if err == nil {
			c.l.WithFields(logrus.Fields{"canonical": entry.Canonical, "variant": variant}).Trace("Resolved folder")
			return variant, true
		}
		c.l.WithFields(logrus.Fields{"variant": variant, "error": err}).Trace("Folder variant not selectable")
	}
	return "", false
}

func canonicalFolder(name, delimiter string) *domain.Folder {
	return &domain.Folder{
		Name:         name,
		DisplayName:  folder.DisplayName(name),
		Type:         folder.Classify(name),
		Attributes:   []string{},
		IsHidden:     false,
		IsSelectable: true,
		Delimiter:    delimiter,
	}
}

// Resolve maps a canonical name to the spelling found by the last ListFolders. Unknown
// names are returned unchanged.
func (c *Catalog) Resolve(name string) string {
	if variant, ok := c.resolved[name]; ok {
		return variant
	}
	return name
}

// ProbeFolders lists the folders to search when only a message id is known: the resolved
// spelling of every allow-list role, or all its variants while it is unresolved.
func (c *Catalog) ProbeFolders() []string {
	seen := map[string]bool{}
	result := []string{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, entry := range c.configuration.Patterns.AllowList() {
		if variant, ok := c.resolved[entry.Canonical]; ok {
			add(variant)
			continue
		}
		for _, variant := range entry.Variants {
			add(variant)
		}
	}

	return result
}

func (c *Catalog) SpamFolder() string {
	return c.Resolve(folder.CanonicalSpam)
}

// GetFolderCount counts all messages in the folder, 0 on any failure.
func (c *Catalog) GetFolderCount(name string) int {
	baseLogger := c.l.WithField("folder", name)

	err := c.session.EnsureAlive()
	if err != nil {
		baseLogger.WithError(err).Warn("Could not count folder, not connected")
		return 0
	}

	_, err = c.session.Select(c.Resolve(name), true)
	if err != nil {
		baseLogger.WithError(err).Debug("Could not select folder for counting")
		return 0
	}

	uids, err := c.session.Search("ALL")
	if err != nil {
		baseLogger.WithError(err).Debug("Could not search folder for counting")
		return 0
	}

	return len(uids)
}

func (c *Catalog) FolderExists(name string) bool {
	if err := c.session.EnsureAlive(); err != nil {
		return false
	}
	_, err := c.session.Select(c.Resolve(name), true)
	return err == nil
}

// DiscoverFolders walks the complete LIST output. Lines that cannot be parsed and folders
// that cannot be selected are skipped, hidden ones unless includeHidden is set.
func (c *Catalog) DiscoverFolders(includeHidden bool) ([]*domain.Folder, error) {
	err := c.session.EnsureAlive()
	if err != nil {
		return nil, fmt.Errorf("could not discover folders: %w", err)
	}

	lines, err := c.session.ListRaw()
	if err != nil {
		return nil, fmt.Errorf("could not discover folders: %w", err)
	}

	folders := []*domain.Folder{}
	for _, line := range lines {
		f := c.configuration.Parser.ParseLine(line)
		if f == nil {
			c.l.WithField("line", line).Debug("Skipping unparsable folder line")
			continue
		}
		if !f.IsSelectable {
			continue
		}

		if c.configuration.Persistence != nil {
			err = c.configuration.Persistence.SaveFolder(f.Name, f.Delimiter)
			if err != nil {
				return nil, fmt.Errorf("could not save folder %s: %w", f.Name, err)
			}
		}

		if f.IsHidden && !includeHidden {
			continue
		}
		folders = append(folders, f)
	}

	folder.Sort(folders)
	return folders, nil
}
