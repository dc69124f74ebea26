// SPDX-License-Identifier: GPL-3.0-or-later
package catalog

import (
	"testing"

	"github.com/CrawX/go-nimbusrelay/folder"
	"github.com/CrawX/go-nimbusrelay/imaptest"
	"github.com/CrawX/go-nimbusrelay/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AgainstServer(t *testing.T) {
	cfg := imaptest.Start(t)
	imaptest.NewSeed(t, cfg).Folders("Sent", "Junk", "Trash", "Calendar", "Notes")

	s, err := session.New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Connect())
	defer s.Disconnect()

	c := newCatalog(t, s)

	folders, err := c.ListFolders(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"INBOX", "INBOX.Sent", "INBOX.Trash", "INBOX.spam"}, names(folders))
	assert.Equal(t, "Spam", folders[3].DisplayName)
	assert.Equal(t, "Junk", c.SpamFolder())
	assert.Equal(t, "Sent", c.Resolve(folder.CanonicalSent))

	assert.Equal(t, 1, c.GetFolderCount("INBOX"))
	assert.Equal(t, 0, c.GetFolderCount("INBOX.Sent"))
	assert.Equal(t, 0, c.GetFolderCount("Nope"))
	assert.True(t, c.FolderExists(folder.CanonicalTrash))
	assert.False(t, c.FolderExists(folder.CanonicalDrafts))

	discovered, err := c.DiscoverFolders(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"INBOX", "Sent", "Trash", "Junk"}, names(discovered))

	discovered, err = c.DiscoverFolders(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"INBOX", "Sent", "Trash", "Calendar", "Notes", "Junk"}, names(discovered))
}

func TestCatalog_ReconnectsBeforeListing(t *testing.T) {
	cfg := imaptest.Start(t)

	s, err := session.New(cfg)
	require.NoError(t, err)
	defer s.Disconnect()

	// never connected explicitly, EnsureAlive connects on first use
	folders, err := newCatalog(t, s).ListFolders(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"INBOX"}, names(folders))
	assert.True(t, s.IsConnected())
}
