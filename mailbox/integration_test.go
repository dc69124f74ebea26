// SPDX-License-Identifier: GPL-3.0-or-later
package mailbox

import (
	"testing"

	"github.com/CrawX/go-nimbusrelay/catalog"
	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/folder"
	"github.com/CrawX/go-nimbusrelay/imaptest"
	"github.com/CrawX/go-nimbusrelay/mail"
	"github.com/CrawX/go-nimbusrelay/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	newerMail = "From: alice@example.org\r\nSubject: Newer\r\nDate: Tue, 03 Jan 2023 10:00:00 +0000\r\nMessage-Id: <newer@example.org>\r\n\r\nnewer body\r\n"
	olderMail = "From: bob@example.org\r\nSubject: Older\r\nDate: Sun, 01 Jan 2023 10:00:00 +0000\r\nMessage-Id: <older@example.org>\r\nContent-Type: text/html\r\n\r\n<p>older body</p>\r\n"
)

func newServerMailbox(t *testing.T) (*Mailbox, *catalog.Catalog) {
	cfg := imaptest.Start(t)
	imaptest.NewSeed(t, cfg).
		Folders("Archive", "Drafts", "Sent").
		Mail("INBOX", newerMail).
		Mail("INBOX", olderMail)

	s, err := session.New(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Disconnect)

	c, err := catalog.New(s)
	require.NoError(t, err)
	_, err = c.ListFolders(false)
	require.NoError(t, err)

	m, err := New(s, mail.NewParser(), c, From("username@example.org"))
	require.NoError(t, err)

	return m, c
}

func subjects(messages []*domain.Message) []string {
	result := []string{}
	for _, m := range messages {
		result = append(result, m.Subject)
	}
	return result
}

func TestMailbox_AgainstServer(t *testing.T) {
	m, c := newServerMailbox(t)

	messages, err := m.GetEmails("INBOX", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Newer", "Older", imaptest.InboxSubject}, subjects(messages))
	assert.Equal(t, "newer body", messages[0].Preview)
	assert.Equal(t, "older body", messages[1].Preview)

	messages, err = m.GetEmails("INBOX", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Older"}, subjects(messages))
	olderId := messages[0].Id

	source, err := m.GetHTMLSource(olderId)
	require.NoError(t, err)
	require.NotNil(t, source)
	assert.Equal(t, "<p>older body</p>\r\n", *source)

	result, err := m.MoveEmail(olderId, folder.CanonicalInbox, folder.CanonicalArchive)
	require.NoError(t, err)
	assert.NoError(t, result.ExpungeError)
	assert.Equal(t, 2, c.GetFolderCount(folder.CanonicalInbox))
	assert.Equal(t, 1, c.GetFolderCount(folder.CanonicalArchive))

	bulk, err := m.MoveEmailsByCriteria(folder.CanonicalInbox, folder.CanonicalArchive, `SUBJECT "Newer"`)
	require.NoError(t, err)
	assert.Equal(t, &domain.BulkMoveResult{Moved: 1, Errors: 0, TotalFound: 1}, bulk)
	assert.Equal(t, 1, c.GetFolderCount(folder.CanonicalInbox))
	assert.Equal(t, 2, c.GetFolderCount(folder.CanonicalArchive))

	raw, err := m.GetRawEmail("999")
	assert.NoError(t, err)
	assert.Nil(t, raw)
}

func TestMailbox_DraftsAndSentAgainstServer(t *testing.T) {
	m, c := newServerMailbox(t)

	result := m.SaveDraft(&domain.Draft{To: "alice@example.org", Subject: "Plan", Body: "Let's meet."}, "")
	assert.True(t, result.Success, result.Message)
	assert.Equal(t, "Drafts", result.Folder)
	assert.Equal(t, 1, c.GetFolderCount(folder.CanonicalDrafts))

	drafts, err := m.GetEmails(folder.CanonicalDrafts, 10)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Plan", drafts[0].Subject)
	assert.Equal(t, "Let's meet.", drafts[0].TextBody)

	assert.NoError(t, m.SaveSent([]byte(newerMail)))
	assert.Equal(t, 1, c.GetFolderCount(folder.CanonicalSent))
}
