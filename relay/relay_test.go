// SPDX-License-Identifier: GPL-3.0-or-later
package relay

import (
	"testing"
	"time"

	"github.com/CrawX/go-nimbusrelay/config"
	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/domain/mocks"
	"github.com/CrawX/go-nimbusrelay/folder"
	"github.com/CrawX/go-nimbusrelay/imaptest"
	"github.com/CrawX/go-nimbusrelay/persistence"
	"github.com/CrawX/go-nimbusrelay/smtptest"
	"github.com/CrawX/go-nimbusrelay/triage"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServers(t *testing.T, folders ...string) (*config.ConnectionConfig, *smtptest.Server) {
	imapCfg := imaptest.Start(t)
	if len(folders) > 0 {
		imaptest.NewSeed(t, imapCfg).Folders(folders...)
	}
	smtpServer := smtptest.Start(t)

	cfg := config.NewConnectionConfig(config.ConnectionConfig{
		ImapServer:      imapCfg.ImapServer,
		ImapPort:        imapCfg.ImapPort,
		ImapUsername:    imaptest.Username,
		ImapPassword:    imaptest.Password,
		ImapInsecure:    true,
		SmtpServer:      smtpServer.Host,
		SmtpPort:        smtpServer.Port,
		SmtpUsername:    smtptest.Username,
		SmtpPassword:    smtptest.Password,
		SmtpSenderEmail: smtptest.Username,
		Timeout:         5 * time.Second,
	})

	return cfg, smtpServer
}

func newRelay(t *testing.T, cfg *config.ConnectionConfig, configFunc ...ConfigFunc) *Relay {
	r, err := New(cfg, configFunc...)
	require.NoError(t, err)
	t.Cleanup(r.Disconnect)
	return r
}

func names(folders []*domain.Folder) []string {
	result := []string{}
	for _, f := range folders {
		result = append(result, f.Name)
	}
	return result
}

func TestNew_Configuration(t *testing.T) {
	cfg := config.NewConnectionConfig(config.ConnectionConfig{ImapServer: "imap.example.org"})

	_, err := New(nil)
	assert.EqualError(t, err, "connection config cannot be nil")

	_, err = New(cfg, Persist(nil))
	assert.EqualError(t, err, "error applying configuration: persistence cannot be nil")

	_, err = New(cfg, Classifier(nil))
	assert.EqualError(t, err, "error applying configuration: classifier cannot be nil")

	r, err := New(cfg)
	require.NoError(t, err)
	assert.False(t, r.IsConnected())

	_, err = r.Triage([]string{"INBOX"}, 10)
	assert.ErrorIs(t, err, ErrNoClassifier)
	assert.ErrorIs(t, r.Learn(domain.LearnSpam, []string{"INBOX"}, 10), ErrNoClassifier)
}

func TestRelay_ConnectFails(t *testing.T) {
	cfg, _ := startServers(t)
	wrong := *cfg
	wrong.ImapPassword = "wrong"

	r := newRelay(t, &wrong)
	err := r.Connect()
	assert.ErrorIs(t, err, domain.ErrConnection)
	assert.False(t, r.IsConnected())
}

func TestRelay_AgainstServers(t *testing.T) {
	cfg, smtpServer := startServers(t, "Sent", "Drafts", "Junk")
	r := newRelay(t, cfg)

	require.NoError(t, r.Connect())
	assert.True(t, r.IsConnected())

	folders, err := r.ListFolders(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"INBOX", "INBOX.Drafts", "INBOX.Sent", "INBOX.spam"}, names(folders))
	assert.Equal(t, "Junk", r.SpamFolder())
	assert.Equal(t, 1, r.GetFolderCount(folder.CanonicalInbox))
	assert.True(t, r.FolderExists(folder.CanonicalSent))
	assert.True(t, r.FolderExists("Junk"))
	assert.False(t, r.FolderExists(folder.CanonicalTrash))
	assert.False(t, r.FolderExists("Nowhere"))

	discovered, err := r.DiscoverFolders(false)
	require.NoError(t, err)
	assert.Len(t, discovered, 4)

	messages, err := r.GetEmails(folder.CanonicalInbox, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	inboxId := messages[0].Id

	raw, err := r.GetRawEmail(inboxId)
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Contains(t, *raw, imaptest.InboxSubject)

	// the inbox message is text/plain only
	source, err := r.GetHTMLSource(inboxId)
	require.NoError(t, err)
	assert.Nil(t, source)

	draft := r.SaveDraft(&domain.Draft{To: "alice@example.org", Subject: "Later", Body: "draft body"}, "")
	assert.True(t, draft.Success, draft.Message)
	assert.Equal(t, "Drafts", draft.Folder)

	result, err := r.SendEmail(&domain.Draft{
		To:        "contact@example.org",
		Bcc:       "carol@example.org",
		Body:      "Thanks!",
		ReplyToId: inboxId,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Recipients)
	assert.True(t, result.SentCopySaved)
	assert.Empty(t, result.SentCopyError)
	assert.Equal(t, 1, r.GetFolderCount(folder.CanonicalSent))

	envelopes := smtpServer.Envelopes()
	require.Len(t, envelopes, 1)
	assert.Equal(t, smtptest.Username, envelopes[0].From)
	assert.Equal(t, []string{"contact@example.org", "carol@example.org"}, envelopes[0].Recipients)
	data := string(envelopes[0].Data)
	assert.Contains(t, data, "Re: "+imaptest.InboxSubject)
	assert.Contains(t, data, "> Hi there :)")
	assert.NotContains(t, data, "carol@example.org")

	moved, err := r.MoveEmail(inboxId, folder.CanonicalInbox, folder.CanonicalSpam)
	require.NoError(t, err)
	assert.NoError(t, moved.ExpungeError)
	assert.Equal(t, 0, r.GetFolderCount(folder.CanonicalInbox))
	assert.Equal(t, 1, r.GetFolderCount(folder.CanonicalSpam))

	bulk, err := r.MoveEmailsByCriteria(folder.CanonicalSpam, folder.CanonicalInbox, "")
	require.NoError(t, err)
	assert.Equal(t, &domain.BulkMoveResult{Moved: 1, TotalFound: 1}, bulk)

	r.Disconnect()
	assert.False(t, r.IsConnected())
}

func TestRelay_SendEmailSentCopyFails(t *testing.T) {
	// no sent folder on the server
	cfg, smtpServer := startServers(t)
	r := newRelay(t, cfg)
	require.NoError(t, r.Connect())

	result, err := r.SendEmail(&domain.Draft{To: "alice@example.org", Subject: "Hi", Body: "body"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Recipients)
	assert.False(t, result.SentCopySaved)
	assert.NotEmpty(t, result.SentCopyError)
	assert.Len(t, smtpServer.Envelopes(), 1)
}

func TestRelay_SendEmailFails(t *testing.T) {
	cfg, smtpServer := startServers(t, "Sent")
	smtpServer.SetRejectData(true)
	r := newRelay(t, cfg)
	require.NoError(t, r.Connect())

	result, err := r.SendEmail(&domain.Draft{To: "alice@example.org", Subject: "Hi", Body: "body"})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, r.GetFolderCount(folder.CanonicalSent))

	_, err = r.SendEmail(&domain.Draft{Subject: "nobody"})
	assert.ErrorIs(t, err, domain.ErrInvalidDraft)
}

func TestRelay_Triage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg, _ := startServers(t, "Junk")

	p, err := persistence.NewPersistence(":memory:")
	require.NoError(t, err)
	defer p.Close()

	classifier := mocks.NewMockConcurrentSpamClassifier(ctrl)
	classifier.EXPECT().
		ClassifyAll(gomock.Len(1), triage.CheckConcurrency).
		Return([]*domain.SpamAnalysisResult{{Classification: domain.ClassSpam, Confidence: 0.99, Reason: "obvious"}})

	r := newRelay(t, cfg, Persist(p), Classifier(classifier, triage.MoveSpam("Junk")))
	require.NoError(t, r.Connect())

	report, err := r.Triage([]string{folder.CanonicalInbox}, 10)
	require.NoError(t, err)
	assert.Equal(t, []*triage.FolderReport{{Folder: folder.CanonicalInbox, Checked: 1, Spam: 1, Moved: 1}}, report.Folders)
	assert.Equal(t, 0, r.GetFolderCount(folder.CanonicalInbox))
	assert.Equal(t, 1, r.GetFolderCount("Junk"))

	saved, err := p.GetClassificationsInFolder(domain.Classified, folder.CanonicalInbox)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, imaptest.InboxSubject, saved[0].Subject)
	assert.Equal(t, "obvious", saved[0].Reason)

	// the classified mail is remembered in the spam folder too
	report, err = r.Triage([]string{"Junk"}, 10)
	require.NoError(t, err)
	assert.Equal(t, []*triage.FolderReport{{Folder: "Junk", Skipped: 1}}, report.Folders)

	_, err = r.DiscoverFolders(false)
	require.NoError(t, err)
	known, err := p.AllFolders()
	require.NoError(t, err)
	assert.Len(t, known, 2)
}
