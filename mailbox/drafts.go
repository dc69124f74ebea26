// SPDX-License-Identifier: GPL-3.0-or-later
package mailbox

import (
	"fmt"
	"time"

	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/folder"
	"github.com/CrawX/go-nimbusrelay/mail"

	"github.com/emersion/go-imap"
	"github.com/sirupsen/logrus"
)

var timeNow = time.Now

// SaveDraft composes the draft and appends it flagged \Draft and \Seen. An empty folder
// means the drafts folder.
func (m *Mailbox) SaveDraft(draft *domain.Draft, folderName string) *domain.DraftResult {
	if draft == nil {
		return &domain.DraftResult{Success: false, Message: domain.ErrInvalidDraft.Error()}
	}
	if folderName == "" {
		folderName = folder.CanonicalDrafts
	}

	err := m.session.EnsureAlive()
	if err != nil {
		return &domain.DraftResult{Success: false, Message: fmt.Sprintf("could not save draft: %v", err)}
	}

	rawMail, err := m.Compose(draft)
	if err != nil {
		return &domain.DraftResult{Success: false, Message: fmt.Sprintf("could not compose draft: %v", err)}
	}

	dest := m.resolver.Resolve(folderName)
	err = m.session.Append(dest, []string{imap.DraftFlag, imap.SeenFlag}, m.configuration.Now(), rawMail)
	if err != nil {
		m.l.WithFields(logrus.Fields{"folder": dest, "error": err}).Warn("Could not save draft")
		return &domain.DraftResult{Success: false, Message: fmt.Sprintf("could not save draft to %s: %v", dest, err)}
	}

	return &domain.DraftResult{Success: true, Message: fmt.Sprintf("Draft saved to %s", dest), Folder: dest}
}

// Compose renders a draft. When ReplyToId names a message that can be found it is quoted,
// otherwise the draft is composed as a new message.
func (m *Mailbox) Compose(draft *domain.Draft) ([]byte, error) {
	var original *domain.Message
	if draft.ReplyToId != "" {
		original = m.ReplyTarget(draft.ReplyToId)
	}

	return mail.Compose(draft, m.configuration.From, original, m.configuration.Now())
}

// ReplyTarget looks up and parses the message a reply refers to, nil when it cannot be found.
func (m *Mailbox) ReplyTarget(id string) *domain.Message {
	baseLogger := m.l.WithField("replyTo", id)

	uid, err := ParseId(id)
	if err != nil {
		baseLogger.WithError(err).Warn("Ignoring invalid reply target")
		return nil
	}

	rawMail, _, err := m.lookup(uid)
	if err != nil || rawMail == nil {
		baseLogger.WithError(err).Warn("Reply target not found, composing without quote")
		return nil
	}

	original, err := m.parser.Parse(id, rawMail)
	if err != nil {
		baseLogger.WithError(err).Warn("Reply target not parsable, composing without quote")
		return nil
	}
	return original
}

// SaveSent appends a delivered message flagged \Seen to the sent folder.
func (m *Mailbox) SaveSent(rawMail []byte) error {
	err := m.session.EnsureAlive()
	if err != nil {
		return fmt.Errorf("could not save sent copy: %w", err)
	}

	dest := m.resolver.Resolve(folder.CanonicalSent)
	err = m.session.Append(dest, []string{imap.SeenFlag}, m.configuration.Now(), rawMail)
	if err != nil {
		return fmt.Errorf("could not save sent copy to %s: %w", dest, err)
	}

	return nil
}
