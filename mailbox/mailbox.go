// SPDX-License-Identifier: GPL-3.0-or-later
package mailbox

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/log"

	"github.com/sirupsen/logrus"
)

const DefaultLimit = 50

type Mailbox struct {
	session  domain.MailSession
	parser   domain.MessageParser
	resolver domain.FolderResolver

	configuration *configuration

	l *logrus.Logger
}

func New(session domain.MailSession, parser domain.MessageParser, resolver domain.FolderResolver, configFunc ...ConfigFunc) (*Mailbox, error) {
	c := &configuration{}
	for _, f := range configFunc {
		err := f(c)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}
	if c.Now == nil {
		c.Now = timeNow
	}

	return &Mailbox{
		session:       session,
		parser:        parser,
		resolver:      resolver,
		configuration: c,
		l:             log.Logger(log.LOG_MAILBOX),
	}, nil
}

// ParseId converts a message id to a uid. Empty, zero and non numeric ids are invalid.
func ParseId(id string) (uint32, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", domain.ErrInvalidMessageId)
	}

	uid, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMessageId, id)
	}
	if uid == 0 {
		return 0, fmt.Errorf("%w: 0", domain.ErrInvalidMessageId)
	}

	return uint32(uid), nil
}

// GetEmails returns the newest limit messages of a folder, newest first. Messages that
// cannot be fetched or parsed are skipped.
func (m *Mailbox) GetEmails(folder string, limit int) ([]*domain.Message, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	err := m.session.EnsureAlive()
	if err != nil {
		return nil, fmt.Errorf("could not get emails: %w", err)
	}

	name := m.resolver.Resolve(folder)
	_, err = m.session.Select(name, true)
	if err != nil {
		return nil, fmt.Errorf("could not select folder %s: %w", name, err)
	}

	uids, err := m.session.Search("ALL")
	if err != nil {
		return nil, fmt.Errorf("could not list folder %s: %w", name, err)
	}

	// search results are ascending by arrival, the newest are at the end
	if len(uids) > limit {
		uids = uids[len(uids)-limit:]
	}

	baseLogger := m.l.WithField("folder", name)
	messages := []*domain.Message{}
	for _, uid := range uids {
		if uid == 0 {
			continue
		}

		msg, err := m.fetch(uid)
		if err != nil {
			baseLogger.WithFields(logrus.Fields{"uid": uid, "error": err}).Warn("Skipping message")
			continue
		}
		if msg == nil {
			continue
		}
		messages = append(messages, msg)
	}

	// zero timestamps from unparsable dates sort as oldest
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})

	baseLogger.WithField("count", len(messages)).Debug("Fetched emails")
	return messages, nil
}

func (m *Mailbox) fetch(uid uint32) (*domain.Message, error) {
	rawMail, err := m.session.FetchRaw(uid)
	if err != nil {
		return nil, fmt.Errorf("could not fetch: %w", err)
	}
	if rawMail == nil {
		return nil, nil
	}

	msg, err := m.parser.Parse(strconv.FormatUint(uint64(uid), 10), rawMail)
	if err != nil {
		return nil, fmt.Errorf("could not parse: %w", err)
	}

	return msg, nil
}

// lookup searches the probe folders read-only for a uid and returns the raw message and
// the folder it was found in. Not finding it is not an error.
func (m *Mailbox) lookup(uid uint32) ([]byte, string, error) {
	err := m.session.EnsureAlive()
	if err != nil {
		return nil, "", err
	}

	for _, folder := range m.resolver.ProbeFolders() {
		_, err := m.session.Select(folder, true)
		if err != nil {
			continue
		}

		rawMail, err := m.session.FetchRaw(uid)
		if err != nil {
			m.l.WithFields(logrus.Fields{"folder": folder, "uid": uid, "error": err}).Debug("Fetch failed, trying next folder")
			continue
		}
		if rawMail != nil {
			return rawMail, folder, nil
		}
	}

	return nil, "", nil
}

func (m *Mailbox) GetRawEmail(id string) (*string, error) {
	uid, err := ParseId(id)
	if err != nil {
		return nil, err
	}

	rawMail, _, err := m.lookup(uid)
	if err != nil {
		return nil, fmt.Errorf("could not get raw email: %w", err)
	}
	if rawMail == nil {
		return nil, nil
	}

	raw := string(rawMail)
	return &raw, nil
}

// GetHTMLSource returns the html body of the first probe folder copy that has one.
// A copy without an html part does not count as found.
func (m *Mailbox) GetHTMLSource(id string) (*string, error) {
	uid, err := ParseId(id)
	if err != nil {
		return nil, err
	}

	err = m.session.EnsureAlive()
	if err != nil {
		return nil, fmt.Errorf("could not get html source: %w", err)
	}

	for _, folder := range m.resolver.ProbeFolders() {
		_, err := m.session.Select(folder, true)
		if err != nil {
			continue
		}

		rawMail, err := m.session.FetchRaw(uid)
		if err != nil || rawMail == nil {
			continue
		}

		msg, err := m.parser.Parse(id, rawMail)
		if err != nil {
			m.l.WithFields(logrus.Fields{"folder": folder, "uid": uid, "error": err}).Debug("Parse failed, trying next folder")
			continue
		}
		if !msg.HasHtml {
			continue
		}

		source := msg.HtmlBody
		return &source, nil
	}

	return nil, nil
}
