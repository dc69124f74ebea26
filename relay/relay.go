// SPDX-License-Identifier: GPL-3.0-or-later

// Package relay is the entry point for front ends. It owns one mailbox session and one
// delivery connection and serializes every call on them.
package relay

import (
	"errors"
	"fmt"
	"sync"

	"github.com/CrawX/go-nimbusrelay/catalog"
	"github.com/CrawX/go-nimbusrelay/config"
	"github.com/CrawX/go-nimbusrelay/delivery"
	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/log"
	"github.com/CrawX/go-nimbusrelay/mail"
	"github.com/CrawX/go-nimbusrelay/mailbox"
	"github.com/CrawX/go-nimbusrelay/session"
	"github.com/CrawX/go-nimbusrelay/triage"

	"github.com/sirupsen/logrus"
)

var ErrNoClassifier = errors.New("no spam classifier configured")

type Relay struct {
	mu sync.Mutex

	session  *session.Session
	catalog  *catalog.Catalog
	mailbox  *mailbox.Mailbox
	delivery *delivery.Client
	triage   *triage.Triage

	l *logrus.Logger
}

func New(cfg *config.ConnectionConfig, configFunc ...ConfigFunc) (*Relay, error) {
	if cfg == nil {
		return nil, fmt.Errorf("connection config cannot be nil")
	}

	c := &configuration{}
	if cfg.SmtpSenderEmail != "" {
		c.Mailbox = append(c.Mailbox, mailbox.From(cfg.SmtpSenderEmail))
	}
	for _, f := range configFunc {
		err := f(c)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	s, err := session.New(cfg, c.Session...)
	if err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	fc, err := catalog.New(s, c.Catalog...)
	if err != nil {
		return nil, fmt.Errorf("could not create folder catalog: %w", err)
	}

	mb, err := mailbox.New(s, mail.NewParser(), fc, c.Mailbox...)
	if err != nil {
		return nil, fmt.Errorf("could not create mailbox: %w", err)
	}

	d, err := delivery.New(cfg, c.Delivery...)
	if err != nil {
		return nil, fmt.Errorf("could not create delivery client: %w", err)
	}

	r := &Relay{
		session:  s,
		catalog:  fc,
		mailbox:  mb,
		delivery: d,
		l:        log.Logger(log.LOG_RELAY),
	}

	if c.Classifier != nil {
		r.triage, err = triage.New(mb, c.Classifier, c.Persistence, c.Triage...)
		if err != nil {
			return nil, fmt.Errorf("could not create triage: %w", err)
		}
	}

	return r, nil
}

// Connect opens the mailbox session and resolves the well known folders. Delivery connects
// lazily on the first send.
func (r *Relay) Connect() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.session.Connect()
	if err != nil {
		r.l.WithError(err).Warn("Could not connect")
		return err
	}

	folders, err := r.catalog.ListFolders(false)
	if err != nil {
		r.l.WithError(err).Warn("Could not resolve folders")
		return nil
	}
	r.l.WithField("folders", len(folders)).Info("Connected")

	return nil
}

func (r *Relay) Disconnect() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session.Disconnect()
	r.delivery.Disconnect()
	r.l.Info("Disconnected")
}

func (r *Relay) IsConnected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.session.IsConnected()
}

func (r *Relay) ListFolders(includeHidden bool) ([]*domain.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.ListFolders(includeHidden)
}

// DiscoverFolders lists the full folder tree instead of the well known folders.
func (r *Relay) DiscoverFolders(includeHidden bool) ([]*domain.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.DiscoverFolders(includeHidden)
}

func (r *Relay) GetFolderCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.GetFolderCount(name)
}

// FolderExists resolves name and reports whether it can be selected.
func (r *Relay) FolderExists(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.FolderExists(name)
}

func (r *Relay) GetEmails(folder string, limit int) ([]*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mailbox.GetEmails(folder, limit)
}

func (r *Relay) MoveEmail(id, from, to string) (*domain.MoveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mailbox.MoveEmail(id, from, to)
}

func (r *Relay) MoveEmailsByCriteria(from, to, criteria string) (*domain.BulkMoveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mailbox.MoveEmailsByCriteria(from, to, criteria)
}

func (r *Relay) GetRawEmail(id string) (*string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mailbox.GetRawEmail(id)
}

func (r *Relay) GetHTMLSource(id string) (*string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mailbox.GetHTMLSource(id)
}

func (r *Relay) SaveDraft(draft *domain.Draft, folder string) *domain.DraftResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mailbox.SaveDraft(draft, folder)
}

// SendEmail delivers the draft and files a copy in the sent folder. A failing sent copy
// does not fail the send, it is reported in SentCopyError.
func (r *Relay) SendEmail(draft *domain.Draft) (*domain.SendResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var original *domain.Message
	if draft != nil && draft.ReplyToId != "" {
		original = r.mailbox.ReplyTarget(draft.ReplyToId)
	}

	result, rawMail, err := r.delivery.SendDraft(draft, original)
	if err != nil {
		r.l.WithError(err).Warn("Could not send email")
		return nil, err
	}

	err = r.mailbox.SaveSent(rawMail)
	if err != nil {
		r.l.WithError(err).Warn("Email sent but the sent copy could not be saved")
		result.SentCopyError = err.Error()
	} else {
		result.SentCopySaved = true
	}

	return result, nil
}

// Triage classifies the newest mails of folders, see triage.Triage.Run.
func (r *Relay) Triage(folders []string, limit int) (*triage.Report, error) {
	if r.triage == nil {
		return nil, ErrNoClassifier
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.triage.Run(folders, limit)
}

func (r *Relay) Learn(learnType domain.LearnType, folders []string, limit int) error {
	if r.triage == nil {
		return ErrNoClassifier
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.triage.Learn(learnType, folders, limit)
}

// SpamFolder is the server spelling of the spam folder once the folders were listed.
func (r *Relay) SpamFolder() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.catalog.SpamFolder()
}
