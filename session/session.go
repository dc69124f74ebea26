// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"fmt"

	"github.com/CrawX/go-nimbusrelay/config"
	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/log"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap-compress"
	"github.com/emersion/go-imap-move"
	"github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// Session owns the single long lived mailbox connection. It is not safe for concurrent
// use, callers serialize access.
type Session struct {
	cfg           config.ConnectionConfig
	configuration *configuration

	state  domain.SessionState
	client *client.Client

	expunger expunger
	mover    mover

	l *logrus.Logger
}

func New(cfg *config.ConnectionConfig, configFunc ...ConfigFunc) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("connection config cannot be nil")
	}

	c := &configuration{
		Insecure: cfg.ImapInsecure,
		Timeout:  cfg.Timeout,
	}
	for _, f := range configFunc {
		err := f(c)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}
	if c.Timeout <= 0 {
		c.Timeout = config.DefaultTimeout
	}
	if c.Dial == nil {
		c.Dial = defaultDialer(c.Insecure)
	}

	return &Session{
		cfg:           *cfg,
		configuration: c,
		state:         domain.Disconnected,
		l:             log.Logger(log.LOG_SESSION),
	}, nil
}

func defaultDialer(insecure bool) DialFunc {
	if insecure {
		return client.Dial
	}
	return func(addr string) (*client.Client, error) {
		return client.DialTLS(addr, nil)
	}
}

func (s *Session) State() domain.SessionState {
	return s.state
}

// Connect dials, logs in and probes the server extensions. An existing connection is
// closed first. On failure the session stays disconnected.
func (s *Session) Connect() error {
	if s.client != nil {
		s.Disconnect()
	}

	s.state = domain.Connecting
	addr := s.cfg.ImapAddress()
	baseLogger := s.l.WithFields(logrus.Fields{"server": addr, "user": s.cfg.ImapUsername})

	imapClient, err := s.configuration.Dial(addr)
	if err != nil {
		s.state = domain.Disconnected
		return &domain.ConnectionError{Op: "could not dial to imap", Err: err}
	}
	imapClient.Timeout = s.configuration.Timeout
	imapClient.ErrorLog = baseLogger

	err = imapClient.Login(s.cfg.ImapUsername, s.cfg.ImapPassword)
	if err != nil {
		s.state = domain.Disconnected
		_ = imapClient.Logout()
		return &domain.ConnectionError{Op: "could not login to imap", Err: err}
	}

	if s.configuration.Compress {
		compressClient := compress.NewClient(imapClient)
		compressSupported, err := compressClient.SupportCompress(compress.Deflate)
		if err != nil {
			s.state = domain.Disconnected
			_ = imapClient.Logout()
			return &domain.ConnectionError{Op: "could not check for COMPRESS support", Err: err}
		}
		if compressSupported {
			err = compressClient.Compress(compress.Deflate)
			if err != nil {
				s.state = domain.Disconnected
				_ = imapClient.Logout()
				return &domain.ConnectionError{Op: "could not enable compression", Err: err}
			}
			baseLogger.Debug("COMPRESS=DEFLATE enabled")
		} else {
			baseLogger.Info("COMPRESS=DEFLATE not supported on server, continuing uncompressed")
		}
	}

	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		s.state = domain.Disconnected
		_ = imapClient.Logout()
		return &domain.ConnectionError{Op: "could not check for UIDPLUS support", Err: err}
	}

	moveClient := move.NewClient(imapClient)
	moveSupported, err := moveClient.SupportMove()
	if err != nil {
		s.state = domain.Disconnected
		_ = imapClient.Logout()
		return &domain.ConnectionError{Op: "could not check for MOVE support", Err: err}
	}

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, using UID EXPUNGE")
		s.expunger = &uidPlusExpunger{client: uidPlusClient}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, falling back to plain EXPUNGE")
		s.expunger = &compatibilityExpunger{client: imapClient}
	}

	if moveSupported {
		baseLogger.Debug("MOVE supported on server")
		s.mover = &moveMover{client: moveClient}
	} else {
		baseLogger.Info("MOVE not supported on server, moves need copy&expunge")
		s.mover = unsupportedMover{}
	}

	s.client = imapClient
	s.state = domain.Connected
	baseLogger.Debug("Logged in to server")

	return nil
}

// Disconnect logs out and drops the connection. Errors are logged, never returned.
func (s *Session) Disconnect() {
	if s.client != nil {
		err := s.client.Logout()
		if err != nil && err != client.ErrAlreadyLoggedOut {
			s.l.WithError(err).Debug("Logout failed, dropping connection anyway")
			_ = s.client.Terminate()
		}
	}

	s.client = nil
	s.expunger = nil
	s.mover = nil
	s.state = domain.Disconnected
}

// IsConnected is a local check, it does not talk to the server.
func (s *Session) IsConnected() bool {
	return s.client != nil && s.state == domain.Connected && s.client.State() != imap.LogoutState
}

// EnsureAlive probes the connection with NOOP and reconnects exactly once when the probe
// fails or no connection exists.
func (s *Session) EnsureAlive() error {
	if s.IsConnected() {
		err := s.client.Noop()
		if err == nil {
			return nil
		}
		s.l.WithError(err).Info("Connection lost, reconnecting")
		s.Disconnect()
	}

	err := s.Connect()
	if err != nil {
		s.l.WithError(err).Warn("Reconnect failed")
		return err
	}

	return nil
}

func (s *Session) connected() (*client.Client, error) {
	if !s.IsConnected() {
		return nil, domain.ErrNotConnected
	}
	return s.client, nil
}
