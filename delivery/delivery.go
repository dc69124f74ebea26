// SPDX-License-Identifier: GPL-3.0-or-later
package delivery

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/CrawX/go-nimbusrelay/config"
	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/CrawX/go-nimbusrelay/log"
	"github.com/CrawX/go-nimbusrelay/mail"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/sirupsen/logrus"
)

const ImplicitTlsPort = 465

// Client submits messages over SMTP. Like the mailbox session it is not safe for
// concurrent use.
type Client struct {
	cfg           config.ConnectionConfig
	configuration *configuration

	client *smtp.Client

	l *logrus.Logger
}

func New(cfg *config.ConnectionConfig, configFunc ...ConfigFunc) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("connection config cannot be nil")
	}

	c := &configuration{}
	for _, f := range configFunc {
		err := f(c)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}
	if c.Dial == nil {
		c.Dial = defaultDialer(cfg)
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	return &Client{
		cfg:           *cfg,
		configuration: c,
		l:             log.Logger(log.LOG_DELIVERY),
	}, nil
}

// defaultDialer uses implicit TLS on the submissions port, STARTTLS when TLS is requested
// and plain text otherwise.
func defaultDialer(cfg *config.ConnectionConfig) DialFunc {
	switch {
	case cfg.SmtpPort == ImplicitTlsPort:
		return func(addr string) (*smtp.Client, error) {
			return smtp.DialTLS(addr, nil)
		}
	case cfg.SmtpUseTLS:
		return func(addr string) (*smtp.Client, error) {
			return smtp.DialStartTLS(addr, nil)
		}
	}
	return smtp.Dial
}

func (c *Client) Connect() error {
	if c.client != nil {
		c.Disconnect()
	}

	addr := c.cfg.SmtpAddress()
	baseLogger := c.l.WithFields(logrus.Fields{"server": addr, "user": c.cfg.SmtpUsername})

	smtpClient, err := c.configuration.Dial(addr)
	if err != nil {
		return &domain.ConnectionError{Op: "could not dial to smtp", Err: err}
	}
	if c.cfg.Timeout > 0 {
		smtpClient.CommandTimeout = c.cfg.Timeout
		smtpClient.SubmissionTimeout = c.cfg.Timeout
	}

	if c.cfg.SmtpUsername != "" {
		err = smtpClient.Auth(sasl.NewPlainClient("", c.cfg.SmtpUsername, c.cfg.SmtpPassword))
		if err != nil {
			_ = smtpClient.Close()
			return &domain.ConnectionError{Op: "could not login to smtp", Err: err}
		}
	}

	c.client = smtpClient
	baseLogger.Debug("Logged in to server")

	return nil
}

// Disconnect sends QUIT and closes the connection. Errors are logged, never returned.
func (c *Client) Disconnect() {
	if c.client == nil {
		return
	}

	err := c.client.Quit()
	if err != nil {
		c.l.WithError(err).Debug("Quit failed, closing connection")
		_ = c.client.Close()
	}
	c.client = nil
}

// IsConnected probes the connection with NOOP.
func (c *Client) IsConnected() bool {
	return c.client != nil && c.client.Noop() == nil
}

// Send transmits a rendered message to every recipient and returns the recipient count.
// A connection is opened when there is none, a failed transaction drops it.
func (c *Client) Send(rawMail []byte, from string, recipients []string) (int, error) {
	if len(recipients) == 0 {
		return 0, fmt.Errorf("%w: no recipients", domain.ErrInvalidDraft)
	}

	if !c.IsConnected() {
		err := c.Connect()
		if err != nil {
			return 0, err
		}
	}

	err := c.transmit(rawMail, from, recipients)
	if err != nil {
		c.Disconnect()
		return 0, err
	}

	c.l.WithFields(logrus.Fields{"from": from, "recipients": len(recipients)}).Info("Sent mail")
	return len(recipients), nil
}

func (c *Client) transmit(rawMail []byte, from string, recipients []string) error {
	err := c.client.Mail(from, nil)
	if err != nil {
		return fmt.Errorf("could not set sender: %w", err)
	}

	for _, rcpt := range recipients {
		err = c.client.Rcpt(rcpt, nil)
		if err != nil {
			return fmt.Errorf("could not add recipient %s: %w", rcpt, err)
		}
	}

	w, err := c.client.Data()
	if err != nil {
		return fmt.Errorf("could not start data: %w", err)
	}

	_, err = io.Copy(w, bytes.NewReader(rawMail))
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("could not write data: %w", err)
	}

	err = w.Close()
	if err != nil {
		return fmt.Errorf("message not accepted: %w", err)
	}

	return nil
}

// SendDraft composes the draft, quoting original when set, and sends it to every address
// of To, Cc and Bcc. The rendered message is returned for filing a sent copy.
func (c *Client) SendDraft(draft *domain.Draft, original *domain.Message) (*domain.SendResult, []byte, error) {
	if draft == nil {
		return nil, nil, domain.ErrInvalidDraft
	}

	recipients, err := mail.Recipients(draft)
	if err != nil {
		return nil, nil, err
	}

	rawMail, err := mail.Compose(draft, c.cfg.SmtpSenderEmail, original, c.configuration.Now())
	if err != nil {
		return nil, nil, err
	}

	count, err := c.Send(rawMail, c.cfg.SmtpSenderEmail, recipients)
	if err != nil {
		return nil, nil, err
	}

	return &domain.SendResult{
		Success:    true,
		Message:    fmt.Sprintf("Email sent to %d recipients", count),
		Recipients: count,
	}, rawMail, nil
}
