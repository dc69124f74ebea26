// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultImapPort   = 993
	DefaultSmtpPort   = 587
	DefaultTimeout    = 30 * time.Second
	DefaultApiVersion = "2024-12-01-preview"
)

// ConnectionConfig holds everything needed to reach the mailbox and delivery servers.
// Values are normalized by NewConnectionConfig and must not be changed afterwards.
type ConnectionConfig struct {
	ImapServer   string
	ImapPort     int
	ImapUsername string
	ImapPassword string
	// ImapInsecure disables TLS on the mailbox connection.
	ImapInsecure bool

	SmtpServer      string
	SmtpPort        int
	SmtpUsername    string
	SmtpPassword    string
	SmtpSenderEmail string
	SmtpUseTLS      bool

	AzureEndpoint   string
	AzureKey        string
	AzureDeployment string
	AzureApiVersion string

	Timeout time.Duration
}

func NewConnectionConfig(c ConnectionConfig) *ConnectionConfig {
	if c.ImapPort == 0 {
		c.ImapPort = DefaultImapPort
	}
	if c.SmtpPort == 0 {
		c.SmtpPort = DefaultSmtpPort
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.AzureApiVersion == "" {
		c.AzureApiVersion = DefaultApiVersion
	}

	if strings.TrimSpace(c.SmtpServer) == "" {
		c.SmtpServer = DeriveSmtpServer(c.ImapServer)
	}
	if c.SmtpUsername == "" {
		c.SmtpUsername = c.ImapUsername
	}
	if c.SmtpPassword == "" {
		c.SmtpPassword = c.ImapPassword
	}
	if c.SmtpSenderEmail == "" {
		c.SmtpSenderEmail = c.ImapUsername
	}

	return &c
}

// DeriveSmtpServer guesses the submission host of well known providers from the imap host.
func DeriveSmtpServer(imapServer string) string {
	lower := strings.ToLower(imapServer)
	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "gmail"):
		return "smtp.gmail.com"
	case strings.Contains(lower, "outlook"), strings.Contains(lower, "hotmail"):
		return "smtp-mail.outlook.com"
	case strings.Contains(lower, "yahoo"):
		return "smtp.mail.yahoo.com"
	}

	return strings.Replace(imapServer, "imap", "smtp", 1)
}

func (c *ConnectionConfig) Validate() error {
	if err := validateNonEmptyStringField(c.ImapServer, "imap server must not be empty"); err != nil {
		return err
	}
	if err := validateNonEmptyStringField(c.ImapUsername, "imap username must not be empty"); err != nil {
		return err
	}
	if err := validateNonEmptyStringField(c.ImapPassword, "imap password must not be empty"); err != nil {
		return err
	}
	if c.ImapPort <= 0 || c.ImapPort > 65535 {
		return fmt.Errorf("invalid imap port %d", c.ImapPort)
	}

	return nil
}

func (c *ConnectionConfig) ImapAddress() string {
	return net.JoinHostPort(c.ImapServer, strconv.Itoa(c.ImapPort))
}

func (c *ConnectionConfig) SmtpAddress() string {
	return net.JoinHostPort(c.SmtpServer, strconv.Itoa(c.SmtpPort))
}
