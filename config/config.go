// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database string

	ImapHost string
	ImapPort int
	User     string
	Password string
	Insecure bool
	Compress bool

	SmtpHost     string
	SmtpPort     int
	SmtpUser     string
	SmtpPassword string
	SenderEmail  string
	SmtpUseTLS   bool

	TimeoutSeconds int

	SpamassassinHost          string
	SpamassassinRequiredScore float64

	RspamdController string
	RspamdPassword   string

	DryRun     bool
	NativeMove bool

	MoveSpam   bool
	SpamFolder string

	CheckFolders []string
	EmailLimit   int

	SpamLearnFolders []string
	HamLearnFolders  []string

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:       "persistence.db",
		ImapPort:       DefaultImapPort,
		SmtpPort:       DefaultSmtpPort,
		SmtpUseTLS:     true,
		TimeoutSeconds: int(DefaultTimeout / time.Second),
		SpamFolder:     "INBOX.spam",
		CheckFolders:   []string{"INBOX"},
		EmailLimit:     50,
		DryRun:         true,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ImapHost, "ImapHost must not be empty, set to the hostname of the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.User, "User must not be empty, set to username on the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Password, "Password must not be empty, set to password of User on the imap server"); err != nil {
		return err
	}

	if c.ImapPort <= 0 || c.SmtpPort <= 0 {
		return fmt.Errorf("ImapPort and SmtpPort must be positive")
	}

	spamassassinSet := len(strings.TrimSpace(c.SpamassassinHost)) > 0
	rspamdSet := len(strings.TrimSpace(c.RspamdController)) > 0
	if rspamdSet && spamassassinSet {
		return fmt.Errorf("SpamassassinHost and RspamdController cannot be set at the same time")
	}

	if rspamdSet {
		if err := validateNonEmptyStringField(c.RspamdPassword, "RspamdPassword must be set if RspamdController is set"); err != nil {
			return err
		}
	}

	if c.MoveSpam {
		if err := validateNonEmptyStringField(c.SpamFolder, "SpamFolder must be set if MoveSpam is enabled"); err != nil {
			return err
		}
	}

	return nil
}

// ClassifierConfigured reports whether either spam classifier backend is set up.
func (c *Config) ClassifierConfigured() bool {
	return len(strings.TrimSpace(c.SpamassassinHost)) > 0 || len(strings.TrimSpace(c.RspamdController)) > 0
}

func (c *Config) ConnectionConfig() *ConnectionConfig {
	return NewConnectionConfig(ConnectionConfig{
		ImapServer:      c.ImapHost,
		ImapPort:        c.ImapPort,
		ImapUsername:    c.User,
		ImapPassword:    c.Password,
		ImapInsecure:    c.Insecure,
		SmtpServer:      c.SmtpHost,
		SmtpPort:        c.SmtpPort,
		SmtpUsername:    c.SmtpUser,
		SmtpPassword:    c.SmtpPassword,
		SmtpSenderEmail: c.SenderEmail,
		SmtpUseTLS:      c.SmtpUseTLS,
		Timeout:         time.Duration(c.TimeoutSeconds) * time.Second,
	})
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
