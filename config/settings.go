// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	KeyImapServer      = "IMAP_SERVER"
	KeyImapPort        = "IMAP_PORT"
	KeyImapUsername    = "IMAP_USERNAME"
	KeyImapPassword    = "IMAP_PASSWORD"
	KeySmtpServer      = "SMTP_SERVER"
	KeySmtpPort        = "SMTP_PORT"
	KeySmtpUsername    = "SMTP_USERNAME"
	KeySmtpPassword    = "SMTP_PASSWORD"
	KeySmtpSenderEmail = "SMTP_SENDER_EMAIL"
	KeySmtpUseTLS      = "SMTP_USE_TLS"
	KeyAzureEndpoint   = "AZURE_OPENAI_ENDPOINT"
	KeyAzureKey        = "AZURE_OPENAI_API_KEY"
	KeyAzureDeployment = "AZURE_OPENAI_DEPLOYMENT"
	KeyAzureApiVersion = "AZURE_OPENAI_API_VERSION"
)

// Settings is a KEY=value file. Every Save rewrites the whole file.
type Settings struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func LoadSettings(path string) (*Settings, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		values = map[string]string{}
	} else if err != nil {
		return nil, fmt.Errorf("could not read settings file: %w", err)
	}

	return &Settings{
		path:   path,
		values: values,
	}, nil
}

func (s *Settings) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values[key]
}

func (s *Settings) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

// Update merges values and rewrites the file.
func (s *Settings) Update(values map[string]string) error {
	s.mu.Lock()
	for k, v := range values {
		s.values[k] = v
	}
	s.mu.Unlock()

	return s.Save()
}

func (s *Settings) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := godotenv.Write(s.values, s.path)
	if err != nil {
		return fmt.Errorf("could not write settings file: %w", err)
	}

	return nil
}

func (s *Settings) ConnectionConfig() (*ConnectionConfig, error) {
	imapPort, err := s.intValue(KeyImapPort, DefaultImapPort)
	if err != nil {
		return nil, err
	}
	smtpPort, err := s.intValue(KeySmtpPort, DefaultSmtpPort)
	if err != nil {
		return nil, err
	}

	useTLS := true
	if raw := strings.TrimSpace(s.Get(KeySmtpUseTLS)); raw != "" {
		useTLS, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", KeySmtpUseTLS, err)
		}
	}

	c := NewConnectionConfig(ConnectionConfig{
		ImapServer:      s.Get(KeyImapServer),
		ImapPort:        imapPort,
		ImapUsername:    s.Get(KeyImapUsername),
		ImapPassword:    s.Get(KeyImapPassword),
		SmtpServer:      s.Get(KeySmtpServer),
		SmtpPort:        smtpPort,
		SmtpUsername:    s.Get(KeySmtpUsername),
		SmtpPassword:    s.Get(KeySmtpPassword),
		SmtpSenderEmail: s.Get(KeySmtpSenderEmail),
		SmtpUseTLS:      useTLS,
		AzureEndpoint:   s.Get(KeyAzureEndpoint),
		AzureKey:        s.Get(KeyAzureKey),
		AzureDeployment: s.Get(KeyAzureDeployment),
		AzureApiVersion: s.Get(KeyAzureApiVersion),
	})

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return c, nil
}

func (s *Settings) intValue(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(s.Get(key))
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}

	return v, nil
}
