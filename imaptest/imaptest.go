// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaptest runs an in-memory IMAP server for tests. The server knows a single user
// and starts with one message in INBOX.
package imaptest

import (
	"bytes"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/CrawX/go-nimbusrelay/config"

	"github.com/emersion/go-imap/backend/memory"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-imap/server"
	"github.com/stretchr/testify/require"
)

const (
	Username = "username"
	Password = "password"
	// InboxSubject is the subject of the message every new server holds in INBOX.
	InboxSubject = "A little message, just for you"
)

// Start serves a fresh backend on a random local port until the test ends.
func Start(t testing.TB) *config.ConnectionConfig {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := server.New(memory.New())
	s.AllowInsecureAuth = true
	go s.Serve(l)
	t.Cleanup(func() {
		s.Close()
	})

	host, portString, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portString)
	require.NoError(t, err)

	return config.NewConnectionConfig(config.ConnectionConfig{
		ImapServer:   host,
		ImapPort:     port,
		ImapUsername: Username,
		ImapPassword: Password,
		ImapInsecure: true,
		Timeout:      5 * time.Second,
	})
}

// Seed creates folders and appends raw mails through a separate connection.
type Seed struct {
	t testing.TB
	c *client.Client
}

func NewSeed(t testing.TB, cfg *config.ConnectionConfig) *Seed {
	c, err := client.Dial(cfg.ImapAddress())
	require.NoError(t, err)
	require.NoError(t, c.Login(cfg.ImapUsername, cfg.ImapPassword))
	t.Cleanup(func() {
		c.Logout()
	})

	return &Seed{t: t, c: c}
}

func (s *Seed) Folders(names ...string) *Seed {
	for _, name := range names {
		require.NoError(s.t, s.c.Create(name))
	}
	return s
}

func (s *Seed) Mail(folder string, rawMail string, flags ...string) *Seed {
	require.NoError(s.t, s.c.Append(folder, flags, time.Now(), bytes.NewBufferString(rawMail)))
	return s
}
