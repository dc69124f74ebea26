// SPDX-License-Identifier: GPL-3.0-or-later

// Package smtptest runs a local submission server for tests that records every accepted
// message.
package smtptest

import (
	"errors"
	"io"
	"io/ioutil"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/stretchr/testify/require"
)

const (
	Username = "sender@example.org"
	Password = "secret"
)

type Envelope struct {
	From       string
	Recipients []string
	Data       []byte
}

type Server struct {
	Host string
	Port int

	mu        sync.Mutex
	envelopes []Envelope
	reject    bool
}

// Start serves on a random local port until the test ends. Clients must authenticate
// with Username and Password over PLAIN.
func Start(t testing.TB) *Server {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &Server{}
	server := smtp.NewServer(&backend{server: s})
	server.Domain = "localhost"
	server.AllowInsecureAuth = true
	server.ReadTimeout = 5 * time.Second
	server.WriteTimeout = 5 * time.Second
	go server.Serve(l)
	t.Cleanup(func() {
		server.Close()
	})

	host, portString, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	s.Host = host
	s.Port, err = strconv.Atoi(portString)
	require.NoError(t, err)

	return s
}

func (s *Server) Envelopes() []Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Envelope{}, s.envelopes...)
}

func (s *Server) rejectData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reject
}

// SetRejectData makes every following DATA command fail.
func (s *Server) SetRejectData(reject bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reject = reject
}

func (s *Server) record(e Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envelopes = append(s.envelopes, e)
}

type backend struct {
	server *Server
}

func (b *backend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &session{server: b.server}, nil
}

type session struct {
	server        *Server
	authenticated bool
	envelope      Envelope
}

func (s *session) AuthMechanisms() []string {
	return []string{sasl.Plain}
}

func (s *session) Auth(mech string) (sasl.Server, error) {
	if mech != sasl.Plain {
		return nil, errors.New("unsupported authentication mechanism")
	}
	return sasl.NewPlainServer(func(identity, username, password string) error {
		if username != Username || password != Password {
			return errors.New("invalid credentials")
		}
		s.authenticated = true
		return nil
	}), nil
}

func (s *session) Mail(from string, _ *smtp.MailOptions) error {
	if !s.authenticated {
		return smtp.ErrAuthRequired
	}
	s.envelope = Envelope{From: from}
	return nil
}

func (s *session) Rcpt(to string, _ *smtp.RcptOptions) error {
	if !s.authenticated {
		return smtp.ErrAuthRequired
	}
	s.envelope.Recipients = append(s.envelope.Recipients, to)
	return nil
}

func (s *session) Data(r io.Reader) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	if s.server.rejectData() {
		return &smtp.SMTPError{Code: 554, EnhancedCode: smtp.EnhancedCode{5, 7, 1}, Message: "message rejected"}
	}

	s.envelope.Data = data
	s.server.record(s.envelope)
	return nil
}

func (s *session) Reset() {
	s.envelope = Envelope{}
}

func (s *session) Logout() error {
	return nil
}
