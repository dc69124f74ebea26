// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/emersion/go-message"
	"github.com/stretchr/testify/assert"
)

var composeTime = time.Date(2023, 2, 1, 9, 0, 0, 0, time.UTC)

func TestCompose(t *testing.T) {
	draft := &domain.Draft{
		To:      "Alice <alice@example.org>",
		Cc:      "bob@example.org",
		Bcc:     "secret@example.org",
		Subject: "Quarterly numbers",
		Body:    "Hi Alice,\nsee attached.",
	}

	raw, err := Compose(draft, "me@example.org", nil, composeTime)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "secret@example.org")

	entity, err := message.Read(bytes.NewReader(raw))
	assert.NoError(t, err)
	mediaType, _, err := entity.Header.ContentType()
	assert.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)
	assert.Empty(t, entity.Header.Get("Bcc"))
	assert.Empty(t, entity.Header.Get("In-Reply-To"))

	msg, err := NewParser().Parse("1", raw)
	assert.NoError(t, err)
	assert.Equal(t, "Quarterly numbers", msg.Subject)
	assert.Equal(t, "<me@example.org>", msg.From)
	assert.Contains(t, msg.To, "alice@example.org")
	assert.Contains(t, msg.Cc, "bob@example.org")
	assert.True(t, msg.Timestamp.Equal(composeTime))
	assert.NotEmpty(t, msg.MessageId)
	assert.Equal(t, "Hi Alice,\r\nsee attached.", msg.TextBody)
}

func TestCompose_Reply(t *testing.T) {
	original := parseTestdata(t, "multipart.msg")

	raw, err := Compose(&domain.Draft{To: "juergen@example.org", Body: "Danke!"}, "Alice <alice@example.org>", original, composeTime)
	assert.NoError(t, err)

	entity, err := message.Read(bytes.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, "<multipart-1@example.org>", entity.Header.Get("In-Reply-To"))
	assert.Equal(t, "<multipart-1@example.org>", entity.Header.Get("References"))

	msg, err := NewParser().Parse("2", raw)
	assert.NoError(t, err)
	assert.Equal(t, "Re: Grüße aus Berlin", msg.Subject)
	lines := strings.Split(msg.TextBody, "\r\n")
	assert.Equal(t, []string{
		"Danke!",
		"",
		"On Mon, 02 Jan 2023 15:04:05 +0100, Jürgen Müller <juergen@example.org> wrote:",
		"> Hello from the plain part.",
		"> Second line.",
	}, lines[:5])
}

func TestCompose_EmptySubject(t *testing.T) {
	for _, subject := range []string{"", "   "} {
		raw, err := Compose(&domain.Draft{To: "alice@example.org", Subject: subject, Body: "hi"}, "me@example.org", nil, composeTime)
		assert.NoError(t, err)

		entity, err := message.Read(bytes.NewReader(raw))
		assert.NoError(t, err)
		assert.Equal(t, domain.NoSubject, entity.Header.Get("Subject"))
	}
}

func TestCompose_InvalidAddress(t *testing.T) {
	_, err := Compose(&domain.Draft{To: "not an address"}, "me@example.org", nil, composeTime)
	assert.True(t, errors.Is(err, domain.ErrInvalidDraft))
}

func TestReplySubject(t *testing.T) {
	assert.Equal(t, "Re: Hello", ReplySubject("Hello"))
	assert.Equal(t, "RE: Hello", ReplySubject("RE: Hello"))
	assert.Equal(t, "Re:", ReplySubject(domain.NoSubject))
}

func TestQuote_HtmlOnly(t *testing.T) {
	quoted := Quote(&domain.Message{From: "x@example.org", Date: "today", HtmlBody: "<p>one</p>\n<p>two</p>"})
	assert.Equal(t, "On today, x@example.org wrote:\n> one\n> two\n", quoted)
}

func TestRecipients(t *testing.T) {
	recipients, err := Recipients(&domain.Draft{
		To:  "Alice <alice@example.org>, bob@example.org",
		Cc:  "Bob@example.org",
		Bcc: "secret@example.org",
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"alice@example.org", "bob@example.org", "secret@example.org"}, recipients)

	recipients, err = Recipients(&domain.Draft{})
	assert.NoError(t, err)
	assert.Empty(t, recipients)

	_, err = Recipients(&domain.Draft{Bcc: "broken <"})
	assert.True(t, errors.Is(err, domain.ErrInvalidDraft))
}
