// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"regexp"
	"strings"
	"unicode"

	"github.com/CrawX/go-nimbusrelay/domain"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	textunicode "golang.org/x/text/encoding/unicode"
)

const PreviewLength = 150

var htmlTag = regexp.MustCompile(`<[^<]+?>`)

// Parser decodes raw RFC 822 messages. It keeps no state, every call re-parses.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse only fails when the header block cannot be read. Broken parts and unknown
// charsets degrade to best-effort text.
func (p *Parser) Parse(id string, rawMail []byte) (*domain.Message, error) {
	entity, err := message.Read(bytes.NewReader(rawMail))
	if err != nil && !message.IsUnknownCharset(err) && !message.IsUnknownEncoding(err) {
		return nil, fmt.Errorf("could not read mail: %w", err)
	}

	header := mail.Header{Header: entity.Header}
	msg := &domain.Message{
		Id:          id,
		From:        decodeHeader(header.Get("From")),
		To:          decodeHeader(header.Get("To")),
		Cc:          decodeHeader(header.Get("Cc")),
		Subject:     strings.TrimSpace(decodeHeader(header.Get("Subject"))),
		Date:        decodeHeader(header.Get("Date")),
		ContentType: decodeHeader(header.Get("Content-Type")),
		Raw:         rawMail,
	}
	if msg.Subject == "" {
		msg.Subject = domain.NoSubject
	}
	if t, err := header.Date(); err == nil {
		msg.Timestamp = t
	}
	if messageId, err := header.MessageID(); err == nil {
		msg.MessageId = messageId
	}

	// Walk stops at the first hard error. Whatever was collected up to then is kept.
	_ = entity.Walk(func(path []int, part *message.Entity, err error) error {
		if part == nil {
			return nil
		}
		if err != nil && !message.IsUnknownCharset(err) && !message.IsUnknownEncoding(err) {
			return nil
		}

		if disposition, _, _ := part.Header.ContentDisposition(); disposition == "attachment" {
			return nil
		}

		switch mediaType(part) {
		case "text/plain":
			if !msg.HasText {
				msg.TextBody = readText(part)
				msg.HasText = true
			}
		case "text/html":
			if !msg.HasHtml {
				msg.HtmlBody = readText(part)
				msg.HasHtml = true
			}
		}

		return nil
	})

	msg.Body = msg.TextBody
	if msg.Body == "" {
		msg.Body = msg.HtmlBody
	}
	msg.Preview = Preview(msg.TextBody, msg.HtmlBody)

	return msg, nil
}

func mediaType(part *message.Entity) string {
	raw := part.Header.Get("Content-Type")
	if strings.TrimSpace(raw) == "" {
		return "text/plain"
	}

	mt, _, err := part.Header.ContentType()
	if err != nil {
		mt = strings.TrimSpace(strings.SplitN(raw, ";", 2)[0])
	}
	return strings.ToLower(mt)
}

func readText(part *message.Entity) string {
	// Partial bodies are still useful, the error is dropped on purpose.
	body, _ := ioutil.ReadAll(part.Body)
	return validUTF8(body)
}

// validUTF8 replaces each maximal invalid subsequence with U+FFFD, a stray byte is
// replaced on its own.
func validUTF8(body []byte) string {
	valid, err := textunicode.UTF8.NewDecoder().Bytes(body)
	if err != nil {
		return strings.ToValidUTF8(string(body), "\uFFFD")
	}
	return string(valid)
}

// Preview prefers the plain text body and strips tags from an HTML-only body. Whitespace
// and control character runs become a single space.
func Preview(textBody, htmlBody string) string {
	source := textBody
	if source == "" {
		source = htmlTag.ReplaceAllString(htmlBody, "")
	}

	var b strings.Builder
	space := false
	for _, r := range source {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteRune(' ')
		}
		space = false
		b.WriteRune(r)
	}

	preview := []rune(b.String())
	if len(preview) > PreviewLength {
		return string(preview[:PreviewLength]) + "..."
	}
	return string(preview)
}
