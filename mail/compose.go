// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/CrawX/go-nimbusrelay/domain"

	"github.com/emersion/go-message/mail"
)

// Compose renders a draft as multipart/alternative with a single text/plain part. When
// original is set the draft becomes a reply that quotes it. Bcc never appears in the
// headers.
func Compose(draft *domain.Draft, from string, original *domain.Message, now time.Time) ([]byte, error) {
	var h mail.Header
	h.SetDate(now)
	if err := h.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("could not generate message id: %w", err)
	}

	fromAddress, err := mail.ParseAddress(from)
	if err != nil {
		fromAddress = &mail.Address{Address: strings.TrimSpace(from)}
	}
	h.SetAddressList("From", []*mail.Address{fromAddress})

	to, err := ParseAddresses(draft.To)
	if err != nil {
		return nil, err
	}
	if len(to) > 0 {
		h.SetAddressList("To", to)
	}

	cc, err := ParseAddresses(draft.Cc)
	if err != nil {
		return nil, err
	}
	if len(cc) > 0 {
		h.SetAddressList("Cc", cc)
	}

	subject := draft.Subject
	body := draft.Body
	if original != nil {
		if strings.TrimSpace(subject) == "" {
			subject = ReplySubject(original.Subject)
		}
		if original.MessageId != "" {
			h.SetMsgIDList("In-Reply-To", []string{original.MessageId})
			h.SetMsgIDList("References", []string{original.MessageId})
		}
		body = strings.TrimRight(body, "\r\n") + "\n\n" + Quote(original)
	}
	if strings.TrimSpace(subject) == "" {
		subject = domain.NoSubject
	}
	h.SetSubject(subject)

	var buf bytes.Buffer
	tw, err := mail.CreateInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("could not create mail writer: %w", err)
	}

	var ph mail.InlineHeader
	ph.Set("Content-Type", "text/plain; charset=utf-8")
	pw, err := tw.CreatePart(ph)
	if err != nil {
		return nil, fmt.Errorf("could not create plain text part: %w", err)
	}
	if _, err := io.WriteString(pw, crlf(body)); err != nil {
		return nil, fmt.Errorf("could not write plain text: %w", err)
	}
	if err := pw.Close(); err != nil {
		return nil, fmt.Errorf("could not close plain text part: %w", err)
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("could not close mail writer: %w", err)
	}

	return buf.Bytes(), nil
}

func ReplySubject(subject string) string {
	if subject == domain.NoSubject {
		subject = ""
	}
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return strings.TrimSpace("Re: " + subject)
}

// Quote renders the attribution line followed by the original text, each line prefixed with "> ".
func Quote(original *domain.Message) string {
	text := original.TextBody
	if text == "" {
		text = htmlTag.ReplaceAllString(original.HtmlBody, "")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "On %s, %s wrote:\n", original.Date, original.From)
	for _, line := range strings.Split(strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), "\n") {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// ParseAddresses parses a comma separated address field. An empty field yields no addresses.
func ParseAddresses(field string) ([]*mail.Address, error) {
	if strings.TrimSpace(field) == "" {
		return nil, nil
	}

	addresses, err := mail.ParseAddressList(field)
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse addresses %q: %v", domain.ErrInvalidDraft, field, err)
	}
	return addresses, nil
}

// Recipients returns the unique bare addresses of To, Cc and Bcc in that order.
func Recipients(draft *domain.Draft) ([]string, error) {
	seen := map[string]bool{}
	result := []string{}
	for _, field := range []string{draft.To, draft.Cc, draft.Bcc} {
		addresses, err := ParseAddresses(field)
		if err != nil {
			return nil, err
		}
		for _, a := range addresses {
			bare := strings.ToLower(a.Address)
			if bare != "" && !seen[bare] {
				seen[bare] = true
				result = append(result, a.Address)
			}
		}
	}
	return result, nil
}

func crlf(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
}
