// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"mime"

	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/textproto"
)

var headerDecoder = &mime.WordDecoder{
	CharsetReader: charset.Reader,
}

// MailHeaderInfos returns the decoded subject and a hash identifying the mail across folders
// and uid changes, built from the Message-Id and Received headers.
func MailHeaderInfos(rawMail []byte) (string, string, error) {
	header, err := textproto.ReadHeader(bufio.NewReader(bytes.NewReader(rawMail)))
	if err != nil {
		return "", "", fmt.Errorf("could not parse mail: %w", err)
	}

	messageIdHeader := header.Values("Message-Id")
	receivedHeader := header.Values("Received")
	if len(receivedHeader) == 0 && len(messageIdHeader) == 0 {
		return "", "", fmt.Errorf("Received and Message-Id header header not found")
	}

	subject := decodeHeader(header.Get("Subject"))

	mailIdHash, err := hash([][]string{messageIdHeader, receivedHeader})
	if err != nil {
		return "", "", fmt.Errorf("could not hash headers: %w", err)
	}

	return subject, mailIdHash, nil
}

// decodeHeader decodes RFC 2047 encoded-words and returns the raw value if that fails.
func decodeHeader(value string) string {
	decoded, err := headerDecoder.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}

func ShortSubject(subject string) string {
	runes := []rune(subject)
	if len(runes) > 30 {
		subject = string(runes[:30]) + "..."
	}
	return subject
}

func hash(input [][]string) (string, error) {
	sha := sha256.New()
	for _, i := range input {
		for _, ii := range i {
			_, err := sha.Write([]byte(ii))
			if err != nil {
				return "", fmt.Errorf("could not hash: %w", err)
			}
		}
	}

	return fmt.Sprintf("%x", sha.Sum(nil)), nil
}
