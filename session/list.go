// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"fmt"
	"strings"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/commands"
	"github.com/emersion/go-imap/responses"
	"github.com/emersion/go-imap/utf7"
)

// ListRaw issues LIST "" "*" and returns every untagged response re-serialized as
// `(attributes) "delimiter" "name"` with the name decoded from modified UTF-7. Dialect
// quirks are left to the folder line parser.
func (s *Session) ListRaw() ([]string, error) {
	c, err := s.connected()
	if err != nil {
		return nil, err
	}

	handler := &listHandler{}
	status, err := c.Execute(&commands.List{Reference: "", Mailbox: "*"}, handler)
	if err != nil {
		return nil, fmt.Errorf("could not list folders: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("could not list folders: %w", err)
	}

	return handler.lines, nil
}

type listHandler struct {
	lines []string
}

func (h *listHandler) Handle(resp imap.Resp) error {
	name, fields, ok := imap.ParseNamedResp(resp)
	if !ok || name != "LIST" {
		return responses.ErrUnhandled
	}

	line, err := listLine(fields)
	if err != nil {
		return err
	}
	h.lines = append(h.lines, line)

	return nil
}

func listLine(fields []interface{}) (string, error) {
	if len(fields) < 3 {
		return "", fmt.Errorf("LIST response has %d fields, expected 3", len(fields))
	}

	attributes, err := imap.ParseStringList(fields[0])
	if err != nil {
		return "", fmt.Errorf("could not parse LIST attributes: %w", err)
	}

	delimiter := "NIL"
	if fields[1] != nil {
		d, err := imap.ParseString(fields[1])
		if err != nil {
			return "", fmt.Errorf("could not parse LIST delimiter: %w", err)
		}
		delimiter = quote(d)
	}

	name, err := imap.ParseString(fields[2])
	if err != nil {
		return "", fmt.Errorf("could not parse LIST name: %w", err)
	}
	if decoded, err := utf7.Encoding.NewDecoder().String(name); err == nil {
		name = decoded
	}

	return fmt.Sprintf("(%s) %s %s", strings.Join(attributes, " "), delimiter, quote(name)), nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders s as an IMAP quoted string.
func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}
