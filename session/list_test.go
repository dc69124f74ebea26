// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"testing"

	"github.com/CrawX/go-nimbusrelay/folder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, `"INBOX"`, quote("INBOX"))
	assert.Equal(t, `"Say \"hi\""`, quote(`Say "hi"`))
	assert.Equal(t, `"a\\b"`, quote(`a\b`))
}

func TestListLine(t *testing.T) {
	tests := []struct {
		name      string
		fields    []interface{}
		expected  string
		folder    string
		delimiter string
	}{
		{"plain", []interface{}{[]interface{}{`\HasNoChildren`}, ".", "INBOX.Sent"}, `(\HasNoChildren) "." "INBOX.Sent"`, "INBOX.Sent", "."},
		{"nildelimiter", []interface{}{[]interface{}{}, nil, "Public"}, `() NIL "Public"`, "Public", "/"},
		{"quoteinname", []interface{}{[]interface{}{`\HasNoChildren`}, "/", `Say "hi"`}, `(\HasNoChildren) "/" "Say \"hi\""`, `Say "hi"`, "/"},
		{"backslashdelimiter", []interface{}{[]interface{}{}, `\`, `Projects\2023`}, `() "\\" "Projects\\2023"`, `Projects\2023`, `\`},
		{"utf7", []interface{}{[]interface{}{}, "/", "Entw&APw-rfe"}, `() "/" "Entwürfe"`, "Entwürfe", "/"},
	}
	parser := folder.NewParser(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line, err := listLine(tc.fields)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, line)

			f := parser.ParseLine(line)
			require.NotNil(t, f)
			assert.Equal(t, tc.folder, f.Name)
			assert.Equal(t, tc.delimiter, f.Delimiter)
		})
	}
}

func TestListLine_TooFewFields(t *testing.T) {
	_, err := listLine([]interface{}{[]interface{}{}, "/"})
	assert.EqualError(t, err, "LIST response has 2 fields, expected 3")
}
