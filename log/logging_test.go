// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"nonsense", logrus.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, getLevel(tc.input))
		})
	}
}

func TestLogger(t *testing.T) {
	InitLogging("error")
	for _, prefix := range prefixes {
		assert.Equal(t, logrus.ErrorLevel, Logger(prefix).Level)
	}

	SetLogLevel("debug")
	assert.Equal(t, logrus.DebugLevel, Logger(LOG_SESSION).Level)

	assert.Panics(t, func() { Logger("XX") })
}

func TestPrefixLogger_Format(t *testing.T) {
	formatter := NewPrefixLogger(LOG_MAILBOX)
	entry := logrus.NewEntry(logrus.New())
	entry.Message = "hello"

	out, err := formatter.Format(entry)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "MB:\t")
	assert.Contains(t, string(out), "hello")
}
