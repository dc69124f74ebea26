// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/CrawX/go-nimbusrelay/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPersistence(t *testing.T) *Persistence {
	p, err := NewPersistence(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestPersistence_Folders(t *testing.T) {
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	defer func() { timeNow = time.Now }()

	p := newTestPersistence(t)

	folders, err := p.AllFolders()
	require.NoError(t, err)
	assert.Empty(t, folders)

	timeNow = func() time.Time { return first }
	require.NoError(t, p.SaveFolder("INBOX", "/"))
	require.NoError(t, p.SaveFolder("INBOX.Sent", "."))

	timeNow = func() time.Time { return second }
	require.NoError(t, p.SaveFolder("INBOX", "/"))

	folders, err = p.AllFolders()
	require.NoError(t, err)
	require.Len(t, folders, 2)

	assert.Equal(t, "INBOX", folders[0].Name)
	assert.Equal(t, "/", folders[0].Delimiter)
	assert.True(t, second.Equal(folders[0].LastSeen), "sighting should refresh last seen")

	assert.Equal(t, "INBOX.Sent", folders[1].Name)
	assert.Equal(t, ".", folders[1].Delimiter)
	assert.True(t, first.Equal(folders[1].LastSeen))
}

func TestPersistence_Classifications(t *testing.T) {
	p := newTestPersistence(t)

	err := p.SaveClassifications([]domain.SaveClassification{
		{
			Class:          domain.Classified,
			Uid:            3,
			MailIdHash:     "hash-a",
			FolderName:     "INBOX",
			Subject:        "Cheap pills",
			Classification: domain.ClassSpam,
			Confidence:     0.95,
			Reason:         "rspamd reject",
		},
		{
			Class:          domain.Classified,
			Uid:            4,
			MailIdHash:     "hash-b",
			FolderName:     "INBOX",
			Subject:        "Lunch?",
			Classification: domain.ClassValid,
			Confidence:     0.8,
			Reason:         "rspamd no action",
		},
		{
			Class:          domain.LearnedSpam,
			Uid:            9,
			MailIdHash:     "hash-c",
			FolderName:     "Junk",
			Subject:        "Winner",
			Classification: domain.ClassSpam,
			Confidence:     1,
		},
	})
	require.NoError(t, err)

	saved, err := p.GetClassificationsInFolder(domain.Classified, "INBOX")
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, u32(3), saved[0].Uid)
	assert.Equal(t, "hash-a", saved[0].MailIdHash)
	assert.Equal(t, "Cheap pills", saved[0].Subject)
	assert.Equal(t, domain.ClassSpam, saved[0].Classification)
	assert.InDelta(t, 0.95, saved[0].Confidence, 0.0001)
	assert.Equal(t, "rspamd reject", saved[0].Reason)
	assert.Equal(t, domain.Classified, saved[0].Class)
	assert.NotZero(t, saved[0].Id)
	assert.Equal(t, u32(4), saved[1].Uid)

	saved, err = p.GetClassificationsInFolder(domain.Classified, "Junk")
	require.NoError(t, err)
	assert.Empty(t, saved)

	tests := []struct {
		name     string
		class    domain.MailClass
		hashes   []string
		expected map[string]bool
	}{
		{"classified", domain.Classified, []string{"hash-a", "hash-c", "hash-x"}, map[string]bool{"hash-a": true}},
		{"learned", domain.LearnedSpam, []string{"hash-a", "hash-c"}, map[string]bool{"hash-c": true}},
		{"none", domain.LearnedHam, []string{"hash-a"}, map[string]bool{}},
		{"empty", domain.Classified, []string{}, map[string]bool{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			exist, err := p.HashesExist(test.class, test.hashes)
			require.NoError(t, err)
			assert.Equal(t, test.expected, exist)
		})
	}
}

func TestPersistence_ReopenFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "persistence.db")

	p, err := NewPersistence(file)
	require.NoError(t, err)
	require.NoError(t, p.SaveFolder("Archive", "/"))
	require.NoError(t, p.Close())

	p, err = NewPersistence(file)
	require.NoError(t, err)
	defer p.Close()

	folders, err := p.AllFolders()
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Archive", folders[0].Name)
}

func u32(i uint32) uint32 {
	return i
}
