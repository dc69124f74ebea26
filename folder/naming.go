// SPDX-License-Identifier: GPL-3.0-or-later
package folder

import (
	"sort"
	"strings"

	"github.com/CrawX/go-nimbusrelay/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var aliases = map[string]string{
	"inbox":            "Inbox",
	"sent":             "Sent",
	"sent items":       "Sent",
	"sent messages":    "Sent",
	"drafts":           "Drafts",
	"draft":            "Drafts",
	"spam":             "Spam",
	"junk":             "Spam",
	"junk e-mail":      "Spam",
	"junk email":       "Spam",
	"trash":            "Trash",
	"deleted":          "Trash",
	"deleted items":    "Trash",
	"deleted messages": "Trash",
}

// DisplayName derives a human label from the last segment of a folder name.
func DisplayName(name string) string {
	segment := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		segment = name[i+1:]
	} else if i := strings.LastIndex(name, "/"); i >= 0 {
		segment = name[i+1:]
	}

	if alias, ok := aliases[strings.ToLower(segment)]; ok {
		return alias
	}

	segment = strings.NewReplacer("_", " ", "-", " ").Replace(segment)
	if alias, ok := aliases[strings.ToLower(segment)]; ok {
		return alias
	}

	return cases.Title(language.Und).String(segment)
}

// Classify derives the folder role from keywords in the name. The most specific
// keyword wins, so INBOX.spam is spam and not inbox.
func Classify(name string) domain.FolderType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "spam"), strings.Contains(lower, "junk"):
		return domain.FolderSpam
	case strings.Contains(lower, "sent"):
		return domain.FolderSent
	case strings.Contains(lower, "draft"):
		return domain.FolderDrafts
	case strings.Contains(lower, "trash"), strings.Contains(lower, "deleted"):
		return domain.FolderTrash
	case strings.Contains(lower, "archive"):
		return domain.FolderArchive
	case strings.HasSuffix(lower, "inbox"):
		return domain.FolderInbox
	}

	return domain.FolderCustom
}

func rank(t domain.FolderType) int {
	switch t {
	case domain.FolderInbox:
		return 0
	case domain.FolderSent, domain.FolderDrafts, domain.FolderTrash:
		return 1
	}
	return 2
}

// Sort orders folders inbox first, then sent, drafts and trash, then everything else,
// alphabetically by display name within each group.
func Sort(folders []*domain.Folder) {
	sort.SliceStable(folders, func(i, j int) bool {
		ri, rj := rank(folders[i].Type), rank(folders[j].Type)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(folders[i].DisplayName) < strings.ToLower(folders[j].DisplayName)
	})
}

// Delimiter guesses the hierarchy delimiter of a folder name without server help.
func Delimiter(name string) string {
	if strings.Contains(name, ".") {
		return "."
	}
	return DefaultDelimiter
}
