// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/folder.go -package=mocks . FolderLineParser,FolderResolver
package domain

type FolderType string

const (
	FolderInbox   = FolderType("inbox")
	FolderSent    = FolderType("sent")
	FolderDrafts  = FolderType("drafts")
	FolderSpam    = FolderType("spam")
	FolderTrash   = FolderType("trash")
	FolderArchive = FolderType("archive")
	FolderCustom  = FolderType("custom")
)

// Folder describes one mailbox as presented to callers. Name is the protocol-native name.
type Folder struct {
	Name         string     `json:"name"`
	DisplayName  string     `json:"display_name"`
	Type         FolderType `json:"type"`
	Attributes   []string   `json:"attributes"`
	IsHidden     bool       `json:"is_hidden"`
	IsSelectable bool       `json:"is_selectable"`
	Delimiter    string     `json:"delimiter"`
}

type FolderStatus struct {
	Name        string
	Messages    uint32
	UidValidity uint32
	ReadOnly    bool
}

type FolderLineParser interface {
	ParseLine(line string) *Folder
}

// FolderResolver maps canonical folder names to the spelling the server actually uses.
type FolderResolver interface {
	Resolve(name string) string
	ProbeFolders() []string
}
