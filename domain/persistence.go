// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Persistence
import "time"

type KnownFolder struct {
	Name      string
	Delimiter string
	LastSeen  time.Time
}

type MailClass int

const (
	Classified  = MailClass(0)
	LearnedSpam = MailClass(10)
	LearnedHam  = MailClass(11)
)

type SavedClassification struct {
	Id             int64
	Class          MailClass
	Uid            uint32
	MailIdHash     string
	FolderName     string
	Subject        string
	Classification string
	Confidence     float64
	Reason         string
}

type SaveClassification struct {
	Class          MailClass
	Uid            uint32
	MailIdHash     string
	FolderName     string
	Subject        string
	Classification string
	Confidence     float64
	Reason         string
}

type Persistence interface {
	Close() error
	AllFolders() ([]*KnownFolder, error)
	SaveFolder(name string, delimiter string) error
	GetClassificationsInFolder(class MailClass, folder string) ([]*SavedClassification, error)
	HashesExist(class MailClass, mailIdHashes []string) (map[string]bool, error)
	SaveClassifications(mails []SaveClassification) error
}
