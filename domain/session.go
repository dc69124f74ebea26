// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/session.go -package=mocks . MailSession
package domain

import "time"

type SessionState int

const (
	Disconnected = SessionState(0)
	Connecting   = SessionState(1)
	Connected    = SessionState(2)
)

func (s SessionState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	}
	return "disconnected"
}

// MailSession is the stateful mailbox protocol session. Commands operate on the folder
// chosen by the last Select and are not safe for concurrent use.
type MailSession interface {
	EnsureAlive() error
	IsConnected() bool

	Select(folder string, readOnly bool) (*FolderStatus, error)
	Search(criteria string) ([]uint32, error)
	FetchRaw(uid uint32) ([]byte, error)
	Copy(uid uint32, dest string) error
	FlagDeleted(uid uint32) error
	ExpungeReady() (error, error)
	Expunge(uid uint32) error
	SupportsMove() bool
	Move(uid uint32, dest string) error
	Append(folder string, flags []string, date time.Time, rawMail []byte) error
	ListRaw() ([]string, error)
}
