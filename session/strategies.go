// SPDX-License-Identifier: GPL-3.0-or-later
package session

import "github.com/emersion/go-imap"

//go:generate mockgen -destination=strategies_mocks_test.go -package=session -source strategies.go

// Consolidated file for the expunge and move strategies plus the client capabilities they
// need, so gomock can generate mocks in source mode for the unexported interfaces.

type expunger interface {
	expunge(uid uint32) error
	expungeReady() (error, error)
}

type mover interface {
	move(uid uint32, folder string) error
	supported() bool
}

type uidExpungeClient interface {
	UidExpunge(seqSet *imap.SeqSet, ch chan uint32) error
}

type expungeClient interface {
	Expunge(ch chan uint32) error
	UidSearch(criteria *imap.SearchCriteria) (uids []uint32, err error)
}

type moveClient interface {
	UidMove(seqset *imap.SeqSet, dest string) error
}
