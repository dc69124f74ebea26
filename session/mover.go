// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"github.com/CrawX/go-nimbusrelay/domain"

	"github.com/emersion/go-imap"
)

type moveMover struct {
	client moveClient
}

func (m *moveMover) move(uid uint32, folder string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	return m.client.UidMove(seqset, folder)
}

func (m *moveMover) supported() bool {
	return true
}

type unsupportedMover struct{}

func (unsupportedMover) move(uint32, string) error {
	return domain.ErrMoveUnsupported
}

func (unsupportedMover) supported() bool {
	return false
}
