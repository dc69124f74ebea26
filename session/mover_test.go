// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"errors"
	"testing"

	"github.com/CrawX/go-nimbusrelay/domain"

	"github.com/emersion/go-imap"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestMoveMover_Move(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := NewMockmoveClient(ctrl)
	mover := moveMover{conn}

	seqset := &imap.SeqSet{}
	seqset.AddNum(u32(3))
	conn.EXPECT().
		UidMove(gomock.Eq(seqset), gomock.Eq("dest")).
		Return(nil)

	assert.True(t, mover.supported())
	err := mover.move(u32(3), "dest")
	assert.NoError(t, err)
}

func TestUnsupportedMover_Move(t *testing.T) {
	mover := unsupportedMover{}

	assert.False(t, mover.supported())
	assert.True(t, errors.Is(mover.move(u32(3), "dest"), domain.ErrMoveUnsupported))
}

func TestSession_StrategiesNeedConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockmover(ctrl)
	e := NewMockexpunger(ctrl)
	s := &Session{mover: m, expunger: e}

	// without a live connection the strategies are never reached
	assert.Equal(t, domain.ErrNotConnected, s.Move(u32(1), "dest"))
	assert.Equal(t, domain.ErrNotConnected, s.Expunge(u32(1)))
	assert.False(t, s.SupportsMove())
}
