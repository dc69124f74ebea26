// SPDX-License-Identifier: GPL-3.0-or-later
package mailbox

import (
	"fmt"

	"github.com/CrawX/go-nimbusrelay/domain"

	"github.com/sirupsen/logrus"
)

// MoveEmail copies the message to the destination, flags it deleted and expunges the
// source folder. Copy and flag must succeed. A failed expunge is only reported in the
// result, the message already exists in the destination and a later expunge removes
// the flagged source copy.
func (m *Mailbox) MoveEmail(id, from, to string) (*domain.MoveResult, error) {
	uid, err := ParseId(id)
	if err != nil {
		return nil, err
	}

	err = m.session.EnsureAlive()
	if err != nil {
		return nil, fmt.Errorf("could not move email: %w", err)
	}

	return m.move(uid, m.resolver.Resolve(from), m.resolver.Resolve(to))
}

func (m *Mailbox) move(uid uint32, from, to string) (*domain.MoveResult, error) {
	baseLogger := m.l.WithFields(logrus.Fields{"uid": uid, "from": from, "to": to})

	_, err := m.session.Select(from, false)
	if err != nil {
		return nil, fmt.Errorf("could not select source folder %s: %w", from, err)
	}

	if m.configuration.NativeMove && m.session.SupportsMove() {
		err = m.session.Move(uid, to)
		if err != nil {
			return nil, err
		}
		baseLogger.Debug("Moved email with MOVE")
		return &domain.MoveResult{Native: true}, nil
	}

	err = m.session.Copy(uid, to)
	if err != nil {
		return nil, err
	}

	result := &domain.MoveResult{}
	// checked before flagging, our own flag would make the folder look dirty
	notReady, err := m.session.ExpungeReady()
	if err != nil {
		result.ExpungeWarning = fmt.Errorf("could not check source folder before expunge: %w", err)
	} else if notReady != nil {
		result.ExpungeWarning = notReady
	}
	if result.ExpungeWarning != nil {
		baseLogger.WithError(result.ExpungeWarning).Warn("Expunge may remove other messages flagged as deleted")
	}

	err = m.session.FlagDeleted(uid)
	if err != nil {
		return nil, fmt.Errorf("copied but could not flag source: %w", err)
	}

	err = m.session.Expunge(uid)
	if err != nil {
		baseLogger.WithError(err).Warn("Email copied and flagged but expunge failed, cleanup deferred to the next expunge")
		result.ExpungeError = err
	} else {
		baseLogger.Debug("Moved email with copy&expunge")
	}

	return result, nil
}

// MoveEmailsByCriteria moves every message of from matching criteria to the destination.
// Single failures are counted and do not stop the remaining moves.
func (m *Mailbox) MoveEmailsByCriteria(from, to, criteria string) (*domain.BulkMoveResult, error) {
	err := m.session.EnsureAlive()
	if err != nil {
		return nil, fmt.Errorf("could not move emails: %w", err)
	}

	source := m.resolver.Resolve(from)
	dest := m.resolver.Resolve(to)

	_, err = m.session.Select(source, false)
	if err != nil {
		return nil, fmt.Errorf("could not select source folder %s: %w", source, err)
	}

	uids, err := m.session.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search folder %s: %w", source, err)
	}

	result := &domain.BulkMoveResult{TotalFound: len(uids)}
	for _, uid := range uids {
		_, err := m.move(uid, source, dest)
		if err != nil {
			m.l.WithFields(logrus.Fields{"uid": uid, "error": err}).Warn("Could not move email")
			result.Errors++
			continue
		}
		result.Moved++
	}

	m.l.WithFields(logrus.Fields{
		"from":   source,
		"to":     dest,
		"moved":  result.Moved,
		"errors": result.Errors,
	}).Info("Moved emails by criteria")

	return result, nil
}
