// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"fmt"

	"github.com/emersion/go-imap"
)

// ItemsWithDeletedFlagPresent is reported by ExpungeReady when a plain EXPUNGE would also
// remove messages that were flagged by someone else.
var ItemsWithDeletedFlagPresent = fmt.Errorf("folder has previous items with delete flag set")

type uidPlusExpunger struct {
	client uidExpungeClient
}

func (u *uidPlusExpunger) expunge(uid uint32) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)

	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- u.client.UidExpunge(seqset, out)
	}()

	expunged := []uint32{}
	for seqNum := range out {
		expunged = append(expunged, seqNum)
	}

	err := <-done
	if err != nil {
		return fmt.Errorf("could not expunge mail: %w", err)
	}

	if len(expunged) > 1 {
		return fmt.Errorf("unexpected number of expunges, expected at most 1 got %d", len(expunged))
	}

	return nil
}

func (u *uidPlusExpunger) expungeReady() (error, error) {
	// UIDPLUS only expunges the given uid and is therefore always ready
	return nil, nil
}

type compatibilityExpunger struct {
	client expungeClient
}

// expunge removes every message flagged as deleted in the selected folder, the uid only
// documents the intent.
func (c *compatibilityExpunger) expunge(uid uint32) error {
	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- c.client.Expunge(out)
	}()

	expunged := 0
	for range out {
		expunged++
	}

	err := <-done
	if err != nil {
		return fmt.Errorf("could not expunge mails: %w", err)
	}

	if expunged == 0 {
		return fmt.Errorf("expunge did not remove uid %d", uid)
	}

	return nil
}

func (c *compatibilityExpunger) expungeReady() (error, error) {
	// A plain EXPUNGE deletes everything that has the flag set, so the folder is only
	// ready when nothing is flagged yet.
	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}
	ids, err := c.client.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could search for deleted in folder: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}
	return ItemsWithDeletedFlagPresent, nil
}
