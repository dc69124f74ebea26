// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"bufio"
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/CrawX/go-nimbusrelay/domain"

	"github.com/emersion/go-imap"
)

func (s *Session) Select(folder string, readOnly bool) (*domain.FolderStatus, error) {
	c, err := s.connected()
	if err != nil {
		return nil, err
	}

	m, err := c.Select(folder, readOnly)
	if err != nil {
		return nil, fmt.Errorf("could not select folder %s: %w", folder, err)
	}

	return &domain.FolderStatus{
		Name:        folder,
		Messages:    m.Messages,
		UidValidity: m.UidValidity,
		ReadOnly:    m.ReadOnly,
	}, nil
}

// Search runs UID SEARCH in the selected folder. criteria uses the protocol's search
// syntax, empty or ALL matches everything.
func (s *Session) Search(criteria string) ([]uint32, error) {
	c, err := s.connected()
	if err != nil {
		return nil, err
	}

	searchCriteria, err := ParseCriteria(criteria)
	if err != nil {
		return nil, err
	}

	ids, err := c.UidSearch(searchCriteria)
	if err != nil {
		return nil, fmt.Errorf("could not search folder: %w", err)
	}

	return ids, nil
}

func ParseCriteria(criteria string) (*imap.SearchCriteria, error) {
	searchCriteria := imap.NewSearchCriteria()
	criteria = strings.TrimSpace(criteria)
	if criteria == "" || strings.EqualFold(criteria, "ALL") {
		return searchCriteria, nil
	}

	r := imap.NewReader(bufio.NewReader(strings.NewReader(criteria + "\r\n")))
	fields, err := r.ReadLine()
	if err != nil {
		return nil, fmt.Errorf("could not read search criteria %q: %w", criteria, err)
	}

	err = searchCriteria.ParseWithCharset(fields, nil)
	if err != nil {
		return nil, fmt.Errorf("could not parse search criteria %q: %w", criteria, err)
	}

	return searchCriteria, nil
}

// FetchRaw returns the complete message without setting \Seen. A uid that does not exist
// in the selected folder yields nil without error.
func (s *Session) FetchRaw(uid uint32) ([]byte, error) {
	c, err := s.connected()
	if err != nil {
		return nil, err
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)

	messages := make(chan *imap.Message, 1)
	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}

	fetchItems := []imap.FetchItem{fullBodySection.FetchItem(), imap.FetchUid}
	done := make(chan error, 1)
	go func() {
		done <- c.UidFetch(seqset, fetchItems, messages)
	}()

	var rawMail []byte
	var readErr error
	for msg := range messages {
		if msg.Uid != uid || rawMail != nil {
			continue
		}

		r := msg.GetBody(fullBodySection)
		if r == nil {
			readErr = fmt.Errorf("server returned no body for uid %d", uid)
			continue
		}

		rawMail, readErr = ioutil.ReadAll(r)
	}

	err = <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mail: %w", err)
	}
	if readErr != nil {
		return nil, fmt.Errorf("could not read mail body: %w", readErr)
	}

	return rawMail, nil
}

func (s *Session) Copy(uid uint32, dest string) error {
	c, err := s.connected()
	if err != nil {
		return err
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	err = c.UidCopy(seqset, dest)
	if err != nil {
		return fmt.Errorf("could not copy mail to %s: %w", dest, err)
	}

	return nil
}

func (s *Session) FlagDeleted(uid uint32) error {
	c, err := s.connected()
	if err != nil {
		return err
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	err = c.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return fmt.Errorf("could set delete flag: %w", err)
	}

	return nil
}

// ExpungeReady returns a reason when expunging the selected folder would remove more than
// the messages flagged by this session.
func (s *Session) ExpungeReady() (error, error) {
	if _, err := s.connected(); err != nil {
		return nil, err
	}
	return s.expunger.expungeReady()
}

func (s *Session) Expunge(uid uint32) error {
	if _, err := s.connected(); err != nil {
		return err
	}
	return s.expunger.expunge(uid)
}

func (s *Session) SupportsMove() bool {
	return s.IsConnected() && s.mover.supported()
}

func (s *Session) Move(uid uint32, dest string) error {
	if _, err := s.connected(); err != nil {
		return err
	}

	err := s.mover.move(uid, dest)
	if err != nil {
		return fmt.Errorf("could not move mail to %s: %w", dest, err)
	}

	return nil
}

func (s *Session) Append(folder string, flags []string, date time.Time, rawMail []byte) error {
	c, err := s.connected()
	if err != nil {
		return err
	}

	err = c.Append(folder, flags, date, bytes.NewReader(rawMail))
	if err != nil {
		return fmt.Errorf("could not append to %s: %w", folder, err)
	}

	return nil
}
