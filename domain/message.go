// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/message.go -package=mocks . MessageParser,Mailbox
package domain

import "time"

const NoSubject = "(no subject)"

type Message struct {
	Id          string    `json:"id"`
	MessageId   string    `json:"message_id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Cc          string    `json:"cc,omitempty"`
	Subject     string    `json:"subject"`
	Date        string    `json:"date"`
	Timestamp   time.Time `json:"-"`
	ContentType string    `json:"content_type"`
	TextBody    string    `json:"text_body,omitempty"`
	HtmlBody    string    `json:"html_body,omitempty"`
	Body        string    `json:"body"`
	Preview     string    `json:"preview"`

	HasText bool `json:"-"`
	HasHtml bool `json:"-"`

	Raw []byte `json:"-"`
}

// Draft is a message to be saved or sent. Address fields are comma separated.
type Draft struct {
	To        string `json:"to"`
	Cc        string `json:"cc"`
	Bcc       string `json:"bcc"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	ReplyToId string `json:"reply_to_id,omitempty"`
}

type MoveResult struct {
	Native bool
	// ExpungeError is set when the message was copied and flagged but the source folder
	// could not be expunged. The move still counts as successful.
	ExpungeError error
	// ExpungeWarning is set when the source folder already held messages flagged as
	// deleted before the move, a plain EXPUNGE removes those too.
	ExpungeWarning error
}

type BulkMoveResult struct {
	Moved      int `json:"moved"`
	Errors     int `json:"errors"`
	TotalFound int `json:"total_found"`
}

type DraftResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Folder  string `json:"folder,omitempty"`
}

type SendResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Recipients    int    `json:"recipients"`
	SentCopySaved bool   `json:"sent_copy_saved"`
	SentCopyError string `json:"sent_copy_error,omitempty"`
}

type MessageParser interface {
	Parse(id string, rawMail []byte) (*Message, error)
}

type Mailbox interface {
	GetEmails(folder string, limit int) ([]*Message, error)
	MoveEmail(id, from, to string) (*MoveResult, error)
}
