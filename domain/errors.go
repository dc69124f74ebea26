// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotConnected     = errors.New("not connected")
	ErrConnection       = errors.New("connection failed")
	ErrInvalidMessageId = errors.New("invalid message id")
	ErrInvalidDraft     = errors.New("invalid draft")
	ErrMoveUnsupported  = errors.New("server does not support MOVE")
)

// ConnectionError is an authentication or transport failure. It matches ErrConnection.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}
