package repository

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrNotPending = errors.New("event is not pending")
)
