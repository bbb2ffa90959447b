package repository

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyCompleted indicates a completion request for a schedule
	// item that is already completed. Rejected so XP is awarded at most
	// once per item.
	ErrAlreadyCompleted = errors.New("already completed")
)
