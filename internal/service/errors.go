package service

import "errors"

var (
	// ErrInvalidInput marks requests rejected by validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownReference marks a foreign key pointing at a missing row.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrInvalidTransition marks a status change the order lifecycle forbids.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInUse marks deletions blocked by rows referencing the target.
	ErrInUse = errors.New("resource in use")
)
