package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	// ErrEmptySearch is returned when q is present but empty.
	ErrEmptySearch     = errors.New("please enter a search criteria")
	ErrInvalidImage    = errors.New("invalid image")
	ErrStorageDisabled = errors.New("image storage is not configured")
)
