package model

import "errors"

var (
	ErrAwardNotFound       = errors.New("award not found")
	ErrAwardDetailNotFound = errors.New("award detail not found")
)
