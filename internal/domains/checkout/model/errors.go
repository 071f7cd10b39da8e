package model

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyBag      = errors.New("bag is empty")
)
