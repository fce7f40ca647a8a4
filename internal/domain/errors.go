package domain

import "errors"

var (
	ErrInvalidRange   = errors.New("min must not exceed max")
	ErrRangeTooWide   = errors.New("range is too wide to draw from")
	ErrScreenNotFound = errors.New("screen not found")
)
