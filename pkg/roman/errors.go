package roman

import "errors"

// ErrOutOfRange is returned when a value cannot be encoded (outside 1..Max).
var ErrOutOfRange = errors.New("value out of range")

// ErrEmptyInput is returned when an empty string is passed for decoding.
var ErrEmptyInput = errors.New("empty input")

// ErrInvalidNumeral is returned for illegal characters or non-canonical forms.
var ErrInvalidNumeral = errors.New("invalid roman numeral")
