package io

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Bus errors
	ErrPortConflict = errors.New(f("port window conflict"))
	ErrPortRange    = errors.New(f("port window out of range"))

	// Rom errors
	ErrRomSize = errors.New(f("rom exceeds memory"))
)
