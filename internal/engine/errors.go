package engine

import (
	"errors"

	"github.com/dshills/hexstorm/internal/engine/geometry"
	"github.com/dshills/hexstorm/internal/engine/window"
)

// Errors returned by engine operations.
var (
	// ErrInvalidConfiguration indicates a zero geometry parameter.
	ErrInvalidConfiguration = geometry.ErrInvalidConfiguration

	// ErrInvalidMovement indicates a scroll distance that overflows a file offset.
	ErrInvalidMovement = window.ErrInvalidMovement

	// ErrQuit signals that the session should end normally.
	ErrQuit = errors.New("quit requested")
)

// IOError is a seek or read failure of the underlying file.
type IOError = window.IOError
