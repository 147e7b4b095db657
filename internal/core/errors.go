package core

import "errors"

var (
	// ErrInvalidInput marks process sets that must never reach the engine:
	// empty sets, non-positive bursts, negative arrivals, or metrics asked of
	// unfinished records.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLogic marks a broken engine or selector invariant. It is a defect,
	// the run is aborted and no partial result is produced.
	ErrLogic = errors.New("scheduler logic error")
)
