// Package checkpoint decorates errors with the file and line they passed through.
// The decorated errors still work with errors.Is and errors.As for both the
// checkpoint error and the error it wraps.
package checkpoint

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// From wraps err with the caller's position.
// It returns nil if err == nil and io.EOF unchanged, as readers compare it directly.
func From(err error) error {
	if err == nil || err == io.EOF {
		return err
	}

	return newCheckpoint(nil, err)
}

// Wrap records the caller's position together with err, which describes what
// failed at that point, and prev, the cause.
// It returns nil if prev == nil, so it can be used directly on a call result:
//  data, err := hex.DecodeString(s)
//  if err != nil {
//  	return checkpoint.Wrap(err, ErrMalformed)
//  }
// errors.Is(returned, ErrMalformed) is then true, and so is errors.Is for whatever
// hex.DecodeString returned.
func Wrap(prev, err error) error {
	if prev == nil {
		return nil
	}
	if prev == io.EOF {
		return io.EOF
	}

	return newCheckpoint(prev, err)
}

func newCheckpoint(prev, err error) *checkpoint {
	// Skip newCheckpoint and From/Wrap.
	_, file, line, ok := runtime.Caller(2)

	return &checkpoint{
		err:  err,
		prev: prev,

		callerOk: ok,
		file:     filepath.Base(file),
		line:     line,
	}
}

type checkpoint struct {
	err  error
	prev error

	callerOk bool
	file     string
	line     int
}

// Error renders the checkpoint on a single line:
//  envelope.go:42: malformed envelope: unexpected end of JSON input
// If prev is a checkpoint itself, its position is shown instead of this one.
func (e *checkpoint) Error() string {
	var msg string
	switch {
	case e.prev == nil:
		msg = e.err.Error()
	case e.err == nil:
		msg = e.prev.Error()
	default:
		msg = e.err.Error() + ": " + e.prev.Error()
	}

	if _, ok := e.prev.(*checkpoint); ok || !e.callerOk {
		return msg
	}
	return fmt.Sprintf("%s:%d: %s", e.file, e.line, msg)
}

func (e *checkpoint) Unwrap() error {
	return e.prev
}

func (e *checkpoint) Is(target error) bool {
	return e.err != nil && errors.Is(e.err, target)
}

func (e *checkpoint) As(target interface{}) bool {
	return e.err != nil && errors.As(e.err, target)
}
