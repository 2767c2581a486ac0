package cli

import (
	"errors"
	"io"

	"github.com/spf13/afero"

	"github.com/aligator/dosdate/checkpoint"
)

// ErrOpenInput is returned if the input file could not be opened.
var ErrOpenInput = errors.New("could not open the input")

// inputSource provides the raw envelope document.
// It mainly exists to be able to mock the input in tests.
// Generated mock using mockgen:
//  mockgen -source=source.go -destination=source_mock.go -package cli
type inputSource interface {
	open() (io.ReadCloser, error)
}

type readerSource struct {
	r io.Reader
}

func (s readerSource) open() (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

type fileSource struct {
	fs   afero.Fs
	path string
}

func (s fileSource) open() (io.ReadCloser, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrOpenInput)
	}
	return f, nil
}
