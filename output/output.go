// Package output serializes a decoded date as a pretty printed document.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aligator/dosdate"
	"github.com/aligator/dosdate/checkpoint"
)

// Format is a document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// ErrWrite is returned if the document could not be written.
var ErrWrite = errors.New("could not write the result")

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format with the given name. An empty name means JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("unknown output format %q, use json or yaml", name)
}

// Write encodes r to w, indented by two spaces and terminated by a newline.
func Write(w io.Writer, r dosdate.Result, f Format) error {
	switch f {
	case JSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return checkpoint.Wrap(err, ErrWrite)
		}
		_, err = w.Write(append(data, '\n'))
		return checkpoint.Wrap(err, ErrWrite)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return checkpoint.Wrap(err, ErrWrite)
		}
		return checkpoint.Wrap(enc.Close(), ErrWrite)
	}
	return fmt.Errorf("unknown output format %v", f)
}
