// Package envelope reads the JSON documents which carry a 32-bit DOS timestamp
// and extracts the packed date from it.
//
// Two shapes are supported:
//  {"dostime": "58B40000"}   hex encoded, 4 bytes, big endian
//  {"dostime": 1488191488}   unsigned 32-bit integer
package envelope

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/aligator/dosdate/checkpoint"
)

// MaxInputBytes limits how much of the input is read. Anything after that is ignored.
const MaxInputBytes = 128

// stampSize is the size of a DOS timestamp in bytes.
const stampSize = 4

// These errors may occur while reading an envelope.
var (
	ErrRead         = errors.New("could not read the input")
	ErrMalformed    = errors.New("malformed envelope")
	ErrMissingField = errors.New(`missing field "dostime"`)
	ErrHex          = errors.New("invalid hex string")
	ErrByteLength   = fmt.Errorf("hex string must represent exactly %d bytes (32-bit DOSTIME)", stampSize)
)

type hexEnvelope struct {
	Dostime *string `json:"dostime"`
}

type intEnvelope struct {
	Dostime *uint32 `json:"dostime"`
}

// ReadLimited reads at most MaxInputBytes from r.
// Longer input is truncated without an error.
func ReadLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputBytes))
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrRead)
	}
	return data, nil
}

// ParseHex reads an envelope whose dostime is a hex string of exactly 4 bytes
// and returns it as big endian word.
// The string is NFKC normalized first so that full-width digits and letters are accepted.
func ParseHex(data []byte) (uint32, error) {
	var env hexEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return 0, checkpoint.Wrap(err, ErrMalformed)
	}
	if env.Dostime == nil {
		return 0, checkpoint.From(ErrMissingField)
	}

	raw, err := hex.DecodeString(norm.NFKC.String(*env.Dostime))
	if err != nil {
		return 0, checkpoint.Wrap(err, ErrHex)
	}
	if len(raw) != stampSize {
		return 0, checkpoint.Wrap(fmt.Errorf("got %d bytes", len(raw)), ErrByteLength)
	}

	return binary.BigEndian.Uint32(raw), nil
}

// ParseInt reads an envelope whose dostime is an unsigned 32-bit integer.
// Negative, fractional and too big numbers are rejected.
func ParseInt(data []byte) (uint32, error) {
	var env intEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return 0, checkpoint.Wrap(err, ErrMalformed)
	}
	if env.Dostime == nil {
		return 0, checkpoint.From(ErrMissingField)
	}

	return *env.Dostime, nil
}

// Parser extracts a DOS timestamp from envelope data.
type Parser func(data []byte) (uint32, error)

// ParserFor returns the parser for the given envelope kind, "hex" or "int".
func ParserFor(kind string) (Parser, error) {
	switch strings.ToLower(kind) {
	case "hex":
		return ParseHex, nil
	case "int":
		return ParseInt, nil
	}
	return nil, fmt.Errorf("unknown envelope kind %q", kind)
}

// DateWord returns the packed date, which is stored in the upper 16 bits of a DOS timestamp.
func DateWord(stamp uint32) uint16 {
	return uint16(stamp >> 16)
}
