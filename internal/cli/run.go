package cli

import (
	"log/slog"

	"github.com/aligator/dosdate"
	"github.com/aligator/dosdate/envelope"
)

// runner reads one envelope and decodes the date it carries.
type runner struct {
	source inputSource
	parse  envelope.Parser
	log    *slog.Logger
}

// run returns the decoded date or the first error. Decode errors are returned
// unwrapped so that they read like the validation message.
func (r runner) run() (dosdate.Result, error) {
	rc, err := r.source.open()
	if err != nil {
		return dosdate.Result{}, err
	}
	defer rc.Close()

	data, err := envelope.ReadLimited(rc)
	if err != nil {
		return dosdate.Result{}, err
	}
	r.log.Debug("input.read", "bytes", len(data))

	stamp, err := r.parse(data)
	if err != nil {
		return dosdate.Result{}, err
	}

	packed := envelope.DateWord(stamp)
	r.log.Debug("envelope.parsed", "dostime", stamp, "packed", packed)

	c, err := dosdate.Decode(packed)
	if err != nil {
		r.log.Debug("date.rejected", "packed", packed, "err", err)
		return dosdate.Result{}, err
	}
	r.log.Debug("date.decoded", "year", c.Year, "month", c.Month, "day", c.Day)

	return dosdate.Format(c), nil
}
