package cli

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/aligator/dosdate"
	"github.com/aligator/dosdate/envelope"
	"github.com/aligator/dosdate/internal/logger"
)

// runTestsError is just a error used in tests for runner.
var runTestsError = errors.New("a super error")

// closeRecorder remembers if Close was called.
type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestRunner_run(t *testing.T) {
	type mock struct {
		openResult string
		openError  error
	}
	tests := []struct {
		name     string
		mockData mock
		parse    envelope.Parser
		want     dosdate.Result
		wantErr  error
	}{
		{
			name:     "hex envelope",
			mockData: mock{openResult: `{"dostime": "58B40000"}`},
			parse:    envelope.ParseHex,
			want: dosdate.Result{
				Components: dosdate.DateComponents{Year: 2024, Month: 5, Day: 20, BaseYear: 1980},
				Formatted:  "2024-05-20",
			},
		},
		{
			name:     "int envelope",
			mockData: mock{openResult: `{"dostime": 1488191488}`},
			parse:    envelope.ParseInt,
			want: dosdate.Result{
				Components: dosdate.DateComponents{Year: 2024, Month: 5, Day: 20, BaseYear: 1980},
				Formatted:  "2024-05-20",
			},
		},
		{
			name:     "the time part is ignored",
			mockData: mock{openResult: `{"dostime": "0021FFFF"}`},
			parse:    envelope.ParseHex,
			want: dosdate.Result{
				Components: dosdate.DateComponents{Year: 1980, Month: 1, Day: 1, BaseYear: 1980},
				Formatted:  "1980-01-01",
			},
		},
		{
			name:     "all zero fails on the month",
			mockData: mock{openResult: `{"dostime": "00000000"}`},
			parse:    envelope.ParseHex,
			wantErr:  dosdate.ErrInvalidMonth,
		},
		{
			name:     "february 30",
			mockData: mock{openResult: `{"dostime": "005E0000"}`},
			parse:    envelope.ParseHex,
			wantErr:  dosdate.ErrDayOutOfRange,
		},
		{
			name:     "wrong byte length",
			mockData: mock{openResult: `{"dostime": "58B4"}`},
			parse:    envelope.ParseHex,
			wantErr:  envelope.ErrByteLength,
		},
		{
			name:     "truncated input",
			mockData: mock{openResult: `{"dostime": "58B40000"` + strings.Repeat(" ", envelope.MaxInputBytes) + `}`},
			parse:    envelope.ParseHex,
			wantErr:  envelope.ErrMalformed,
		},
		{
			name:     "open fails",
			mockData: mock{openError: runTestsError},
			parse:    envelope.ParseHex,
			wantErr:  runTestsError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			reader := &closeRecorder{Reader: strings.NewReader(tt.mockData.openResult)}
			source := NewMockinputSource(mockCtrl)
			if tt.mockData.openError != nil {
				source.EXPECT().open().Return(nil, tt.mockData.openError)
			} else {
				source.EXPECT().open().Return(reader, nil)
			}

			r := runner{
				source: source,
				parse:  tt.parse,
				log:    logger.Discard(),
			}
			got, err := r.run()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("runner.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				if got != (dosdate.Result{}) {
					t.Errorf("runner.run() = %v, want no result on error", got)
				}
			} else {
				if err != nil {
					t.Errorf("runner.run() unexpected error = %v", err)
				}
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("runner.run() = %v, want %v", got, tt.want)
				}
			}

			if tt.mockData.openError == nil && !reader.closed {
				t.Errorf("runner.run() did not close the input")
			}
		})
	}
}
