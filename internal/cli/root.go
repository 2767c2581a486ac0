package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/aligator/dosdate/checkpoint"
	"github.com/aligator/dosdate/envelope"
	"github.com/aligator/dosdate/internal/buildinfo"
	"github.com/aligator/dosdate/internal/logger"
	"github.com/aligator/dosdate/output"
)

// Deps are the outer resources a command works with.
type Deps struct {
	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OSDeps returns the real filesystem and standard streams.
func OSDeps() Deps {
	return Deps{
		Fs:     afero.NewOsFs(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs cmd and exits with status 1 if it fails.
// cobra already printed the error at that point.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewHexCmd returns the command reading {"dostime": "<8 hex digits>"}.
func NewHexCmd(deps Deps) *cobra.Command {
	return newDecodeCmd(deps, "hex2dosdate", "hex",
		"Decode the date of a hex encoded, big endian DOS timestamp")
}

// NewIntCmd returns the command reading {"dostime": <uint32>}.
func NewIntCmd(deps Deps) *cobra.Command {
	return newDecodeCmd(deps, "int2dosdate", "int",
		"Decode the date of a DOS timestamp given as 32-bit integer")
}

func newDecodeCmd(deps Deps, use, kind, short string) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		formatName string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:          use,
		Short:        short,
		Long:         short + ".\n\nThe envelope is read as JSON from stdin or --input, at most 128 bytes are used.",
		Version:      buildinfo.String(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(formatName)
			if err != nil {
				return err
			}
			parse, err := envelope.ParserFor(kind)
			if err != nil {
				return err
			}

			log := logger.Discard()
			if debug {
				log = logger.New(deps.Stderr, logger.Config{Debug: true})
			}

			var source inputSource = readerSource{r: deps.Stdin}
			if inputPath != "" {
				source = fileSource{fs: deps.Fs, path: inputPath}
			}

			result, err := runner{source: source, parse: parse, log: log}.run()
			if err != nil {
				return err
			}

			// Encode completely before writing anything so that a failure leaves no partial output.
			buf := &bytes.Buffer{}
			if err := output.Write(buf, result, format); err != nil {
				return err
			}

			if outputPath != "" {
				log.Debug("output.write", "path", outputPath, "format", format)
				return checkpoint.Wrap(afero.WriteFile(deps.Fs, outputPath, buf.Bytes(), 0o644), output.ErrWrite)
			}
			_, err = deps.Stdout.Write(buf.Bytes())
			return checkpoint.Wrap(err, output.ErrWrite)
		},
	}

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "read the envelope from this file instead of stdin")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "output format, json or yaml")
	cmd.Flags().BoolVar(&debug, "debug", false, "log every step to stderr")

	return cmd
}
