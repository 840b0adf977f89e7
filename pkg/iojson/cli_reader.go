package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader reads the raw bytes of a JSON document from the file named by its --file flag,
// or from stdin when the flag is unset.
type FileReader struct {
	fileFlagValue string

	// Stdin and IsTerminal default to os.Stdin and a terminal check on it.
	Stdin      io.Reader
	IsTerminal func() bool
}

func (fr *FileReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// ReadRaw returns the undecoded input. Decoding is left to the caller so it
// can validate the document before unmarshaling.
func (fr *FileReader) ReadRaw() ([]byte, error) {
	if fr.fileFlagValue != "" {
		data, err := os.ReadFile(fr.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return data, nil
	}

	stdin, isTerminal := fr.Stdin, fr.IsTerminal
	if stdin == nil {
		stdin = os.Stdin
	}
	if isTerminal == nil {
		isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}

	if isTerminal() {
		return nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
