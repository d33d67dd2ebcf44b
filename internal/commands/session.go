package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Persistence is the slice of the file store the commands need.
type Persistence interface {
	Path() string
	Load(ctx context.Context) ([]storage.Record, error)
	Save(ctx context.Context, records []storage.Record) error
}

// Session carries the shared state every command operates on: the in-memory
// store, the file store backing it, and the terminal streams.
type Session struct {
	Store      *ledger.Store
	Files      Persistence
	In         *bufio.Reader
	Out        io.Writer
	ChartWidth int
}

func NewSession(store *ledger.Store, files Persistence, in io.Reader, out io.Writer, chartWidth int) *Session {
	return &Session{
		Store:      store,
		Files:      files,
		In:         bufio.NewReader(in),
		Out:        out,
		ChartWidth: chartWidth,
	}
}

// Prompt prints the label and reads one trimmed input line. A final line
// without a trailing newline still counts.
func (s *Session) Prompt(label string) (string, error) {
	fmt.Fprint(s.Out, label)
	line, err := s.In.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Printf writes formatted output to the session terminal.
func (s *Session) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.Out, format, args...)
}
