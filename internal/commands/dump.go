package commands

import (
	"context"

	"github.com/davecgh/go-spew/spew"
)

// DumpCommand pretty-prints the raw store contents. Mostly useful when
// chasing a bad record in a hand-edited data file.
type DumpCommand struct{}

func (c *DumpCommand) Key() string   { return "13" }
func (c *DumpCommand) Name() string  { return "Dump" }
func (c *DumpCommand) Title() string { return "Dump store (debug)" }

func (c *DumpCommand) Run(ctx context.Context, session *Session) error {
	spew.Fdump(session.Out, session.Store.All())
	return nil
}
