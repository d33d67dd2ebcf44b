package commands

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/report"
)

// SearchCommand finds transactions by keyword in category or description.
type SearchCommand struct{}

func (c *SearchCommand) Key() string   { return "3" }
func (c *SearchCommand) Name() string  { return "Search" }
func (c *SearchCommand) Title() string { return "Search transactions (keyword)" }

func (c *SearchCommand) Run(ctx context.Context, session *Session) error {
	keyword, err := session.Prompt("Keyword (matches category or description): ")
	if err != nil {
		return err
	}

	matches := session.Store.Search(keyword)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("matchCount", len(matches))
	}

	session.Printf("%s\n", report.RenderTable(matches))
	return nil
}
