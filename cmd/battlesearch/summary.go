package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/battlesearch/battlesearch-go/pkg/battlesearch"
)

// renderSummary formats per-worker counters as a table followed by a
// one-line total.
func renderSummary(s battlesearch.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Worker", "Files", "Matches", "Errors"})

	for _, w := range s.Workers {
		tw.AppendRow(table.Row{
			strconv.Itoa(w.ID),
			humanize.Comma(w.Files),
			humanize.Comma(w.Matches),
			humanize.Comma(w.Errors),
		})
	}
	tw.AppendFooter(table.Row{
		"Total",
		humanize.Comma(s.Files()),
		humanize.Comma(s.Matches()),
		humanize.Comma(s.Errors()),
	})

	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}}
	for i := 2; i <= 4; i++ {
		configs = append(configs, table.ColumnConfig{
			Number:      i,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
			AlignFooter: text.AlignRight,
		})
	}
	tw.SetColumnConfigs(configs)

	var b strings.Builder
	b.WriteString(tw.Render())
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s in %s %s from %s %s, %s skipped, took %s",
		humanize.Comma(s.Matches()), plural(s.Matches(), "match", "matches"),
		humanize.Comma(s.Files()), plural(s.Files(), "file", "files"),
		humanize.Comma(int64(s.Roots)), plural(int64(s.Roots), "root", "roots"),
		humanize.Comma(s.Skipped),
		s.Elapsed.Round(time.Millisecond))
	return b.String()
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
