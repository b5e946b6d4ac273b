// Package display renders pipeline results for the terminal.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"subtran/internal/pipeline"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintResults writes one line per processed file, skips highlighted.
func PrintResults(w io.Writer, results []pipeline.Result) {
	skipped := 0
	for _, res := range results {
		if res.Skipped {
			skipped++
			fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("skip %s: %s", res.Input, res.Reason)))
			continue
		}
		fmt.Fprintf(w, "%s -> %s %s\n", res.Input, res.Output,
			mutedStyle.Render(fmt.Sprintf("(%d blocks)", res.Count)))
	}
	summary := fmt.Sprintf("%d file(s) processed, %d skipped", len(results)-skipped, skipped)
	if skipped > 0 {
		fmt.Fprintln(w, warnStyle.Render(summary))
	} else {
		fmt.Fprintln(w, successStyle.Render(summary))
	}
}

// PrintFilesTable renders the list command's table of subtitle files. The
// numeric columns are right-aligned.
func PrintFilesTable(w io.Writer, infos []pipeline.FileInfo) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"FILE", "BLOCKS", "SIZE"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "BLOCKS", Align: text.AlignRight},
		{Name: "SIZE", Align: text.AlignRight},
	})

	total := 0
	for _, info := range infos {
		tw.AppendRow(table.Row{info.Name, info.Blocks, formatSize(info.Size)})
		total += info.Blocks
	}
	tw.Render()
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d file(s), %d blocks", len(infos), total)))
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
