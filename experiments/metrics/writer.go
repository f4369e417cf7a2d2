package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"scotlandyard/utils"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named after the run.
func NewWriter(dir, run string) (*Writer, error) {
	baseDir := filepath.Join(dir, run)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{"id", "seed", "detectives", "winner", "reason", "turns", "rounds", "double_moves", "secret_moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Detectives),
			record.Winner,
			record.Reason.String(),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.DoubleMoves),
			strconv.Itoa(record.SecretMoves),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}

// RenderSummary prints the summary as a table.
func RenderSummary(out io.Writer, title string, s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Outcome", "Games", "Share"})

	share := func(n int) string {
		if s.Games == 0 {
			return "-"
		}
		return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(s.Games))
	}
	t.AppendRow(table.Row{"MrX wins", s.MrXWins, share(s.MrXWins)})
	t.AppendRow(table.Row{"Detective wins", s.DetectiveWins, share(s.DetectiveWins)})
	t.AppendSeparator()
	for _, reason := range utils.SortedKeys(s.ByReason) {
		t.AppendRow(table.Row{reason.String(), s.ByReason[reason], share(s.ByReason[reason])})
	}
	t.AppendFooter(table.Row{"Total", s.Games, fmt.Sprintf("%.1f rounds / %.1f turns", s.AvgRounds, s.AvgTurns)})

	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}
