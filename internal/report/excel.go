// Package report persists the aggregate summary and debug artifacts.
package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/domain"
)

// columns is the report's fixed column set, in order. Emitted even when the
// summary has zero rows.
var columns = []interface{}{
	"Index",
	"Developer_Email_ID",
	"Repo",
	"Last_Merge_Branch",
	"Open_PR",
	"Merged_PR",
	"Declined_PR",
	"Total_PR",
	"Open_PR_DateTime",
	"Close_PR_DateTime",
	"Declined_PR_DateTime",
	"Ages_of_Open_PR",
	"Ages_of_Close_PR",
	"Latest_Commit_SHA",
}

const (
	datetimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
	naPlaceholder  = "NA"
)

// Writer writes report files into a fixed output directory.
type Writer struct {
	outDir string
	logger *log.Logger
}

// NewWriter creates a Writer. The output directory is created if needed.
func NewWriter(outDir string, logger *log.Logger) (*Writer, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}
	return &Writer{outDir: outDir, logger: logger}, nil
}

// WriteSummary writes one workbook with one row per author, named
// {repoName}_summary_{start}_to_{end}.xlsx, and returns the file path.
func (w *Writer) WriteSummary(rows []domain.DeveloperSummary, dateRange domain.DateRange, repoName string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range rows {
		cells := summaryCells(i+1, row)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return "", fmt.Errorf("failed to write row for %s: %w", row.Login, err)
		}
	}

	name := fmt.Sprintf("%s_summary_%s_to_%s.xlsx",
		repoName, dateRange.Start.Format(dateLayout), dateRange.End.Format(dateLayout))
	path := filepath.Join(w.outDir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report %s: %w", path, err)
	}
	w.logger.Printf("Saved report: %s", path)
	return path, nil
}

// summaryCells renders one author row. The Declined_PR_DateTime and the two
// age columns are literal placeholders: nothing upstream computes them.
func summaryCells(index int, row domain.DeveloperSummary) []interface{} {
	return []interface{}{
		index,
		row.Login + "@github",
		row.Repo,
		stringOr(row.LastMergeBranch, "None"),
		row.Open,
		row.Merged,
		row.Declined,
		row.Total,
		timeOrNA(row.EarliestCreated),
		timeOrNA(row.LatestMerged),
		naPlaceholder,
		naPlaceholder,
		naPlaceholder,
		stringOr(row.LatestCommitSHA, naPlaceholder),
	}
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func timeOrNA(t *time.Time) string {
	if t == nil {
		return naPlaceholder
	}
	return t.Format(datetimeLayout)
}

// WriteRawDump writes the untouched provider payloads as a JSON array for
// manual inspection, and returns the file path.
func (w *Writer) WriteRawDump(raw []json.RawMessage, repoName string) (string, error) {
	if raw == nil {
		raw = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal raw dump: %w", err)
	}
	path := filepath.Join(w.outDir, fmt.Sprintf("%s_raw_prs.json", repoName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save raw dump %s: %w", path, err)
	}
	w.logger.Printf("Saved raw dump: %s", path)
	return path, nil
}

// debugColumns for the flattened per-PR table.
var debugColumns = []interface{}{
	"Number",
	"ID",
	"Title",
	"Author",
	"Created_At",
	"Merged_At",
	"Closed_At",
	"Base_Ref",
	"Head_SHA",
}

// WriteDebugTable writes one flattened row per fetched pull request, and
// returns the file path.
func (w *Writer) WriteDebugTable(prs []domain.PullRequest, repoName string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &debugColumns); err != nil {
		return "", fmt.Errorf("failed to write debug header row: %w", err)
	}
	for i := range prs {
		pr := &prs[i]
		cells := []interface{}{
			pr.Number,
			pr.ID,
			pr.Title,
			pr.Author(),
			timeOrNA(pr.CreatedAt),
			timeOrNA(pr.MergedAt),
			timeOrNA(pr.ClosedAt),
			stringOr(pr.BaseRef, naPlaceholder),
			stringOr(pr.HeadSHA, naPlaceholder),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("failed to address debug row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return "", fmt.Errorf("failed to write debug row for PR #%d: %w", pr.Number, err)
		}
	}

	path := filepath.Join(w.outDir, fmt.Sprintf("%s_debug_prs.xlsx", repoName))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save debug table %s: %w", path, err)
	}
	w.logger.Printf("Saved debug table: %s", path)
	return path, nil
}
