package output

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/scout-cli/internal/config"
	"github.com/sells-group/scout-cli/internal/model"
)

// Writer persists accepted candidates to a sink.
type Writer interface {
	Write(people []model.ScoredPerson) error
}

// NewWriter selects a sink for the configured format: "csv", "xlsx", or
// "both".
func NewWriter(cfg config.OutputConfig) (Writer, error) {
	switch cfg.Format {
	case "csv":
		return &CSVWriter{Path: cfg.Path}, nil
	case "xlsx":
		return &XLSXWriter{Path: cfg.Path}, nil
	case "both":
		return multiWriter{
			&CSVWriter{Path: cfg.Path},
			&XLSXWriter{Path: xlsxPath(cfg.Path)},
		}, nil
	default:
		return nil, eris.Errorf("output: unknown format %q", cfg.Format)
	}
}

type multiWriter []Writer

func (m multiWriter) Write(people []model.ScoredPerson) error {
	for _, w := range m {
		if err := w.Write(people); err != nil {
			return err
		}
	}
	return nil
}

// sortedRows flattens people into output rows ordered by total score
// descending, ties broken by name for stable output.
func sortedRows(people []model.ScoredPerson) []model.OutputRow {
	sorted := make([]model.ScoredPerson, len(people))
	copy(sorted, people)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalScore != sorted[j].TotalScore {
			return sorted[i].TotalScore > sorted[j].TotalScore
		}
		return sorted[i].FullName < sorted[j].FullName
	})

	rows := make([]model.OutputRow, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, model.NewOutputRow(p))
	}
	return rows
}

func rowCells(r model.OutputRow) []string {
	return []string{
		r.Name,
		r.Title,
		r.Company,
		formatScore(r.FitScore),
		formatScore(r.ResponseScore),
		formatScore(r.TotalScore),
		r.FitReasons,
		r.ResponseReasons,
		r.SourceArticleURL,
		r.SourceProfileURLs,
		r.LinkedInURL,
		r.Email,
		r.School,
		r.Role,
		r.Seniority,
		r.Location,
		r.Industries,
		r.DiscoveredDate,
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func xlsxPath(csvPath string) string {
	if strings.HasSuffix(csvPath, ".csv") {
		return strings.TrimSuffix(csvPath, ".csv") + ".xlsx"
	}
	return csvPath + ".xlsx"
}
