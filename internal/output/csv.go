package output

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/model"
)

// CSVWriter writes accepted candidates to a CSV file, highest total score
// first. The file is replaced on every run.
type CSVWriter struct {
	Path string
}

func (w *CSVWriter) Write(people []model.ScoredPerson) error {
	if err := os.MkdirAll(filepath.Dir(w.Path), 0o755); err != nil {
		return eris.Wrap(err, "output: create output dir")
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return eris.Wrapf(err, "output: create %s", w.Path)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(model.OutputColumns); err != nil {
		return eris.Wrap(err, "output: write header")
	}
	for _, row := range sortedRows(people) {
		if err := cw.Write(rowCells(row)); err != nil {
			return eris.Wrap(err, "output: write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "output: flush csv")
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "output: close %s", w.Path)
	}

	zap.L().Info("output: csv written",
		zap.String("path", w.Path),
		zap.Int("rows", len(people)),
	)
	return nil
}
