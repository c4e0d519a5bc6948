package output

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/scout-cli/internal/model"
)

// XLSXWriter writes accepted candidates to a single-sheet XLSX workbook with
// the same columns and ordering as the CSV sink.
type XLSXWriter struct {
	Path string
}

func (w *XLSXWriter) Write(people []model.ScoredPerson) error {
	if err := os.MkdirAll(filepath.Dir(w.Path), 0o755); err != nil {
		return eris.Wrap(err, "output: create output dir")
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Candidates")
	if err != nil {
		return eris.Wrap(err, "output: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range model.OutputColumns {
		header.AddCell().SetString(col)
	}

	for _, row := range sortedRows(people) {
		r := sheet.AddRow()
		for _, cell := range rowCells(row) {
			r.AddCell().SetString(cell)
		}
	}

	if err := f.Save(w.Path); err != nil {
		return eris.Wrapf(err, "output: save %s", w.Path)
	}

	zap.L().Info("output: xlsx written",
		zap.String("path", w.Path),
		zap.Int("rows", len(people)),
	)
	return nil
}
