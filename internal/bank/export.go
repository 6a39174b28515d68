package bank

import (
	"io"
	"strconv"

	"github.com/abhisek/quizdeck/internal/tabular"
)

// ExportHeader is the column layout written by Export.
var ExportHeader = []string{"id", "question", "choiceA", "choiceB", "choiceC", "choiceD", "answer", "explanation"}

// Export writes b as delimited text with exactly eight quoted columns per
// question. Choices beyond the fourth are dropped and missing ones are
// written empty.
func Export(w io.Writer, b Bank) error {
	rows := make([][]string, 0, len(b))
	for _, q := range b {
		row := make([]string, 0, len(ExportHeader))
		row = append(row, q.ID, q.Text)
		for i := 0; i < 4; i++ {
			if i < len(q.Choices) {
				row = append(row, q.Choices[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, strconv.Itoa(q.CorrectIndex), q.Explanation)
		rows = append(rows, row)
	}
	return tabular.Write(w, ExportHeader, rows)
}
