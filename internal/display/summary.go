package display

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/holdem/internal/statistics"
)

// Summary renders one row per seat with net chips and bb/hand figures.
func (s *Styles) Summary(title string, rows []statistics.Summary) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			strconv.Itoa(r.Seat),
			r.Name,
			strconv.Itoa(r.Hands),
			strconv.Itoa(r.NetChips),
			fmt.Sprintf("%+.3f", r.MeanBB),
			fmt.Sprintf("%.3f", r.StdDevBB),
			fmt.Sprintf("[%+.3f, %+.3f]", r.CILow, r.CIHigh),
			fmt.Sprintf("%+.2f", r.MedianBB),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		Headers("SEAT", "PLAYER", "HANDS", "NET", "BB/HAND", "STDDEV", "95% CI", "MEDIAN").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row >= len(rows) || col != 3 {
				return lipgloss.NewStyle()
			}
			switch {
			case rows[row].NetChips > 0:
				return s.Success
			case rows[row].NetChips < 0:
				return s.RedCard
			default:
				return lipgloss.NewStyle()
			}
		})
	return s.Header.Render(title) + "\n" + t.String() + "\n"
}
