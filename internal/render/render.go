package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/housewalk/internal/style"
)

// fixed rows: top pattern, title and footer
const frameRows = 3

// ChromeRows returns how many rows Page spends around the content with the given number of header rows.
func ChromeRows(headerRows int) int {
	return frameRows + headerRows
}

// Page renders a block of the given height: top pattern, title, header rows,
// vertically centered content and footer. Header rows and content keep their own style.
func Page(title string, header []string, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	rows := make([]string, 0, len(header)+4)
	rows = append(rows,
		style.TopPattern.Render(strings.Repeat("/", width)),
		style.Title.Render(title),
	)
	rows = append(rows, header...)
	renderedFooter := style.Footer.Render(footer)

	used := lipgloss.Height(renderedFooter)
	for _, row := range rows {
		used += lipgloss.Height(row)
	}
	rows = append(rows,
		lipgloss.PlaceVertical(height-used, lipgloss.Center, renderedContent),
		renderedFooter,
	)

	view := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
