// internal/tui/styles.go
//
// lipgloss styles for the terminal board.
//   - cellStyle: blank cell.
//   - filledCellStyle: cell holding a letter.
//   - popCellStyle: cell that flipped between blank and filled on the last edit.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	clrBorder = lipgloss.Color("#3a3a3c")
	clrFilled = lipgloss.Color("#878a8c")
	clrPop    = lipgloss.Color("#e3b341")
	clrText   = lipgloss.Color("#e6edf3")
	clrSubtle = lipgloss.Color("#8b949e")

	titleStyle = lipgloss.NewStyle().
			Foreground(clrText).
			Bold(true).
			MarginBottom(1)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clrBorder).
			Foreground(clrText).
			Bold(true).
			Width(3).
			Align(lipgloss.Center)

	filledCellStyle = cellStyle.BorderForeground(clrFilled)

	// popCellStyle marks cells that just changed between filled and blank.
	popCellStyle = cellStyle.BorderForeground(clrPop).Foreground(clrPop)

	statusStyle = lipgloss.NewStyle().Foreground(clrSubtle).MarginTop(1)
)
