package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Scrollbar characters
const (
	ScrollThumbChar = "█" // Full block for thumb (solid)
	ScrollTrackChar = "│" // Box drawing vertical for track (hollow/border only)
)

// BuildScrollbar returns one cell per visible row of the chat history.
// viewHeight: the visible height of the scrollbar track
// totalLines: total number of lines in the history
// scrollOffset: current scroll position (0-based)
func BuildScrollbar(viewHeight, totalLines, scrollOffset int, thumbColor, trackColor lipgloss.Color) []string {
	if viewHeight <= 0 {
		return nil
	}
	scrollbar := make([]string, viewHeight)

	// If all lines fit, show blank space (no scrollbar needed)
	if totalLines <= viewHeight {
		for i := range scrollbar {
			scrollbar[i] = " "
		}
		return scrollbar
	}

	// thumbSize = (visible / total) * trackHeight, at least 1
	thumbSize := max((viewHeight*viewHeight)/totalLines, 1)
	thumbSize = min(thumbSize, max(viewHeight-2, 1))

	maxScroll := max(totalLines-viewHeight, 1)
	trackSpace := max(viewHeight-thumbSize, 0)

	thumbPos := 0
	if trackSpace > 0 {
		thumbPos = (scrollOffset * trackSpace) / maxScroll
	}
	thumbPos = min(max(thumbPos, 0), trackSpace)

	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	trackStyle := lipgloss.NewStyle().Foreground(trackColor)
	for i := 0; i < viewHeight; i++ {
		if i >= thumbPos && i < thumbPos+thumbSize {
			scrollbar[i] = thumbStyle.Render(ScrollThumbChar)
		} else {
			scrollbar[i] = trackStyle.Render(ScrollTrackChar)
		}
	}
	return scrollbar
}
