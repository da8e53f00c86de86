package logtail

import "github.com/charmbracelet/lipgloss"

var levelStyles = map[Level]lipgloss.Style{
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// ColorizeLine styles an entry's raw text by its classified level. Lines with
// no recognized level are returned unchanged.
func ColorizeLine(e Entry) string {
	style, ok := levelStyles[e.Level]
	if !ok {
		return e.Raw
	}
	return style.Render(e.Raw)
}

// ColorizeLines styles each entry in order.
func ColorizeLines(entries []Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, ColorizeLine(e))
	}
	return lines
}
