package logtail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the styles applied to the parts of a text-format log line.
type Palette struct {
	Timestamp lipgloss.Style
	Debug     lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Key       lipgloss.Style
}

// DefaultPalette returns colors readable on dark terminal backgrounds.
func DefaultPalette() Palette {
	return Palette{
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Debug:     lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Key:       lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF")),
	}
}

// ColorizeLine styles a line written by the text log formatter:
//
//	2025-10-08T21:01:05Z INFO fetched users count=42
//
// Lines that do not follow that layout are returned unchanged.
func ColorizeLine(line string, p Palette) string {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 {
		return line
	}
	level, ok := levelStyle(fields[1], p)
	if !ok {
		return line
	}

	var b strings.Builder
	b.WriteString(p.Timestamp.Render(fields[0]))
	b.WriteByte(' ')
	b.WriteString(level.Render(fields[1]))
	if len(fields) == 3 {
		b.WriteByte(' ')
		b.WriteString(colorizeKeys(fields[2], p.Key))
	}
	return b.String()
}

// ColorizeLines applies ColorizeLine to each line.
func ColorizeLines(lines []string, p Palette) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ColorizeLine(line, p)
	}
	return out
}

func levelStyle(token string, p Palette) (lipgloss.Style, bool) {
	switch token {
	case "DEBU", "DEBUG":
		return p.Debug, true
	case "INFO":
		return p.Info, true
	case "WARN":
		return p.Warn, true
	case "ERRO", "ERROR", "FATA":
		return p.Error, true
	}
	return lipgloss.Style{}, false
}

// colorizeKeys styles the key half of key=value tokens.
func colorizeKeys(rest string, key lipgloss.Style) string {
	words := strings.Split(rest, " ")
	for i, w := range words {
		k, v, found := strings.Cut(w, "=")
		if !found || k == "" {
			continue
		}
		words[i] = key.Render(k) + "=" + v
	}
	return strings.Join(words, " ")
}
