package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours of the terminal views.
type Theme struct {
	Name   string
	Drag   lipgloss.Color
	Free   lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Drag:   lipgloss.Color("#ff00ff"), // Magenta
		Free:   lipgloss.Color("#0000ff"), // Blue
		Accent: lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Drag:   lipgloss.Color("#00ff00"), // Green phosphor
		Free:   lipgloss.Color("#88ff88"),
		Accent: lipgloss.Color("#00cc00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Drag:   lipgloss.Color("#ffd700"),
		Free:   lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#0077be"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Error:  lipgloss.Color("#ff4444"),
	}

	CurrentTheme = ThemeClassic

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// SeriesStyles returns the canvas layer styles for the drag and drag-free
// runs.
func (t Theme) SeriesStyles() []lipgloss.Style {
	return []lipgloss.Style{
		lipgloss.NewStyle().Foreground(t.Drag),
		lipgloss.NewStyle().Foreground(t.Free),
	}
}
