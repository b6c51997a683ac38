package term

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the terminal region.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Text       lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Background lipgloss.Color
}

var (
	ThemeRetro = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // green phosphor
		Text:       lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Muted:      lipgloss.Color("#005500"),
		Border:     lipgloss.Color("#005500"),
		Background: lipgloss.Color("#001100"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Muted:      lipgloss.Color("#888888"),
		Border:     lipgloss.Color("#444444"),
		Background: lipgloss.Color("#000000"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#00ffff"),
		Muted:      lipgloss.Color("#666666"),
		Border:     lipgloss.Color("#444466"),
		Background: lipgloss.Color("#0a0a0a"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#00a8cc"),
		Text:       lipgloss.Color("#e0f0ff"),
		Accent:     lipgloss.Color("#ffd700"),
		Muted:      lipgloss.Color("#4488aa"),
		Border:     lipgloss.Color("#0077be"),
		Background: lipgloss.Color("#001a33"),
	}

	Themes = []Theme{ThemeRetro, ThemeMinimal, ThemeCyberpunk, ThemeOcean}
)

// GetTheme returns a theme by name, falling back to retro.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRetro
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
