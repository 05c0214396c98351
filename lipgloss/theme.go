// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/commitgen"

// Compile-time interface verification.
var _ commitgen.Theme = (*Theme)(nil)

// Theme implements commitgen.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  commitgen.Styles
	palette commitgen.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() commitgen.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() commitgen.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Colors come from Catppuccin Mocha.
func DarkTheme() *Theme {
	return &Theme{
		styles: commitgen.Styles{
			Added: commitgen.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green - syntax colors stay readable
			},
			Deleted: commitgen.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red - syntax colors stay readable
			},
			Context: commitgen.ColorPair{
				Foreground: "#6c7086", // Muted gray (dimmed for change visibility)
			},
			HunkHeader: commitgen.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			FilePath: commitgen.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
			Cursor: commitgen.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#89b4fa", // Blue
			},
			Selected: commitgen.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Help: commitgen.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
		},
		palette: commitgen.Palette{
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Operator:    "#89dceb",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
// Colors come from Catppuccin Latte.
func LightTheme() *Theme {
	return &Theme{
		styles: commitgen.Styles{
			Added: commitgen.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4", // Subtle green background
			},
			Deleted: commitgen.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4", // Subtle red background
			},
			Context: commitgen.ColorPair{
				Foreground: "#9ca0b0", // Muted gray (dimmed for change visibility)
			},
			HunkHeader: commitgen.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			FilePath: commitgen.ColorPair{
				Foreground: "#df8e1d", // Yellow
			},
			Cursor: commitgen.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#1e66f5", // Blue
			},
			Selected: commitgen.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Help: commitgen.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
		},
		palette: commitgen.Palette{
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Operator:    "#04a5e5",
			Punctuation: "#6c6f85",
		},
	}
}
