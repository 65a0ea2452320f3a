package convo

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the palette as "#rrggbb" hex colors. Card backgrounds are
// tweened between Surface and Primary, so the palette needs real RGB values
// rather than terminal color indices.
type Theme struct {
	Name             string
	Primary          string // Expanded card background
	Secondary        string // Profile picture border
	SecondaryVariant string // Author name
	Surface          string // Collapsed card background
	OnPrimary        string // Text on Primary
	OnSurface        string // Text on Surface
	Muted            string // Help line, placeholders
}

// LightTheme returns the light palette.
func LightTheme() Theme {
	return Theme{
		Name:             "light",
		Primary:          "#6200EE",
		Secondary:        "#03DAC6",
		SecondaryVariant: "#018786",
		Surface:          "#FFFFFF",
		OnPrimary:        "#FFFFFF",
		OnSurface:        "#000000",
		Muted:            "#757575",
	}
}

// DarkTheme returns the dark palette.
func DarkTheme() Theme {
	return Theme{
		Name:             "dark",
		Primary:          "#BB86FC",
		Secondary:        "#03DAC6",
		SecondaryVariant: "#03DAC6",
		Surface:          "#121212",
		OnPrimary:        "#000000",
		OnSurface:        "#FFFFFF",
		Muted:            "#9E9E9E",
	}
}

// DefaultTheme returns the light palette.
func DefaultTheme() Theme { return LightTheme() }

// ThemeByName returns a built-in theme. Matching is case-insensitive.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q: %w", name, ErrValidation)
	}
}

// Color returns the hex color for role, or "" for an unknown role.
func (t Theme) Color(role ColorRole) string {
	switch role {
	case RolePrimary:
		return t.Primary
	case RoleSecondary:
		return t.Secondary
	case RoleSecondaryVariant:
		return t.SecondaryVariant
	case RoleSurface:
		return t.Surface
	case RoleOnPrimary:
		return t.OnPrimary
	case RoleOnSurface:
		return t.OnSurface
	default:
		return ""
	}
}

// Validate checks that every palette entry is a parseable hex color.
func (t Theme) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"primary", t.Primary},
		{"secondary", t.Secondary},
		{"secondary_variant", t.SecondaryVariant},
		{"surface", t.Surface},
		{"on_primary", t.OnPrimary},
		{"on_surface", t.OnSurface},
		{"muted", t.Muted},
	}
	for _, f := range fields {
		if _, err := colorful.Hex(f.value); err != nil {
			return fmt.Errorf("theme color %s %q: %w", f.name, f.value, ErrValidation)
		}
	}
	return nil
}
