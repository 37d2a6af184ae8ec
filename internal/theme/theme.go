// Package theme holds the colour and font tokens every page renders with.
package theme

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Colors struct {
	Primary       string `yaml:"primary" json:"primary"`
	Secondary     string `yaml:"secondary" json:"secondary"`
	Accent        string `yaml:"accent" json:"accent"`
	Background    string `yaml:"background" json:"background"`
	BackgroundAlt string `yaml:"backgroundAlt" json:"backgroundAlt"`
	Text          string `yaml:"text" json:"text"`
	TextLight     string `yaml:"textLight" json:"textLight"`
	Border        string `yaml:"border" json:"border"`
}

type Fonts struct {
	Main string `yaml:"main" json:"main"`
}

type Theme struct {
	Colors     Colors `yaml:"colors" json:"colors"`
	FontFamily Fonts  `yaml:"fontFamily" json:"fontFamily"`
}

func Default() Theme {
	return Theme{
		Colors: Colors{
			Primary:       "#0053a5",
			Secondary:     "#00a5b5",
			Accent:        "#ff6b35",
			Background:    "#ffffff",
			BackgroundAlt: "#f5f7fa",
			Text:          "#333333",
			TextLight:     "#666666",
			Border:        "#e5e7eb",
		},
		FontFamily: Fonts{Main: "'Inter', 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif"},
	}
}

// Load reads a YAML override on top of Default. Keys missing from the file
// keep their default value. An empty path returns Default.
func Load(path string) (Theme, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("failed to parse theme file: %w", err)
	}
	return t, nil
}

// CSS renders the tokens as custom properties on :root.
func (t Theme) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, kv := range [][2]string{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"accent", t.Colors.Accent},
		{"background", t.Colors.Background},
		{"background-alt", t.Colors.BackgroundAlt},
		{"text", t.Colors.Text},
		{"text-light", t.Colors.TextLight},
		{"border", t.Colors.Border},
	} {
		fmt.Fprintf(&b, "\t--color-%s: %s;\n", kv[0], kv[1])
	}
	fmt.Fprintf(&b, "\t--font-main: %s;\n}\n", t.FontFamily.Main)
	return b.String()
}
