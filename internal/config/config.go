package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSpeed          = "fast"
	DefaultBlinkMs        = 500
	DefaultScrollMs       = 200
	DefaultCursor         = "|"
	DefaultTerminalHeight = 8
	DefaultTheme          = "retro"
	DefaultPreset         = "intern"
)

type Config struct {
	Title          string    `yaml:"title"`
	Speed          string    `yaml:"speed"`
	BlinkMs        int       `yaml:"blink_ms"`
	ScrollMs       int       `yaml:"scroll_ms"`
	Cursor         string    `yaml:"cursor"`
	TerminalHeight int       `yaml:"terminal_height"`
	Theme          string    `yaml:"theme"`
	Script         []Step    `yaml:"script"`
	Sections       []Section `yaml:"sections"`
}

// Step is one named operation of a screenplay. Which fields matter depends
// on Op.
type Step struct {
	Op    string            `yaml:"op"`
	Text  string            `yaml:"text,omitempty"`
	Kind  string            `yaml:"kind,omitempty"`
	Class string            `yaml:"class,omitempty"`
	Ms    int               `yaml:"ms,omitempty"`
	URL   string            `yaml:"url,omitempty"`
	Attrs map[string]string `yaml:"attrs,omitempty"`
	Level string            `yaml:"level,omitempty"`
}

// Section is a named block of the page below the terminal.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Title:          "portfolio",
		Speed:          DefaultSpeed,
		BlinkMs:        DefaultBlinkMs,
		ScrollMs:       DefaultScrollMs,
		Cursor:         DefaultCursor,
		TerminalHeight: DefaultTerminalHeight,
		Theme:          DefaultTheme,
	}
	if p := GetPreset(DefaultPreset); p != nil {
		cfg.Script = p.Script
		cfg.Sections = p.Sections
	}
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Merge overlays the non-zero fields of p onto a copy of c.
func (c *Config) Merge(p *Config) *Config {
	out := *c
	if p == nil {
		return &out
	}
	if p.Title != "" {
		out.Title = p.Title
	}
	if p.Speed != "" {
		out.Speed = p.Speed
	}
	if p.BlinkMs > 0 {
		out.BlinkMs = p.BlinkMs
	}
	if p.ScrollMs > 0 {
		out.ScrollMs = p.ScrollMs
	}
	if p.Cursor != "" {
		out.Cursor = p.Cursor
	}
	if p.TerminalHeight > 0 {
		out.TerminalHeight = p.TerminalHeight
	}
	if p.Theme != "" {
		out.Theme = p.Theme
	}
	if len(p.Script) > 0 {
		out.Script = p.Script
	}
	if len(p.Sections) > 0 {
		out.Sections = p.Sections
	}
	return &out
}
