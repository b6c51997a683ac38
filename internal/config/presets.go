package config

import "sort"

var sections = []Section{
	{ID: "about", Title: "About", Body: "Student and web developer based in France.\nI like small tools, clean markup and terminals."},
	{ID: "projects", Title: "Projects", Body: "typist - a terminal typing effect\nportfolio - this page"},
	{ID: "contact", Title: "Contact", Body: "Drop me a line, I answer quickly."},
}

func prompt() Step { return Step{Op: "prompt", Kind: "h1", Class: "term-line"} }

// Presets are the screenplays shipped with the page.
var Presets = map[string]*Config{
	"intern": {
		Title: "portfolio",
		Script: []Step{
			prompt(), {Op: "type", Text: "> "}, {Op: "wait", Ms: 1000}, {Op: "type", Text: "Hi !"},
			prompt(), {Op: "type", Text: "> "}, {Op: "wait", Ms: 1000},
			{Op: "type", Text: "I'm a 21 year old student from France and a web developer"},
			prompt(), {Op: "type", Text: "> "}, {Op: "wait", Ms: 1000},
			{Op: "type", Text: "This summer "}, {Op: "wait", Ms: 300}, {Op: "type", Text: "I'd like to be your intern !"},
			prompt(), {Op: "type", Text: "> "},
		},
		Sections: sections,
	},
	"student": {
		Title: "portfolio",
		Script: []Step{
			{Op: "prompt", Kind: "h1", Class: "title mb1"}, {Op: "wait", Ms: 1000},
			{Op: "type", Text: "Je suis étudiant et développeur web."},
			{Op: "hide_cursor"},
		},
		Sections: sections,
	},
	"links": {
		Title: "portfolio",
		Speed: "slow",
		Script: []Step{
			prompt(), {Op: "type", Text: "> "}, {Op: "speed", Level: "fast"},
			{Op: "type", Text: "find me on "},
			{Op: "link", Text: "github", URL: "https://github.com/san-kum", Attrs: map[string]string{"target": "_blank"}},
			{Op: "br"},
			{Op: "echo", Text: "thanks for stopping by", Kind: "p"},
		},
		Sections: sections,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
