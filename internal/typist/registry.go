package typist

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/typist/internal/config"
	"github.com/san-kum/typist/internal/term"
)

type builder func(step config.Step) (Operation, error)

var builders = map[string]builder{
	"prompt": func(st config.Step) (Operation, error) {
		return Prompt{Kind: kindOr(st.Kind, term.H1), Class: st.Class}, nil
	},
	"type": func(st config.Step) (Operation, error) {
		return Type{Text: st.Text}, nil
	},
	"echo": func(st config.Step) (Operation, error) {
		return Echo{Text: st.Text, Kind: kindOr(st.Kind, term.Paragraph), Class: st.Class}, nil
	},
	"wait": func(st config.Step) (Operation, error) {
		if st.Ms < 0 {
			return nil, fmt.Errorf("%w: wait of %dms", ErrInvalidStep, st.Ms)
		}
		return Wait{Duration: time.Duration(st.Ms) * time.Millisecond}, nil
	},
	"br": func(config.Step) (Operation, error) {
		return LineBreak{}, nil
	},
	"link": func(st config.Step) (Operation, error) {
		if st.URL == "" {
			return nil, fmt.Errorf("%w: link %q has no url", ErrInvalidStep, st.Text)
		}
		return Link{Text: st.Text, URL: st.URL, Attrs: st.Attrs}, nil
	},
	"hide_cursor": func(config.Step) (Operation, error) {
		return HideCursor{}, nil
	},
	"speed": func(st config.Step) (Operation, error) {
		return Speed{Level: st.Level}, nil
	},
}

var aliases = map[string]string{
	"linebreak":  "br",
	"hidecursor": "hide_cursor",
}

// Compile turns script steps into operations. The first step naming an
// unknown operation stops compilation with an *UnknownOperationError.
func Compile(steps []config.Step) ([]Operation, error) {
	ops := make([]Operation, 0, len(steps))
	for i, st := range steps {
		name := strings.ToLower(strings.TrimSpace(st.Op))
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		build, ok := builders[name]
		if !ok {
			return nil, &UnknownOperationError{Index: i, Name: st.Op}
		}
		op, err := build(st)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Operations lists the operation names a script may use.
func Operations() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func kindOr(s string, fallback term.LineKind) term.LineKind {
	if s == "" {
		return fallback
	}
	return term.ParseLineKind(s)
}
