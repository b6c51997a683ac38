package page

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/typist/internal/anim"
	"github.com/san-kum/typist/internal/config"
	"github.com/san-kum/typist/internal/scroll"
	"github.com/san-kum/typist/internal/term"
	"github.com/san-kum/typist/internal/typist"
)

// fireMsg carries a timer callback onto the update loop.
type fireMsg func()

type Model struct {
	cfg    *config.Config
	ops    []typist.Operation
	loop   *anim.Loop
	region *term.Region
	seq    *typist.Sequencer
	nav    *scroll.Navigator
	doc    *document
	theme  term.Theme
	width  int
	height int
	status string
}

// New builds the page for cfg. Timers run on a Loop drained by the program.
func New(cfg *config.Config) (Model, error) {
	loop := anim.NewLoop()
	return newModel(cfg, loop, loop)
}

func newModel(cfg *config.Config, sched anim.Scheduler, loop *anim.Loop) (Model, error) {
	ops, err := typist.Compile(cfg.Script)
	if err != nil {
		return Model{}, fmt.Errorf("compile script: %w", err)
	}

	region := term.NewRegion(cfg.TerminalHeight)
	seq := typist.New(region, sched, typist.Options{
		Speed:         cfg.Speed,
		BlinkInterval: time.Duration(cfg.BlinkMs) * time.Millisecond,
		CursorGlyph:   cfg.Cursor,
	})
	doc := newDocument(cfg)

	m := Model{
		cfg:    cfg,
		ops:    ops,
		loop:   loop,
		region: region,
		seq:    seq,
		nav:    scroll.New(doc, sched, time.Duration(cfg.ScrollMs)*time.Millisecond),
		doc:    doc,
		theme:  term.GetTheme(cfg.Theme),
		width:  80,
		height: 24,
	}
	m.seq.Play(ops)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	m.seq.Start()
	return m.wait()
}

func (m Model) wait() tea.Cmd {
	if m.loop == nil {
		return nil
	}
	return func() tea.Msg { return fireMsg(<-m.loop.C()) }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fireMsg:
		msg()
		return m, m.wait()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.doc.resize(msg.Height - 1)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.seq.Close()
		return m, tea.Quit
	case "t", "home":
		log.Printf("scroll to top from %d", m.doc.ScrollOffset())
		m.nav.ToTop()
		m.status = ""
	case "up", "k":
		m.doc.SetScrollOffset(m.doc.ScrollOffset() - 1)
	case "down", "j":
		m.doc.SetScrollOffset(m.doc.ScrollOffset() + 1)
	case "r":
		m.replay()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx >= len(m.cfg.Sections) {
				m.status = fmt.Sprintf("no section %s", key)
				return m, nil
			}
			id := m.cfg.Sections[idx].ID
			if err := m.nav.ToElement(id); err != nil {
				log.Printf("scroll to %s: %v", id, err)
				m.status = err.Error()
				return m, nil
			}
			log.Printf("scroll to %s", id)
			m.status = ""
		}
	}
	return m, nil
}

func (m Model) replay() {
	m.region.Clear()
	m.seq.Bind(m.region)
	m.seq.Play(m.ops)
	m.seq.Start()
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// lines renders the whole document, one entry per row.
func (m Model) lines() []string {
	rows := make([]string, 0, m.doc.total)
	rows = append(rows, titleStyle.Foreground(m.theme.Primary).Render(m.cfg.Title), "")
	rows = append(rows, strings.Split(term.Render(m.region, m.theme, m.width), "\n")...)
	rows = append(rows, "")
	for i, s := range m.cfg.Sections {
		rows = append(rows, sectionStyle.Foreground(m.theme.Accent).Render(fmt.Sprintf("%d. %s", i+1, s.Title)))
		for _, line := range strings.Split(s.Body, "\n") {
			rows = append(rows, bodyStyle.Render(line))
		}
		rows = append(rows, "")
	}
	return rows
}

func (m Model) View() string {
	rows := m.lines()
	top := m.doc.ScrollOffset()
	if top > len(rows) {
		top = len(rows)
	}
	rows = rows[top:]
	if view := m.height - 1; view > 0 && len(rows) > view {
		rows = rows[:view]
	}

	help := "1-9 sections  t top  j/k scroll  r replay  q quit"
	if m.status != "" {
		help = m.status + "  " + help
	}
	return strings.Join(rows, "\n") + "\n" + helpStyle.Render(help)
}

// Run starts the page in the alternate screen and blocks until quit.
func Run(cfg *config.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
