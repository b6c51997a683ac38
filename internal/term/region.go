package term

import (
	"strings"
	"sync"
)

const nbsp = "\u00a0"

type LineKind string

const (
	H1        LineKind = "h1"
	H2        LineKind = "h2"
	H3        LineKind = "h3"
	Paragraph LineKind = "p"
)

// ParseLineKind maps an element name onto a LineKind, defaulting to a
// paragraph for anything unrecognized.
func ParseLineKind(s string) LineKind {
	switch LineKind(strings.ToLower(strings.TrimSpace(s))) {
	case H1:
		return H1
	case H2:
		return H2
	case H3:
		return H3
	default:
		return Paragraph
	}
}

// Height is the number of rows a line of this kind occupies.
func (k LineKind) Height() int {
	switch k {
	case H1, H2:
		return 2
	default:
		return 1
	}
}

type Node interface {
	node()
}

type Text string

type Break struct{}

type Anchor struct {
	Href  string
	Attrs map[string]string
	Text  string
}

type Cursor struct {
	Glyph  string
	Hidden bool
}

func (Text) node()    {}
func (Break) node()   {}
func (*Anchor) node() {}
func (*Cursor) node() {}

type Line struct {
	Kind        LineKind
	Class       string
	Prompt      bool
	placeholder bool
	nodes       []Node
}

// Nodes returns a copy of the line's content.
func (l *Line) Nodes() []Node {
	out := make([]Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

func (l *Line) text() string {
	if l.placeholder {
		return nbsp
	}
	var b strings.Builder
	for _, n := range l.nodes {
		switch n := n.(type) {
		case Text:
			b.WriteString(string(n))
		case Break:
			b.WriteString("\n")
		case *Anchor:
			b.WriteString(n.Text)
		}
	}
	return b.String()
}

// height counts the rows l occupies, one more for every break.
func (l *Line) height() int {
	h := l.Kind.Height()
	for _, n := range l.nodes {
		if _, ok := n.(Break); ok {
			h++
		}
	}
	return h
}

func (l *Line) indexOf(c *Cursor) int {
	for i, n := range l.nodes {
		if n == Node(c) {
			return i
		}
	}
	return -1
}

func (l *Line) setContent(nodes ...Node) {
	l.placeholder = false
	l.nodes = nodes
}

// Region is the display area a sequencer renders into. Every method locks,
// so a renderer may read while timers mutate.
type Region struct {
	mu        sync.Mutex
	lines     []*Line
	rows      int
	scrollTop int
}

// NewRegion creates a region showing rows rows at a time; rows <= 0 means
// unbounded.
func NewRegion(rows int) *Region {
	return &Region{rows: rows, lines: make([]*Line, 0)}
}

func (r *Region) Rows() int { return r.rows }

// Clear empties the region, like emptying the container before a script.
func (r *Region) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = r.lines[:0]
	r.scrollTop = 0
}

// AddLine appends a placeholder line and scrolls so the newest line is
// visible.
func (r *Region) AddLine(kind LineKind, class string) *Line {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := &Line{Kind: kind, Class: class, placeholder: true}
	r.lines = append(r.lines, l)

	r.scrollTop = r.height()
	return l
}

// MakePrompt marks l as a prompt line whose only content is c.
func (r *Region) MakePrompt(l *Line, c *Cursor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.Prompt = true
	l.setContent(c)
}

// RemoveCursor detaches c from whichever line holds it. Removing a cursor
// that is not in the region does nothing.
func (r *Region) RemoveCursor(c *Cursor) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if i := l.indexOf(c); i >= 0 {
			l.nodes = append(l.nodes[:i], l.nodes[i+1:]...)
			return
		}
	}
}

// InsertBefore places n immediately left of c. Adjacent text merges. It
// reports false when c is not in the region.
func (r *Region) InsertBefore(c *Cursor, n Node) bool {
	if c == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		i := l.indexOf(c)
		if i < 0 {
			continue
		}
		if t, ok := n.(Text); ok && i > 0 {
			if prev, ok := l.nodes[i-1].(Text); ok {
				l.nodes[i-1] = prev + t
				return true
			}
		}
		l.nodes = append(l.nodes, nil)
		copy(l.nodes[i+1:], l.nodes[i:])
		l.nodes[i] = n
		l.placeholder = false
		return true
	}
	return false
}

// AppendText adds s to the end of l. The placeholder stays in front as
// ordinary text.
func (r *Region) AppendText(l *Line, s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.placeholder {
		l.setContent(Text(nbsp))
	}
	if n := len(l.nodes); n > 0 {
		if prev, ok := l.nodes[n-1].(Text); ok {
			l.nodes[n-1] = prev + Text(s)
			return
		}
	}
	l.nodes = append(l.nodes, Text(s))
}

func (r *Region) AppendAnchorText(a *Anchor, s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.Text += s
}

func (r *Region) ToggleCursor(c *Cursor) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c.Hidden = !c.Hidden
}

// Contains reports whether c is currently placed in the region.
func (r *Region) Contains(c *Cursor) bool {
	if c == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if l.indexOf(c) >= 0 {
			return true
		}
	}
	return false
}

func (r *Region) CursorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.lines {
		for _, node := range l.nodes {
			if _, ok := node.(*Cursor); ok {
				n++
			}
		}
	}
	return n
}

// Text is the visible text of every line, one per row, without the cursor.
func (r *Region) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	parts := make([]string, len(r.lines))
	for i, l := range r.lines {
		parts[i] = l.text()
	}
	return strings.Join(parts, "\n")
}

// CharCount is the number of characters written into the region: text and
// anchor content only, without placeholders, breaks or the cursor.
func (r *Region) CharCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.lines {
		for _, node := range l.nodes {
			switch node := node.(type) {
			case Text:
				n += countTyped(string(node))
			case *Anchor:
				n += countTyped(node.Text)
			}
		}
	}
	return n
}

func countTyped(s string) int {
	n := 0
	for _, c := range s {
		if c != '\u00a0' {
			n++
		}
	}
	return n
}

// Lines returns a snapshot of the lines. Anchors and cursors are copied so
// the caller may read them without holding the lock.
func (r *Region) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	for i, l := range r.lines {
		cp := *l
		cp.nodes = make([]Node, len(l.nodes))
		for j, n := range l.nodes {
			switch n := n.(type) {
			case *Anchor:
				a := *n
				cp.nodes[j] = &a
			case *Cursor:
				c := *n
				cp.nodes[j] = &c
			default:
				cp.nodes[j] = n
			}
		}
		out[i] = cp
	}
	return out
}

func (r *Region) height() int {
	h := 0
	for _, l := range r.lines {
		h += l.height()
	}
	return h
}

// ScrollTop is the first visible row, clamped to the content.
func (r *Region) ScrollTop() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rows <= 0 {
		return 0
	}
	max := r.height() - r.rows
	if max < 0 {
		max = 0
	}
	if r.scrollTop > max {
		return max
	}
	return r.scrollTop
}
