package page

import (
	"strings"

	"github.com/san-kum/typist/internal/config"
)

const (
	headerRows = 2
	borderRows = 2
)

// document is the scrollable page. It owns the scroll offset and knows where
// each section starts.
type document struct {
	offset   int
	view     int
	total    int
	sections []config.Section
	anchors  map[string]int
}

func newDocument(cfg *config.Config) *document {
	d := &document{
		sections: cfg.Sections,
		anchors:  make(map[string]int, len(cfg.Sections)),
		view:     24,
	}
	y := headerRows + cfg.TerminalHeight + borderRows + 1
	for _, s := range cfg.Sections {
		d.anchors[s.ID] = y
		y += 1 + len(strings.Split(s.Body, "\n")) + 1
	}
	d.total = y
	return d
}

func (d *document) ScrollOffset() int { return d.offset }

func (d *document) SetScrollOffset(y int) {
	max := d.total - d.view
	if max < 0 {
		max = 0
	}
	if y > max {
		y = max
	}
	if y < 0 {
		y = 0
	}
	d.offset = y
}

func (d *document) Offset(id string) (int, bool) {
	y, ok := d.anchors[id]
	return y, ok
}

func (d *document) resize(rows int) {
	if rows < 1 {
		rows = 1
	}
	d.view = rows
	d.SetScrollOffset(d.offset)
}
