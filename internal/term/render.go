package term

import (
	"html"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the visible window of r as a bordered terminal box.
func Render(r *Region, th Theme, width int) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(th.Primary)
	body := lipgloss.NewStyle().Foreground(th.Text)
	link := lipgloss.NewStyle().Underline(true).Foreground(th.Accent)
	cursor := lipgloss.NewStyle().Foreground(th.Accent)

	var rows []string
	for _, l := range r.Lines() {
		style := body
		if l.Kind != Paragraph {
			style = heading
		}

		var cur strings.Builder
		if l.placeholder {
			cur.WriteString(nbsp)
		}
		for _, n := range l.nodes {
			switch n := n.(type) {
			case Text:
				cur.WriteString(style.Render(string(n)))
			case Break:
				rows = append(rows, cur.String())
				cur.Reset()
			case *Anchor:
				cur.WriteString(link.Render(n.Text))
			case *Cursor:
				if n.Hidden {
					cur.WriteString(strings.Repeat(" ", lipgloss.Width(n.Glyph)))
				} else {
					cur.WriteString(cursor.Render(n.Glyph))
				}
			}
		}
		rows = append(rows, cur.String())
		for i := 1; i < l.Kind.Height(); i++ {
			rows = append(rows, "")
		}
	}

	// Rows are clipped to the inner width so the box keeps its height.
	if width > 4 {
		clip := lipgloss.NewStyle().MaxWidth(width - 4)
		for i, row := range rows {
			rows[i] = clip.Render(row)
		}
	}

	if n := r.Rows(); n > 0 {
		top := r.ScrollTop()
		if top > len(rows) {
			top = len(rows)
		}
		rows = rows[top:]
		if len(rows) > n {
			rows = rows[:n]
		}
		for len(rows) < n {
			rows = append(rows, "")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 1)
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(strings.Join(rows, "\n"))
}

// HTML renders r as the markup a browser would hold after the same script.
func HTML(r *Region) string {
	var b strings.Builder
	for i, l := range r.Lines() {
		if i > 0 {
			b.WriteString("\n")
		}
		tag := string(l.Kind)
		b.WriteString("<" + tag)
		class := strings.TrimSpace(strings.Join([]string{l.Class, promptClass(l.Prompt)}, " "))
		if class != "" {
			b.WriteString(` class="` + html.EscapeString(class) + `"`)
		}
		b.WriteString(">")
		if l.placeholder {
			b.WriteString("&nbsp;")
		}
		for _, n := range l.nodes {
			switch n := n.(type) {
			case Text:
				b.WriteString(strings.ReplaceAll(html.EscapeString(string(n)), nbsp, "&nbsp;"))
			case Break:
				b.WriteString("<br />")
			case *Anchor:
				b.WriteString("<a")
				keys := make([]string, 0, len(n.Attrs))
				for k := range n.Attrs {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					b.WriteString(" " + html.EscapeString(k) + `="` + html.EscapeString(n.Attrs[k]) + `"`)
				}
				b.WriteString(` href="` + html.EscapeString(n.Href) + `">`)
				b.WriteString(html.EscapeString(n.Text) + "</a>")
			case *Cursor:
				b.WriteString(`<span class="cursor"`)
				if n.Hidden {
					b.WriteString(` style="display: none;"`)
				}
				b.WriteString(">" + html.EscapeString(n.Glyph) + "</span>")
			}
		}
		b.WriteString("</" + tag + ">")
	}
	return b.String()
}

func promptClass(prompt bool) string {
	if prompt {
		return "prompt"
	}
	return ""
}
