// Package format renders exploration output as terminal or Markdown tables.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects how a table renders.
type Mode int

const (
	ASCII Mode = iota
	Markdown
)

// ParseMode maps "md" or "markdown" to Markdown; anything else is ASCII.
func ParseMode(s string) Mode {
	switch s {
	case "md", "markdown":
		return Markdown
	default:
		return ASCII
	}
}

type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Column configures one 1-based column.
type Column struct {
	Number   int
	Align    Align
	MaxWidth int
}

// TableBuilder collects rows and renders them once.
type TableBuilder interface {
	Header(cols ...string)
	Row(vals ...any)
	Footer(vals ...any)
	Columns(cols ...Column)
	String() string
}

func NewTable(m Mode) TableBuilder {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &prettyTable{writer: w, mode: m}
}

type prettyTable struct {
	writer table.Writer
	mode   Mode
}

func (p *prettyTable) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	p.writer.AppendHeader(row)
}

func (p *prettyTable) Row(vals ...any) {
	p.writer.AppendRow(table.Row(append([]any(nil), vals...)))
}

func (p *prettyTable) Footer(vals ...any) {
	p.writer.AppendFooter(table.Row(append([]any(nil), vals...)))
}

func (p *prettyTable) Columns(cols ...Column) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{
			Number:   c.Number,
			Align:    textAlign(c.Align),
			WidthMax: c.MaxWidth,
		}
	}
	p.writer.SetColumnConfigs(cfgs)
}

func (p *prettyTable) String() string {
	if p.mode == Markdown {
		return p.writer.RenderMarkdown()
	}
	return p.writer.Render()
}

func textAlign(a Align) text.Align {
	switch a {
	case AlignLeft:
		return text.AlignLeft
	case AlignCenter:
		return text.AlignCenter
	case AlignRight:
		return text.AlignRight
	default:
		return text.AlignDefault
	}
}
