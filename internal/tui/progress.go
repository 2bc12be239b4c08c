// Package tui shows a running exploration in the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rhythmlab/internal/explorer"
)

const (
	tickInterval = 100 * time.Millisecond
	barWidth     = 40
	topShown     = 5
)

type tickMsg time.Time

type doneMsg struct {
	results []explorer.Result
	err     error
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model drives one exploration and renders its progress.
type Model struct {
	ctx      context.Context
	ex       *explorer.Explorer
	params   explorer.Params
	progress explorer.Progress
	frame    int
	started  time.Time
	elapsed  time.Duration
	results  []explorer.Result
	err      error
	done     bool
	quitting bool
}

func NewModel(ctx context.Context, ex *explorer.Explorer, params explorer.Params) Model {
	return Model{ctx: ctx, ex: ex, params: params}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.explore(), tick())
}

func (m Model) explore() tea.Cmd {
	return func() tea.Msg {
		results, err := m.ex.ExploreAllCombinations(m.ctx, m.params)
		return doneMsg{results: results, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			m.ex.Stop()
		case "q", "ctrl+c", "esc":
			m.ex.Stop()
			m.quitting = true
			if m.done {
				return m, tea.Quit
			}
		}
		return m, nil

	case tickMsg:
		if m.started.IsZero() {
			m.started = time.Time(msg)
		}
		m.frame++
		m.progress = m.ex.Snapshot()
		m.elapsed = time.Time(msg).Sub(m.started)
		if m.done {
			return m, nil
		}
		return m, tick()

	case doneMsg:
		m.done = true
		m.results = explorer.SortByBalance(msg.results)
		m.err = msg.err
		m.progress = m.ex.Snapshot()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	status := string(m.progress.Status)
	if !m.done {
		status = spinner(m.frame) + " " + status
	}
	b.WriteString(title.Render("rhythmlab explore") + "  " + dim.Render(status) + "\n\n")

	fmt.Fprintf(&b, "%s %s\n", dim.Render("sides"), white.Render(fmt.Sprintf("%d-%d", m.params.MinSides, m.params.MaxSides)))
	fmt.Fprintf(&b, "%s  %s\n", dim.Render("size"), white.Render(fmt.Sprint(m.params.MaxCombinationSize)))
	fmt.Fprintf(&b, "%s %s\n\n", dim.Render("target"), white.Render(string(m.params.Target)))

	fmt.Fprintf(&b, "%s %5.1f%%\n", ProgressBar(m.progress.Percent, barWidth), m.progress.Percent)
	fmt.Fprintf(&b, "%s %d/%d   %s %s\n",
		dim.Render("tested"), m.progress.Current, m.progress.Total,
		dim.Render("found"), cyan.Render(fmt.Sprint(m.progress.Found)))
	if m.elapsed > 0 {
		fmt.Fprintf(&b, "%s %s\n", dim.Render("elapsed"), m.elapsed.Round(time.Millisecond))
	}

	if m.done && len(m.results) > 0 {
		b.WriteString("\n" + separator(barWidth) + "\n")
		for i, r := range m.results {
			if i == topShown {
				break
			}
			fmt.Fprintf(&b, "%s %s\n  %s\n",
				ScoreStyle(r.Balance.Score).Render(fmt.Sprintf("%-9s", r.Balance.Score)),
				white.Render(r.Pattern.Formula),
				StepLine(r.Pattern.Steps))
		}
	}
	if m.err != nil {
		b.WriteString("\n" + red.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + keyHint.Render("s stop · q quit"))
	return panel.Render(b.String()) + "\n"
}

// Run explores inside an inline bubbletea program and returns the
// results sorted by balance.
func Run(ctx context.Context, ex *explorer.Explorer, params explorer.Params) ([]explorer.Result, error) {
	final, err := tea.NewProgram(NewModel(ctx, ex, params), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	m := final.(Model)
	return m.results, m.err
}
