package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/russwtaylor/portfolio/internal/typewriter"
)

const (
	colorAccent = "86"
	colorMuted  = "241"
)

var styles = struct {
	Name   lipgloss.Style
	Typed  lipgloss.Style
	Cursor lipgloss.Style
	Hint   lipgloss.Style
}{
	Name:   lipgloss.NewStyle().Bold(true).MarginBottom(1),
	Typed:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)).Bold(true),
	Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)),
	Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)).MarginTop(1),
}

// stepMsg carries an animator callback onto the bubbletea event loop.
type stepMsg struct {
	run func()
}

// programScheduler delivers every step through the program's message
// queue, so the animator only ever runs inside Update.
type programScheduler struct {
	program interface{ Send(tea.Msg) }
	clock   clock.Clock
}

func (s programScheduler) AfterFunc(d time.Duration, f func()) typewriter.Timer {
	return s.clock.AfterFunc(d, func() { s.program.Send(stepMsg{run: f}) })
}

// screen is the animator's display target; View reads it.
type screen struct {
	text string
}

func (s *screen) SetText(text string) { s.text = text }

type model struct {
	name   string
	anim   *typewriter.Animator
	screen *screen
}

func newModel(name string, phrases []string, timing typewriter.Timing) (model, error) {
	sc := &screen{}
	anim, err := typewriter.New(phrases,
		typewriter.WithTiming(timing),
		typewriter.WithDisplay(sc),
	)
	if err != nil {
		return model{}, err
	}
	return model{name: name, anim: anim, screen: sc}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		msg.run()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.anim.Stop()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	if m.name != "" {
		b.WriteString(styles.Name.Render(m.name))
		b.WriteString("\n")
	}
	b.WriteString(styles.Typed.Render(m.screen.text))
	b.WriteString(styles.Cursor.Render("▌"))
	b.WriteString("\n")
	st := m.anim.State()
	hint := fmt.Sprintf("phrase %d/%d · %s · q to quit", st.PhraseIndex+1, len(m.anim.Phrases()), st.Mode)
	b.WriteString(styles.Hint.Render(hint))
	b.WriteString("\n")
	return b.String()
}
