// typed renders the portfolio's typed-text animation in a terminal.
//
// Phrases come from --phrase flags, else from the content file, else from
// the built-in copy. Press q to quit.
package main

import (
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/russwtaylor/portfolio/internal/content"
	"github.com/russwtaylor/portfolio/internal/typewriter"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		phrases     []string
		contentPath string
		speed       float64
	)
	flagSet := pflag.NewFlagSet("typed", pflag.ContinueOnError)
	flagSet.StringArrayVarP(&phrases, "phrase", "p", nil, "phrase to type (repeatable)")
	flagSet.StringVar(&contentPath, "content", "content.yaml", "content file to read phrases and name from")
	flagSet.Float64Var(&speed, "speed", 1, "delay multiplier; 0.5 types twice as fast")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if speed <= 0 {
		return fmt.Errorf("--speed must be positive, got %v", speed)
	}

	c, err := content.Load(contentPath)
	if err != nil {
		return err
	}
	if len(phrases) == 0 {
		phrases = c.Phrases
	}

	m, err := newModel(c.Name, phrases, typewriter.DefaultTiming().Scale(speed))
	if err != nil {
		return err
	}
	program := tea.NewProgram(m)
	if err := m.anim.Start(programScheduler{program: program, clock: clock.New()}); err != nil {
		return err
	}
	_, err = program.Run()
	m.anim.Stop()
	return err
}
