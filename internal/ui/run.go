package ui

import (
	tea "charm.land/bubbletea/v2"
)

// RunOptions configures an interactive session.
type RunOptions struct {
	NoColor bool
	KeyMode KeyMode
}

// Run starts the Bubble Tea program over the document and blocks until the
// user quits. Bubble Tea owns the terminal session: raw mode and the alt
// screen are released on every exit path, panics included, so the terminal
// is never left broken.
func Run(root interface{}, opts RunOptions, progOpts ...tea.ProgramOption) error {
	m := NewModel(root)
	m.NoColor = opts.NoColor
	m.Theme = CurrentTheme()
	if opts.KeyMode != "" {
		m.SetKeyMode(opts.KeyMode)
	}

	prog := tea.NewProgram(&m, progOpts...)
	_, err := prog.Run()
	return err
}
