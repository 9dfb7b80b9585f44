package ui

import tea "charm.land/bubbletea/v2"

// SnapshotConfig sizes a single-frame render.
type SnapshotConfig struct {
	Width   int
	Height  int
	NoColor bool
	KeyMode KeyMode
}

// RenderSnapshot renders one frame of the explorer over the document without
// entering a terminal session. Used by the CLI --snapshot flag and by tests.
func RenderSnapshot(root interface{}, cfg SnapshotConfig) string {
	m := NewModel(root)
	m.NoColor = cfg.NoColor
	m.Theme = CurrentTheme()
	if cfg.KeyMode != "" {
		m.SetKeyMode(cfg.KeyMode)
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = defaultWinWidth
	}
	if h <= 0 {
		h = defaultWinHeight
	}
	model, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	if mm, ok := model.(*Model); ok {
		return mm.render()
	}
	return m.render()
}
