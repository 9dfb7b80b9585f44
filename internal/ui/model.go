// Package ui renders the explorer session with Bubble Tea: one breadcrumb
// line, the current node's rows with a cursor marker, and a footer with the
// key legend and position. The render loop is fully synchronous; the only
// blocking point is the wait for the next input event.
package ui

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/jx/internal/explorer"
	"github.com/oakwood-commons/jx/internal/formatter"
)

const (
	defaultWinWidth  = 80
	defaultWinHeight = 24
)

// Model is the Bubble Tea model wrapping one explorer session.
type Model struct {
	Session *explorer.Session

	Keys    KeyMap
	KeyMode KeyMode
	Theme   Theme
	NoColor bool

	WinWidth  int
	WinHeight int

	scroll   int
	quitting bool
}

// NewModel creates a model at the document root with default dimensions;
// the real size arrives with the first WindowSizeMsg.
func NewModel(root interface{}) Model {
	mode := DefaultKeyMode
	return Model{
		Session:   explorer.NewSession(root),
		Keys:      NewKeyMap(mode),
		KeyMode:   mode,
		Theme:     CurrentTheme(),
		WinWidth:  defaultWinWidth,
		WinHeight: defaultWinHeight,
	}
}

// SetKeyMode switches the keybinding set.
func (m *Model) SetKeyMode(mode KeyMode) {
	if !IsValidKeyMode(string(mode)) {
		mode = DefaultKeyMode
	}
	m.KeyMode = mode
	m.Keys = NewKeyMap(mode)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WinWidth = msg.Width
		m.WinHeight = msg.Height
		m.syncScroll()
		return m, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case matches(keyStr, m.Keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case matches(keyStr, m.Keys.Up):
			m.Session.CursorPrev()
		case matches(keyStr, m.Keys.Down):
			m.Session.CursorNext()
		case matches(keyStr, m.Keys.Back):
			m.Session.MoveUp()
		case matches(keyStr, m.Keys.Forward):
			m.Session.MoveDown()
		case matches(keyStr, m.Keys.Top):
			m.Session.CursorFirst()
		case matches(keyStr, m.Keys.Bottom):
			m.Session.CursorLast()
		}
		// Anything unbound falls through untouched: unknown keys are
		// absorbed, never reported.
		m.syncScroll()
		return m, nil
	}
	return m, nil
}

// syncScroll keeps the cursor row inside the visible window after any
// navigation or resize.
func (m *Model) syncScroll() {
	m.scroll = clampScroll(m.scroll, m.Session.Cursor(), m.Session.RowCount(), m.rowViewHeight())
}

// rowViewHeight is the number of rows that fit between breadcrumb and footer.
func (m *Model) rowViewHeight() int {
	h := m.WinHeight - chromeLines
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) View() tea.View {
	if m.quitting {
		// Blank final frame so the alt screen is left clean on exit.
		return tea.NewView("")
	}
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render builds the full frame as plain text plus optional styling. Kept
// separate from View so snapshot mode and tests can capture frames without a
// terminal.
func (m *Model) render() string {
	rows := m.Session.Rows()
	layout := ComputeLayout(rows)
	cursor := m.Session.Cursor()

	var b strings.Builder
	b.WriteString(m.styled(formatter.Truncate(Breadcrumb(m.Session.Path()), m.WinWidth), m.Theme.BreadcrumbColor, nil))
	b.WriteString("\n")

	height := m.rowViewHeight()
	start, end := m.scroll, m.scroll+height
	if end > len(rows) {
		end = len(rows)
	}

	switch {
	case len(rows) == 0:
		b.WriteString(m.renderPlaceholderLine())
		b.WriteString("\n")
	default:
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(rows[i], layout, i == cursor))
			b.WriteString("\n")
		}
	}

	// Pad so the footer sits on the last line.
	drawn := end - start
	if len(rows) == 0 {
		drawn = 1
	}
	for i := drawn; i < height; i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(len(rows), cursor))
	return b.String()
}

// renderRow draws one row: marker column, key column, value column. Leaf
// rows have no key; their value starts at the key column.
func (m *Model) renderRow(row explorer.Row, layout Layout, selected bool) string {
	var b strings.Builder
	if selected {
		b.WriteString(m.styled(">", m.Theme.MarkerColor, nil))
		b.WriteString(" ")
	} else {
		b.WriteString(strings.Repeat(" ", layout.KeyCol))
	}

	maxValue := m.WinWidth - layout.ValueCol
	if row.Key.IsLeaf() {
		b.WriteString(m.styledRowText(formatter.Truncate(row.ValueText, m.WinWidth-layout.KeyCol), m.Theme.ValueColor, selected))
		return b.String()
	}

	keyText := row.KeyText
	gap := layout.ValueCol - layout.KeyCol - formatter.Width(keyText)
	b.WriteString(m.styledRowText(keyText, m.Theme.KeyColor, selected))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(m.styledRowText(formatter.Truncate(row.ValueText, maxValue), m.Theme.ValueColor, selected))
	return b.String()
}

func (m *Model) renderPlaceholderLine() string {
	return m.styled(">", m.Theme.MarkerColor, nil) + " " + m.styled(emptyPlaceholder, m.Theme.PlaceholderFG, nil)
}

// renderFooter draws the key legend on the left and the position indicator
// on the right, padded to the window width. Legend entries that do not fit
// next to the position indicator are dropped from the right end so the
// footer never overflows the window.
func (m *Model) renderFooter(rowCount, cursor int) string {
	shown := 0
	if rowCount > 0 {
		shown = cursor + 1
	}
	right := fmt.Sprintf("%s: %d/%d", formatter.TypeLabel(m.Session.Node()), shown, rowCount)
	right = m.styled(right, m.Theme.StatusColor, nil)

	avail := m.WinWidth - lipgloss.Width(right) - 1
	var parts []string
	used := 0
	for _, b := range m.Keys.helpEntries() {
		h := b.Help()
		entry := m.styled(h.Key, m.Theme.HelpKey, nil) + " " + m.styled(h.Desc, m.Theme.HelpValue, nil)
		w := lipgloss.Width(entry)
		sep := 0
		if len(parts) > 0 {
			sep = 2
		}
		if used+sep+w > avail {
			break
		}
		parts = append(parts, entry)
		used += sep + w
	}
	left := strings.Join(parts, "  ")

	pad := m.WinWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// styled applies foreground/background colors unless color is disabled.
func (m *Model) styled(s string, fg, bg color.Color) string {
	if m.NoColor || (fg == nil && bg == nil) {
		return s
	}
	st := lipgloss.NewStyle()
	if fg != nil {
		st = st.Foreground(fg)
	}
	if bg != nil {
		st = st.Background(bg)
	}
	return st.Render(s)
}

// styledRowText renders row text, swapping in the selection colors when the
// row is under the cursor.
func (m *Model) styledRowText(s string, fg color.Color, selected bool) string {
	if selected && !m.NoColor && (m.Theme.SelectedFG != nil || m.Theme.SelectedBG != nil) {
		return m.styled(s, m.Theme.SelectedFG, m.Theme.SelectedBG)
	}
	return m.styled(s, fg, nil)
}
