// Package bubbletea provides an interactive hunk picker using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/commitgen"
)

// ErrAborted is returned when the user quits the picker without confirming.
var ErrAborted = errors.New("hunk selection aborted")

// previewLines caps how much of the current hunk is shown below the list.
const previewLines = 12

// Model is the Bubble Tea model for picking hunks.
type Model struct {
	hunks     []commitgen.DiffHunk
	selected  map[int]bool
	cursor    int
	keys      KeyMap
	theme     commitgen.Theme
	tokenizer commitgen.Tokenizer // optional, plain text preview when nil
	width     int
	height    int
	confirmed bool
	aborted   bool
}

// NewModel creates a new Model. All hunks start selected; the tokenizer may
// be nil to disable syntax highlighting in the preview.
func NewModel(hunks []commitgen.DiffHunk, theme commitgen.Theme, tokenizer commitgen.Tokenizer) Model {
	selected := make(map[int]bool, len(hunks))
	for i := range hunks {
		selected[i] = true
	}
	return Model{
		hunks:     hunks,
		selected:  selected,
		keys:      DefaultKeyMap(),
		theme:     theme,
		tokenizer: tokenizer,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.hunks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.selected[m.cursor] = !m.selected[m.cursor]
		case key.Matches(msg, m.keys.SelectAll):
			for i := range m.hunks {
				m.selected[i] = true
			}
		case key.Matches(msg, m.keys.SelectNon):
			for i := range m.hunks {
				m.selected[i] = false
			}
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if len(m.hunks) == 0 {
		return "No hunks to pick.\n"
	}

	styles := m.theme.Styles()
	cursorStyle := styleFor(styles.Cursor)
	selectedStyle := styleFor(styles.Selected)
	pathStyle := styleFor(styles.FilePath)
	headerStyle := styleFor(styles.HunkHeader)
	helpStyle := styleFor(styles.Help)

	var sb strings.Builder
	for i, h := range m.hunks {
		marker := "[ ]"
		if m.selected[i] {
			marker = selectedStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s %s %s", marker, pathStyle.Render(h.FilePath), headerStyle.Render(h.Header))
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderPreview(m.hunks[m.cursor]))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("space toggle · a all · n none · enter confirm · q abort"))
	sb.WriteString("\n")

	return sb.String()
}

// renderPreview renders the body of the hunk under the cursor with diff
// coloring and, when a tokenizer is available, syntax highlighting of the
// code portion of each line.
func (m Model) renderPreview(h commitgen.DiffHunk) string {
	styles := m.theme.Styles()
	addedStyle := styleFor(styles.Added)
	deletedStyle := styleFor(styles.Deleted)
	contextStyle := styleFor(styles.Context)

	lines := strings.Split(h.Content, "\n")
	if len(lines) > previewLines {
		lines = lines[:previewLines]
	}

	var sb strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			sb.WriteString(addedStyle.Render(m.highlight(h, line)))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(deletedStyle.Render(line))
		default:
			sb.WriteString(contextStyle.Render(line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// highlight runs the tokenizer over the code portion of an added line,
// falling back to plain text when tokenization is unavailable.
func (m Model) highlight(h commitgen.DiffHunk, line string) string {
	if m.tokenizer == nil || len(line) < 2 {
		return line
	}
	tokens := m.tokenizer.Tokenize(h.Language, line[1:])
	if tokens == nil {
		return line
	}
	var sb strings.Builder
	sb.WriteString(line[:1])
	for _, tok := range tokens {
		style := lipgloss.NewStyle()
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(tok.Text))
	}
	return sb.String()
}

func styleFor(pair commitgen.ColorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if pair.Foreground != "" {
		style = style.Foreground(lipgloss.Color(pair.Foreground))
	}
	if pair.Background != "" {
		style = style.Background(lipgloss.Color(pair.Background))
	}
	return style
}

// Confirmed reports whether the user confirmed the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Aborted reports whether the user quit without confirming.
func (m Model) Aborted() bool {
	return m.aborted
}

// Selected returns the picked hunks in their original order.
func (m Model) Selected() []commitgen.DiffHunk {
	var picked []commitgen.DiffHunk
	for i, h := range m.hunks {
		if m.selected[i] {
			picked = append(picked, h)
		}
	}
	return picked
}

// Compile-time interface verification.
var _ commitgen.Picker = (*Picker)(nil)

// Picker implements commitgen.Picker using a Bubble Tea TUI.
type Picker struct {
	theme     commitgen.Theme
	tokenizer commitgen.Tokenizer
}

// NewPicker creates a new Picker. The tokenizer may be nil.
func NewPicker(theme commitgen.Theme, tokenizer commitgen.Tokenizer) *Picker {
	return &Picker{theme: theme, tokenizer: tokenizer}
}

// Pick displays the hunks and blocks until the user confirms or aborts.
func (p *Picker) Pick(ctx context.Context, hunks []commitgen.DiffHunk) ([]commitgen.DiffHunk, error) {
	if len(hunks) == 0 {
		return nil, nil
	}

	program := tea.NewProgram(
		NewModel(hunks, p.theme, p.tokenizer),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("bubbletea: unexpected final model %T", final)
	}
	if m.Aborted() {
		return nil, ErrAborted
	}
	return m.Selected(), nil
}
