// Package tui is the interactive front end for the calculator: two operand
// fields, an operator selector and a short in-session history.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/config"
	"github.com/pengelbrecht/calc/internal/configwatch"
)

const (
	fieldA = iota
	fieldB
	numFields
)

// ErrInvalidOperand is reported when a field does not hold an integer.
var ErrInvalidOperand = errors.New("invalid operand")

// reloadMsg wraps a config reload delivered by the watcher.
type reloadMsg configwatch.Reload

// Model is the bubbletea model for interactive mode.
type Model struct {
	inputs [numFields]textinput.Model
	focus  int
	op     calculator.Op

	result  *calculator.Result
	err     error
	notice  string
	history []calculator.Result

	historySize int
	styles      styles
	keys        keyMap
	help        help.Model
	width       int

	reloads <-chan configwatch.Reload
	logger  *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithReloads subscribes the model to config reloads.
func WithReloads(ch <-chan configwatch.Reload) Option {
	return func(m *Model) {
		m.reloads = ch
	}
}

// WithLogger sets the logger for computations.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates a model using the presentation settings in cfg.
func New(cfg config.Config, opts ...Option) Model {
	m := Model{
		op:     calculator.OpAdd,
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: slog.Default(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = 20
		ti.Width = 22
		m.inputs[i] = ti
	}
	m.inputs[fieldA].Focus()
	m.applyConfig(cfg)

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m *Model) applyConfig(cfg config.Config) {
	m.styles = newStyles(cfg.TUI.GetAccent())
	m.historySize = cfg.TUI.GetHistorySize()
	if len(m.history) > m.historySize {
		m.history = m.history[:m.historySize]
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForReload())
}

func (m Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case reloadMsg:
		if msg.Err != nil {
			m.notice = fmt.Sprintf("config not reloaded: %v", msg.Err)
		} else {
			m.applyConfig(msg.Config)
			m.notice = "config reloaded"
		}
		return m, m.waitForReload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Compute):
		m.compute()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		return m, m.clear()
	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus((m.focus + 1) % numFields)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus((m.focus + numFields - 1) % numFields)
	case key.Matches(msg, m.keys.NextOp):
		m.op = cycleOp(m.op, 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevOp):
		m.op = cycleOp(m.op, -1)
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		return m.handleRunes(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleRunes lets digits through to the focused field and treats operator
// symbols as operator selection. A "-" typed into an empty field starts a
// negative number instead.
func (m Model) handleRunes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(msg.Runes) != 1 {
		return m, nil
	}
	r := msg.Runes[0]
	current := m.inputs[m.focus].Value()

	switch {
	case r >= '0' && r <= '9':
	case r == '-' && current == "":
	case strings.ContainsRune("+-*/", r):
		op, err := calculator.ParseOp(string(r))
		if err != nil {
			return m, nil
		}
		m.op = op
		if m.focus == fieldA {
			return m, m.setFocus(fieldB)
		}
		return m, nil
	default:
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(field int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = field
	return m.inputs[m.focus].Focus()
}

func (m *Model) clear() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.result = nil
	m.err = nil
	m.notice = ""
	return m.setFocus(fieldA)
}

func (m *Model) compute() {
	m.notice = ""
	a, err := parseOperand("A", m.inputs[fieldA].Value())
	if err != nil {
		m.result, m.err = nil, err
		return
	}
	b, err := parseOperand("B", m.inputs[fieldB].Value())
	if err != nil {
		m.result, m.err = nil, err
		return
	}

	res, err := calculator.Compute(m.op, a, b)
	if err != nil {
		m.logger.Warn("calculation failed", "op", m.op, "a", a, "b", b, "error", err)
		m.result, m.err = nil, err
		return
	}
	m.logger.Debug("calculated", "op", res.Op, "a", res.A, "b", res.B, "result", res.Value)

	m.result, m.err = &res, nil
	m.history = append([]calculator.Result{res}, m.history...)
	if len(m.history) > m.historySize {
		m.history = m.history[:m.historySize]
	}
}

func parseOperand(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w %s: empty", ErrInvalidOperand, name)
	}
	n, err := strconv.Atoi(value)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w %s: %q out of range", ErrInvalidOperand, name, value)
	}
	if err != nil {
		return 0, fmt.Errorf("%w %s: %q", ErrInvalidOperand, name, value)
	}
	return n, nil
}

func cycleOp(op calculator.Op, step int) calculator.Op {
	n := len(calculator.Ops)
	for i, candidate := range calculator.Ops {
		if candidate == op {
			return calculator.Ops[(i+step+n)%n]
		}
	}
	return calculator.OpAdd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("calc"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.label.Render("A") + m.inputs[fieldA].View() + "\n")
	b.WriteString(m.styles.label.Render("") + m.opSelector() + "\n")
	b.WriteString(m.styles.label.Render("B") + m.inputs[fieldB].View() + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.truncate(m.styles.err.Render("error: " + m.err.Error())))
	case m.result != nil:
		b.WriteString(m.truncate(m.styles.result.Render("= " + strconv.Itoa(m.result.Value))))
	default:
		b.WriteString(m.styles.history.Render("="))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.truncate(m.styles.notice.Render(m.notice)) + "\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		for _, r := range m.history {
			b.WriteString(m.truncate(m.styles.history.Render("  "+r.String())) + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) opSelector() string {
	parts := make([]string, 0, len(calculator.Ops))
	for _, op := range calculator.Ops {
		if op == m.op {
			parts = append(parts, m.styles.opActive.Render(op.Symbol()))
			continue
		}
		parts = append(parts, m.styles.op.Render(op.Symbol()))
	}
	return strings.Join(parts, "")
}

func (m Model) truncate(line string) string {
	if m.width <= 0 || ansi.StringWidth(line) <= m.width {
		return line
	}
	return ansi.Truncate(line, m.width, "…")
}

// Op returns the selected operator.
func (m Model) Op() calculator.Op { return m.op }

// Result returns the last successful result, or nil.
func (m Model) Result() *calculator.Result { return m.result }

// Err returns the last error shown, or nil.
func (m Model) Err() error { return m.err }

// History returns the in-session results, newest first.
func (m Model) History() []calculator.Result { return m.history }
