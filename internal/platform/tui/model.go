package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgirault/plotlab/internal/config"
	"github.com/mgirault/plotlab/internal/core"
	"github.com/mgirault/plotlab/internal/sim"
	"github.com/mgirault/plotlab/internal/storage"
)

// chromeRows is how many rows below the plot are reserved for the input
// field, the status line, and the help line.
const chromeRows = 3

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model for an interactive play session.
// Every keystroke in the input field re-samples and re-scores the
// expression, so the player sees their curve track the target live.
type Model struct {
	sess   *sim.Session
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	input     textinput.Model
	banner    string // Hint or skip/match notice shown on the status line
	bannerSeq int    // Bumped per banner so stale expiry timers are ignored
	saved     bool
	quitting  bool

	initialHints int
}

// NewModel creates a play model over a fresh session.
func NewModel(cfg config.Config, store *storage.Store, rc core.RuntimeConfig) Model {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Prompt = "y = "
	ti.Placeholder = "sin(x)"
	ti.CharLimit = 120
	ti.Focus()

	return Model{
		sess:         sim.NewSession(cfg, rc.Seed),
		screen:       core.NewScreen(rc.ScreenW, core.Max(rc.ScreenH-chromeRows, 1)),
		store:        store,
		config:       rc,
		input:        ti,
		initialHints: cfg.Gameplay.InitialHints,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-chromeRows, 1))
		m.input.Width = core.Max(msg.Width-8, 10)
		return m, nil

	case clearBannerMsg:
		if msg.Seq == m.bannerSeq {
			m.banner = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.saveResult()
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if m.sess.Advance() {
			m.input.SetValue("")
			m.banner = ""
		}
		return m, nil

	case "tab":
		m.sess.Skip()
		if m.sess.Phase() == sim.PhaseSkipped {
			m.banner = fmt.Sprintf("Skipped. The curve was y = %s. Enter to continue.", m.sess.Target())
		}
		return m, nil

	case "ctrl+g":
		if hint, ok := m.sess.Hint(); ok {
			m.banner = "Hint: " + hint
		} else {
			m.banner = "No hints left."
		}
		m.bannerSeq++
		return m, clearBannerCmd(m.bannerSeq)
	}

	// Once the level is matched or skipped the input is frozen until
	// the player advances.
	if m.sess.Phase() != sim.PhaseAwaitingInput {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	before := m.sess.Score()
	m.sess.SetInput(m.input.Value())
	if m.sess.Phase() == sim.PhaseMatched {
		m.banner = fmt.Sprintf("Matched! +%d points. Enter for the next level.", m.sess.Score()-before)
	}

	return m, cmd
}

// saveResult records the finished session, once. Zero-score sessions
// are not worth keeping.
func (m *Model) saveResult() {
	if m.saved || m.store == nil || m.sess.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save on the way out
	m.store.SaveResult(storage.Result{
		Level:      m.sess.Level(),
		Tier:       m.sess.Tier().Name,
		Score:      m.sess.Score(),
		HintsUsed:  m.initialHints - m.sess.HintsLeft(),
		Expression: m.sess.Input(),
	})
	m.saved = true
}

// statusLine picks what to show under the input: an active banner wins,
// then a parse error, then the live score readout.
func (m Model) statusLine() string {
	if m.banner != "" {
		if m.sess.Phase() == sim.PhaseMatched {
			return matchStyle.Render(m.banner)
		}
		return bannerStyle.Render(m.banner)
	}

	if err := m.sess.InputErr(); err != nil {
		return errStyle.Render("✗ " + err.Error())
	}

	res := m.sess.LastResult()
	if res.Contributing == 0 {
		return infoStyle.Render("Type an expression to see your curve.")
	}
	tol := m.sess.Tier().Tolerance
	return infoStyle.Render(fmt.Sprintf("error %.4f / tolerance %.3f (%d points compared)", res.Error, tol, res.Contributing))
}

// View renders the plot, the input field, and the status lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawPlot(m.screen, m.sess)

	help := infoStyle.Render("enter: next level · tab: skip · ctrl+g: hint · esc: quit")
	return RenderScreen(m.screen) + "\n" + m.input.View() + "\n" + m.statusLine() + "\n" + help
}

// Run starts the Bubble Tea program for a local play session.
func Run(cfg config.Config, store *storage.Store, rc core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, store, rc),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
