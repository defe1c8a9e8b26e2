package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tileblast/internal/config"
	"github.com/vovakirdan/tileblast/internal/level"
	"github.com/vovakirdan/tileblast/internal/session"
	"github.com/vovakirdan/tileblast/internal/storage"
)

// headerDistance is how far off-screen the level header starts its slide.
const headerDistance = 24

// ResultSaver persists finished sessions.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// PlayConfig holds everything a play screen needs besides the level.
type PlayConfig struct {
	TickRate   int
	Theme      string
	OpenTicks  int
	HoldTicks  int
	CloseTicks int
	SlideTicks int
	Options    session.Options
	Player     string
}

// PlayConfigFrom derives a play configuration from the application config.
func PlayConfigFrom(cfg config.Config, player string) PlayConfig {
	return PlayConfig{
		TickRate:   cfg.Display.TickRate,
		Theme:      cfg.Display.Theme,
		OpenTicks:  cfg.Popup.OpenTicks,
		HoldTicks:  cfg.Popup.HoldTicks,
		CloseTicks: cfg.Popup.CloseTicks,
		SlideTicks: cfg.Header.SlideTicks,
		Options: session.Options{
			Seed:         cfg.Gameplay.Seed,
			TNTThreshold: cfg.Gameplay.TNTThreshold,
			TNTRadius:    cfg.Gameplay.TNTRadius,
			VaseHits:     cfg.Gameplay.VaseHits,
			Refill:       cfg.Gameplay.Refill,
		},
		Player: player,
	}
}

// PlayModel is the Bubble Tea model for playing one level.
type PlayModel struct {
	rec    *level.Record
	config PlayConfig
	sess   *session.Session
	cursor level.Coord
	popup  *PopupController
	header *HeaderAnimator
	theme  Theme
	keys   PlayKeyMap
	help   help.Model
	saver  ResultSaver
	logger *log.Logger

	lastTap  session.TapResult
	saved    bool // Whether the result of the current session has been stored
	width    int
	quitting bool
}

// NewPlayModel creates a play screen for rec. saver and logger may be nil.
func NewPlayModel(rec *level.Record, saver ResultSaver, cfg PlayConfig, logger *log.Logger) (PlayModel, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Options.Seed == 0 {
		cfg.Options.Seed = time.Now().UnixNano()
	}

	m := PlayModel{
		rec:    rec,
		config: cfg,
		popup:  NewPopupController(cfg.OpenTicks, cfg.HoldTicks, cfg.CloseTicks),
		header: NewHeaderAnimator(cfg.SlideTicks, headerDistance),
		theme:  ThemeByName(cfg.Theme),
		keys:   DefaultPlayKeyMap(),
		help:   help.New(),
		saver:  saver,
		logger: logger,
	}
	if err := m.start(); err != nil {
		return PlayModel{}, err
	}
	return m, nil
}

// start begins a fresh session on the model's level.
func (m *PlayModel) start() error {
	sess, err := session.New(m.rec, m.config.Options)
	if err != nil {
		return err
	}
	m.sess = sess
	m.cursor = level.C(0, m.rec.Height-1)
	m.lastTap = session.TapResult{}
	m.saved = false
	m.popup.Hide()
	m.header.Restart()
	m.finishIfOver()
	return nil
}

// finishIfOver shows the end-of-level popup and stores the result once.
func (m *PlayModel) finishIfOver() {
	outcome := m.sess.Outcome()
	if outcome == session.OutcomePlaying || m.saved {
		return
	}

	switch outcome {
	case session.OutcomeWon:
		m.popup.Show(PopupWin, "Level complete!",
			fmt.Sprintf("Cleared in %d of %d moves", m.sess.MovesUsed(), m.rec.MoveBudget))
	case session.OutcomeLost:
		m.popup.Show(PopupLose, "Out of moves",
			fmt.Sprintf("%d obstacles left", m.sess.Ledger().TotalRemaining()))
	}

	m.saved = true
	if m.saver == nil {
		return
	}
	_, err := m.saver.SaveResult(storage.Result{
		LevelNumber: m.rec.Number,
		Outcome:     outcome.String(),
		MovesUsed:   m.sess.MovesUsed(),
		MoveBudget:  m.rec.MoveBudget,
		Player:      m.config.Player,
	})
	if err != nil {
		m.logger.Warn("could not save result", "level", m.rec.Number, "error", err)
	}
}

// Session returns the running session.
func (m PlayModel) Session() *session.Session {
	return m.sess
}

// Cursor returns the selected cell.
func (m PlayModel) Cursor() level.Coord {
	return m.cursor
}

// Popup returns the popup controller.
func (m PlayModel) Popup() *PopupController {
	return m.popup
}

// Header returns the header animator.
func (m PlayModel) Header() *HeaderAnimator {
	return m.header
}

// LastTap returns the result of the most recent tap.
func (m PlayModel) LastTap() session.TapResult {
	return m.lastTap
}

// IsQuitting returns true if the user asked to leave.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// Init starts the animation tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.popup.Tick()
		m.header.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if err := m.start(); err != nil {
			m.logger.Error("could not restart level", "level", m.rec.Number, "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.popup.Hide()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Tap):
		m.lastTap = m.sess.Tap(m.cursor)
		if m.lastTap.Valid {
			m.logger.Debug("tap",
				"at", m.cursor.String(),
				"blasted", m.lastTap.Blasted,
				"destroyed", len(m.lastTap.Destroyed),
			)
		}
		m.finishIfOver()
	}

	return m, nil
}

// moveCursor shifts the cursor, keeping it on the board.
func (m *PlayModel) moveCursor(dc, dr int) {
	next := m.cursor.Add(dc, dr)
	if m.sess.Board().InBounds(next) {
		m.cursor = next
	}
}

// View renders the play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.theme.HUDTitle.Render(fmt.Sprintf("LEVEL %d", m.rec.Number))
	b.WriteString(strings.Repeat(" ", m.header.Offset()))
	b.WriteString(title)
	b.WriteString("\n")

	sep := m.theme.HUDSeparator.Render(" │ ")
	hud := m.theme.HUDControls.Render("Moves ") +
		m.theme.HUDValue.Render(fmt.Sprintf("%d", m.sess.MovesLeft()))
	if counter := NewObstacleCounter(m.sess.Ledger()).Render(m.theme); counter != "" {
		hud += sep + counter
	}
	b.WriteString(hud)
	b.WriteString("\n\n")

	showCursor := m.sess.Outcome() == session.OutcomePlaying
	b.WriteString(RenderBoard(m.sess, m.theme, m.cursor, showCursor))
	b.WriteString("\n")

	if m.popup.Visible() {
		b.WriteString("\n")
		b.WriteString(m.renderPopup())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))

	return b.String()
}

// renderPopup draws the popup scaled by its animation progress.
func (m PlayModel) renderPopup() string {
	titleStyle := m.theme.PopupText
	switch m.popup.Kind() {
	case PopupWin:
		titleStyle = m.theme.PopupWin
	case PopupLose:
		titleStyle = m.theme.PopupLose
	}

	content := titleStyle.Render(m.popup.Title())
	if m.popup.State() == PopupShown {
		content = lipgloss.JoinVertical(lipgloss.Center,
			content,
			m.theme.PopupText.Render(m.popup.Body()),
			m.theme.HUDControls.Render("r restart · q quit"),
		)
	}

	box := m.theme.PopupBorder.Render(content)
	// Reveal the box line by line while opening or closing.
	lines := strings.Split(box, "\n")
	shown := int(m.popup.Progress()*float64(len(lines)) + 0.5)
	shown = max(min(shown, len(lines)), 1)
	return strings.Join(lines[:shown], "\n")
}

// Run starts the Bubble Tea program for one level.
func Run(rec *level.Record, saver ResultSaver, cfg PlayConfig, logger *log.Logger) error {
	model, err := NewPlayModel(rec, saver, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
