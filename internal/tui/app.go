// Package tui provides the interactive Bubble Tea front-end for benzconfig.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/benzenergy/benzconfig/internal/cli"
	"github.com/benzenergy/benzconfig/internal/config"
	"github.com/benzenergy/benzconfig/internal/fuel"
	"github.com/benzenergy/benzconfig/internal/model"
	"github.com/benzenergy/benzconfig/internal/profile"
	"github.com/benzenergy/benzconfig/internal/tui/components"
	"github.com/benzenergy/benzconfig/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// splashTickMsg advances the splash progress bar.
type splashTickMsg time.Time

type screen int

const (
	screenSplash screen = iota
	screenMain
)

type overlay int

const (
	overlayNone overlay = iota
	overlaySettings
	overlayAbout
	overlayHelp
)

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140
	minContentHeight = 5

	splashTick = 50 * time.Millisecond
)

// Options configures a new App.
type Options struct {
	Profiles    *profile.Set
	Season      model.Season
	Splash      time.Duration // zero skips the splash screen
	RevealDelay time.Duration // per character; zero shows results at once
	NeedSetup   bool
	Config      config.Config // saved back when first-run setup completes
	Logger      *slog.Logger
}

// pane is the calculator state of one season tab.
type pane struct {
	input    textinput.Model
	invalid  bool
	err      error
	estimate *model.TripEstimate
	reveal   reveal
}

func newDistanceInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Distance"
	ti.CharLimit = fuel.MaxDistanceLen
	ti.Width = fuel.MaxDistanceLen + 1
	ti.Prompt = ""
	return ti
}

// App is the root Bubble Tea model.
type App struct {
	profiles *profile.Set
	log      *slog.Logger
	cfg      config.Config

	panes  [2]pane
	active int

	screen   screen
	overlay  overlay
	settings settingsState

	// Splash
	spinner     spinner.Model
	splash      time.Duration
	splashStart time.Time
	splashPct   float64

	revealDelay time.Duration

	notice    string
	noticeErr bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	width  int
	height int
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	profiles := opts.Profiles
	if profiles == nil {
		profiles = profile.Defaults()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		profiles:    profiles,
		log:         logger,
		cfg:         opts.Config,
		active:      int(opts.Season),
		spinner:     sp,
		splash:      opts.Splash,
		revealDelay: opts.RevealDelay,
		needSetup:   opts.NeedSetup,
	}
	for i := range a.panes {
		a.panes[i].input = newDistanceInput()
	}
	if a.splash <= 0 {
		a.screen = screenMain
		a.panes[a.active].input.Focus()
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.screen == screenSplash {
		cmds = append(cmds, a.spinner.Tick, splashTickCmd())
	} else {
		cmds = append(cmds, textinput.Blink)
		if a.needSetup {
			cmds = append(cmds, func() tea.Msg { return startSetupMsg{} })
		}
	}
	return tea.Batch(cmds...)
}

// startSetupMsg opens the first-run form once the main screen is up.
type startSetupMsg struct{}

func splashTickCmd() tea.Cmd {
	return tea.Tick(splashTick, func(t time.Time) tea.Msg {
		return splashTickMsg(t)
	})
}

func (a App) season() model.Season {
	return model.Seasons[a.active]
}

func (a *App) setNotice(msg string, isErr bool) {
	a.notice = msg
	a.noticeErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case splashTickMsg:
		if a.screen != screenSplash {
			return a, nil
		}
		if a.splashStart.IsZero() {
			a.splashStart = time.Time(msg)
		}
		elapsed := time.Time(msg).Sub(a.splashStart)
		a.splashPct = float64(elapsed) / float64(a.splash)
		if elapsed >= a.splash {
			return a.endSplash()
		}
		return a, splashTickCmd()

	case spinner.TickMsg:
		if a.screen != screenSplash {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case startSetupMsg:
		return a.openSetup()

	case revealMsg:
		p := &a.panes[msg.season]
		return a, p.reveal.advance(msg, a.revealDelay)

	case tea.MouseMsg:
		if a.screen != screenMain || a.overlay != overlayNone || a.setupForm != nil {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				return a.switchSeason(tab)
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a.quit()
		}

		if a.screen == screenSplash {
			return a.endSplash()
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		switch a.overlay {
		case overlaySettings:
			return a.updateSettings(msg)
		case overlayAbout, overlayHelp:
			a.overlay = overlayNone
			return a, nil
		}

		return a.updateMain(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	var cmd tea.Cmd
	if a.overlay == overlaySettings {
		s := &a.settings
		s.inputs[s.cursor], cmd = s.inputs[s.cursor].Update(msg)
		return a, cmd
	}
	a.panes[a.active].input, cmd = a.panes[a.active].input.Update(msg)
	return a, cmd
}

func (a App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a.quit()
	case "enter":
		return a.calculate()
	case " ":
		a.panes[a.active].reveal.finish()
		return a, nil
	case "tab", "right":
		return a.switchSeason((a.active + 1) % len(a.panes))
	case "shift+tab", "left":
		return a.switchSeason((a.active - 1 + len(a.panes)) % len(a.panes))
	case "e":
		return a.openSettings(a.season())
	case "a":
		a.overlay = overlayAbout
		return a, nil
	case "?":
		a.overlay = overlayHelp
		return a, nil
	case "esc":
		p := &a.panes[a.active]
		p.input.Reset()
		p.invalid = false
		p.err = nil
		p.estimate = nil
		p.reveal.cancel()
		return a, nil
	}

	filtered, ok := numericKey(msg)
	if !ok {
		return a, nil
	}
	p := &a.panes[a.active]
	p.invalid = false
	p.err = nil
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(filtered)
	return a, cmd
}

// numericKey keeps digits and the decimal separator, with a comma rewritten
// to a dot. Editing keys pass through; anything else is dropped.
func numericKey(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		runes := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch {
			case r >= '0' && r <= '9', r == '.':
				runes = append(runes, r)
			case r == ',':
				runes = append(runes, '.')
			}
		}
		if len(runes) == 0 {
			return msg, false
		}
		msg.Runes = runes
		return msg, true
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyHome, tea.KeyEnd,
		tea.KeyCtrlA, tea.KeyCtrlE, tea.KeyCtrlK, tea.KeyCtrlU, tea.KeyCtrlW:
		return msg, true
	case tea.KeyLeft, tea.KeyRight:
		return msg, true
	}
	return msg, false
}

// calculate estimates the active season's trip and starts revealing the result.
func (a App) calculate() (tea.Model, tea.Cmd) {
	season := a.season()
	p := &a.panes[a.active]

	est, err := fuel.EstimateText(p.input.Value(), a.profiles.Profile(season))
	if err != nil {
		p.invalid = true
		p.err = err
		p.estimate = nil
		p.reveal.cancel()
		a.log.Debug("estimate rejected", "season", season.String(), "input", p.input.Value(), "err", err)
		return a, nil
	}

	p.invalid = false
	p.err = nil
	p.estimate = &est
	a.log.Debug("estimate", "season", season.String(), "distance", est.Distance, "total", est.TotalFuel)
	return a, p.reveal.start(season, cli.ResultText(est), a.revealDelay)
}

func (a App) switchSeason(idx int) (tea.Model, tea.Cmd) {
	if idx == a.active {
		return a, nil
	}
	a.panes[a.active].input.Blur()
	a.active = idx
	return a, a.panes[a.active].input.Focus()
}

func (a App) quit() (tea.Model, tea.Cmd) {
	for i := range a.panes {
		a.panes[i].reveal.cancel()
	}
	return a, tea.Quit
}

func (a App) endSplash() (tea.Model, tea.Cmd) {
	a.screen = screenMain
	cmd := a.panes[a.active].input.Focus()
	if a.needSetup {
		return a, tea.Batch(cmd, func() tea.Msg { return startSetupMsg{} })
	}
	return a, cmd
}

func (a App) openSetup() (tea.Model, tea.Cmd) {
	if !a.needSetup || a.setupForm != nil {
		return a, nil
	}
	vals := SetupValuesFrom(a.cfg)
	a.setupVals = &vals
	a.setupForm = NewSetupForm(a.setupVals)
	if a.width > 0 {
		a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.setupForm.Init()
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.cfg = ApplySetup(a.cfg, *a.setupVals)
		theme.SetActive(a.cfg.Appearance.Theme)
		if s, err := model.ParseSeason(a.cfg.General.DefaultSeason); err == nil {
			a.panes[a.active].input.Blur()
			a.active = int(s)
		}
		if err := config.Save(a.cfg); err != nil {
			a.setNotice("Could not save config: "+err.Error(), true)
			a.log.Warn("saving config failed", "err", err)
		} else {
			a.setNotice("Saved to "+config.ConfigPath(), false)
		}
		a.needSetup = false
		a.setupForm = nil
		return a, a.panes[a.active].input.Focus()

	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, a.panes[a.active].input.Focus()
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.screen == screenSplash {
		return a.viewSplash()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	switch a.overlay {
	case overlaySettings:
		return a.viewCentered(a.renderSettings())
	case overlayAbout:
		return a.viewCentered(a.renderAbout())
	case overlayHelp:
		return a.viewCentered(a.renderHelp())
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  benzconfig needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewCentered(card string) string {
	t := theme.Active
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewSplash() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	barW := 40
	if barW > a.width-30 {
		barW = a.width - 30
	}
	if barW < 20 {
		barW = 20
	}

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ BenzConfig"))
	b.WriteString(subtitleStyle.Render(" · Trip fuel calculator"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading driving profiles"))
	b.WriteString("\n\n")
	b.WriteString(components.ProgressBar(a.splashPct, barW))

	return a.viewCentered(cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.active, w)
	statusBar := components.RenderStatusBar(w,
		"[enter] calculate  [tab] season  [e] settings  [?] help  [q] quit",
		a.notice, a.noticeErr)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	content := a.renderCalculator(cw)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.active)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
