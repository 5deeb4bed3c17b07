package tui

import (
	"time"

	"github.com/benzenergy/benzconfig/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// revealMsg asks the reveal of season to show one more character.
// gen ties the tick to the reveal that scheduled it.
type revealMsg struct {
	season model.Season
	gen    int
}

// reveal prints a result one character at a time. Starting a new reveal or
// cancelling bumps gen, which makes ticks from older reveals no-ops.
type reveal struct {
	text  []rune
	shown int
	gen   int
}

func revealTick(season model.Season, gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return revealMsg{season: season, gen: gen}
	})
}

// start replaces the revealed text. With a non-positive delay the whole text
// shows at once and no tick is scheduled.
func (r *reveal) start(season model.Season, text string, delay time.Duration) tea.Cmd {
	r.gen++
	r.text = []rune(text)
	if delay <= 0 || len(r.text) == 0 {
		r.shown = len(r.text)
		return nil
	}
	r.shown = 0
	return revealTick(season, r.gen, delay)
}

// advance handles a tick for this reveal.
func (r *reveal) advance(msg revealMsg, delay time.Duration) tea.Cmd {
	if msg.gen != r.gen || r.done() {
		return nil
	}
	r.shown++
	if r.done() {
		return nil
	}
	return revealTick(msg.season, r.gen, delay)
}

// finish shows the rest of the text immediately.
func (r *reveal) finish() {
	r.gen++
	r.shown = len(r.text)
}

// cancel stops the reveal and clears the text.
func (r *reveal) cancel() {
	r.gen++
	r.text = nil
	r.shown = 0
}

func (r reveal) done() bool {
	return r.shown >= len(r.text)
}

func (r reveal) View() string {
	return string(r.text[:r.shown])
}
