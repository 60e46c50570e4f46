// Package ui renders the converter as an interactive terminal widget.
package ui

import (
	"CurrencyConverter/internal/converter"
	"CurrencyConverter/internal/model"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type CurrencyLoader interface {
	LoadCurrencies(ctx context.Context) []model.CurrencyCode
}

type field int

const (
	fieldFrom field = iota
	fieldTo
	fieldAmount
	fieldCount
)

type currenciesLoadedMsg struct {
	codes []model.CurrencyCode
}

type conversionDoneMsg struct{}

type Model struct {
	ctx    context.Context
	ctrl   *converter.Controller
	loader CurrencyLoader

	amount  textinput.Model
	spinner spinner.Model
	focus   field
	notice  string
}

func New(ctx context.Context, ctrl *converter.Controller, loader CurrencyLoader) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "amount"
	ti.CharLimit = 20
	ti.Width = 20
	ti.SetValue(ctrl.Snapshot().Amount.String())

	sp := spinner.New()
	sp.Spinner = spinner.Pulse

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		loader:  loader,
		amount:  ti,
		spinner: sp,
		focus:   fieldFrom,
	}
}

func (m Model) Init() tea.Cmd {
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		return currenciesLoadedMsg{codes: loader.LoadCurrencies(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case currenciesLoadedMsg:
		m.ctrl.SetCurrencies(msg.codes)
		return m, nil

	case conversionDoneMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Snapshot().Converting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == fieldAmount {
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m.moveFocus(1), nil
	case "shift+tab", "up":
		return m.moveFocus(-1), nil
	case "enter":
		return m.convert()
	}

	if m.focus == fieldAmount {
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		return m, cmd
	}

	side := m.focusedSide()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.cycle(side, -1)
	case "right", "l", " ":
		m.cycle(side, 1)
	case "s":
		m.ctrl.Swap()
	case "f":
		m.toggleFavorite(side)
	}
	return m, nil
}

func (m Model) moveFocus(delta int) Model {
	if m.focus == fieldAmount {
		m.commitAmount()
	}
	m.focus = (m.focus + field(delta) + fieldCount) % fieldCount
	if m.focus == fieldAmount {
		m.amount.Focus()
	} else {
		m.amount.Blur()
	}
	return m
}

// commitAmount applies the amount rules and shows the stored value back,
// so "0" clears the field and "5000000" becomes the upper limit.
func (m *Model) commitAmount() {
	stored := m.ctrl.SetAmount(m.amount.Value())
	m.amount.SetValue(stored.String())
}

func (m Model) convert() (tea.Model, tea.Cmd) {
	if m.focus == fieldAmount {
		m.commitAmount()
	}
	m.notice = ""
	attempt := m.ctrl.Begin(m.ctx)
	if attempt == nil {
		return m, nil
	}
	run := func() tea.Msg {
		attempt.Run()
		return conversionDoneMsg{}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

func (m *Model) cycle(side converter.Side, delta int) {
	s := m.ctrl.Snapshot()
	opts := s.Options(side)
	if len(opts) == 0 {
		return
	}
	current := s.From
	if side == converter.To {
		current = s.To
	}
	idx := -1
	for i, o := range opts {
		if o.Code == current {
			idx = i
			break
		}
	}
	next := 0
	if idx >= 0 {
		next = (idx + delta + len(opts)) % len(opts)
	}
	if err := m.ctrl.Select(side, opts[next].Code); err != nil {
		m.notice = err.Error()
	}
}

func (m *Model) toggleFavorite(side converter.Side) {
	s := m.ctrl.Snapshot()
	code := s.From
	if side == converter.To {
		code = s.To
	}
	if err := m.ctrl.ToggleFavorite(m.ctx, code); err != nil {
		m.notice = fmt.Sprintf("Could not save favorites: %v", err)
		return
	}
	m.notice = ""
}

func (m Model) focusedSide() converter.Side {
	if m.focus == fieldTo {
		return converter.To
	}
	return converter.From
}

func (m Model) View() string {
	s := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Currency Converter"))
	b.WriteString("\n")
	b.WriteString(selectorView("From:", s.From, s, m.focus == fieldFrom))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("") + blurredStyle.Render("⇄ swap (s)"))
	b.WriteString("\n")
	b.WriteString(selectorView("To:", s.To, s, m.focus == fieldTo))
	b.WriteString("\n\n")

	amountLabel := labelStyle.Render("Amount:")
	if m.focus == fieldAmount {
		amountLabel = activeLabel.Render("Amount:")
	}
	b.WriteString(amountLabel + m.amount.View())
	b.WriteString("\n\n")

	if s.Converting {
		b.WriteString(pulseStyle.Render("Convert") + " " + m.spinner.View())
	} else {
		b.WriteString(buttonStyle.Render("Convert"))
	}
	b.WriteString("\n")

	switch {
	case s.Err != nil:
		b.WriteString("\n" + errorStyle.Render(s.Err.Message()))
	case s.Result != nil:
		b.WriteString("\n" + successStyle.Render("Converted Amount: "+s.Result.String()))
	}
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}

	b.WriteString("\n" + helpStyle.Render("tab focus • ←/→ currency • f favourite • s swap • enter convert • esc quit"))
	return frameStyle.Render(b.String())
}

func selectorView(label string, code model.CurrencyCode, s converter.State, focused bool) string {
	style := blurredStyle
	if focused {
		style = focusedStyle
	}
	value := string(code)
	if value == "" {
		value = "---"
	}
	line := labelStyle.Render(label) + style.Render("‹ "+value+" ›")
	if s.Favorites.Contains(code) {
		line += " " + favoriteStyle.Render("★")
	} else {
		line += " " + blurredStyle.Render("☆")
	}
	return line
}
