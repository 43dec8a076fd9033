package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pittengermdp/advent-of-code/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type gameItem struct {
	game     domain.Game
	feasible bool
}

func (g gameItem) Title() string { return fmt.Sprintf("Game %d", g.game.ID) }

func (g gameItem) Description() string {
	state := "feasible"
	if !g.feasible {
		state = "over ceiling"
	}
	return fmt.Sprintf("%d round(s) • min set %s • %s", len(g.game.Rounds), g.game.MinSet(), state)
}

func (g gameItem) FilterValue() string { return g.Title() }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	games  list.Model
	active gameItem
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := make([]list.Item, 0, len(deps.Result.Games))
	for _, g := range deps.Result.Games {
		items = append(items, gameItem{
			game:     g,
			feasible: g.Feasible(deps.Result.Ceiling),
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Cubetally"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: t,
		deps:  deps,
		scr:   screenList,
		games: l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.games.SetSize(w-4, h-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenList {
				return m, tea.Quit
			}
			m.scr = screenList
			return m, nil

		case "enter":
			if m.scr == screenList {
				it, ok := m.games.SelectedItem().(gameItem)
				if !ok {
					return m, nil
				}
				m.scr = screenDetail
				m.active = it
				if m.deps.Logger != nil {
					m.deps.Logger.Debug("tui.inspect_game", "id", it.game.ID)
				}
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenList {
				m.scr = screenList
				return m, nil
			}
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.games, cmd = m.games.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Cubetally") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%d games • ceiling %s", len(m.deps.Result.Games), m.deps.Result.Ceiling)) + "\n"

	summary := m.theme.Help.Render(fmt.Sprintf(
		"feasible id sum %d • min-set power sum %d",
		m.deps.Result.FeasibleIDSum, m.deps.Result.MinSetPowerSum,
	))

	switch m.scr {
	case screenList:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + summary + "\n\n" + m.theme.Card.Render(m.games.View()) + "\n" + help)

	case screenDetail:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.active.Title()),
				m.renderRounds(m.active),
				m.theme.Help.Render("esc/b back • q list"),
			),
		)
		return wrap.Render(header + "\n" + summary + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) renderRounds(it gameItem) string {
	if len(it.game.Rounds) == 0 {
		return m.theme.Subtitle.Render("no rounds")
	}

	ceiling := m.deps.Result.Ceiling
	lines := make([]string, 0, len(it.game.Rounds)+1)
	for i, r := range it.game.Rounds {
		mark := m.theme.Feasible.Render("✓")
		if !r.Within(ceiling) {
			mark = m.theme.Over.Render("✗")
		}
		lines = append(lines, fmt.Sprintf("%s round %d: %s", mark, i+1, r))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("min set: %s (power %d)", it.game.MinSet(), it.game.MinSet().Power()))
	return strings.Join(lines, "\n")
}
