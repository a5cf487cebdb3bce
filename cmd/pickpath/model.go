package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/waresys/pickpath/picking"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	routeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).Bold(true)
)

type model struct {
	svc   *picking.PickingService
	input string
	err   error
	sol   *picking.PickingSolution
}

func newModel(svc *picking.PickingService) model {
	return model{svc: svc}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit(), nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeyRunes:
		if string(keyMsg.Runes) == "r" && m.sol != nil {
			m.sol, m.err, m.input = nil, nil, ""
			return m, nil
		}
		m.input += string(keyMsg.Runes)
		return m, nil
	default:
		return m, nil
	}
}

func (m model) submit() model {
	demand, err := parseDemand(m.input)
	if err != nil {
		m.err, m.sol = err, nil
		return m
	}

	cfg := picking.DefaultConfig()
	cfg.IsTesting = true
	sol, err := m.svc.Optimize(context.Background(), demand, cfg)
	if err != nil {
		m.err, m.sol = err, nil
		return m
	}

	m.err, m.sol = nil, &sol

	return m
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pickpath — warehouse picking demo"))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("demand (product:qty,product:qty) — enter to solve, r to reset, esc to quit"))
	b.WriteString("\n\n> ")
	b.WriteString(m.input)
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.sol != nil {
		b.WriteString(okStyle.Render(fmt.Sprintf("solved — correlation %s", m.sol.CorrelationID)))
		b.WriteString("\n\n")
		for i, sheet := range m.sol.Summaries {
			b.WriteString(routeStyle.Render(fmt.Sprintf("route %d", i+1)))
			b.WriteString("\n")
			for _, e := range sheet.Entries {
				b.WriteString(fmt.Sprintf("  take %d of %s from %s (had %d)\n", e.Take, e.ProductID, e.StorageID, e.QuantityAtStorage))
			}
			if i < len(m.sol.Paths) {
				b.WriteString("  path: ")
				b.WriteString(strings.Join(flattenPath(m.sol.Paths[i]), " -> "))
				b.WriteString("\n")
			}
		}
		if m.sol.PerformanceMetrics != nil {
			b.WriteString("\n")
			for _, stage := range []string{"location_search", "distance_matrix", "tour_optimization", "path_finding", "summary_generation"} {
				if d, ok := m.sol.PerformanceMetrics[stage]; ok {
					b.WriteString(hintStyle.Render(fmt.Sprintf("%s: %s\n", stage, d)))
				}
			}
		}
	}

	return b.String()
}
