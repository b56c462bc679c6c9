package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jpmercado/infratrack/internal/portal"
	"github.com/jpmercado/infratrack/internal/workflow"
)

var (
	dashTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dashLabelStyle = lipgloss.NewStyle().Faint(true)
	dashBoxStyle   = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type DashboardModel struct {
	CommonModel
	portalService *portal.Service

	stats   *portal.Stats
	loading bool
	err     error
}

func NewDashboardModel(portalSvc *portal.Service) DashboardModel {
	return DashboardModel{portalService: portalSvc, loading: true}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadStatsCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadStatsMsg:
		m.loading = false
		m.stats = msg.stats
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadStatsCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var left strings.Builder

	left.WriteString(dashTitleStyle.Render("Projects by Status") + "\n\n")

	for _, s := range workflow.Statuses {
		n := m.stats.ByStatus[s]
		if n == 0 {
			continue
		}

		left.WriteString(fmt.Sprintf("%-18s %4d\n", s, n))
	}

	left.WriteString("\n" + dashLabelStyle.Render(fmt.Sprintf("Total: %d projects", m.stats.TotalProjects)))

	var right strings.Builder

	right.WriteString(dashTitleStyle.Render("Spending by Category") + "\n\n")

	for _, c := range m.stats.ByCategory {
		right.WriteString(fmt.Sprintf("%-16s %3d  %14s / %14s\n",
			c.Category, c.Projects, FormatPesos(c.TotalDisbursed), FormatPesos(c.TotalApproved)))
	}

	right.WriteString("\n" + dashLabelStyle.Render(fmt.Sprintf(
		"Disbursed %s of %s approved",
		FormatPesos(m.stats.TotalDisbursed), FormatPesos(m.stats.TotalApproved))))

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		dashBoxStyle.Render(left.String()),
		dashBoxStyle.Render(right.String()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadStatsMsg struct {
	stats *portal.Stats
	err   error
}

func (m DashboardModel) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		stats, err := m.portalService.Stats(ctx)
		return loadStatsMsg{stats: stats, err: err}
	}
}
