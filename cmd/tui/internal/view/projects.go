package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

type projectsState int

const (
	projectsStateBrowse projectsState = iota
	projectsStateTransition
)

type ProjectsModel struct {
	CommonModel
	projectService *project.Service
	actor          auth.Actor

	state    projectsState
	table    table.Model
	projects []*project.Project
	form     *huh.Form

	statusFilterIdx int

	filter  project.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formStatus   string
	formComments string
	formBudget   string
}

func NewProjectsModel(projectSvc *project.Service, actor auth.Actor) ProjectsModel {
	columns := []table.Column{
		{Title: "Title", Width: 34},
		{Title: "Status", Width: 16},
		{Title: "Category", Width: 14},
		{Title: "Estimated", Width: 14},
		{Title: "Approved", Width: 14},
		{Title: "Disbursed", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ProjectsModel{
		projectService: projectSvc,
		actor:          actor,
		table:          t,
		filter:         project.ListFilter{},
	}
}

func (m ProjectsModel) Title() string { return "Projects" }

func (m ProjectsModel) ShortHelp() string {
	if m.state == projectsStateTransition {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | t: transition | s: status filter | r: refresh"
}

func (m ProjectsModel) Init() tea.Cmd {
	return m.loadProjectsCmd()
}

func (m ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProjectsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.projects = msg.projects
		m.err = nil
		m.refreshTable()
		return m, nil

	case transitionDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Transition rejected: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Project moved to %s", msg.newStatus)
		}
		m.state = projectsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadProjectsCmd()

	case tea.WindowSizeMsg:
		m.Resize(msg)
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case projectsStateBrowse:
		return m.updateBrowse(msg)
	case projectsStateTransition:
		return m.updateTransition(msg)
	}

	return m, nil
}

func (m ProjectsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadProjectsCmd()
		case "t":
			return m.enterTransitionMode()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(workflow.Statuses) + 1)
			m.applyFilter()
			return m, m.loadProjectsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ProjectsModel) enterTransitionMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.projects) {
		return m, nil
	}

	p := m.projects[idx]

	options := make([]huh.Option[string], 0, len(workflow.Statuses))
	for _, s := range workflow.Statuses {
		if s == p.Status {
			continue
		}

		options = append(options, huh.NewOption(string(s), string(s)))
	}

	m.formStatus = ""
	m.formComments = ""
	m.formBudget = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("status").
				Title("New Status").
				Options(options...).
				Value(&m.formStatus),

			huh.NewInput().
				Key("comments").
				Title("Comments").
				Value(&m.formComments),

			huh.NewInput().
				Key("budget").
				Title("Approved Budget (PHP, funding only)").
				Placeholder("1234567.89").
				Value(&m.formBudget).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("not a number")
					}
					return nil
				}),
		),
	).WithWidth(48).WithShowHelp(false)

	m.state = projectsStateTransition
	m.table.Blur()
	return m, m.form.Init()
}

func (m ProjectsModel) updateTransition(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = projectsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.transitionCmd()
}

func (m ProjectsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading projects...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(m.statusFilterLabel()))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == projectsStateTransition && m.form != nil {
		idx := m.table.Cursor()

		current := ""
		if idx >= 0 && idx < len(m.projects) {
			current = string(m.projects[idx].Status)
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(52).
			Render(
				fmt.Sprintf("Change Status\n\nCurrent: %s\n\n%s", current, m.form.View()),
			)

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m ProjectsModel) statusFilterLabel() string {
	if m.statusFilterIdx == 0 {
		return "All"
	}

	return string(workflow.Statuses[m.statusFilterIdx-1])
}

func (m *ProjectsModel) applyFilter() {
	if m.statusFilterIdx == 0 {
		m.filter.Status = nil
		return
	}

	st := workflow.Statuses[m.statusFilterIdx-1]
	m.filter.Status = &st
}

func (m *ProjectsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.projects))
	for _, p := range m.projects {
		approved := "-"
		if p.ApprovedBudget != nil {
			approved = FormatPesos(*p.ApprovedBudget)
		}

		rows = append(rows, table.Row{
			p.Title,
			string(p.Status),
			p.Category,
			FormatPesos(p.EstimatedCost),
			approved,
			FormatPesos(p.Disbursed),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadProjectsMsg struct {
	projects []*project.Project
	err      error
}

func (m ProjectsModel) loadProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		projects, err := m.projectService.List(ctx, m.filter)
		return loadProjectsMsg{projects: projects, err: err}
	}
}

type transitionDoneMsg struct {
	newStatus workflow.Status
	err       error
}

func (m ProjectsModel) transitionCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.projects) {
		return nil
	}

	p := m.projects[idx]
	params := project.TransitionParams{
		Status:   workflow.Status(m.formStatus),
		Actor:    m.actor,
		Comments: m.formComments,
	}

	if s := strings.TrimSpace(m.formBudget); s != "" {
		if pesos, err := strconv.ParseFloat(s, 64); err == nil {
			cents := int64(math.Round(pesos * 100))
			params.ApprovedBudget = &cents
		}
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.projectService.Transition(ctx, p.ID, params)
		return transitionDoneMsg{newStatus: params.Status, err: err}
	}
}
