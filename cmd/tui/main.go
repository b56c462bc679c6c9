package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/jpmercado/infratrack/cmd/tui/internal/view"
	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/catalog"
	catalogStore "github.com/jpmercado/infratrack/internal/catalog/store"
	"github.com/jpmercado/infratrack/internal/config"
	"github.com/jpmercado/infratrack/internal/database"
	"github.com/jpmercado/infratrack/internal/importer"
	"github.com/jpmercado/infratrack/internal/portal"
	portalStore "github.com/jpmercado/infratrack/internal/portal/store"
	"github.com/jpmercado/infratrack/internal/project"
	projectStore "github.com/jpmercado/infratrack/internal/project/store"
	"github.com/jpmercado/infratrack/internal/workflow"
)

type model struct {
	projectService *project.Service
	portalService  *portal.Service
	importService  *importer.Service
	catalogService *catalog.Service
	actor          auth.Actor

	currentView View

	projectsView  view.ProjectsModel
	dashboardView view.DashboardModel
	importView    view.ImportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewProjects  View = 1
	ViewDashboard View = 2
	ViewImport    View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	projectSvc := project.NewService(projectStore.New(db))
	portalSvc := portal.NewService(portalStore.New(db), projectSvc)
	importSvc := importer.NewService()
	catalogSvc := catalog.NewService(catalogStore.New(db))

	// The console talks straight to the database, so it acts as the
	// administrator account.
	actor := auth.Actor{
		UserID: uuid.New(),
		Role:   workflow.RoleSystemAdministrator,
		Email:  "console@localhost",
	}

	return model{
		projectService: projectSvc,
		portalService:  portalSvc,
		importService:  importSvc,
		catalogService: catalogSvc,
		actor:          actor,
		currentView:    ViewMenu,
		projectsView:   view.NewProjectsModel(projectSvc, actor),
		dashboardView:  view.NewDashboardModel(portalSvc),
		importView:     view.NewImportModel(projectSvc, importSvc, catalogSvc, actor),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewProjects
				m.projectsView = view.NewProjectsModel(m.projectService, m.actor)

				return m, m.projectsView.Init()
			case "2":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.portalService)

				return m, m.dashboardView.Init()
			case "3":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.projectService, m.importService, m.catalogService, m.actor)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewProjects:
		var newModel tea.Model
		newModel, cmd = m.projectsView.Update(msg)
		m.projectsView = newModel.(view.ProjectsModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"InfraTrack Console\n\n" +
				"1. Browse Projects\n" +
				"2. Dashboard\n" +
				"3. Import Proposals\n\n" +
				"q. Quit",
		)
	case ViewProjects:
		return m.projectsView.View()
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
