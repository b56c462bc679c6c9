package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/catalog"
	"github.com/jpmercado/infratrack/internal/importer"
	"github.com/jpmercado/infratrack/internal/project"
)

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	projectService *project.Service
	importService  *importer.Service
	catalogService *catalog.Service
	actor          auth.Actor

	state      importState
	filePicker filepicker.Model

	status string
	err    error
}

func NewImportModel(projectSvc *project.Service, impSvc *importer.Service, catSvc *catalog.Service, actor auth.Actor) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.Height = 15

	return ImportModel{
		projectService: projectSvc,
		importService:  impSvc,
		catalogService: catSvc,
		actor:          actor,
		filePicker:     fp,
	}
}

func (m ImportModel) Title() string     { return "Import Proposals" }
func (m ImportModel) ShortHelp() string { return "Esc: back | Enter: select" }

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == importStateResult {
				m.state = importStateFilePick
				m.err = nil
				m.status = ""
				return m, m.filePicker.Init()
			}

			return m, Back
		}

	case importDoneMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d proposals at pending_review.", msg.count)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render("Importing proposals...")
	case importStateResult:
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nEsc: pick another file")
	}

	return lipgloss.NewStyle().Padding(1).Render(
		"Select an investment-plan CSV export:\n\n" + m.filePicker.View(),
	)
}

type importDoneMsg struct {
	count int
	err   error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		params, err := m.importService.Import(importer.SourcePDIP, f)
		if err != nil {
			return importDoneMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		count := 0

		for _, p := range params {
			if p.Office != "" {
				if canonical, err := m.catalogService.Suggest(ctx, p.Office); err == nil && canonical != "" {
					p.Office = canonical
				}
			}

			p.Actor = m.actor

			if _, err := m.projectService.Create(ctx, p); err != nil {
				return importDoneMsg{count: count, err: err}
			}

			count++
		}

		return importDoneMsg{count: count}
	}
}
