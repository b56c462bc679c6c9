package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel carries the terminal dimensions shared by every screen.
// Screens embed it and call Resize when the window size changes.
type CommonModel struct {
	Width  int
	Height int
}

func (m *CommonModel) Resize(msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height
}

// BackMsg asks the root model to return to the main menu.
type BackMsg struct{}

// Back is returned as a tea.Cmd by screens when the user backs out.
func Back() tea.Msg {
	return BackMsg{}
}
