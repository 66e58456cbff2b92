package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gemarathon/backend/boardsrvc"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498db"))
	gradeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9b59b6"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
)

type boardLoadedMsg struct {
	view *boardsrvc.BoardView
}

type standingsModel struct {
	srvc    *boardsrvc.BoardService
	spinner spinner.Model
	view    *boardsrvc.BoardView
}

func newStandingsModel(srvc *boardsrvc.BoardService) standingsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	return standingsModel{srvc: srvc, spinner: s}
}

func (m standingsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadBoard)
}

func (m standingsModel) loadBoard() tea.Msg {
	return boardLoadedMsg{view: m.srvc.GetBoard(context.Background(), 10)}
}

func (m standingsModel) Update(msg tea.Msg) (standingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		m.view = msg.view
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m standingsModel) View() string {
	if m.view == nil {
		return fmt.Sprintf("%s loading standings...\n", m.spinner.View())
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Class standings"))
	b.WriteString("\n\n")
	for i, summary := range m.view.ClassSummaries {
		b.WriteString(fmt.Sprintf("%2d. %s  %g points  (%d students)\n",
			i+1, gradeStyle.Render(summary.Grade), summary.TotalScore, summary.StudentCount))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Top students"))
	b.WriteString("\n\n")
	for i, student := range m.view.TopStudents {
		b.WriteString(fmt.Sprintf("%2d. %s (%s)  %g\n",
			i+1, student.Name, student.Grade, student.Score))
	}

	b.WriteString("\nPress 'b' to return to the main menu or 'q' to quit.\n")
	return b.String()
}
