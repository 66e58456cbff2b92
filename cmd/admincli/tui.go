// tui.go
package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gemarathon/backend/boardsrvc"
)

type state int

const (
	stateMenu state = iota
	stateStandings
	statePoints
	stateBonus
)

type model struct {
	state state
	srvc  *boardsrvc.BoardService

	standingsModel standingsModel
	pointsModel    pointsModel
	bonusModel     bonusModel
}

func initialModel(srvc *boardsrvc.BoardService) model {
	return model{
		state: stateMenu,
		srvc:  srvc,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.state = stateStandings
				m.standingsModel = newStandingsModel(m.srvc)
				return m, m.standingsModel.Init()
			case "2":
				m.state = statePoints
				m.pointsModel = newPointsModel(m.srvc)
				return m, m.pointsModel.Init()
			case "3":
				m.state = stateBonus
				m.bonusModel = newBonusModel(m.srvc)
				return m, m.bonusModel.Init()
			}
		}
	case stateStandings:
		if isBackKey(msg) {
			m.state = stateMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.standingsModel, cmd = m.standingsModel.Update(msg)
		return m, cmd
	case statePoints:
		if m.pointsModel.done && isBackKey(msg) {
			m.state = stateMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.pointsModel, cmd = m.pointsModel.Update(msg)
		return m, cmd
	case stateBonus:
		if m.bonusModel.done && isBackKey(msg) {
			m.state = stateMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.bonusModel, cmd = m.bonusModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		s := "Gemarathon admin\n\n"
		s += "1. Show standings\n"
		s += "2. Add points to a student\n"
		s += "3. Add a class bonus\n\n"
		s += "Press q to quit.\n"
		return s
	case stateStandings:
		return m.standingsModel.View()
	case statePoints:
		return m.pointsModel.View()
	case stateBonus:
		return m.bonusModel.View()
	default:
		return ""
	}
}

func isBackKey(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	return ok && keyMsg.String() == "b"
}
