package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gemarathon/backend/boardsrvc"
	"github.com/gemarathon/backend/xlsxstore"
)

type pointsResultMsg struct {
	res *xlsxstore.PointsResult
	err error
}

type pointsModel struct {
	srvc *boardsrvc.BoardService

	inputs  []textinput.Model // name, grade, points
	focused int

	submitting bool
	done       bool
	res        *xlsxstore.PointsResult
	err        error
}

func newPointsModel(srvc *boardsrvc.BoardService) pointsModel {
	labels := []string{"student name", "class", "points"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 40
		ti.Width = 30
		inputs[i] = ti
	}
	inputs[0].Focus()
	return pointsModel{srvc: srvc, inputs: inputs}
}

func (m pointsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pointsModel) submit() tea.Cmd {
	name := m.inputs[0].Value()
	grade := m.inputs[1].Value()
	points, err := strconv.ParseFloat(m.inputs[2].Value(), 64)
	if err != nil {
		return func() tea.Msg {
			return pointsResultMsg{err: fmt.Errorf("points must be a number")}
		}
	}
	return func() tea.Msg {
		res, err := m.srvc.AddPoints(context.Background(), name, grade, points)
		return pointsResultMsg{res: res, err: err}
	}
}

func (m pointsModel) Update(msg tea.Msg) (pointsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case pointsResultMsg:
		m.submitting = false
		m.done = true
		m.res = msg.res
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab:
			if m.done || m.submitting {
				return m, nil
			}
			m.inputs[m.focused].Blur()
			if msg.Type == tea.KeyTab {
				m.focused = (m.focused + 1) % len(m.inputs)
			} else {
				m.focused = (m.focused + len(m.inputs) - 1) % len(m.inputs)
			}
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		case tea.KeyEnter:
			if m.done || m.submitting {
				return m, nil
			}
			if m.focused < len(m.inputs)-1 {
				m.inputs[m.focused].Blur()
				m.focused++
				m.inputs[m.focused].Focus()
				return m, textinput.Blink
			}
			m.submitting = true
			return m, m.submit()
		}
	}

	if m.done || m.submitting {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m pointsModel) View() string {
	if m.submitting {
		return "Adding points...\n"
	}
	if m.done {
		if m.err != nil {
			return errStyle.Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\nPress 'b' to return to the main menu.\n"
		}
		return fmt.Sprintf("Added %g points to %s (sheet %s): %g -> %g\n\nPress 'b' to return to the main menu.\n",
			m.res.PointsAdded, m.res.Student, m.res.SheetName, m.res.OldScore, m.res.NewScore)
	}

	s := headerStyle.Render("Add points") + "\n\n"
	for _, input := range m.inputs {
		s += input.View() + "\n"
	}
	s += "\nTab to switch fields, Enter to submit.\n"
	return s
}
