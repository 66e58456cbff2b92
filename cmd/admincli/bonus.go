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

type bonusResultMsg struct {
	res *xlsxstore.BonusResult
	err error
}

type bonusModel struct {
	srvc *boardsrvc.BoardService

	gradeInput textinput.Model
	bonusInput textinput.Model
	focused    int

	submitting bool
	done       bool
	res        *xlsxstore.BonusResult
	err        error
}

func newBonusModel(srvc *boardsrvc.BoardService) bonusModel {
	gradeInput := textinput.New()
	gradeInput.Placeholder = "class"
	gradeInput.CharLimit = 20
	gradeInput.Width = 20
	gradeInput.Focus()

	bonusInput := textinput.New()
	bonusInput.Placeholder = "bonus points"
	bonusInput.CharLimit = 10
	bonusInput.Width = 20

	return bonusModel{srvc: srvc, gradeInput: gradeInput, bonusInput: bonusInput}
}

func (m bonusModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m bonusModel) submit() tea.Cmd {
	grade := m.gradeInput.Value()
	bonus, err := strconv.ParseFloat(m.bonusInput.Value(), 64)
	if err != nil {
		return func() tea.Msg {
			return bonusResultMsg{err: fmt.Errorf("bonus must be a number")}
		}
	}
	return func() tea.Msg {
		res, err := m.srvc.AddClassBonus(context.Background(), grade, bonus)
		return bonusResultMsg{res: res, err: err}
	}
}

func (m bonusModel) Update(msg tea.Msg) (bonusModel, tea.Cmd) {
	switch msg := msg.(type) {
	case bonusResultMsg:
		m.submitting = false
		m.done = true
		m.res = msg.res
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			if m.done || m.submitting {
				return m, nil
			}
			if m.focused == 0 {
				m.gradeInput.Blur()
				m.bonusInput.Focus()
				m.focused = 1
			} else {
				m.bonusInput.Blur()
				m.gradeInput.Focus()
				m.focused = 0
			}
			return m, textinput.Blink
		case tea.KeyEnter:
			if m.done || m.submitting {
				return m, nil
			}
			if m.focused == 0 {
				m.gradeInput.Blur()
				m.bonusInput.Focus()
				m.focused = 1
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
	if m.focused == 0 {
		m.gradeInput, cmd = m.gradeInput.Update(msg)
	} else {
		m.bonusInput, cmd = m.bonusInput.Update(msg)
	}
	return m, cmd
}

func (m bonusModel) View() string {
	if m.submitting {
		return "Adding class bonus...\n"
	}
	if m.done {
		if m.err != nil {
			return errStyle.Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\nPress 'b' to return to the main menu.\n"
		}
		return fmt.Sprintf("Bonus for %s (sheet %s): %g + %g manual = %g total\n\nPress 'b' to return to the main menu.\n",
			m.res.Grade, m.res.SheetName, m.res.PreviousTotal, m.res.ManualBonus, m.res.TotalBonus)
	}

	s := headerStyle.Render("Add class bonus") + "\n\n"
	s += m.gradeInput.View() + "\n"
	s += m.bonusInput.View() + "\n"
	s += "\nTab to switch fields, Enter to submit.\n"
	return s
}
