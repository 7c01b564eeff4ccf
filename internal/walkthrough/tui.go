// Package walkthrough is the interactive Q&A TUI: it steps the user through
// the loaded session one question at a time, strictly forward.
package walkthrough

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swapnilm/prepkit/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 0, 2)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 0, 1, 2)

	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 0, 1, 2)

	inputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Margin(0, 0, 0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			Padding(1, 0, 1, 2)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(1, 0, 0, 2)
)

// Result reports how the walkthrough ended. Answers holds whatever was
// submitted before the user quit or the session completed.
type Result struct {
	Completed bool
	Answers   []session.AnswerRecord
}

type qaModel struct {
	sess   *session.Session
	input  textarea.Model
	width  int
	height int
	errMsg string
}

func newModel(sess *session.Session) qaModel {
	ta := textarea.New()
	ta.Placeholder = "Type your answer (optional, ctrl+s to submit)..."
	ta.CharLimit = 0
	ta.SetHeight(6)
	ta.Focus()

	return qaModel{sess: sess, input: ta}
}

func (m qaModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m qaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(m.width-8, 20))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Only a quit key on the completion screen; while answering it
			// has to reach the textarea.
			if m.sess.State() == session.Completed {
				return m, tea.Quit
			}
		case "ctrl+s":
			if m.sess.State() != session.InProgress {
				return m, tea.Quit
			}
			if err := m.sess.Submit(m.input.Value()); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.input.Reset()
			if m.sess.State() == session.Completed {
				m.input.Blur()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m qaModel) View() string {
	if m.sess.State() == session.Completed {
		return m.viewDone()
	}
	return m.viewQuestion()
}

func (m qaModel) viewQuestion() string {
	question, err := m.sess.Current()
	if err != nil {
		// Unreachable through key handling; render rather than panic.
		return errStyle.Render(err.Error())
	}

	wrapWidth := max(m.width-6, 20)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Interview Walkthrough"))
	b.WriteByte('\n')
	b.WriteString(progressStyle.Render(
		fmt.Sprintf("Question %d of %d", m.sess.Cursor()+1, m.sess.Total())))
	b.WriteByte('\n')
	b.WriteString(questionStyle.Render(wordWrap(question, wrapWidth)))
	b.WriteByte('\n')
	b.WriteString(inputBorderStyle.Render(m.input.View()))
	if m.errMsg != "" {
		b.WriteByte('\n')
		b.WriteString(errStyle.Render("⚠ " + m.errMsg))
	}
	b.WriteByte('\n')
	b.WriteString(hintStyle.Render("ctrl+s submit answer  ctrl+c quit"))
	return b.String()
}

func (m qaModel) viewDone() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Interview Walkthrough"))
	b.WriteByte('\n')
	b.WriteString(doneStyle.Render(
		fmt.Sprintf("All %d questions answered.", m.sess.Total())))
	b.WriteByte('\n')
	b.WriteString(hintStyle.Render("press q to quit and export your answers"))
	return b.String()
}

func wordWrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

// Run drives the walkthrough until the session completes or the user quits.
// A session that is already Completed (including zero questions) returns
// immediately without starting the TUI.
func Run(sess *session.Session) (Result, error) {
	if sess.State() == session.Completed {
		return Result{Completed: true, Answers: sess.Answers()}, nil
	}

	p := tea.NewProgram(newModel(sess), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run walkthrough: %w", err)
	}

	fm := final.(qaModel)
	return Result{
		Completed: fm.sess.State() == session.Completed,
		Answers:   fm.sess.Answers(),
	}, nil
}
