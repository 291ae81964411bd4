package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// taskColumnSeparator splits a notes line into task table cells
const taskColumnSeparator = "|"

// TaskForm shows the session's primary task next to the participant's notes.
// Notes live in the model so they survive closing and reopening the form.
type TaskForm struct {
	Completed bool
	form      *huh.Form
}

// NewTaskForm creates the task form editing notes in place
func NewTaskForm(task string, notes *string) *TaskForm {
	tf := &TaskForm{}
	tf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Task").
				Description(task),
			huh.NewText().
				Title("Notes").
				Description("One row per line; separate columns with "+taskColumnSeparator).
				Value(notes).
				Lines(10),
		),
	)
	return tf
}

func (tf *TaskForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		tf.Completed = true
		return tf, nil
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}
	if tf.form.State != huh.StateNormal {
		tf.Completed = true
		return tf, nil
	}
	return tf, cmd
}

func (tf *TaskForm) View() string {
	return tf.form.View()
}

// taskRows converts notes into task table rows, skipping blank lines
func taskRows(notes string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(notes, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, taskColumnSeparator)
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}
	return rows
}
