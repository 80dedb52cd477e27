package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/worklog/internal/models"
	"github.com/dmitrijs2005/worklog/internal/navigator"
)

type palette struct {
	title   *color.Color
	label   *color.Color
	hint    *color.Color
	success *color.Color
	error   *color.Color
}

func newPalette() palette {
	return palette{
		title:   color.New(color.Bold),
		label:   color.New(color.FgCyan),
		hint:    color.New(color.FgYellow),
		success: color.New(color.FgGreen),
		error:   color.New(color.FgRed),
	}
}

const entryTemplate = `Employee Name: %s,
Date: %s,
Title: %s,
Time Spent: %d,
Notes: %s,

Result %d of %d

`

// renderEntry prints the entry under the cursor followed by the actions the
// current state offers.
func (p palette) renderEntry(w io.Writer, s *navigator.Session) {
	e, ok := s.Current()
	if !ok {
		return
	}
	fmt.Fprintf(w, entryTemplate,
		e.EmployeeName, models.FormatDate(e.Date), e.TaskName, e.TimeSpent, e.OptionalNotes,
		s.Cursor()+1, s.Len())

	actions := s.Actions()
	labels := make([]string, 0, len(actions))
	for _, a := range actions {
		labels = append(labels, a.Label())
	}
	fmt.Fprintln(w, p.label.Sprint(strings.Join(labels, ", ")))
}

// keysHint builds "Please enter 'n', 'e', 'd' or 'r'" from the available actions.
func keysHint(actions []navigator.Action) string {
	quoted := make([]string, 0, len(actions))
	for _, a := range actions {
		quoted = append(quoted, "'"+a.Key()+"'")
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return "Please enter " + quoted[0]
	}
	return "Please enter " + strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
