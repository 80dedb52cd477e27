package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/worklog/internal/common"
	"github.com/dmitrijs2005/worklog/internal/models"
)

// userMessage strips the sentinel prefix from validation errors so the user
// sees only the actionable part.
func userMessage(err error) string {
	return strings.ReplaceAll(err.Error(), common.ErrValidation.Error()+": ", "")
}

func (a *App) showError(err error) {
	fmt.Fprintln(a.out, a.palette.error.Sprint("Error: "+userMessage(err)))
}

// reject shows a validation problem and waits for Enter before the caller re-prompts.
func (a *App) reject(err error, hint string) error {
	a.showError(err)
	if err := a.pause(hint); err != nil {
		return err
	}
	a.screen.Clear()
	return nil
}

// promptName loops until validate accepts the typed value.
func (a *App) promptName(prompt string, validate func(string) error) (string, error) {
	for {
		s, err := a.readLine(prompt)
		if err != nil {
			return "", err
		}
		if verr := validate(s); verr != nil {
			if err := a.reject(verr, "Enter to continue"); err != nil {
				return "", err
			}
			continue
		}
		a.screen.Clear()
		return s, nil
	}
}

func (a *App) employeeName() (string, error) {
	return a.promptName("Please enter name: ", models.ValidateEmployeeName)
}

func (a *App) taskName() (string, error) {
	return a.promptName("Title of the task: ", models.ValidateTaskName)
}

// date reads a YYYY/MM/DD date. header, when set, is printed above the prompt.
func (a *App) date(header string) (time.Time, error) {
	for {
		if header != "" {
			fmt.Fprintln(a.out, header)
		}
		fmt.Fprintln(a.out, "Date of the task")
		s, err := a.readLine("Please use YYYY/MM/DD: ")
		if err != nil {
			return time.Time{}, err
		}
		d, perr := models.ParseInputDate(s)
		if perr != nil {
			if err := a.reject(perr, "Press enter to try again"); err != nil {
				return time.Time{}, err
			}
			continue
		}
		a.screen.Clear()
		return d, nil
	}
}

func (a *App) timeSpent() (int, error) {
	for {
		s, err := a.readLine("Time spent (rounded minutes): ")
		if err != nil {
			return 0, err
		}
		n, cerr := strconv.Atoi(s)
		if cerr != nil {
			cerr = fmt.Errorf("%w: %s doesn't seem to be a valid integer", common.ErrValidation, s)
		} else {
			cerr = models.ValidateTimeSpent(n)
		}
		if cerr != nil {
			if err := a.reject(cerr, "Press enter to try again"); err != nil {
				return 0, err
			}
			continue
		}
		a.screen.Clear()
		return n, nil
	}
}

func (a *App) optionalNotes() (string, error) {
	s, err := a.readLine("Notes (Optional, you can leave this empty): ")
	if err != nil {
		return "", err
	}
	a.screen.Clear()
	return s, nil
}

// twoOrderedDates reads a start and an end date, repeating until start <= end.
func (a *App) twoOrderedDates() (time.Time, time.Time, error) {
	const header = "Enter the dates"
	for {
		start, err := a.date(header)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := a.date(header)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if start.After(end) {
			verr := fmt.Errorf("%w: %s is greater than %s", common.ErrValidation, models.FormatDate(start), models.FormatDate(end))
			if err := a.reject(verr, "Press enter to try again"); err != nil {
				return time.Time{}, time.Time{}, err
			}
			continue
		}
		return start, end, nil
	}
}

func (a *App) searchString() (string, error) {
	fmt.Fprintln(a.out, "Search by string in the task name or optional notes")
	return a.readLine("String: ")
}

// collectEntry walks the user through all five fields.
func (a *App) collectEntry() (models.Entry, error) {
	var (
		e   models.Entry
		err error
	)
	if e.EmployeeName, err = a.employeeName(); err != nil {
		return e, err
	}
	if e.Date, err = a.date(""); err != nil {
		return e, err
	}
	if e.TaskName, err = a.taskName(); err != nil {
		return e, err
	}
	if e.TimeSpent, err = a.timeSpent(); err != nil {
		return e, err
	}
	if e.OptionalNotes, err = a.optionalNotes(); err != nil {
		return e, err
	}
	return e, nil
}
