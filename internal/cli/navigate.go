package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/worklog/internal/common"
	"github.com/dmitrijs2005/worklog/internal/models"
	"github.com/dmitrijs2005/worklog/internal/navigator"
)

// navigate pages through results until the user returns to the search menu.
// Edits and deletes are written through to storage before the list changes.
func (a *App) navigate(ctx context.Context, results []models.Entry) error {
	s := navigator.New(results)
	for {
		a.screen.Clear()
		if s.State() == navigator.StateEmpty {
			fmt.Fprintln(a.out, "No matches found")
			return a.pause("Press enter to continue")
		}

		a.palette.renderEntry(a.out, s)
		answer, err := a.readLine("> ")
		if err != nil {
			return err
		}

		action, ok := navigator.ParseAction(answer)
		if !ok || !s.Allows(action) {
			fmt.Fprintln(a.out, a.palette.hint.Sprint(keysHint(s.Actions())))
			if err := a.pause("Enter to continue"); err != nil {
				return err
			}
			continue
		}

		switch action {
		case navigator.ActionNext:
			err = s.Next()
		case navigator.ActionPrevious:
			err = s.Previous()
		case navigator.ActionEdit:
			err = a.editCurrent(ctx, s)
		case navigator.ActionDelete:
			err = a.deleteCurrent(ctx, s)
		case navigator.ActionReturn:
			a.screen.Clear()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) editCurrent(ctx context.Context, s *navigator.Session) error {
	old, _ := s.Current()
	a.screen.Clear()
	updated, err := a.collectEntry()
	if err != nil {
		return err
	}
	save, err := a.confirm("Save entry? [Yn] ")
	if err != nil {
		return err
	}
	if !save {
		return a.pause(a.palette.hint.Sprint("Entry not saved. Enter to continue"))
	}
	if err := a.entries.Edit(ctx, old, updated); err != nil {
		if errors.Is(err, common.ErrValidation) {
			a.showError(err)
			return a.pause("Enter to continue")
		}
		return err
	}
	if err := s.Replace(updated); err != nil {
		return err
	}
	return a.pause(a.palette.success.Sprint("The entry has been edited. Press enter"))
}

func (a *App) deleteCurrent(ctx context.Context, s *navigator.Session) error {
	current, _ := s.Current()
	remove, err := a.confirm("Delete entry? [Yn] ")
	if err != nil {
		return err
	}
	if !remove {
		return a.pause(a.palette.hint.Sprint("Entry not deleted. Enter to continue"))
	}
	if err := a.entries.Delete(ctx, current); err != nil {
		return err
	}
	if err := s.Remove(); err != nil {
		return err
	}
	return a.pause(a.palette.success.Sprint("The entry has been deleted. Press enter"))
}
