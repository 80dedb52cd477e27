package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/worklog/internal/common"
)

// addEntry collects a new entry and stores it once the user confirms.
func (a *App) addEntry(ctx context.Context) error {
	e, err := a.collectEntry()
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
	if err := a.entries.Add(ctx, e); err != nil {
		if errors.Is(err, common.ErrValidation) {
			a.showError(err)
			return a.pause("Enter to continue")
		}
		return err
	}
	return a.pause(a.palette.success.Sprint("Entry added. Enter to return to the menu"))
}
