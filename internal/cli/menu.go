package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/worklog/internal/models"
)

type menuItem[T any] struct {
	key    string
	label  string
	choice T
}

// readMenu shows header and items and returns the chosen item. Unknown input
// shows hint, waits for Enter and asks again.
func readMenu[T any](a *App, header string, items []menuItem[T], hint string) (T, error) {
	for {
		a.screen.Clear()
		fmt.Fprintln(a.out, a.palette.title.Sprint(header))
		for _, it := range items {
			fmt.Fprintf(a.out, "%s) %s\n", it.key, it.label)
		}
		answer, err := a.readLine(">")
		if err != nil {
			var zero T
			return zero, err
		}
		answer = strings.ToLower(answer)
		for _, it := range items {
			if it.key == answer {
				a.screen.Clear()
				return it.choice, nil
			}
		}
		if err := a.pause(a.palette.hint.Sprint(hint)); err != nil {
			var zero T
			return zero, err
		}
	}
}

type MainChoice int

const (
	MainAddEntry MainChoice = iota
	MainSearch
	MainQuit
)

func (a *App) mainMenu(ctx context.Context) error {
	items := []menuItem[MainChoice]{
		{"a", "Add new entry", MainAddEntry},
		{"b", "Search existing entries", MainSearch},
		{"c", "Quit the program", MainQuit},
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := readMenu(a, "WORK LOG\nWhat would you like to do?", items, "Please enter 'a', 'b', or 'c'\nEnter to continue")
		if err != nil {
			return err
		}
		switch choice {
		case MainAddEntry:
			err = a.addEntry(ctx)
		case MainSearch:
			err = a.searchMenu(ctx)
		case MainQuit:
			fmt.Fprintln(a.out, "Thanks for using the Work Log program!\nCome again soon.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

type SearchChoice int

const (
	SearchExactDate SearchChoice = iota
	SearchDateRange
	SearchTimeSpent
	SearchText
	SearchEmployeeName
	SearchReturn
)

func (a *App) searchMenu(ctx context.Context) error {
	items := []menuItem[SearchChoice]{
		{"a", "Exact date", SearchExactDate},
		{"b", "Range of dates", SearchDateRange},
		{"c", "Time spent", SearchTimeSpent},
		{"d", "Exact search", SearchText},
		{"e", "Employee name", SearchEmployeeName},
		{"f", "Return to menu", SearchReturn},
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := readMenu(a, "Do you want to search by:", items, "Enter a valid choice a-f. Enter to continue")
		if err != nil {
			return err
		}
		var results []models.Entry
		switch choice {
		case SearchExactDate:
			results, err = a.searchExactDate(ctx)
		case SearchDateRange:
			results, err = a.searchDateRange(ctx)
		case SearchTimeSpent:
			results, err = a.searchTimeSpent(ctx)
		case SearchText:
			results, err = a.searchText(ctx)
		case SearchEmployeeName:
			results, err = a.searchEmployeeName(ctx)
		case SearchReturn:
			return nil
		}
		if err != nil {
			return err
		}
		if err := a.navigate(ctx, results); err != nil {
			return err
		}
	}
}

func (a *App) searchExactDate(ctx context.Context) ([]models.Entry, error) {
	d, err := a.date("")
	if err != nil {
		return nil, err
	}
	return a.entries.SearchByDate(ctx, d)
}

func (a *App) searchDateRange(ctx context.Context) ([]models.Entry, error) {
	start, end, err := a.twoOrderedDates()
	if err != nil {
		return nil, err
	}
	found, err := a.entries.SearchByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return a.chooseBy(models.FieldDate, found)
}

func (a *App) searchTimeSpent(ctx context.Context) ([]models.Entry, error) {
	minutes, err := a.timeSpent()
	if err != nil {
		return nil, err
	}
	return a.entries.SearchByTimeSpent(ctx, minutes)
}

func (a *App) searchText(ctx context.Context) ([]models.Entry, error) {
	text, err := a.searchString()
	if err != nil {
		return nil, err
	}
	a.screen.Clear()
	return a.entries.SearchByText(ctx, text)
}

func (a *App) searchEmployeeName(ctx context.Context) ([]models.Entry, error) {
	name, err := a.employeeName()
	if err != nil {
		return nil, err
	}
	found, err := a.entries.SearchByEmployeeName(ctx, name)
	if err != nil {
		return nil, err
	}
	return a.chooseBy(models.FieldEmployeeName, found)
}
