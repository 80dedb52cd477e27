package cli

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/worklog/internal/models"
	"github.com/dmitrijs2005/worklog/internal/navigator"
)

// chooseBy narrows list to the entries sharing one value of field, picked by
// the user from a numbered menu. An empty list is returned as is.
func (a *App) chooseBy(field models.Field, list []models.Entry) ([]models.Entry, error) {
	if len(list) == 0 {
		return list, nil
	}
	values := navigator.DistinctValues(field, list)
	for {
		fmt.Fprintln(a.out, a.palette.title.Sprint("Select one of the following: "))
		for i, v := range values {
			fmt.Fprintf(a.out, "%d) %s\n", i+1, v)
		}
		answer, err := a.readLine("> ")
		if err != nil {
			return nil, err
		}
		n, cerr := strconv.Atoi(answer)
		if cerr != nil || n < 1 || n > len(values) {
			fmt.Fprintln(a.out, a.palette.hint.Sprint("Enter a valid integer choice from the list"))
			if err := a.pause("Enter to continue"); err != nil {
				return nil, err
			}
			a.screen.Clear()
			continue
		}
		a.screen.Clear()
		return navigator.FilterBy(field, values[n-1], list), nil
	}
}
