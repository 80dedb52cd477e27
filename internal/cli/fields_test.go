package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/worklog/internal/models"
)

func TestEmployeeName_RepromptsUntilValid(t *testing.T) {
	a, out := newTestApp(&fakeService{}, "", "", strings.Repeat("a", 51), "", "Ann")
	name, err := a.employeeName()
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)

	s := out.String()
	assert.Contains(t, s, "Error: an employee name must be entered")
	assert.Contains(t, s, "Error: must be 50 characters or less")
	assert.Equal(t, 3, strings.Count(s, "Please enter name: "))
}

func TestTaskName_EmptyRejected(t *testing.T) {
	a, out := newTestApp(&fakeService{}, "   ", "", "Paperwork")
	task, err := a.taskName()
	require.NoError(t, err)
	assert.Equal(t, "Paperwork", task)
	assert.Contains(t, out.String(), "Error: a task name must be entered")
}

func TestDate_InvalidThenValid(t *testing.T) {
	a, out := newTestApp(&fakeService{}, "2019/13/40", "", "2019/3/1")
	d, err := a.date("")
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2019, 3, 1), d)

	s := out.String()
	assert.Contains(t, s, "Error: 2019/13/40 doesn't seem to be a valid date")
	assert.Contains(t, s, "Press enter to try again")
	assert.Equal(t, 2, strings.Count(s, "Date of the task\nPlease use YYYY/MM/DD: "))
}

func TestTimeSpent_RejectsNonIntegersAndNonPositive(t *testing.T) {
	a, out := newTestApp(&fakeService{}, "abc", "", "0", "", "-5", "", "45")
	n, err := a.timeSpent()
	require.NoError(t, err)
	assert.Equal(t, 45, n)

	s := out.String()
	assert.Contains(t, s, "Error: abc doesn't seem to be a valid integer")
	assert.Equal(t, 2, strings.Count(s, "Error: time spent must be greater than zero"))
}

func TestTwoOrderedDates_RepromptsWhenReversed(t *testing.T) {
	a, out := newTestApp(&fakeService{}, "2019/4/3", "2019/3/1", "", "2019/3/1", "2019/4/3")
	start, end, err := a.twoOrderedDates()
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2019, 3, 1), start)
	assert.Equal(t, models.NewDate(2019, 4, 3), end)

	s := out.String()
	assert.Contains(t, s, "Error: 2019-04-03 is greater than 2019-03-01")
	assert.Equal(t, 4, strings.Count(s, "Enter the dates\n"))
}

func TestTwoOrderedDates_SameDayAccepted(t *testing.T) {
	a, _ := newTestApp(&fakeService{}, "2019/3/1", "2019/03/01")
	start, end, err := a.twoOrderedDates()
	require.NoError(t, err)
	assert.Equal(t, start, end)
}

func TestCollectEntry(t *testing.T) {
	a, _ := newTestApp(&fakeService{}, "Ann", "2019/3/15", "Report", "90", "quarterly")
	e, err := a.collectEntry()
	require.NoError(t, err)
	assert.Equal(t, entry("Ann", models.NewDate(2019, 3, 15), "Report", 90, "quarterly"), e)
}

func TestCollectEntry_EOF(t *testing.T) {
	a, _ := newTestApp(&fakeService{}, "Ann", "2019/3/15")
	_, err := a.collectEntry()
	require.ErrorIs(t, err, io.EOF)
}

func TestSearchString_AllowsEmpty(t *testing.T) {
	a, out := newTestApp(&fakeService{}, "")
	s, err := a.searchString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Contains(t, out.String(), "Search by string in the task name or optional notes\nString: ")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  bool
	}{
		{"yes", []string{"y"}, true},
		{"upper yes", []string{"Y"}, true},
		{"no", []string{"n"}, false},
		{"reask", []string{"yes", "", "", "", "n"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(&fakeService{}, tt.input...)
			got, err := a.confirm("Save entry? [Yn] ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
