package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/worklog/internal/logging"
	"github.com/dmitrijs2005/worklog/internal/models"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// fakeService records calls and answers every search with results.
type fakeService struct {
	results []models.Entry
	err     error

	queries []string
	added   []models.Entry
	deleted []models.Entry
	edited  [][2]models.Entry
}

func (f *fakeService) search(q string) ([]models.Entry, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Entry(nil), f.results...), nil
}

func (f *fakeService) SearchByDate(_ context.Context, d time.Time) ([]models.Entry, error) {
	return f.search("date:" + models.FormatDate(d))
}

func (f *fakeService) SearchByDateRange(_ context.Context, start, end time.Time) ([]models.Entry, error) {
	return f.search("range:" + models.FormatDate(start) + ".." + models.FormatDate(end))
}

func (f *fakeService) SearchByTimeSpent(_ context.Context, minutes int) ([]models.Entry, error) {
	return f.search("time:" + strconv.Itoa(minutes))
}

func (f *fakeService) SearchByText(_ context.Context, text string) ([]models.Entry, error) {
	return f.search("text:" + text)
}

func (f *fakeService) SearchByEmployeeName(_ context.Context, name string) ([]models.Entry, error) {
	return f.search("name:" + name)
}

func (f *fakeService) Add(_ context.Context, e models.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, e)
	return nil
}

func (f *fakeService) Delete(_ context.Context, e models.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, e)
	return nil
}

func (f *fakeService) Edit(_ context.Context, old, updated models.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.edited = append(f.edited, [2]models.Entry{old, updated})
	return nil
}

var errStorage = errors.New("disk on fire")

func newTestApp(svc *fakeService, input ...string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	script := ""
	if len(input) > 0 {
		script = strings.Join(input, "\n") + "\n"
	}
	return newApp(svc, logging.NewNop(), strings.NewReader(script), out), out
}

func entry(name string, date time.Time, task string, minutes int, notes string) models.Entry {
	return models.Entry{EmployeeName: name, Date: date, TaskName: task, TimeSpent: minutes, OptionalNotes: notes}
}
