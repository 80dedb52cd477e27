// Package services holds the application logic between the interactive UI
// and the entry repository: validation, logging and error wrapping.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/worklog/internal/common"
	"github.com/dmitrijs2005/worklog/internal/logging"
	"github.com/dmitrijs2005/worklog/internal/models"
	"github.com/dmitrijs2005/worklog/internal/repositories/entries"
)

// QueryService runs the five searches. No matches is an empty slice, not an error.
type QueryService interface {
	SearchByDate(ctx context.Context, date time.Time) ([]models.Entry, error)
	SearchByDateRange(ctx context.Context, start, end time.Time) ([]models.Entry, error)
	SearchByTimeSpent(ctx context.Context, minutes int) ([]models.Entry, error)
	SearchByText(ctx context.Context, text string) ([]models.Entry, error)
	SearchByEmployeeName(ctx context.Context, name string) ([]models.Entry, error)
}

// MutationService changes stored entries. Delete and Edit act on every row
// whose five fields equal the given entry.
type MutationService interface {
	Add(ctx context.Context, e models.Entry) error
	Delete(ctx context.Context, e models.Entry) error
	Edit(ctx context.Context, old, updated models.Entry) error
}

type EntryService interface {
	QueryService
	MutationService
}

type entryService struct {
	repo   entries.Repository
	logger logging.Logger
}

func NewEntryService(repo entries.Repository, logger logging.Logger) EntryService {
	return &entryService{repo: repo, logger: logger.With("component", "entry_service")}
}

func entryAttrs(prefix string, e models.Entry) []any {
	return []any{
		prefix + "employee_name", e.EmployeeName,
		prefix + "date", models.FormatDate(e.Date),
		prefix + "task_name", e.TaskName,
		prefix + "time_spent", e.TimeSpent,
	}
}

func (s *entryService) Add(ctx context.Context, e models.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error(ctx, "add entry failed", "error", err)
		return fmt.Errorf("saving error: %w", err)
	}

	s.logger.Info(ctx, "entry added", entryAttrs("", e)...)
	return nil
}

func (s *entryService) Delete(ctx context.Context, e models.Entry) error {
	n, err := s.repo.DeleteMatching(ctx, e)
	if err != nil {
		s.logger.Error(ctx, "delete entry failed", "error", err)
		return fmt.Errorf("error deleting entry: %w", err)
	}

	attrs := append(entryAttrs("", e), "rows", n)
	if n == 0 {
		s.logger.Warn(ctx, "delete matched no rows", attrs...)
		return nil
	}
	s.logger.Info(ctx, "entry deleted", attrs...)
	return nil
}

func (s *entryService) Edit(ctx context.Context, old, updated models.Entry) error {
	if err := updated.Validate(); err != nil {
		return err
	}
	if old.Equal(updated) {
		s.logger.Debug(ctx, "edit left entry unchanged", entryAttrs("", old)...)
		return nil
	}

	n, err := s.repo.UpdateMatching(ctx, old, updated)
	if err != nil {
		s.logger.Error(ctx, "edit entry failed", "error", err)
		return fmt.Errorf("error editing entry: %w", err)
	}

	attrs := append(entryAttrs("old_", old), entryAttrs("new_", updated)...)
	attrs = append(attrs, "rows", n)
	if n == 0 {
		s.logger.Warn(ctx, "edit matched no rows", attrs...)
		return nil
	}
	s.logger.Info(ctx, "entry edited", attrs...)
	return nil
}

func (s *entryService) SearchByDate(ctx context.Context, date time.Time) ([]models.Entry, error) {
	return s.search(ctx, "exact_date", func() ([]models.Entry, error) {
		return s.repo.FindByDate(ctx, date)
	}, "date", models.FormatDate(date))
}

func (s *entryService) SearchByDateRange(ctx context.Context, start, end time.Time) ([]models.Entry, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s is greater than %s", common.ErrValidation, models.FormatDate(start), models.FormatDate(end))
	}
	return s.search(ctx, "date_range", func() ([]models.Entry, error) {
		return s.repo.FindByDateRange(ctx, start, end)
	}, "start", models.FormatDate(start), "end", models.FormatDate(end))
}

func (s *entryService) SearchByTimeSpent(ctx context.Context, minutes int) ([]models.Entry, error) {
	if err := models.ValidateTimeSpent(minutes); err != nil {
		return nil, err
	}
	return s.search(ctx, "time_spent", func() ([]models.Entry, error) {
		return s.repo.FindByTimeSpent(ctx, minutes)
	}, "time_spent", minutes)
}

func (s *entryService) SearchByText(ctx context.Context, text string) ([]models.Entry, error) {
	return s.search(ctx, "text", func() ([]models.Entry, error) {
		return s.repo.FindByText(ctx, text)
	}, "text", text)
}

func (s *entryService) SearchByEmployeeName(ctx context.Context, name string) ([]models.Entry, error) {
	return s.search(ctx, "employee_name", func() ([]models.Entry, error) {
		return s.repo.FindByEmployeeName(ctx, name)
	}, "employee_name", name)
}

func (s *entryService) search(ctx context.Context, kind string, run func() ([]models.Entry, error), args ...any) ([]models.Entry, error) {
	found, err := run()
	if err != nil {
		s.logger.Error(ctx, "search failed", "kind", kind, "error", err)
		return nil, fmt.Errorf("error searching entries: %w", err)
	}

	s.logger.Debug(ctx, "search", append([]any{"kind", kind, "matches", len(found)}, args...)...)
	return found, nil
}
