package entries

import (
	"context"
	"time"

	"github.com/dmitrijs2005/worklog/internal/models"
)

// Queries are the read side. A query with no matches returns an empty slice
// and a nil error.
type Queries interface {
	// FindByDate returns entries on exactly the given day, in store order.
	FindByDate(ctx context.Context, date time.Time) ([]models.Entry, error)

	// FindByDateRange returns entries with start <= date <= end, newest first.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Entry, error)

	// FindByTimeSpent returns entries with the given duration, newest first.
	FindByTimeSpent(ctx context.Context, minutes int) ([]models.Entry, error)

	// FindByText returns entries whose task name or notes contain text, newest first.
	FindByText(ctx context.Context, text string) ([]models.Entry, error)

	// FindByEmployeeName returns entries whose employee name contains name, newest first.
	FindByEmployeeName(ctx context.Context, name string) ([]models.Entry, error)
}

// Mutations are the write side. Delete and update return the number of rows
// they touched.
type Mutations interface {
	Create(ctx context.Context, e models.Entry) error
	DeleteMatching(ctx context.Context, e models.Entry) (int64, error)
	UpdateMatching(ctx context.Context, old, updated models.Entry) (int64, error)
}

// Repository describes every storage operation on entries.
type Repository interface {
	Queries
	Mutations
}
