package entries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/worklog/internal/database"
	"github.com/dmitrijs2005/worklog/internal/dbx"
	"github.com/dmitrijs2005/worklog/internal/models"
)

const table = "entries"

var columns = []string{"employee_name", "date", "task_name", "time_spent", "optional_notes"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SQLRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLRepository struct {
	db   dbx.DBTX
	sq   squirrel.StatementBuilderType
	like string
}

// NewSQLRepository returns a SQLRepository speaking the given driver's dialect.
func NewSQLRepository(db dbx.DBTX, driver database.Driver) *SQLRepository {
	r := &SQLRepository{
		db:   db,
		sq:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		like: "LIKE",
	}
	if driver == database.DriverPostgres {
		r.sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		r.like = "ILIKE"
	}
	return r
}

// valueTuple matches rows equal to e on all five fields.
func valueTuple(e models.Entry) squirrel.Eq {
	return squirrel.Eq{
		"employee_name":  e.EmployeeName,
		"date":           models.FormatDate(e.Date),
		"task_name":      e.TaskName,
		"time_spent":     e.TimeSpent,
		"optional_notes": e.OptionalNotes,
	}
}

// contains is a case-insensitive substring match with LIKE wildcards in text
// taken literally.
func (r *SQLRepository) contains(column, text string) squirrel.Sqlizer {
	return squirrel.Expr(column+" "+r.like+` ? ESCAPE '\'`, "%"+likeEscaper.Replace(text)+"%")
}

// Create inserts a new entry.
func (r *SQLRepository) Create(ctx context.Context, e models.Entry) error {
	query, args, err := r.sq.Insert(table).
		Columns(columns...).
		Values(e.EmployeeName, models.FormatDate(e.Date), e.TaskName, e.TimeSpent, e.OptionalNotes).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

// DeleteMatching removes every row equal to e.
func (r *SQLRepository) DeleteMatching(ctx context.Context, e models.Entry) (int64, error) {
	query, args, err := r.sq.Delete(table).Where(valueTuple(e)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// UpdateMatching overwrites every row equal to old with the values of updated.
func (r *SQLRepository) UpdateMatching(ctx context.Context, old, updated models.Entry) (int64, error) {
	query, args, err := r.sq.Update(table).
		Set("employee_name", updated.EmployeeName).
		Set("date", models.FormatDate(updated.Date)).
		Set("task_name", updated.TaskName).
		Set("time_spent", updated.TimeSpent).
		Set("optional_notes", updated.OptionalNotes).
		Where(valueTuple(old)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) FindByDate(ctx context.Context, date time.Time) ([]models.Entry, error) {
	return r.find(ctx, squirrel.Eq{"date": models.FormatDate(date)}, "id ASC")
}

func (r *SQLRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Entry, error) {
	where := squirrel.And{
		squirrel.GtOrEq{"date": models.FormatDate(start)},
		squirrel.LtOrEq{"date": models.FormatDate(end)},
	}
	return r.find(ctx, where, "date DESC", "id ASC")
}

func (r *SQLRepository) FindByTimeSpent(ctx context.Context, minutes int) ([]models.Entry, error) {
	return r.find(ctx, squirrel.Eq{"time_spent": minutes}, "date DESC", "id ASC")
}

func (r *SQLRepository) FindByText(ctx context.Context, text string) ([]models.Entry, error) {
	where := squirrel.Or{r.contains("task_name", text), r.contains("optional_notes", text)}
	return r.find(ctx, where, "date DESC", "id ASC")
}

func (r *SQLRepository) FindByEmployeeName(ctx context.Context, name string) ([]models.Entry, error) {
	return r.find(ctx, r.contains("employee_name", name), "date DESC", "id ASC")
}

func (r *SQLRepository) find(ctx context.Context, where squirrel.Sqlizer, orderBy ...string) ([]models.Entry, error) {
	query, args, err := r.sq.Select(columns...).From(table).Where(where).OrderBy(orderBy...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := make([]models.Entry, 0)
	for rows.Next() {
		var (
			item models.Entry
			date string
		)
		if err := rows.Scan(&item.EmployeeName, &date, &item.TaskName, &item.TimeSpent, &item.OptionalNotes); err != nil {
			return nil, err
		}
		if item.Date, err = models.ParseDate(date); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
