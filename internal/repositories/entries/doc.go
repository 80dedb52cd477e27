// Package entries provides the persistence layer for timesheet entries.
//
// # Overview
//
// Repository covers the five read queries the search menu needs and the three
// mutations (create, delete-matching, update-matching). SQLRepository
// implements it for SQLite and PostgreSQL over a dbx.DBTX, building every
// statement with squirrel so only the placeholder format and the
// case-insensitive LIKE operator differ between dialects.
//
// # Identity
//
// Entries have no exposed identity key. Delete and update match on the full
// five-field value-tuple and therefore affect every duplicate row. The table's
// internal id column only gives "store order" a stable meaning.
//
// Typical Usage
//
//	repo := entries.NewSQLRepository(db, database.DriverSQLite)
//	_ = repo.Create(ctx, entry)
//	list, _ := repo.FindByDateRange(ctx, start, end)
//	n, _ := repo.DeleteMatching(ctx, list[0])
package entries
