package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/jmoiron/sqlx"
	"github.com/ribgsilva/note-crud/sys"
	"time"
)

// layouts a driver may use when it hands a timestamp over as text
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts.t = time.Time{}
		return nil
	}
	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (ts timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", s)
}

type scanner interface {
	Scan(dest ...any) error
}

// scan reads one row, NULL category and published read as their zero values
func scan(s scanner) (Note, error) {
	var n Note
	var category sql.NullString
	var published sql.NullBool
	if err := s.Scan(&n.Id, &n.Title, &n.Content, &category, &published, timestamp{&n.CreatedAt}, timestamp{&n.UpdatedAt}); err != nil {
		return Note{}, err
	}
	n.Category = category.String
	n.Published = published.Bool
	return n, nil
}

// query rewrites the ? placeholders of q into the form the configured driver expects
func query(q string) string {
	return sqlx.Rebind(sqlx.BindType(sys.Configs.Database.Driver), q)
}

// selectByID reads a note straight from the database
func selectByID(ctx context.Context, id string) (Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, query("SELECT "+columns+" FROM notes WHERE id = ?"))
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	n, err := scan(stmt.QueryRowContext(dbCtx, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}
	return n, nil
}
