package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/edbuddy/edbuddy/internal/app"
)

type CreateHistoryEntryParams struct {
	EventType   string
	IsDocked    bool
	Position    app.Position
	StartMarker bool
	StopMarker  bool
	System      string
	Time        time.Time
}

// CreateHistoryEntry creates a new history entry and returns it's ID.
func (st *Storage) CreateHistoryEntry(ctx context.Context, arg CreateHistoryEntryParams) (int64, error) {
	if arg.Time.IsZero() || arg.EventType == "" {
		return 0, fmt.Errorf("create history entry: %+v: invalid params", arg)
	}
	r, err := st.dbRW.ExecContext(ctx, `
		INSERT INTO history_entries (
			event_time, event_type, system_name, x, y, z, is_docked, start_marker, stop_marker
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		arg.Time.UTC(),
		arg.EventType,
		arg.System,
		arg.Position.X,
		arg.Position.Y,
		arg.Position.Z,
		arg.IsDocked,
		arg.StartMarker,
		arg.StopMarker,
	)
	if err != nil {
		return 0, fmt.Errorf("create history entry: %w", err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create history entry: %w", err)
	}
	return id, nil
}

const historyEntryColumns = `id, event_time, event_type, system_name, x, y, z, is_docked, start_marker, stop_marker`

func (st *Storage) GetHistoryEntry(ctx context.Context, id int64) (*app.HistoryEntry, error) {
	row := st.dbRO.QueryRowContext(ctx, `
		SELECT `+historyEntryColumns+`
		FROM history_entries
		WHERE id = ?;`,
		id,
	)
	he, err := scanHistoryEntry(row)
	if err != nil {
		return nil, fmt.Errorf("get history entry %d: %w", id, convertGetError(err))
	}
	return he, nil
}

// ListHistoryEntries returns all history entries, most recent first.
func (st *Storage) ListHistoryEntries(ctx context.Context) ([]*app.HistoryEntry, error) {
	rows, err := st.dbRO.QueryContext(ctx, `
		SELECT `+historyEntryColumns+`
		FROM history_entries
		ORDER BY event_time DESC, id DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("list history entries: %w", err)
	}
	defer rows.Close()
	entries := make([]*app.HistoryEntry, 0)
	for rows.Next() {
		he, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list history entries: %w", err)
		}
		entries = append(entries, he)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history entries: %w", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

var _ rowScanner = (*sql.Row)(nil)

func scanHistoryEntry(r rowScanner) (*app.HistoryEntry, error) {
	var he app.HistoryEntry
	err := r.Scan(
		&he.ID,
		&he.Time,
		&he.EventType,
		&he.System,
		&he.Position.X,
		&he.Position.Y,
		&he.Position.Z,
		&he.IsDocked,
		&he.StartMarker,
		&he.StopMarker,
	)
	if err != nil {
		return nil, err
	}
	he.Time = he.Time.UTC()
	return &he, nil
}
