package repositories

import (
	"context"

	"church-portal/internal/database"
)

type StreamRepository struct {
	db *database.DB
}

func NewStreamRepository(db *database.DB) *StreamRepository {
	return &StreamRepository{db: db}
}

const streamColumns = `id, title, description, stream_url, platform, scheduled_date, status,
        COALESCE(created_by, ''), created_at, updated_at`

func scanStream(s scanner) (*database.Stream, error) {
	var st database.Stream
	err := s.Scan(
		&st.ID, &st.Title, &st.Description, &st.StreamURL, &st.Platform, &st.ScheduledDate, &st.Status,
		&st.CreatedBy, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *StreamRepository) queryStreams(ctx context.Context, op, query string, args ...interface{}) ([]database.Stream, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	streams := []database.Stream{}
	for rows.Next() {
		st, err := scanStream(rows)
		if err != nil {
			return nil, translateError("scan stream", err)
		}
		streams = append(streams, *st)
	}
	return streams, translateError(op, rows.Err())
}

// List returns all streams, most recently scheduled first.
func (r *StreamRepository) List(ctx context.Context) ([]database.Stream, error) {
	return r.queryStreams(ctx, "list streams", `SELECT `+streamColumns+` FROM streams ORDER BY scheduled_date DESC`)
}

// ListUpcoming returns up to limit scheduled or live streams by date.
func (r *StreamRepository) ListUpcoming(ctx context.Context, limit int) ([]database.Stream, error) {
	return r.queryStreams(ctx, "list upcoming streams",
		`SELECT `+streamColumns+` FROM streams
        WHERE status IN ('scheduled', 'live')
        ORDER BY scheduled_date ASC
        LIMIT ?`, limit)
}

func (r *StreamRepository) GetByID(ctx context.Context, id string) (*database.Stream, error) {
	query := r.db.Rebind(`SELECT ` + streamColumns + ` FROM streams WHERE id = ?`)
	st, err := scanStream(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError("get stream", err)
	}
	return st, nil
}

func (r *StreamRepository) Create(ctx context.Context, st *database.Stream) error {
	if st.ID == "" {
		st.ID = newID()
	}
	if st.Status == "" {
		st.Status = "scheduled"
	}
	now := database.Now()
	st.CreatedAt, st.UpdatedAt = now, now
	st.ScheduledDate = database.Normalize(st.ScheduledDate)

	query := r.db.Rebind(`
        INSERT INTO streams (id, title, description, stream_url, platform, scheduled_date, status,
            created_by, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	_, err := r.db.ExecContext(ctx, query,
		st.ID, st.Title, st.Description, st.StreamURL, st.Platform, st.ScheduledDate, st.Status,
		st.CreatedBy, st.CreatedAt, st.UpdatedAt)
	return translateError("create stream", err)
}

func (r *StreamRepository) Update(ctx context.Context, st *database.Stream) error {
	st.UpdatedAt = database.Now()
	st.ScheduledDate = database.Normalize(st.ScheduledDate)

	query := r.db.Rebind(`
        UPDATE streams
        SET title = ?, description = ?, stream_url = ?, platform = ?, scheduled_date = ?, status = ?,
            updated_at = ?
        WHERE id = ?
    `)
	res, err := r.db.ExecContext(ctx, query,
		st.Title, st.Description, st.StreamURL, st.Platform, st.ScheduledDate, st.Status,
		st.UpdatedAt, st.ID)
	if err != nil {
		return translateError("update stream", err)
	}
	return requireAffected("update stream", res)
}

func (r *StreamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM streams WHERE id = ?`), id)
	if err != nil {
		return translateError("delete stream", err)
	}
	return requireAffected("delete stream", res)
}
