package repositories

import (
	"context"

	"church-portal/internal/database"
)

type EventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, event_date, end_date, location, event_type,
        status, follow_up_needed, COALESCE(created_by, ''), created_at, updated_at`

func scanEvent(s scanner) (*database.Event, error) {
	var e database.Event
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate, &e.EndDate, &e.Location, &e.EventType,
		&e.Status, &e.FollowUpNeeded, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, op, query string, args ...interface{}) ([]database.Event, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	events := []database.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, translateError("scan event", err)
		}
		events = append(events, *e)
	}
	return events, translateError(op, rows.Err())
}

// List returns all events, soonest first.
func (r *EventRepository) List(ctx context.Context) ([]database.Event, error) {
	return r.queryEvents(ctx, "list events", `SELECT `+eventColumns+` FROM events ORDER BY event_date ASC`)
}

// ListUpcoming returns up to limit scheduled or ongoing events by date.
func (r *EventRepository) ListUpcoming(ctx context.Context, limit int) ([]database.Event, error) {
	return r.queryEvents(ctx, "list upcoming events",
		`SELECT `+eventColumns+` FROM events
        WHERE status IN ('scheduled', 'ongoing')
        ORDER BY event_date ASC
        LIMIT ?`, limit)
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*database.Event, error) {
	query := r.db.Rebind(`SELECT ` + eventColumns + ` FROM events WHERE id = ?`)
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError("get event", err)
	}
	return e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *database.Event) error {
	if e.ID == "" {
		e.ID = newID()
	}
	if e.Status == "" {
		e.Status = "scheduled"
	}
	now := database.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	e.EventDate = database.Normalize(e.EventDate)
	e.EndDate = database.NormalizePtr(e.EndDate)

	query := r.db.Rebind(`
        INSERT INTO events (id, title, description, event_date, end_date, location, event_type,
            status, follow_up_needed, created_by, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.EventDate, e.EndDate, e.Location, e.EventType,
		e.Status, e.FollowUpNeeded, e.CreatedBy, e.CreatedAt, e.UpdatedAt)
	return translateError("create event", err)
}

func (r *EventRepository) Update(ctx context.Context, e *database.Event) error {
	e.UpdatedAt = database.Now()
	e.EventDate = database.Normalize(e.EventDate)
	e.EndDate = database.NormalizePtr(e.EndDate)

	query := r.db.Rebind(`
        UPDATE events
        SET title = ?, description = ?, event_date = ?, end_date = ?, location = ?, event_type = ?,
            status = ?, follow_up_needed = ?, updated_at = ?
        WHERE id = ?
    `)
	res, err := r.db.ExecContext(ctx, query,
		e.Title, e.Description, e.EventDate, e.EndDate, e.Location, e.EventType,
		e.Status, e.FollowUpNeeded, e.UpdatedAt, e.ID)
	if err != nil {
		return translateError("update event", err)
	}
	return requireAffected("update event", res)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM events WHERE id = ?`), id)
	if err != nil {
		return translateError("delete event", err)
	}
	return requireAffected("delete event", res)
}
