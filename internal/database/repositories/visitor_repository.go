package repositories

import (
	"context"

	"church-portal/internal/database"
)

type VisitorRepository struct {
	db *database.DB
}

func NewVisitorRepository(db *database.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

const visitorColumns = `id, name, email, phone, visit_date, how_found, prayer_request,
        follow_up_needed, followed_up, notes, COALESCE(created_by, ''), created_at, updated_at`

func scanVisitor(s scanner) (*database.Visitor, error) {
	var v database.Visitor
	err := s.Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.VisitDate, &v.HowFound, &v.PrayerRequest,
		&v.FollowUpNeeded, &v.FollowedUp, &v.Notes, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns visitors, most recent visit first.
func (r *VisitorRepository) List(ctx context.Context) ([]database.Visitor, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+visitorColumns+` FROM visitors ORDER BY visit_date DESC`)
	if err != nil {
		return nil, translateError("list visitors", err)
	}
	defer rows.Close()

	visitors := []database.Visitor{}
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, translateError("scan visitor", err)
		}
		visitors = append(visitors, *v)
	}
	return visitors, translateError("list visitors", rows.Err())
}

func (r *VisitorRepository) GetByID(ctx context.Context, id string) (*database.Visitor, error) {
	query := r.db.Rebind(`SELECT ` + visitorColumns + ` FROM visitors WHERE id = ?`)
	v, err := scanVisitor(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError("get visitor", err)
	}
	return v, nil
}

func (r *VisitorRepository) Create(ctx context.Context, v *database.Visitor) error {
	if v.ID == "" {
		v.ID = newID()
	}
	now := database.Now()
	v.CreatedAt, v.UpdatedAt = now, now
	v.VisitDate = database.Normalize(v.VisitDate)

	query := r.db.Rebind(`
        INSERT INTO visitors (id, name, email, phone, visit_date, how_found, prayer_request,
            follow_up_needed, followed_up, notes, created_by, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.Name, v.Email, v.Phone, v.VisitDate, v.HowFound, v.PrayerRequest,
		v.FollowUpNeeded, v.FollowedUp, v.Notes, v.CreatedBy, v.CreatedAt, v.UpdatedAt)
	return translateError("create visitor", err)
}

func (r *VisitorRepository) Update(ctx context.Context, v *database.Visitor) error {
	v.UpdatedAt = database.Now()
	v.VisitDate = database.Normalize(v.VisitDate)

	query := r.db.Rebind(`
        UPDATE visitors
        SET name = ?, email = ?, phone = ?, visit_date = ?, how_found = ?, prayer_request = ?,
            follow_up_needed = ?, followed_up = ?, notes = ?, updated_at = ?
        WHERE id = ?
    `)
	res, err := r.db.ExecContext(ctx, query,
		v.Name, v.Email, v.Phone, v.VisitDate, v.HowFound, v.PrayerRequest,
		v.FollowUpNeeded, v.FollowedUp, v.Notes, v.UpdatedAt, v.ID)
	if err != nil {
		return translateError("update visitor", err)
	}
	return requireAffected("update visitor", res)
}

func (r *VisitorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM visitors WHERE id = ?`), id)
	if err != nil {
		return translateError("delete visitor", err)
	}
	return requireAffected("delete visitor", res)
}
