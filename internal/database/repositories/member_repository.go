package repositories

import (
	"context"

	"church-portal/internal/database"
)

type MemberRepository struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberColumns = `id, name, email, phone, address, birth_date, baptism_date, membership_date,
        status, notes, COALESCE(created_by, ''), created_at, updated_at`

func scanMember(s scanner) (*database.Member, error) {
	var m database.Member
	err := s.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Address, &m.BirthDate, &m.BaptismDate, &m.MembershipDate,
		&m.Status, &m.Notes, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns members ordered by name.
func (r *MemberRepository) List(ctx context.Context) ([]database.Member, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+memberColumns+` FROM members ORDER BY name ASC`)
	if err != nil {
		return nil, translateError("list members", err)
	}
	defer rows.Close()

	members := []database.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, translateError("scan member", err)
		}
		members = append(members, *m)
	}
	return members, translateError("list members", rows.Err())
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*database.Member, error) {
	query := r.db.Rebind(`SELECT ` + memberColumns + ` FROM members WHERE id = ?`)
	m, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError("get member", err)
	}
	return m, nil
}

func (r *MemberRepository) Create(ctx context.Context, m *database.Member) error {
	if m.ID == "" {
		m.ID = newID()
	}
	if m.Status == "" {
		m.Status = "active"
	}
	now := database.Now()
	m.CreatedAt, m.UpdatedAt = now, now
	normalizeMemberDates(m)

	query := r.db.Rebind(`
        INSERT INTO members (id, name, email, phone, address, birth_date, baptism_date, membership_date,
            status, notes, created_by, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.Address, m.BirthDate, m.BaptismDate, m.MembershipDate,
		m.Status, m.Notes, m.CreatedBy, m.CreatedAt, m.UpdatedAt)
	return translateError("create member", err)
}

func (r *MemberRepository) Update(ctx context.Context, m *database.Member) error {
	m.UpdatedAt = database.Now()
	normalizeMemberDates(m)

	query := r.db.Rebind(`
        UPDATE members
        SET name = ?, email = ?, phone = ?, address = ?, birth_date = ?, baptism_date = ?,
            membership_date = ?, status = ?, notes = ?, updated_at = ?
        WHERE id = ?
    `)
	res, err := r.db.ExecContext(ctx, query,
		m.Name, m.Email, m.Phone, m.Address, m.BirthDate, m.BaptismDate,
		m.MembershipDate, m.Status, m.Notes, m.UpdatedAt, m.ID)
	if err != nil {
		return translateError("update member", err)
	}
	return requireAffected("update member", res)
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM members WHERE id = ?`), id)
	if err != nil {
		return translateError("delete member", err)
	}
	return requireAffected("delete member", res)
}

func normalizeMemberDates(m *database.Member) {
	m.BirthDate = database.NormalizePtr(m.BirthDate)
	m.BaptismDate = database.NormalizePtr(m.BaptismDate)
	m.MembershipDate = database.NormalizePtr(m.MembershipDate)
}
