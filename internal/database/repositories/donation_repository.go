package repositories

import (
	"context"

	"church-portal/internal/database"
)

type DonationRepository struct {
	db *database.DB
}

func NewDonationRepository(db *database.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

const donationColumns = `id, donor_name, amount, donation_type, payment_method, donation_date,
        notes, receipt_number, follow_up_needed, COALESCE(created_by, ''), created_at, updated_at`

func scanDonation(s scanner) (*database.Donation, error) {
	var d database.Donation
	err := s.Scan(
		&d.ID, &d.DonorName, &d.Amount, &d.DonationType, &d.PaymentMethod, &d.DonationDate,
		&d.Notes, &d.ReceiptNumber, &d.FollowUpNeeded, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all donations, most recent donation date first.
func (r *DonationRepository) List(ctx context.Context) ([]database.Donation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+donationColumns+` FROM donations ORDER BY donation_date DESC, created_at DESC`)
	if err != nil {
		return nil, translateError("list donations", err)
	}
	defer rows.Close()

	donations := []database.Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, translateError("scan donation", err)
		}
		donations = append(donations, *d)
	}
	return donations, translateError("list donations", rows.Err())
}

func (r *DonationRepository) GetByID(ctx context.Context, id string) (*database.Donation, error) {
	query := r.db.Rebind(`SELECT ` + donationColumns + ` FROM donations WHERE id = ?`)
	d, err := scanDonation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError("get donation", err)
	}
	return d, nil
}

func (r *DonationRepository) Create(ctx context.Context, d *database.Donation) error {
	if d.ID == "" {
		d.ID = newID()
	}
	now := database.Now()
	d.CreatedAt, d.UpdatedAt = now, now
	d.DonationDate = database.Normalize(d.DonationDate)

	query := r.db.Rebind(`
        INSERT INTO donations (id, donor_name, amount, donation_type, payment_method, donation_date,
            notes, receipt_number, follow_up_needed, created_by, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.DonorName, d.Amount, d.DonationType, d.PaymentMethod, d.DonationDate,
		d.Notes, d.ReceiptNumber, d.FollowUpNeeded, d.CreatedBy, d.CreatedAt, d.UpdatedAt)
	return translateError("create donation", err)
}

// Update overwrites every mutable column of d.
func (r *DonationRepository) Update(ctx context.Context, d *database.Donation) error {
	d.UpdatedAt = database.Now()
	d.DonationDate = database.Normalize(d.DonationDate)

	query := r.db.Rebind(`
        UPDATE donations
        SET donor_name = ?, amount = ?, donation_type = ?, payment_method = ?, donation_date = ?,
            notes = ?, receipt_number = ?, follow_up_needed = ?, updated_at = ?
        WHERE id = ?
    `)
	res, err := r.db.ExecContext(ctx, query,
		d.DonorName, d.Amount, d.DonationType, d.PaymentMethod, d.DonationDate,
		d.Notes, d.ReceiptNumber, d.FollowUpNeeded, d.UpdatedAt, d.ID)
	if err != nil {
		return translateError("update donation", err)
	}
	return requireAffected("update donation", res)
}

func (r *DonationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM donations WHERE id = ?`), id)
	if err != nil {
		return translateError("delete donation", err)
	}
	return requireAffected("delete donation", res)
}
