package repositories

import (
	"context"
	"time"

	"church-portal/internal/database"
)

// DashboardStats aggregates the panel's headline numbers.
type DashboardStats struct {
	ActiveMembers         int                `json:"active_members"`
	BirthdaysThisMonth    int                `json:"birthdays_this_month"`
	TotalVisitors         int                `json:"total_visitors"`
	VisitorsNeedFollowUp  int                `json:"visitors_need_follow_up"`
	VisitorsFollowedUp    int                `json:"visitors_followed_up"`
	MonthlyDonationTotal  float64            `json:"monthly_donation_total"`
	DonationsByType       map[string]float64 `json:"donations_by_type"`
	DonationsNeedFollowUp int                `json:"donations_need_follow_up"`
	ScheduledEvents       int                `json:"scheduled_events"`
	CompletedEvents       int                `json:"completed_events"`
	UpcomingEvents        int                `json:"upcoming_events"`
	GeneratedAt           time.Time          `json:"generated_at"`
}

// UpcomingWindow is how far ahead UpcomingEvents looks.
const UpcomingWindow = 30 * 24 * time.Hour

type DashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(query), args...).Scan(&n); err != nil {
		return 0, translateError("dashboard count", err)
	}
	return n, nil
}

// Stats computes the dashboard figures relative to now.
func (r *DashboardRepository) Stats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	now = database.Normalize(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	stats := &DashboardStats{
		DonationsByType: map[string]float64{},
		GeneratedAt:     now,
	}

	counts := []struct {
		dest  *int
		query string
		args  []interface{}
	}{
		{&stats.ActiveMembers, `SELECT COUNT(*) FROM members WHERE status = 'active'`, nil},
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.VisitorsNeedFollowUp, `SELECT COUNT(*) FROM visitors WHERE follow_up_needed = ? AND followed_up = ?`, []interface{}{true, false}},
		{&stats.VisitorsFollowedUp, `SELECT COUNT(*) FROM visitors WHERE followed_up = ?`, []interface{}{true}},
		{&stats.DonationsNeedFollowUp, `SELECT COUNT(*) FROM donations WHERE follow_up_needed = ?`, []interface{}{true}},
		{&stats.ScheduledEvents, `SELECT COUNT(*) FROM events WHERE status = 'scheduled'`, nil},
		{&stats.CompletedEvents, `SELECT COUNT(*) FROM events WHERE status = 'completed'`, nil},
		{&stats.UpcomingEvents, `SELECT COUNT(*) FROM events WHERE status = 'scheduled' AND event_date >= ? AND event_date < ?`,
			[]interface{}{now, now.Add(UpcomingWindow)}},
	}
	for _, c := range counts {
		n, err := r.count(ctx, c.query, c.args...)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}

	birthdays, err := r.birthdaysInMonth(ctx, now.Month())
	if err != nil {
		return nil, err
	}
	stats.BirthdaysThisMonth = birthdays

	var total float64
	err = r.db.QueryRowContext(ctx,
		r.db.Rebind(`SELECT COALESCE(SUM(amount), 0) FROM donations WHERE donation_date >= ? AND donation_date < ?`),
		monthStart, nextMonth,
	).Scan(&total)
	if err != nil {
		return nil, translateError("monthly donation total", err)
	}
	stats.MonthlyDonationTotal = total

	rows, err := r.db.QueryContext(ctx,
		`SELECT COALESCE(donation_type, 'other'), SUM(amount) FROM donations GROUP BY COALESCE(donation_type, 'other')`)
	if err != nil {
		return nil, translateError("donations by type", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var sum float64
		if err := rows.Scan(&kind, &sum); err != nil {
			return nil, translateError("donations by type", err)
		}
		stats.DonationsByType[kind] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("donations by type", err)
	}

	return stats, nil
}

func (r *DashboardRepository) birthdaysInMonth(ctx context.Context, month time.Month) (int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT birth_date FROM members WHERE status = 'active' AND birth_date IS NOT NULL`)
	if err != nil {
		return 0, translateError("member birthdays", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var birth time.Time
		if err := rows.Scan(&birth); err != nil {
			return 0, translateError("member birthdays", err)
		}
		if birth.Month() == month {
			n++
		}
	}
	return n, translateError("member birthdays", rows.Err())
}
