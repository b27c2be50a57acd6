package repositories

import (
	"context"
	"time"

	"church-portal/internal/database"
)

type AuditLogRepository struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// InsertAuditLog inserts a new audit log entry
func (r *AuditLogRepository) InsertAuditLog(ctx context.Context, log *database.AuditLog) error {
	if log.ID == "" {
		log.ID = newID()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = database.Now()
	}

	query := r.db.Rebind(`
        INSERT INTO audit_logs (id, action, user_id, resource, resource_id, details, ip_address, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `)
	_, err := r.db.ExecContext(ctx, query, log.ID, log.Action, log.UserID, log.Resource,
		log.ResourceID, log.Details, log.IPAddress, database.Normalize(log.CreatedAt))
	return translateError("insert audit log", err)
}

// AuditFilter narrows GetAuditLogs. Zero values match everything.
type AuditFilter struct {
	Action    string
	UserID    string
	Resource  string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Offset    int
}

// GetAuditLogs retrieves audit logs with pagination and filtering
func (r *AuditLogRepository) GetAuditLogs(ctx context.Context, f AuditFilter) ([]database.AuditLog, error) {
	query := `
        SELECT id, action, COALESCE(user_id, ''), COALESCE(resource, ''), COALESCE(resource_id, ''),
               COALESCE(details, ''), COALESCE(ip_address, ''), created_at
        FROM audit_logs
        WHERE 1=1
    `
	args := []interface{}{}

	if f.Action != "" {
		query += " AND action = ?"
		args = append(args, f.Action)
	}

	if f.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, f.UserID)
	}

	if f.Resource != "" {
		query += " AND resource = ?"
		args = append(args, f.Resource)
	}

	if f.StartTime != nil {
		query += " AND created_at >= ?"
		args = append(args, database.Normalize(*f.StartTime))
	}

	if f.EndTime != nil {
		query += " AND created_at <= ?"
		args = append(args, database.Normalize(*f.EndTime))
	}

	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, translateError("get audit logs", err)
	}
	defer rows.Close()

	logs := []database.AuditLog{}
	for rows.Next() {
		var log database.AuditLog
		err := rows.Scan(&log.ID, &log.Action, &log.UserID, &log.Resource, &log.ResourceID,
			&log.Details, &log.IPAddress, &log.CreatedAt)
		if err != nil {
			return nil, translateError("scan audit log", err)
		}
		logs = append(logs, log)
	}

	return logs, translateError("get audit logs", rows.Err())
}

// DeleteOldAuditLogs removes entries created before the cutoff
func (r *AuditLogRepository) DeleteOldAuditLogs(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM audit_logs WHERE created_at < ?`), database.Normalize(before))
	if err != nil {
		return 0, translateError("delete audit logs", err)
	}
	return res.RowsAffected()
}
