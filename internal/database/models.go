package database

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint rejects a row.
var ErrDuplicate = errors.New("record already exists")

// AuditLog represents an audit log entry
type AuditLog struct {
	ID         string    `db:"id" json:"id"`
	Action     string    `db:"action" json:"action"`
	UserID     string    `db:"user_id" json:"user_id"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID string    `db:"resource_id" json:"resource_id"`
	Details    string    `db:"details" json:"details"`
	IPAddress  string    `db:"ip_address" json:"ip_address"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// User represents a panel user
type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"` // Never include in JSON
	Name         string     `db:"name" json:"name"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Donation types and payment methods
var (
	DonationTypes  = []string{"tithe", "offering", "mission", "special", "other"}
	PaymentMethods = []string{"cash", "card", "transfer", "pix", "bizum", "other"}
)

// Donation represents a recorded gift
type Donation struct {
	ID             string    `db:"id" json:"id"`
	DonorName      *string   `db:"donor_name" json:"donor_name"`
	Amount         float64   `db:"amount" json:"amount"`
	DonationType   *string   `db:"donation_type" json:"donation_type"`
	PaymentMethod  *string   `db:"payment_method" json:"payment_method"`
	DonationDate   time.Time `db:"donation_date" json:"donation_date"`
	Notes          *string   `db:"notes" json:"notes"`
	ReceiptNumber  *string   `db:"receipt_number" json:"receipt_number"`
	FollowUpNeeded bool      `db:"follow_up_needed" json:"follow_up_needed"`
	CreatedBy      string    `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Member statuses
var MemberStatuses = []string{"active", "inactive", "visitor"}

// Member represents a church member
type Member struct {
	ID             string     `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Email          *string    `db:"email" json:"email"`
	Phone          *string    `db:"phone" json:"phone"`
	Address        *string    `db:"address" json:"address"`
	BirthDate      *time.Time `db:"birth_date" json:"birth_date"`
	BaptismDate    *time.Time `db:"baptism_date" json:"baptism_date"`
	MembershipDate *time.Time `db:"membership_date" json:"membership_date"`
	Status         string     `db:"status" json:"status"`
	Notes          *string    `db:"notes" json:"notes"`
	CreatedBy      string     `db:"created_by" json:"created_by"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// Visitor represents a first-time or occasional visitor
type Visitor struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          *string   `db:"email" json:"email"`
	Phone          *string   `db:"phone" json:"phone"`
	VisitDate      time.Time `db:"visit_date" json:"visit_date"`
	HowFound       *string   `db:"how_found" json:"how_found"`
	PrayerRequest  *string   `db:"prayer_request" json:"prayer_request"`
	FollowUpNeeded bool      `db:"follow_up_needed" json:"follow_up_needed"`
	FollowedUp     bool      `db:"followed_up" json:"followed_up"`
	Notes          *string   `db:"notes" json:"notes"`
	CreatedBy      string    `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Event statuses
var EventStatuses = []string{"scheduled", "ongoing", "completed", "cancelled"}

// Event represents a scheduled church event
type Event struct {
	ID             string     `db:"id" json:"id"`
	Title          string     `db:"title" json:"title"`
	Description    *string    `db:"description" json:"description"`
	EventDate      time.Time  `db:"event_date" json:"event_date"`
	EndDate        *time.Time `db:"end_date" json:"end_date"`
	Location       *string    `db:"location" json:"location"`
	EventType      *string    `db:"event_type" json:"event_type"`
	Status         string     `db:"status" json:"status"`
	FollowUpNeeded bool       `db:"follow_up_needed" json:"follow_up_needed"`
	CreatedBy      string     `db:"created_by" json:"created_by"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// Stream statuses
var StreamStatuses = []string{"scheduled", "live", "ended"}

// Stream represents a live or scheduled broadcast
type Stream struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   *string   `db:"description" json:"description"`
	StreamURL     string    `db:"stream_url" json:"stream_url"`
	Platform      *string   `db:"platform" json:"platform"`
	ScheduledDate time.Time `db:"scheduled_date" json:"scheduled_date"`
	Status        string    `db:"status" json:"status"`
	CreatedBy     string    `db:"created_by" json:"created_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// OneOf reports whether v is in allowed.
func OneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
