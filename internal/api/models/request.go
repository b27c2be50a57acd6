package models

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"church-portal/internal/database"
)

// LoginRequest represents authentication login request. It binds from
// JSON or from an HTML form post.
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required" example:"admin@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"admin123"`
}

// Date accepts "2006-01-02", RFC 3339, or "2006-01-02T15:04" in JSON.
// An empty string is an explicit clear.
type Date struct {
	time.Time
	cleared bool
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time, d.cleared = time.Time{}, true
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time, d.cleared = t.UTC(), false
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// Cleared reports whether the field was sent as ""
func (d *Date) Cleared() bool {
	return d != nil && d.cleared
}

func datePtr(d *Date) *time.Time {
	if d == nil || d.cleared {
		return nil
	}
	t := d.Time
	return &t
}

// requireDate rejects a missing date on create and a cleared one always
func requireDate(field string, d *Date, create bool) *APIError {
	if (create && d == nil) || d.Cleared() {
		return validationError(field, "is required")
	}
	return nil
}

// Resource requests double as create and patch bodies: nil means "not sent".
// Validate enforces the create-time required fields; Apply copies the sent
// fields onto a record.

func validationError(field, message string) *APIError {
	return NewAPIError(ErrCodeInvalidRequest, "Validation failed", http.StatusBadRequest).
		WithField(field, message)
}

func checkEnum(field string, v *string, allowed []string) *APIError {
	if v != nil && *v != "" && !database.OneOf(*v, allowed) {
		return validationError(field, "must be one of "+strings.Join(allowed, ", "))
	}
	return nil
}

func checkURL(field string, v *string) *APIError {
	if v == nil {
		return nil
	}
	u, err := url.Parse(*v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return validationError(field, "must be an http(s) URL")
	}
	return nil
}

// blankToNil treats "" as clearing an optional text column.
func blankToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}

// DonationRequest represents a donation create or patch body
type DonationRequest struct {
	DonorName      *string  `json:"donor_name"`
	Amount         *float64 `json:"amount"`
	DonationType   *string  `json:"donation_type"`
	PaymentMethod  *string  `json:"payment_method"`
	DonationDate   *Date    `json:"donation_date"`
	Notes          *string  `json:"notes"`
	ReceiptNumber  *string  `json:"receipt_number"`
	FollowUpNeeded *bool    `json:"follow_up_needed"`
}

func (r *DonationRequest) Validate(create bool) *APIError {
	if create && r.Amount == nil {
		return validationError("amount", "is required")
	}
	if r.Amount != nil && *r.Amount <= 0 {
		return validationError("amount", "must be greater than zero")
	}
	if err := requireDate("donation_date", r.DonationDate, create); err != nil {
		return err
	}
	if err := checkEnum("donation_type", r.DonationType, database.DonationTypes); err != nil {
		return err
	}
	return checkEnum("payment_method", r.PaymentMethod, database.PaymentMethods)
}

func (r *DonationRequest) Apply(d *database.Donation) {
	if r.DonorName != nil {
		d.DonorName = blankToNil(r.DonorName)
	}
	if r.Amount != nil {
		d.Amount = *r.Amount
	}
	if r.DonationType != nil {
		d.DonationType = blankToNil(r.DonationType)
	}
	if r.PaymentMethod != nil {
		d.PaymentMethod = blankToNil(r.PaymentMethod)
	}
	if r.DonationDate != nil {
		d.DonationDate = r.DonationDate.Time
	}
	if r.Notes != nil {
		d.Notes = blankToNil(r.Notes)
	}
	if r.ReceiptNumber != nil {
		d.ReceiptNumber = blankToNil(r.ReceiptNumber)
	}
	if r.FollowUpNeeded != nil {
		d.FollowUpNeeded = *r.FollowUpNeeded
	}
}

// MemberRequest represents a member create or patch body
type MemberRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	BirthDate      *Date   `json:"birth_date"`
	BaptismDate    *Date   `json:"baptism_date"`
	MembershipDate *Date   `json:"membership_date"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
}

func (r *MemberRequest) Validate(create bool) *APIError {
	if (create || r.Name != nil) && blankToNil(r.Name) == nil {
		return validationError("name", "is required")
	}
	return checkEnum("status", r.Status, database.MemberStatuses)
}

func (r *MemberRequest) Apply(m *database.Member) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		m.Email = blankToNil(r.Email)
	}
	if r.Phone != nil {
		m.Phone = blankToNil(r.Phone)
	}
	if r.Address != nil {
		m.Address = blankToNil(r.Address)
	}
	if r.BirthDate != nil {
		m.BirthDate = datePtr(r.BirthDate)
	}
	if r.BaptismDate != nil {
		m.BaptismDate = datePtr(r.BaptismDate)
	}
	if r.MembershipDate != nil {
		m.MembershipDate = datePtr(r.MembershipDate)
	}
	if r.Status != nil && *r.Status != "" {
		m.Status = *r.Status
	}
	if r.Notes != nil {
		m.Notes = blankToNil(r.Notes)
	}
}

// VisitorRequest represents a visitor create or patch body
type VisitorRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	VisitDate      *Date   `json:"visit_date"`
	HowFound       *string `json:"how_found"`
	PrayerRequest  *string `json:"prayer_request"`
	FollowUpNeeded *bool   `json:"follow_up_needed"`
	FollowedUp     *bool   `json:"followed_up"`
	Notes          *string `json:"notes"`
}

func (r *VisitorRequest) Validate(create bool) *APIError {
	if (create || r.Name != nil) && blankToNil(r.Name) == nil {
		return validationError("name", "is required")
	}
	if err := requireDate("visit_date", r.VisitDate, create); err != nil {
		return err
	}
	return nil
}

func (r *VisitorRequest) Apply(v *database.Visitor) {
	if r.Name != nil {
		v.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		v.Email = blankToNil(r.Email)
	}
	if r.Phone != nil {
		v.Phone = blankToNil(r.Phone)
	}
	if r.VisitDate != nil {
		v.VisitDate = r.VisitDate.Time
	}
	if r.HowFound != nil {
		v.HowFound = blankToNil(r.HowFound)
	}
	if r.PrayerRequest != nil {
		v.PrayerRequest = blankToNil(r.PrayerRequest)
	}
	if r.FollowUpNeeded != nil {
		v.FollowUpNeeded = *r.FollowUpNeeded
	}
	if r.FollowedUp != nil {
		v.FollowedUp = *r.FollowedUp
	}
	if r.Notes != nil {
		v.Notes = blankToNil(r.Notes)
	}
}

// EventRequest represents an event create or patch body
type EventRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	EventDate      *Date   `json:"event_date"`
	EndDate        *Date   `json:"end_date"`
	Location       *string `json:"location"`
	EventType      *string `json:"event_type"`
	Status         *string `json:"status"`
	FollowUpNeeded *bool   `json:"follow_up_needed"`
}

func (r *EventRequest) Validate(create bool) *APIError {
	if (create || r.Title != nil) && blankToNil(r.Title) == nil {
		return validationError("title", "is required")
	}
	if err := requireDate("event_date", r.EventDate, create); err != nil {
		return err
	}
	return checkEnum("status", r.Status, database.EventStatuses)
}

// Check enforces the date order on the event as it will be stored
func (r *EventRequest) Check(e *database.Event) *APIError {
	if e.EndDate != nil && e.EndDate.Before(e.EventDate) {
		return validationError("end_date", "must not be before event_date")
	}
	return nil
}

func (r *EventRequest) Apply(e *database.Event) {
	if r.Title != nil {
		e.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		e.Description = blankToNil(r.Description)
	}
	if r.EventDate != nil {
		e.EventDate = r.EventDate.Time
	}
	if r.EndDate != nil {
		e.EndDate = datePtr(r.EndDate)
	}
	if r.Location != nil {
		e.Location = blankToNil(r.Location)
	}
	if r.EventType != nil {
		e.EventType = blankToNil(r.EventType)
	}
	if r.Status != nil && *r.Status != "" {
		e.Status = *r.Status
	}
	if r.FollowUpNeeded != nil {
		e.FollowUpNeeded = *r.FollowUpNeeded
	}
}

// StreamRequest represents a stream create or patch body
type StreamRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	StreamURL     *string `json:"stream_url"`
	Platform      *string `json:"platform"`
	ScheduledDate *Date   `json:"scheduled_date"`
	Status        *string `json:"status"`
}

func (r *StreamRequest) Validate(create bool) *APIError {
	if (create || r.Title != nil) && blankToNil(r.Title) == nil {
		return validationError("title", "is required")
	}
	if create && r.StreamURL == nil {
		return validationError("stream_url", "is required")
	}
	if err := checkURL("stream_url", r.StreamURL); err != nil {
		return err
	}
	if err := requireDate("scheduled_date", r.ScheduledDate, create); err != nil {
		return err
	}
	return checkEnum("status", r.Status, database.StreamStatuses)
}

func (r *StreamRequest) Apply(s *database.Stream) {
	if r.Title != nil {
		s.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		s.Description = blankToNil(r.Description)
	}
	if r.StreamURL != nil {
		s.StreamURL = strings.TrimSpace(*r.StreamURL)
	}
	if r.Platform != nil {
		s.Platform = blankToNil(r.Platform)
	}
	if r.ScheduledDate != nil {
		s.ScheduledDate = r.ScheduledDate.Time
	}
	if r.Status != nil && *r.Status != "" {
		s.Status = *r.Status
	}
}
