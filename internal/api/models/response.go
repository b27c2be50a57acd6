package models

import "church-portal/internal/database"

// BaseResponse represents the base API response structure
type BaseResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Timestamp int64       `json:"timestamp" example:"1640995200"`
	RequestID string      `json:"request_id,omitempty" example:"req_123456"`
}

// ErrorInfo represents error information
type ErrorInfo struct {
	Code    string            `json:"code" example:"INVALID_REQUEST"`
	Message string            `json:"message" example:"Invalid request parameters"`
	Details string            `json:"details,omitempty" example:"Field 'amount' is required"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// UserResponse represents user information
type UserResponse struct {
	ID    string `json:"id" example:"8f9c..."`
	Email string `json:"email" example:"admin@example.com"`
	Name  string `json:"name,omitempty" example:"Administrator"`
	Role  string `json:"role" example:"admin"`
}

// AuthResponse represents the login response. The token itself only
// travels in the session cookie.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	ExpiresIn int64        `json:"expires_in" example:"604800"`
}

// PublicEvent is the subset of an event shown to anonymous visitors
type PublicEvent struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	EventDate   int64   `json:"event_date"`
	Location    *string `json:"location,omitempty"`
	EventType   *string `json:"event_type,omitempty"`
	Status      string  `json:"status"`
}

// PublicStream is the subset of a stream shown to anonymous visitors
type PublicStream struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	StreamURL     string  `json:"stream_url"`
	Platform      *string `json:"platform,omitempty"`
	ScheduledDate int64   `json:"scheduled_date"`
	Status        string  `json:"status"`
}

// NewPublicEvent strips internal fields from an event
func NewPublicEvent(e database.Event) PublicEvent {
	return PublicEvent{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate.Unix(),
		Location:    e.Location,
		EventType:   e.EventType,
		Status:      e.Status,
	}
}

// NewPublicStream strips internal fields from a stream
func NewPublicStream(s database.Stream) PublicStream {
	return PublicStream{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		StreamURL:     s.StreamURL,
		Platform:      s.Platform,
		ScheduledDate: s.ScheduledDate.Unix(),
		Status:        s.Status,
	}
}

// WebSocketMessage represents WebSocket message structure
type WebSocketMessage struct {
	Type      string      `json:"type" example:"dashboard_stats"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp" example:"1640995200"`
}

// HealthCheckResponse represents health check response
type HealthCheckResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp int64                  `json:"timestamp" example:"1640995200"`
	Version   string                 `json:"version" example:"1.0.0"`
	Uptime    int64                  `json:"uptime" example:"86400"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// HealthCheck represents individual health check
type HealthCheck struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"Service is running normally"`
	Latency string `json:"latency,omitempty" example:"5ms"`
}
