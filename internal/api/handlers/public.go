package handlers

import (
	"context"
	"net/http"
	"strconv"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/models"

	"github.com/gin-gonic/gin"
)

const (
	homeEventLimit  = 6
	homeStreamLimit = 3

	defaultPublicLimit = 20
	maxPublicLimit     = 100
)

// HomeData is what the public home page shows
type HomeData struct {
	Events  []models.PublicEvent  `json:"events"`
	Streams []models.PublicStream `json:"streams"`
}

func upcomingEvents(ctx context.Context, services interfaces.Services, limit int) ([]models.PublicEvent, error) {
	events, err := services.EventRepository().ListUpcoming(ctx, limit)
	out := make([]models.PublicEvent, 0, len(events))
	for _, e := range events {
		out = append(out, models.NewPublicEvent(e))
	}
	return out, err
}

func upcomingStreams(ctx context.Context, services interfaces.Services, limit int) ([]models.PublicStream, error) {
	streams, err := services.StreamRepository().ListUpcoming(ctx, limit)
	out := make([]models.PublicStream, 0, len(streams))
	for _, s := range streams {
		out = append(out, models.NewPublicStream(s))
	}
	return out, err
}

// loadHomeData never fails: a store error leaves that list empty
func loadHomeData(ctx context.Context, services interfaces.Services) HomeData {
	log := services.GetLogger()

	events, err := upcomingEvents(ctx, services, homeEventLimit)
	if err != nil {
		log.Warning("failed to load upcoming events: %v", err)
		events = []models.PublicEvent{}
	}
	streams, err := upcomingStreams(ctx, services, homeStreamLimit)
	if err != nil {
		log.Warning("failed to load upcoming streams: %v", err)
		streams = []models.PublicStream{}
	}
	return HomeData{Events: events, Streams: streams}
}

// publicLimit reads ?limit=, falling back to the default when absent or invalid
func publicLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return defaultPublicLimit
	}
	if n > maxPublicLimit {
		return maxPublicLimit
	}
	return n
}

// GetPublicHome returns upcoming events and streams without authentication
func GetPublicHome(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, http.StatusOK, loadHomeData(c.Request.Context(), services), "")
	}
}

// GetPublicEvents lists scheduled and ongoing events without authentication
func GetPublicEvents(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := upcomingEvents(c.Request.Context(), services, publicLimit(c))
		if err != nil {
			respondStoreError(c, services, err, "list public events")
			return
		}
		respondOK(c, http.StatusOK, events, "")
	}
}

// GetPublicStreams lists scheduled and live streams without authentication
func GetPublicStreams(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		streams, err := upcomingStreams(c.Request.Context(), services, publicLimit(c))
		if err != nil {
			respondStoreError(c, services, err, "list public streams")
			return
		}
		respondOK(c, http.StatusOK, streams, "")
	}
}
