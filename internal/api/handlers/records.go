package handlers

import (
	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/models"
	"church-portal/internal/database"

	"github.com/gin-gonic/gin"
)

var donations = resource[database.Donation, models.DonationRequest, *models.DonationRequest]{
	name: "donation",
	store: func(s interfaces.Services) recordStore[database.Donation] {
		return s.DonationRepository()
	},
	id:       func(d *database.Donation) string { return d.ID },
	setOwner: func(d *database.Donation, userID string) { d.CreatedBy = userID },
}

var members = resource[database.Member, models.MemberRequest, *models.MemberRequest]{
	name: "member",
	store: func(s interfaces.Services) recordStore[database.Member] {
		return s.MemberRepository()
	},
	id:       func(m *database.Member) string { return m.ID },
	setOwner: func(m *database.Member, userID string) { m.CreatedBy = userID },
}

var visitors = resource[database.Visitor, models.VisitorRequest, *models.VisitorRequest]{
	name: "visitor",
	store: func(s interfaces.Services) recordStore[database.Visitor] {
		return s.VisitorRepository()
	},
	id:       func(v *database.Visitor) string { return v.ID },
	setOwner: func(v *database.Visitor, userID string) { v.CreatedBy = userID },
}

var events = resource[database.Event, models.EventRequest, *models.EventRequest]{
	name: "event",
	store: func(s interfaces.Services) recordStore[database.Event] {
		return s.EventRepository()
	},
	id:       func(e *database.Event) string { return e.ID },
	setOwner: func(e *database.Event, userID string) { e.CreatedBy = userID },
}

var streams = resource[database.Stream, models.StreamRequest, *models.StreamRequest]{
	name: "stream",
	store: func(s interfaces.Services) recordStore[database.Stream] {
		return s.StreamRepository()
	},
	id:       func(st *database.Stream) string { return st.ID },
	setOwner: func(st *database.Stream, userID string) { st.CreatedBy = userID },
}

// Donations

func ListDonations(services interfaces.Services) gin.HandlerFunc  { return donations.list(services) }
func GetDonation(services interfaces.Services) gin.HandlerFunc    { return donations.get(services) }
func CreateDonation(services interfaces.Services) gin.HandlerFunc { return donations.create(services) }
func UpdateDonation(services interfaces.Services) gin.HandlerFunc { return donations.update(services) }
func DeleteDonation(services interfaces.Services) gin.HandlerFunc { return donations.remove(services) }

// Members

func ListMembers(services interfaces.Services) gin.HandlerFunc  { return members.list(services) }
func GetMember(services interfaces.Services) gin.HandlerFunc    { return members.get(services) }
func CreateMember(services interfaces.Services) gin.HandlerFunc { return members.create(services) }
func UpdateMember(services interfaces.Services) gin.HandlerFunc { return members.update(services) }
func DeleteMember(services interfaces.Services) gin.HandlerFunc { return members.remove(services) }

// Visitors

func ListVisitors(services interfaces.Services) gin.HandlerFunc  { return visitors.list(services) }
func GetVisitor(services interfaces.Services) gin.HandlerFunc    { return visitors.get(services) }
func CreateVisitor(services interfaces.Services) gin.HandlerFunc { return visitors.create(services) }
func UpdateVisitor(services interfaces.Services) gin.HandlerFunc { return visitors.update(services) }
func DeleteVisitor(services interfaces.Services) gin.HandlerFunc { return visitors.remove(services) }

// Events

func ListEvents(services interfaces.Services) gin.HandlerFunc  { return events.list(services) }
func GetEvent(services interfaces.Services) gin.HandlerFunc    { return events.get(services) }
func CreateEvent(services interfaces.Services) gin.HandlerFunc { return events.create(services) }
func UpdateEvent(services interfaces.Services) gin.HandlerFunc { return events.update(services) }
func DeleteEvent(services interfaces.Services) gin.HandlerFunc { return events.remove(services) }

// Streams

func ListStreams(services interfaces.Services) gin.HandlerFunc  { return streams.list(services) }
func GetStream(services interfaces.Services) gin.HandlerFunc    { return streams.get(services) }
func CreateStream(services interfaces.Services) gin.HandlerFunc { return streams.create(services) }
func UpdateStream(services interfaces.Services) gin.HandlerFunc { return streams.update(services) }
func DeleteStream(services interfaces.Services) gin.HandlerFunc { return streams.remove(services) }
