package request

import (
	"strings"
	"time"

	"studioflow/internal/domain/entities"
)

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

type RoomRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size string `json:"size" binding:"required"`
}

// CreateBudgetRequest commits a calculation into a draft budget.
type CreateBudgetRequest struct {
	OfficeID     string        `json:"office_id" binding:"required"`
	Client       ClientRequest `json:"client" binding:"required"`
	ServiceID    string        `json:"service_id" binding:"required"`
	CalcMode     string        `json:"calc_mode" binding:"required"`
	Area         float64       `json:"area"`
	Rooms        []RoomRequest `json:"rooms"`
	ComplexityID string        `json:"complexity_id"`
	FinishID     string        `json:"finish_id"`
	Scope        []string      `json:"scope" binding:"required"`
	PaymentTerms string        `json:"payment_terms"`
}

func (r CreateBudgetRequest) ResolveClient() entities.Client {
	return entities.Client{
		Name:  strings.TrimSpace(r.Client.Name),
		Email: strings.TrimSpace(r.Client.Email),
		Phone: strings.TrimSpace(r.Client.Phone),
	}
}

func (r CreateBudgetRequest) ResolveRooms() []entities.Room {
	rooms := make([]entities.Room, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, entities.Room{
			Name: room.Name,
			Type: room.Type,
			Size: entities.RoomSize(strings.ToUpper(strings.TrimSpace(room.Size))),
		})
	}
	return rooms
}

type ApproveBudgetRequest struct {
	StartDate string `json:"start_date"`
}

// ResolveStartDate parses the optional project start date (YYYY-MM-DD).
// An empty field yields the zero time, meaning "start today".
func (r ApproveBudgetRequest) ResolveStartDate() (time.Time, error) {
	v := strings.TrimSpace(r.StartDate)
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", v)
}

type RejectBudgetRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type FollowupRequest struct {
	Note string `json:"note" binding:"required"`
}
