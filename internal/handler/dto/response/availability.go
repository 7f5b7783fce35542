package response

import (
	"time"

	"open-classrooms/internal/pkg/ptr"
	"open-classrooms/internal/usecase/queries"
	"open-classrooms/internal/usecase/shared"
)

// TimestampLayout keeps the UTC offset of campus time in every timestamp served.
const TimestampLayout = time.RFC3339Nano

func formatTimestamp(t *time.Time) *string {
	return ptr.Map(t, func(t time.Time) string { return t.Format(TimestampLayout) })
}

type RefreshResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func FromRefreshOutcome(o *shared.RefreshOutcome) *RefreshResponse {
	return &RefreshResponse{
		Message:   "Data refreshed successfully",
		Timestamp: o.RefreshedAt.Format(TimestampLayout),
	}
}

type LastUpdatedResponse struct {
	LastUpdated *string `json:"last_updated"`
}

func FromLastUpdated(t *time.Time) *LastUpdatedResponse {
	return &LastUpdatedResponse{LastUpdated: formatTimestamp(t)}
}

type CooldownStatusResponse struct {
	InCooldown       bool    `json:"in_cooldown"`
	RemainingMinutes float64 `json:"remaining_minutes"`
}

// A nil status reads as "not in cooldown".
func FromCooldownStatus(status *queries.CooldownStatus) *CooldownStatusResponse {
	s := ptr.Coalesce(status, queries.CooldownStatus{})
	return &CooldownStatusResponse{
		InCooldown:       s.InCooldown,
		RemainingMinutes: s.RemainingMinutes,
	}
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ClassroomResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Availability []SlotResponse `json:"availability"`
}

type BuildingResponse struct {
	Code       string              `json:"code"`
	Name       string              `json:"name"`
	Classrooms []ClassroomResponse `json:"classrooms"`
}

type OpenClassroomsResponse struct {
	Buildings   map[string]BuildingResponse `json:"buildings"`
	LastUpdated *string                     `json:"last_updated"`
}

func FromOpenClassrooms(v *queries.OpenClassrooms) *OpenClassroomsResponse {
	buildings := make(map[string]BuildingResponse, len(v.Buildings))
	for code, b := range v.Buildings {
		rooms := make([]ClassroomResponse, len(b.Classrooms))
		for i, r := range b.Classrooms {
			slots := make([]SlotResponse, len(r.Availability))
			for j, s := range r.Availability {
				slots[j] = SlotResponse{Start: s.Start, End: s.End}
			}
			rooms[i] = ClassroomResponse{ID: r.ID, Name: r.Name, Availability: slots}
		}
		buildings[code] = BuildingResponse{Code: b.Code, Name: b.Name, Classrooms: rooms}
	}
	return &OpenClassroomsResponse{
		Buildings:   buildings,
		LastUpdated: formatTimestamp(v.LastUpdated),
	}
}

type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}
