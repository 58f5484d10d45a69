package domain

import "time"

// HeistPhase represents the lifecycle state of a heist.
type HeistPhase string

const (
	PhasePlanning   HeistPhase = "planning"
	PhaseInProgress HeistPhase = "in_progress"
	PhaseSucceeded  HeistPhase = "succeeded"
	PhaseFailed     HeistPhase = "failed"
	PhaseCancelled  HeistPhase = "cancelled"
)

// Heist is a schedulable event tied to a map location. The backend owns the
// full aggregate; this is the projection the gateway renders.
type Heist struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	StartAt        time.Time  `json:"start_at"`
	ShouldEndAt    time.Time  `json:"should_end_at"`
	Phase          HeistPhase `json:"phase"`
	PreferedTactic string     `json:"prefered_tactic"`
	Difficulty     string     `json:"difficulty"`
	CrewCount      int        `json:"crew_count"`
}

// Coordinates is a geographic point on the map.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a map location with its scheduled heists.
type Place struct {
	PlaceID     string      `json:"place_id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Heists      []Heist     `json:"heists"`
}

// Asset is purchasable equipment offered to crew members.
type Asset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Type        string  `json:"type"`
	MaxQuantity int     `json:"max_quantity"`
	TeamAsset   bool    `json:"team_asset"`
}

// Establishment is a contractor-run organisation employing heisters.
type Establishment struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Description            string  `json:"description"`
	MinimumWage            float64 `json:"minimum_wage"`
	MinimumWorkTimePerWeek int     `json:"minimum_work_time_per_week"`
}

// Location is a named backend-managed map location record.
type Location struct {
	ID      string `json:"id"`
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ContractorRequest is a user's pending application for ROLE_CONTRACTOR.
type ContractorRequest struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	AdminComment string `json:"admin_comment,omitempty"`
}

// UserSummary is the admin-facing projection of a platform account.
type UserSummary struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Status   string   `json:"status"`
	Roles    []string `json:"roles"`
}
