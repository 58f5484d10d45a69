package graphql

import (
	"context"
	"time"

	"github.com/symmetrical-potato/web/internal/core/domain"
)

type heistPayload struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	StartAt        time.Time `json:"startAt"`
	ShouldEndAt    time.Time `json:"shouldEndAt"`
	Phase          string    `json:"phase"`
	PreferedTactic string    `json:"preferedTactic"`
	Difficulty     string    `json:"difficulty"`
	CrewCount      int       `json:"crewCount"`
}

func (p heistPayload) toDomain() domain.Heist {
	return domain.Heist{
		ID:             p.ID,
		Name:           p.Name,
		StartAt:        p.StartAt,
		ShouldEndAt:    p.ShouldEndAt,
		Phase:          domain.HeistPhase(p.Phase),
		PreferedTactic: p.PreferedTactic,
		Difficulty:     p.Difficulty,
		CrewCount:      p.CrewCount,
	}
}

const placeQuery = `
query Place($placeId: String!) {
  place(placeId: $placeId) {
    placeId
    name
    address
    coordinates { latitude longitude }
    heists {
      id
      name
      startAt
      shouldEndAt
      phase
      preferedTactic
      difficulty
      crewCount
    }
  }
}`

func (c *Client) Place(ctx context.Context, placeID string) (*domain.Place, error) {
	var resp struct {
		Place struct {
			PlaceID     string `json:"placeId"`
			Name        string `json:"name"`
			Address     string `json:"address"`
			Coordinates struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"coordinates"`
			Heists []heistPayload `json:"heists"`
		} `json:"place"`
	}
	if err := c.Do(ctx, "place", placeQuery, map[string]any{"placeId": placeID}, &resp); err != nil {
		return nil, err
	}

	place := &domain.Place{
		PlaceID: resp.Place.PlaceID,
		Name:    resp.Place.Name,
		Address: resp.Place.Address,
		Coordinates: domain.Coordinates{
			Latitude:  resp.Place.Coordinates.Latitude,
			Longitude: resp.Place.Coordinates.Longitude,
		},
		Heists: make([]domain.Heist, 0, len(resp.Place.Heists)),
	}
	for _, h := range resp.Place.Heists {
		place.Heists = append(place.Heists, h.toDomain())
	}
	return place, nil
}

const joinHeistMutation = `
mutation JoinHeist($id: ID!) {
  joinHeist(input: { id: $id }) {
    heist { id }
  }
}`

func (c *Client) JoinHeist(ctx context.Context, heistID string) error {
	return c.Do(ctx, "joinHeist", joinHeistMutation, map[string]any{"id": heistID}, nil)
}

const leaveHeistMutation = `
mutation LeaveHeist($id: ID!) {
  leaveHeist(input: { id: $id }) {
    heist { id }
  }
}`

func (c *Client) LeaveHeist(ctx context.Context, heistID string) error {
	return c.Do(ctx, "leaveHeist", leaveHeistMutation, map[string]any{"id": heistID}, nil)
}

const deleteHeistMutation = `
mutation DeleteHeist($id: ID!) {
  deleteHeist(input: { id: $id }) {
    heist { id }
  }
}`

func (c *Client) DeleteHeist(ctx context.Context, heistID string) error {
	return c.Do(ctx, "deleteHeist", deleteHeistMutation, map[string]any{"id": heistID}, nil)
}
