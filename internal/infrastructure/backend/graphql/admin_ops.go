package graphql

import (
	"context"

	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
)

// Admin operations. Each maps one-to-one to a named backend query or
// mutation; the backend re-checks authorization on every call.

// ── Assets ────────────────────────────────────────────────────────────────

const listAssetsQuery = `
query {
  assets {
    id name price type maxQuantity teamAsset
  }
}`

func (c *Client) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	var resp struct {
		Assets []domain.Asset `json:"assets"`
	}
	if err := c.Do(ctx, "listAssets", listAssetsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Assets, nil
}

const getAssetQuery = `
query Asset($id: ID!) {
  asset(id: $id) {
    id name price type maxQuantity teamAsset
  }
}`

func (c *Client) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	var resp struct {
		Asset domain.Asset `json:"asset"`
	}
	if err := c.Do(ctx, "getAsset", getAssetQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	return &resp.Asset, nil
}

const updateAssetMutation = `
mutation UpdateAsset($id: ID!, $name: String!, $price: Float!, $type: String!, $maxQuantity: Int!, $teamAsset: Boolean!) {
  updateAsset(input: { id: $id, name: $name, price: $price, type: $type, maxQuantity: $maxQuantity, teamAsset: $teamAsset }) {
    asset { id }
  }
}`

func (c *Client) UpdateAsset(ctx context.Context, id string, input ports.AssetInput) error {
	vars := map[string]any{
		"id":          id,
		"name":        input.Name,
		"price":       input.Price,
		"type":        input.Type,
		"maxQuantity": input.MaxQuantity,
		"teamAsset":   input.TeamAsset,
	}
	return c.Do(ctx, "updateAsset", updateAssetMutation, vars, nil)
}

const deleteAssetMutation = `
mutation DeleteAsset($id: ID!) {
  deleteAsset(input: { id: $id }) {
    asset { id }
  }
}`

func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.Do(ctx, "deleteAsset", deleteAssetMutation, map[string]any{"id": id}, nil)
}

// ── Establishments ────────────────────────────────────────────────────────

const listEstablishmentsQuery = `
query {
  establishments {
    id name description minimumWage minimumWorkTimePerWeek
  }
}`

func (c *Client) ListEstablishments(ctx context.Context) ([]domain.Establishment, error) {
	var resp struct {
		Establishments []domain.Establishment `json:"establishments"`
	}
	if err := c.Do(ctx, "listEstablishments", listEstablishmentsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Establishments, nil
}

const getEstablishmentQuery = `
query Establishment($id: ID!) {
  establishment(id: $id) {
    id name description minimumWage minimumWorkTimePerWeek
  }
}`

func (c *Client) GetEstablishment(ctx context.Context, id string) (*domain.Establishment, error) {
	var resp struct {
		Establishment domain.Establishment `json:"establishment"`
	}
	if err := c.Do(ctx, "getEstablishment", getEstablishmentQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	return &resp.Establishment, nil
}

const updateEstablishmentMutation = `
mutation UpdateEstablishment($id: ID!, $name: String!, $description: String!, $minimumWage: Float!, $minimumWorkTimePerWeek: Int!) {
  updateEstablishment(input: { id: $id, name: $name, description: $description, minimumWage: $minimumWage, minimumWorkTimePerWeek: $minimumWorkTimePerWeek }) {
    establishment { id }
  }
}`

func (c *Client) UpdateEstablishment(ctx context.Context, id string, input ports.EstablishmentInput) error {
	vars := map[string]any{
		"id":                     id,
		"name":                   input.Name,
		"description":            input.Description,
		"minimumWage":            input.MinimumWage,
		"minimumWorkTimePerWeek": input.MinimumWorkTimePerWeek,
	}
	return c.Do(ctx, "updateEstablishment", updateEstablishmentMutation, vars, nil)
}

const deleteEstablishmentMutation = `
mutation DeleteEstablishment($id: ID!) {
  deleteEstablishment(input: { id: $id }) {
    establishment { id }
  }
}`

func (c *Client) DeleteEstablishment(ctx context.Context, id string) error {
	return c.Do(ctx, "deleteEstablishment", deleteEstablishmentMutation, map[string]any{"id": id}, nil)
}

// ── Heists ────────────────────────────────────────────────────────────────

const listHeistsQuery = `
query {
  heists {
    id name startAt shouldEndAt phase preferedTactic difficulty crewCount
  }
}`

func (c *Client) ListHeists(ctx context.Context) ([]domain.Heist, error) {
	var resp struct {
		Heists []heistPayload `json:"heists"`
	}
	if err := c.Do(ctx, "listHeists", listHeistsQuery, nil, &resp); err != nil {
		return nil, err
	}
	heists := make([]domain.Heist, 0, len(resp.Heists))
	for _, h := range resp.Heists {
		heists = append(heists, h.toDomain())
	}
	return heists, nil
}

const getHeistQuery = `
query Heist($id: ID!) {
  heist(id: $id) {
    id name startAt shouldEndAt phase preferedTactic difficulty crewCount
  }
}`

func (c *Client) GetHeist(ctx context.Context, id string) (*domain.Heist, error) {
	var resp struct {
		Heist heistPayload `json:"heist"`
	}
	if err := c.Do(ctx, "getHeist", getHeistQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	heist := resp.Heist.toDomain()
	return &heist, nil
}

const updateHeistMutation = `
mutation UpdateHeist($id: ID!, $name: String!, $phase: String!, $preferedTactic: String!, $difficulty: String!) {
  updateHeist(input: { id: $id, name: $name, phase: $phase, preferedTactic: $preferedTactic, difficulty: $difficulty }) {
    heist { id }
  }
}`

func (c *Client) UpdateHeist(ctx context.Context, id string, input ports.HeistInput) error {
	vars := map[string]any{
		"id":             id,
		"name":           input.Name,
		"phase":          input.Phase,
		"preferedTactic": input.PreferedTactic,
		"difficulty":     input.Difficulty,
	}
	return c.Do(ctx, "updateHeist", updateHeistMutation, vars, nil)
}

// ── Locations ─────────────────────────────────────────────────────────────

const listLocationsQuery = `
query {
  locations {
    id placeId name address
  }
}`

func (c *Client) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var resp struct {
		Locations []domain.Location `json:"locations"`
	}
	if err := c.Do(ctx, "listLocations", listLocationsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

const getLocationQuery = `
query Location($id: ID!) {
  location(id: $id) {
    id placeId name address
  }
}`

func (c *Client) GetLocation(ctx context.Context, id string) (*domain.Location, error) {
	var resp struct {
		Location domain.Location `json:"location"`
	}
	if err := c.Do(ctx, "getLocation", getLocationQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	return &resp.Location, nil
}

const updateLocationMutation = `
mutation UpdateLocation($id: ID!, $name: String!, $address: String!) {
  updateLocation(input: { id: $id, name: $name, address: $address }) {
    location { id }
  }
}`

func (c *Client) UpdateLocation(ctx context.Context, id string, input ports.LocationInput) error {
	vars := map[string]any{"id": id, "name": input.Name, "address": input.Address}
	return c.Do(ctx, "updateLocation", updateLocationMutation, vars, nil)
}

const deleteLocationMutation = `
mutation DeleteLocation($id: ID!) {
  deleteLocation(input: { id: $id }) {
    location { id }
  }
}`

func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.Do(ctx, "deleteLocation", deleteLocationMutation, map[string]any{"id": id}, nil)
}

// ── Users ─────────────────────────────────────────────────────────────────

const listUsersQuery = `
query {
  users {
    id username email status roles
  }
}`

func (c *Client) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	var resp struct {
		Users []domain.UserSummary `json:"users"`
	}
	if err := c.Do(ctx, "listUsers", listUsersQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

const getUserQuery = `
query User($id: ID!) {
  user(id: $id) {
    id username email status roles
  }
}`

func (c *Client) GetUser(ctx context.Context, id string) (*domain.UserSummary, error) {
	var resp struct {
		User domain.UserSummary `json:"user"`
	}
	if err := c.Do(ctx, "getUser", getUserQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

const updateUserMutation = `
mutation UpdateUser($id: ID!, $email: String!, $status: String!) {
  updateUser(input: { id: $id, email: $email, status: $status }) {
    user { id }
  }
}`

func (c *Client) UpdateUser(ctx context.Context, id string, input ports.UserInput) error {
	vars := map[string]any{"id": id, "email": input.Email, "status": input.Status}
	return c.Do(ctx, "updateUser", updateUserMutation, vars, nil)
}

const deleteUserMutation = `
mutation DeleteUser($id: ID!) {
  deleteUser(input: { id: $id }) {
    user { id }
  }
}`

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.Do(ctx, "deleteUser", deleteUserMutation, map[string]any{"id": id}, nil)
}

// ── Contractor requests ───────────────────────────────────────────────────

const listContractorRequestsQuery = `
query {
  contractorRequests {
    id userId status reason adminComment
  }
}`

func (c *Client) ListContractorRequests(ctx context.Context) ([]domain.ContractorRequest, error) {
	var resp struct {
		ContractorRequests []domain.ContractorRequest `json:"contractorRequests"`
	}
	if err := c.Do(ctx, "listContractorRequests", listContractorRequestsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ContractorRequests, nil
}

const getContractorRequestQuery = `
query ContractorRequest($id: ID!) {
  contractorRequest(id: $id) {
    id userId status reason adminComment
  }
}`

func (c *Client) GetContractorRequest(ctx context.Context, id string) (*domain.ContractorRequest, error) {
	var resp struct {
		ContractorRequest domain.ContractorRequest `json:"contractorRequest"`
	}
	if err := c.Do(ctx, "getContractorRequest", getContractorRequestQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	return &resp.ContractorRequest, nil
}

const updateContractorRequestMutation = `
mutation UpdateContractorRequest($id: ID!, $status: String!, $adminComment: String!) {
  updateContractorRequest(input: { id: $id, status: $status, adminComment: $adminComment }) {
    contractorRequest { id }
  }
}`

func (c *Client) UpdateContractorRequest(ctx context.Context, id string, input ports.ContractorRequestInput) error {
	vars := map[string]any{"id": id, "status": input.Status, "adminComment": input.AdminComment}
	return c.Do(ctx, "updateContractorRequest", updateContractorRequestMutation, vars, nil)
}

const deleteContractorRequestMutation = `
mutation DeleteContractorRequest($id: ID!) {
  deleteContractorRequest(input: { id: $id }) {
    contractorRequest { id }
  }
}`

func (c *Client) DeleteContractorRequest(ctx context.Context, id string) error {
	return c.Do(ctx, "deleteContractorRequest", deleteContractorRequestMutation, map[string]any{"id": id}, nil)
}
