package graphql

import (
	"context"

	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
)

const currentUserQuery = `
query {
  meUser {
    id
    username
    email
    roles
    employee { id }
    contractorRequest { id }
  }
}`

func (c *Client) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	var resp struct {
		MeUser struct {
			ID       string   `json:"id"`
			Username string   `json:"username"`
			Email    string   `json:"email"`
			Roles    []string `json:"roles"`
			Employee *struct {
				ID string `json:"id"`
			} `json:"employee"`
			ContractorRequest *struct {
				ID string `json:"id"`
			} `json:"contractorRequest"`
		} `json:"meUser"`
	}
	if err := c.Do(ctx, "currentUser", currentUserQuery, nil, &resp); err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		ID:       resp.MeUser.ID,
		Username: resp.MeUser.Username,
		Email:    resp.MeUser.Email,
		Roles:    resp.MeUser.Roles,
	}
	if resp.MeUser.Employee != nil {
		identity.EmployeeID = resp.MeUser.Employee.ID
	}
	if resp.MeUser.ContractorRequest != nil {
		identity.ContractorRequestID = resp.MeUser.ContractorRequest.ID
	}
	return identity, nil
}

const loginMutation = `
mutation RequestToken($username: String!, $password: String!) {
  requestToken(input: { username: $username, password: $password }) {
    token
    tokenTtl
  }
}`

func (c *Client) Login(ctx context.Context, username, password string) (*ports.AuthToken, error) {
	var resp struct {
		RequestToken struct {
			Token    string `json:"token"`
			TokenTTL int    `json:"tokenTtl"`
		} `json:"requestToken"`
	}
	vars := map[string]any{"username": username, "password": password}
	if err := c.Do(ctx, "login", loginMutation, vars, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthToken{
		Token:    resp.RequestToken.Token,
		TokenTTL: resp.RequestToken.TokenTTL,
	}, nil
}

const registerMutation = `
mutation CreateUser($username: String!, $email: String!, $password: String!, $locale: String!) {
  createUser(input: { username: $username, email: $email, plainPassword: $password, locale: $locale }) {
    user { id }
  }
}`

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) error {
	vars := map[string]any{
		"username": input.Username,
		"email":    input.Email,
		"password": input.Password,
		"locale":   input.Locale,
	}
	return c.Do(ctx, "register", registerMutation, vars, nil)
}

const passwordResetMutation = `
mutation RequestPasswordReset($email: String!) {
  requestResetPasswordUser(input: { email: $email }) {
    user { id }
  }
}`

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.Do(ctx, "requestPasswordReset", passwordResetMutation, map[string]any{"email": email}, nil)
}
