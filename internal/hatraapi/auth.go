package hatraapi

import (
	"context"

	"hatra/internal/platform"
)

func (c *Client) Login(ctx context.Context, email, password string) (*platform.User, error) {
	var user platform.User
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&user).
		Post("/auth/login")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminLogin is a separate backend flow so a user token can never be
// upgraded into the back office by accident.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*platform.User, error) {
	var user platform.User
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&user).
		Post("/auth/admin-login")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Register(ctx context.Context, username, email, password, referralCode string) (*platform.User, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	if referralCode != "" {
		body["referralCode"] = referralCode
	}
	var user platform.User
	resp, err := c.http.R().SetContext(ctx).
		SetBody(body).
		SetResult(&user).
		Post("/auth/register")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Profile(ctx context.Context) (*platform.User, error) {
	var user platform.User
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&user).
		Get("/auth/profile")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, fields map[string]interface{}) (*platform.User, error) {
	var user platform.User
	resp, err := c.http.R().SetContext(ctx).
		SetBody(fields).
		SetResult(&user).
		Put("/auth/profile")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) PublicSettings(ctx context.Context) (*platform.PublicSettings, error) {
	var settings platform.PublicSettings
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&settings).
		Get("/auth/settings")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SubmitRegistrationDeposit files the activation deposit of a freshly
// registered account; the account stays inactive until an admin verifies
// the hash.
func (c *Client) SubmitRegistrationDeposit(ctx context.Context, userId, transactionHash string, amount float64) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{
			"userId":          userId,
			"transactionHash": transactionHash,
			"amount":          amount,
		}).
		Post("/auth/registration-deposit")
	return c.check(resp, err)
}
