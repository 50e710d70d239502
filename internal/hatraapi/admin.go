package hatraapi

import (
	"context"
	"strconv"

	"github.com/spyzhov/ajson"

	"hatra/internal/platform"
)

func (c *Client) AdminUsers(ctx context.Context, page, limit int) ([]platform.User, Pagination, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(pageParams(page, limit)).
		Get("/admin/users")
	if err := c.check(resp, err); err != nil {
		return nil, Pagination{}, err
	}
	var items []platform.User
	pagination, err := decodePage(resp.Body(), &items)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, pagination, nil
}

func (c *Client) AdminUser(ctx context.Context, id string) (*platform.User, error) {
	var user platform.User
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&user).
		Get("/admin/users/" + id)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) AdminUpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*platform.User, error) {
	var user platform.User
	resp, err := c.http.R().SetContext(ctx).
		SetBody(fields).
		SetResult(&user).
		Put("/admin/users/" + id)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/admin/users/" + id)
	return c.check(resp, err)
}

func (c *Client) AdminDeposits(ctx context.Context, page, limit int) ([]platform.DepositRequest, Pagination, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(pageParams(page, limit)).
		Get("/admin/deposits")
	if err := c.check(resp, err); err != nil {
		return nil, Pagination{}, err
	}
	var items []platform.DepositRequest
	pagination, err := decodePage(resp.Body(), &items)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, pagination, nil
}

// AdminDecideDeposit settles a pending deposit request. An approval
// credits the user's balance server-side and writes the completed deposit
// transaction.
func (c *Client) AdminDecideDeposit(ctx context.Context, id, status, adminNotes string) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"status": status, "adminNotes": adminNotes}).
		Put("/admin/deposits/" + id)
	return c.check(resp, err)
}

func (c *Client) AdminWithdrawals(ctx context.Context, page, limit int) ([]platform.WithdrawalRequest, Pagination, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(pageParams(page, limit)).
		Get("/admin/withdrawals")
	if err := c.check(resp, err); err != nil {
		return nil, Pagination{}, err
	}
	var items []platform.WithdrawalRequest
	pagination, err := decodePage(resp.Body(), &items)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, pagination, nil
}

// AdminDecideWithdrawal settles a pending withdrawal. Approval carries the
// settlement transaction hash of the on-chain payout.
func (c *Client) AdminDecideWithdrawal(ctx context.Context, id, status, transactionHash, adminNotes string) error {
	body := map[string]string{"status": status, "adminNotes": adminNotes}
	if transactionHash != "" {
		body["transactionHash"] = transactionHash
	}
	resp, err := c.http.R().SetContext(ctx).
		SetBody(body).
		Put("/admin/withdrawals/" + id)
	return c.check(resp, err)
}

func (c *Client) AdminTransactions(ctx context.Context, page, limit int) ([]platform.Transaction, Pagination, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(pageParams(page, limit)).
		Get("/admin/transactions")
	if err := c.check(resp, err); err != nil {
		return nil, Pagination{}, err
	}
	var items []platform.Transaction
	pagination, err := decodePage(resp.Body(), &items)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, pagination, nil
}

func (c *Client) AdminRecentTransactions(ctx context.Context, limit int) ([]platform.Transaction, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/admin/transactions/recent")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	var items []platform.Transaction
	if _, err := decodePage(resp.Body(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdminStats returns the dashboard aggregates. The payload shape moves with
// the backend, so it is surfaced as a flat dynamic map.
func (c *Client) AdminStats(ctx context.Context) (map[string]interface{}, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/admin/stats")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return unpackObject(resp.Body())
}

func (c *Client) AdminSettings(ctx context.Context) (*platform.AdminSettings, error) {
	var settings platform.AdminSettings
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&settings).
		Get("/admin/settings")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) AdminUpdateSettings(ctx context.Context, updates []platform.SettingUpdate) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{"settings": updates}).
		Put("/admin/settings")
	return c.check(resp, err)
}

func (c *Client) AdminPendingRegistrations(ctx context.Context) ([]platform.RegistrationDeposit, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/admin/registration-deposits")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	var items []platform.RegistrationDeposit
	if _, err := decodePage(resp.Body(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdminVerifyRegistration approves or rejects an activation deposit;
// approval flips the account active.
func (c *Client) AdminVerifyRegistration(ctx context.Context, id, status, adminNotes string) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"status": status, "adminNotes": adminNotes}).
		Put("/admin/registration-deposits/" + id)
	return c.check(resp, err)
}

func (c *Client) AdminCreditBonus(ctx context.Context, userId string, amount float64, description string) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{
			"userId":      userId,
			"amount":      amount,
			"description": description,
		}).
		Post("/admin/bonus")
	return c.check(resp, err)
}

// AdminCreateAdmin needs the shared passcode on top of an admin token.
func (c *Client) AdminCreateAdmin(ctx context.Context, username, email, password, role, passcode string) error {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"passcode": passcode,
	}
	if role != "" {
		body["role"] = role
	}
	resp, err := c.http.R().SetContext(ctx).
		SetBody(body).
		Post("/admin/admins")
	return c.check(resp, err)
}

func (c *Client) AdminFinanceOverview(ctx context.Context) (map[string]interface{}, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/admin/finance/overview")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return unpackObject(resp.Body())
}

func (c *Client) AdminUserAverages(ctx context.Context, days, page, limit int) ([]map[string]interface{}, Pagination, error) {
	params := pageParams(page, limit)
	params["days"] = strconv.Itoa(days)
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(params).
		Get("/admin/finance/user-averages")
	if err := c.check(resp, err); err != nil {
		return nil, Pagination{}, err
	}
	var items []map[string]interface{}
	pagination, err := decodePage(resp.Body(), &items)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, pagination, nil
}

func unpackObject(body []byte) (map[string]interface{}, error) {
	root, err := ajson.Unmarshal(body)
	if err != nil {
		return nil, err
	}
	value, err := root.Unpack()
	if err != nil {
		return nil, err
	}
	object, ok := value.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}, nil
	}
	return object, nil
}
