package hatraapi

import (
	"context"
	"strconv"

	"hatra/internal/platform"
)

func pageParams(page, limit int) map[string]string {
	return map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
}

func (c *Client) Deposits(ctx context.Context) ([]platform.DepositRequest, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/user/deposits")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	var items []platform.DepositRequest
	if _, err := decodePage(resp.Body(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateDeposit(ctx context.Context, transactionHash string, amount float64, walletAddress string) (*platform.DepositRequest, error) {
	var request platform.DepositRequest
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{
			"transactionHash": transactionHash,
			"amount":          amount,
			"walletAddress":   walletAddress,
		}).
		SetResult(&request).
		Post("/user/deposits")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) Withdrawals(ctx context.Context) ([]platform.WithdrawalRequest, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/user/withdrawals")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	var items []platform.WithdrawalRequest
	if _, err := decodePage(resp.Body(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateWithdrawal(ctx context.Context, amount float64, walletAddress string) (*platform.WithdrawalRequest, error) {
	var request platform.WithdrawalRequest
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{
			"amount":        amount,
			"walletAddress": walletAddress,
		}).
		SetResult(&request).
		Post("/user/withdrawals")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) Transactions(ctx context.Context, page, limit int) ([]platform.Transaction, Pagination, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(pageParams(page, limit)).
		Get("/user/transactions")
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

func (c *Client) Referrals(ctx context.Context, page, limit int) (ReferralPage, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(pageParams(page, limit)).
		Get("/user/referrals")
	if err := c.check(resp, err); err != nil {
		return ReferralPage{}, err
	}
	return decodeReferralPage(resp.Body())
}

// SpinWheel claims the daily scratch-card reward. The server decides the
// amount and whether today's claim is still open.
func (c *Client) SpinWheel(ctx context.Context) (float64, error) {
	var result struct {
		Reward float64 `json:"reward"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&result).
		Post("/user/spin-wheel")
	if err := c.check(resp, err); err != nil {
		return 0, err
	}
	return result.Reward, nil
}

// CheckLevelRewards asks the server to re-evaluate tier achievements; the
// outcome is observed through a profile refetch.
func (c *Client) CheckLevelRewards(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Post("/user/level-rewards/check")
	return c.check(resp, err)
}
