package foodflex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/olowojude/Food-Flex/internal/model"
)

// CreditAccount fetches the authenticated buyer's credit standing.
func (c *Client) CreditAccount(ctx context.Context) (*model.CreditAccount, error) {
	var acct model.CreditAccount
	if err := c.do(ctx, http.MethodGet, "/credits/account/", nil, nil, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (c *Client) CreditTransactions(ctx context.Context) ([]model.CreditTransaction, error) {
	var txs []model.CreditTransaction
	if err := c.do(ctx, http.MethodGet, "/credits/transactions/", nil, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) Repayments(ctx context.Context) ([]model.Repayment, error) {
	var reps []model.Repayment
	if err := c.do(ctx, http.MethodGet, "/credits/repayments/", nil, nil, &reps); err != nil {
		return nil, err
	}
	return reps, nil
}

// PageQuery is the plain page/search filter used by management listings.
type PageQuery struct {
	Search string
	Page   int
}

func (q PageQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// CreditAccountPage is one page of the management account listing.
type CreditAccountPage struct {
	Count    int                   `json:"count"`
	Next     *string               `json:"next"`
	Previous *string               `json:"previous"`
	Results  []model.CreditAccount `json:"results"`
}

func (c *Client) CreditAccounts(ctx context.Context, q PageQuery) (*CreditAccountPage, error) {
	var page CreditAccountPage
	if err := c.do(ctx, http.MethodGet, "/credits/accounts/", q.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreditAccountFor(ctx context.Context, userID int64) (*model.CreditAccount, error) {
	var acct model.CreditAccount
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/credits/accounts/%d/", userID), nil, nil, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// ProcessRepayment records a repayment against a buyer's account (admin).
func (c *Client) ProcessRepayment(ctx context.Context, userID int64, amount model.Money, notes string) error {
	body := map[string]any{"amount": amount, "notes": notes}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/credits/accounts/%d/repayment/", userID), nil, body, nil)
}

// IncreaseCreditLimit raises a buyer's credit ceiling (admin).
func (c *Client) IncreaseCreditLimit(ctx context.Context, userID int64, newLimit model.Money, reason string) error {
	body := map[string]any{"new_limit": newLimit, "reason": reason}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/credits/accounts/%d/increase-limit/", userID), nil, body, nil)
}

func (c *Client) AllRepayments(ctx context.Context, q PageQuery) ([]model.Repayment, error) {
	var reps []model.Repayment
	if err := c.do(ctx, http.MethodGet, "/credits/repayments/all/", q.values(), nil, &reps); err != nil {
		return nil, err
	}
	return reps, nil
}
