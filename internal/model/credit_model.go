package model

import "time"

// Loan status of a credit account.
const (
	LoanActive    = "ACTIVE"
	LoanExhausted = "EXHAUSTED"
	LoanSuspended = "SUSPENDED"
	LoanRepaid    = "REPAID"
)

// CreditAccount is read-only from the buyer's side; only backend repayment
// and limit operations mutate it.
type CreditAccount struct {
	ID                 int64      `json:"id"`
	User               *User      `json:"user,omitempty"`
	CreditLimit        Money      `json:"credit_limit"`
	CreditBalance      Money      `json:"credit_balance"`
	AvailableCredit    Money      `json:"available_credit"`
	OutstandingBalance Money      `json:"outstanding_balance"`
	TotalCreditUsed    Money      `json:"total_credit_used"`
	LoanStatus         string     `json:"loan_status"`
	TotalRepaid        Money      `json:"total_repaid"`
	LastRepaymentDate  *time.Time `json:"last_repayment_date,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// CanCover reports whether the available balance covers an amount. Advisory
// only: the backend re-checks at checkout time.
func (a *CreditAccount) CanCover(amount Money) bool {
	return a != nil && a.CreditBalance.GreaterThanOrEqual(amount)
}

// CreditTransaction is one ledger entry on a credit account.
type CreditTransaction struct {
	ID              int64      `json:"id"`
	TransactionType string     `json:"transaction_type"`
	Amount          Money      `json:"amount"`
	BalanceBefore   Money      `json:"balance_before"`
	BalanceAfter    Money      `json:"balance_after"`
	Description     string     `json:"description,omitempty"`
	Reference       string     `json:"reference,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// Repayment is one repayment record against a credit account.
type Repayment struct {
	ID                int64      `json:"id"`
	CreditAccount     int64      `json:"credit_account"`
	CreditAccountUser string     `json:"credit_account_user,omitempty"`
	Amount            Money      `json:"amount"`
	RepaidBy          int64      `json:"repaid_by"`
	RepaidByName      string     `json:"repaid_by_name,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}
