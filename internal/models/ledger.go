package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the aggregate balance of one account over its approved
// transactions. Sign convention: a positive Balance means the business owes
// the transporter; negative means the transporter owes the business.
type BalanceSnapshot struct {
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	Balance      decimal.Decimal `json:"balance"` // TotalDebits - TotalCredits
}

// LedgerRow is one transaction inside a ledger window together with the
// running balance after that transaction was applied. Non-approved rows
// carry the running balance unchanged from the previous row.
type LedgerRow struct {
	Transaction    Transaction     `json:"transaction"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// Ledger is the result of a windowed ledger build: the balance carried in
// from before the window, the in-window rows, and the balance carried out.
type Ledger struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Rows           []LedgerRow     `json:"rows"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// LedgerFilter restricts which transactions appear as ledger rows. The date
// window is inclusive on both ends; nil fields mean "no restriction".
type LedgerFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Type     *TransactionType
	Status   *TransactionStatus
}
