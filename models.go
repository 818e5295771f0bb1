package bankcore

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type User struct {
	ID             snowflake.ID `json:"id"`
	Username       string       `json:"username"`
	PasswordDigest string       `json:"-"`
	Email          string       `json:"email"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Mobile         string       `json:"mobile"`
	Address        string       `json:"address"`
	Disabled       bool         `json:"disabled"`
}

type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountDisabled AccountStatus = "disabled"
	AccountFlagged  AccountStatus = "flagged"
)

type Account struct {
	ID            snowflake.ID    `json:"id"`
	UserID        snowflake.ID    `json:"user_id"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   string          `json:"account_type"`
	CreatedDate   time.Time       `json:"created_date"`
	Status        AccountStatus   `json:"status"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
}

type TxnStatus string

// txnStatuses is the fixed status vocabulary; callers address entries
// by index through UpdateTransactionStatus.
var txnStatuses = []TxnStatus{
	TxnProcessing,
	TxnProcessed,
	TxnDeclined,
	TxnDisputed,
	TxnRefunded,
	TxnFlagged,
}

const (
	TxnProcessing TxnStatus = "processing"
	TxnProcessed  TxnStatus = "processed"
	TxnDeclined   TxnStatus = "declined"
	TxnDisputed   TxnStatus = "disputed"
	TxnRefunded   TxnStatus = "refunded"
	TxnFlagged    TxnStatus = "flagged"
)

// TxnStatusByIndex maps an integer index into the fixed status vocabulary.
func TxnStatusByIndex(i int) (TxnStatus, bool) {
	if i < 0 || i >= len(txnStatuses) {
		return "", false
	}
	return txnStatuses[i], true
}

type Transaction struct {
	ID        snowflake.ID `json:"id"`
	AccountID snowflake.ID `json:"account_id"`
	// Ref is the public transaction identifier, "{account id}_{8 hex chars}".
	// Immutable once persisted.
	Ref         string          `json:"transaction_id"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	Status      TxnStatus       `json:"status"`
	TxnType     string          `json:"transaction_type"`
	// PostTxBalance is the account balance snapshot taken when the
	// transaction was posted, equal to the balance at that instant plus
	// Amount. It is never recomputed afterwards.
	PostTxBalance decimal.Decimal `json:"post_tx_balance"`
}
