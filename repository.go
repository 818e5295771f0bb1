package bankcore

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Repository is the storage contract backing the service. Every method is
// a single unit of work: it commits or rolls back before returning.
type Repository interface {
	CreateUser(usr *User) error
	UserByUsername(username string) (*User, error)
	UserByID(id snowflake.ID) (*User, error)
	// TakenUserFields reports which of the unique user columns already
	// hold the given values. Empty result means all three are free.
	TakenUserFields(username, email, mobile string) ([]string, error)
	UpdateUser(usr *User) error

	CreateAccount(acct *Account) error
	AccountByID(id snowflake.ID) (*Account, error)
	AccountsByUserID(userID snowflake.ID) ([]Account, error)
	AccountNumberExists(num string) (bool, error)
	// AdjustBalance adds delta to the stored balance under a row lock and
	// returns the new balance.
	AdjustBalance(id snowflake.ID, delta decimal.Decimal) (*decimal.Decimal, error)
	SetAccountInterest(id snowflake.ID, rate decimal.Decimal) error
	SetAccountStatus(id snowflake.ID, status AccountStatus) error

	// PostTransaction inserts the transaction row and applies its amount
	// to the owning account's balance in one store transaction, filling
	// in txn.PostTxBalance from the locked balance.
	PostTransaction(txn *Transaction) error
	TransactionByID(id snowflake.ID) (*Transaction, error)
	TransactionsByAccountID(acctID snowflake.ID) ([]Transaction, error)
	RecentTransactions(acctID snowflake.ID, limit int) ([]Transaction, error)
	TransactionsByType(acctID snowflake.ID, txnType string) ([]Transaction, error)
	SetTransactionStatus(ref string, status TxnStatus) error
}
