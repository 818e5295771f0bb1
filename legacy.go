package bankcore

import (
	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LegacyAPI adapts Service to the boolean success contract of the
// original repositories: every failure collapses to false (or a false
// ok on read paths), with the underlying error logged as the only
// side channel.
type LegacyAPI struct {
	svc Service
	log *zerolog.Logger
}

func NewLegacyAPI(svc Service, log *zerolog.Logger) *LegacyAPI {
	return &LegacyAPI{
		svc: svc,
		log: log,
	}
}

func (l *LegacyAPI) ok(op string, err error) bool {
	if err != nil {
		l.log.Err(err).Str("op", op).Msg("operation failed")
		return false
	}
	return true
}

func (l *LegacyAPI) AddUser(req AddUserReq) bool {
	_, err := l.svc.AddUser(req)
	return l.ok("add_user", err)
}

func (l *LegacyAPI) AuthenticateUser(username, password string) bool {
	return l.ok("authenticate_user", l.svc.AuthenticateUser(username, password))
}

func (l *LegacyAPI) GetUserIDByUsername(username string) (snowflake.ID, bool) {
	id, err := l.svc.GetUserIDByUsername(username)
	return id, l.ok("get_user_id_by_username", err)
}

func (l *LegacyAPI) UpdateBasicUserInfo(username string, upd UserInfoUpdate) bool {
	return l.ok("update_basic_user_info", l.svc.UpdateBasicUserInfo(username, upd))
}

func (l *LegacyAPI) ChangeUserPassword(username, newPassword string) bool {
	return l.ok("change_user_password", l.svc.ChangeUserPassword(username, newPassword))
}

func (l *LegacyAPI) ChangeUsername(newUsername string, sel UserSelector) bool {
	return l.ok("change_username", l.svc.ChangeUsername(newUsername, sel))
}

func (l *LegacyAPI) DisableUser(sel UserSelector) bool {
	return l.ok("disable_user", l.svc.DisableUser(sel))
}

func (l *LegacyAPI) EnableUser(sel UserSelector) bool {
	return l.ok("enable_user", l.svc.EnableUser(sel))
}

func (l *LegacyAPI) CreateBankAccount(req CreateAccountReq) bool {
	_, err := l.svc.CreateBankAccount(req)
	return l.ok("create_bank_account", err)
}

func (l *LegacyAPI) GetAccountByID(id snowflake.ID) (*Account, bool) {
	acct, err := l.svc.GetAccountByID(id)
	return acct, l.ok("get_account_by_id", err)
}

func (l *LegacyAPI) GetAccountsByUserID(userID snowflake.ID) ([]Account, bool) {
	accts, err := l.svc.GetAccountsByUserID(userID)
	return accts, l.ok("get_accounts_by_user_id", err)
}

func (l *LegacyAPI) UpdateAccountBalance(id snowflake.ID, delta decimal.Decimal) bool {
	_, err := l.svc.UpdateAccountBalance(id, delta)
	return l.ok("update_account_balance", err)
}

func (l *LegacyAPI) UpdateAccountInterest(id snowflake.ID, rate decimal.Decimal) bool {
	return l.ok("update_account_interest", l.svc.UpdateAccountInterest(id, rate))
}

func (l *LegacyAPI) DisableAccount(id snowflake.ID) bool {
	return l.ok("disable_account", l.svc.DisableAccount(id))
}

func (l *LegacyAPI) EnableAccount(id snowflake.ID) bool {
	return l.ok("enable_account", l.svc.EnableAccount(id))
}

func (l *LegacyAPI) FlagAccount(id snowflake.ID) bool {
	return l.ok("flag_account", l.svc.FlagAccount(id))
}

func (l *LegacyAPI) CreateTransaction(req CreateTransactionReq) bool {
	_, err := l.svc.CreateTransaction(req)
	return l.ok("create_transaction", err)
}

func (l *LegacyAPI) GetTransactionByID(id snowflake.ID) (*Transaction, bool) {
	txn, err := l.svc.GetTransactionByID(id)
	return txn, l.ok("get_transaction_by_id", err)
}

func (l *LegacyAPI) GetTransactionsByAccountID(acctID snowflake.ID) ([]Transaction, bool) {
	txns, err := l.svc.GetTransactionsByAccountID(acctID)
	return txns, l.ok("get_transactions_by_account_id", err)
}

func (l *LegacyAPI) UpdateTransactionStatus(ref string, statusIndex int) bool {
	return l.ok("update_transaction_status", l.svc.UpdateTransactionStatus(ref, statusIndex))
}

func (l *LegacyAPI) GetRecentTransactions(acctID snowflake.ID, limit int) ([]Transaction, bool) {
	txns, err := l.svc.GetRecentTransactions(acctID, limit)
	return txns, l.ok("get_recent_transactions", err)
}

func (l *LegacyAPI) GetTransactionsByType(acctID snowflake.ID, txnType string) ([]Transaction, bool) {
	txns, err := l.svc.GetTransactionsByType(acctID, txnType)
	return txns, l.ok("get_transaction_by_type", err)
}
