package bankcore

import (
	"errors"
	"io"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// acctNumRetries bounds account number generation; a collision triggers a
// fresh draw, exhaustion surfaces ErrAcctNumExhausted instead of looping
// forever.
const acctNumRetries = 5

// DefaultRecentLimit applies when a recent-transactions query passes a
// non-positive limit.
const DefaultRecentLimit = 10

type AddUserReq struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
}

// UserSelector resolves a user by id when set, else by username.
type UserSelector struct {
	ID       *snowflake.ID `json:"id,omitempty"`
	Username string        `json:"username,omitempty"`
}

func (s UserSelector) empty() bool {
	return s.ID == nil && s.Username == ""
}

// UserInfoUpdate carries only the fields to change; nil pointers leave
// the stored value untouched.
type UserInfoUpdate struct {
	Address *string `json:"address,omitempty"`
	Email   *string `json:"email,omitempty"`
	Mobile  *string `json:"mobile,omitempty"`
}

func (u UserInfoUpdate) empty() bool {
	return u.Address == nil && u.Email == nil && u.Mobile == nil
}

type CreateAccountReq struct {
	UserID       snowflake.ID    `json:"user_id"`
	AccountType  string          `json:"account_type"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

type CreateTransactionReq struct {
	AccountID   snowflake.ID    `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TxnType     string          `json:"transaction_type"`
}

type Service interface {
	AddUser(req AddUserReq) (*User, error)
	AuthenticateUser(username, password string) error
	GetUserIDByUsername(username string) (snowflake.ID, error)
	UpdateBasicUserInfo(username string, upd UserInfoUpdate) error
	ChangeUserPassword(username, newPassword string) error
	ChangeUsername(newUsername string, sel UserSelector) error
	DisableUser(sel UserSelector) error
	EnableUser(sel UserSelector) error

	CreateBankAccount(req CreateAccountReq) (*Account, error)
	GetAccountByID(id snowflake.ID) (*Account, error)
	GetAccountsByUserID(userID snowflake.ID) ([]Account, error)
	UpdateAccountBalance(id snowflake.ID, delta decimal.Decimal) (*decimal.Decimal, error)
	UpdateAccountInterest(id snowflake.ID, rate decimal.Decimal) error
	DisableAccount(id snowflake.ID) error
	EnableAccount(id snowflake.ID) error
	FlagAccount(id snowflake.ID) error

	CreateTransaction(req CreateTransactionReq) (*Transaction, error)
	GetTransactionByID(id snowflake.ID) (*Transaction, error)
	GetTransactionsByAccountID(acctID snowflake.ID) ([]Transaction, error)
	UpdateTransactionStatus(ref string, statusIndex int) error
	GetRecentTransactions(acctID snowflake.ID, limit int) ([]Transaction, error)
	GetTransactionsByType(acctID snowflake.ID, txnType string) ([]Transaction, error)
	Statement(w io.Writer, acctID snowflake.ID) error
}

func NewService(repo Repository, node *snowflake.Node, log *zerolog.Logger, bcryptCost int) *serviceImpl {
	return &serviceImpl{
		repo:       repo,
		node:       node,
		log:        log,
		bcryptCost: bcryptCost,
	}
}

type serviceImpl struct {
	repo       Repository
	node       *snowflake.Node
	log        *zerolog.Logger
	bcryptCost int
}

var (
	_ Service = (*serviceImpl)(nil)
)

func (s *serviceImpl) AddUser(req AddUserReq) (*User, error) {
	taken, err := s.repo.TakenUserFields(req.Username, req.Email, req.Mobile)
	if err != nil {
		return nil, err
	}
	if len(taken) > 0 {
		s.log.Error().
			Str("username", req.Username).
			Strs("fields", taken).
			Msg("user creation rejected, unique fields taken")
		return nil, ErrDuplicate{Field: taken[0]}
	}

	digest, err := HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	usr := &User{
		ID:             s.node.Generate(),
		Username:       req.Username,
		PasswordDigest: digest,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Mobile:         req.Mobile,
		Address:        req.Address,
	}
	if err = s.repo.CreateUser(usr); err != nil {
		return nil, err
	}
	s.log.Info().Str("username", usr.Username).Int64("id", usr.ID.Int64()).Msg("user created")

	return usr, nil
}

// AuthenticateUser rejects disabled users outright; soft-deactivation
// would otherwise leave the credentials usable.
func (s *serviceImpl) AuthenticateUser(username, password string) error {
	usr, err := s.repo.UserByUsername(username)
	if err != nil {
		return err
	}
	if usr.Disabled {
		s.log.Info().Str("username", username).Msg("authentication rejected, user disabled")
		return ErrBadRequest{Fields: map[string]string{"username": "user is disabled"}}
	}
	if !CheckPassword(password, usr.PasswordDigest) {
		s.log.Info().Str("username", username).Msg("authentication rejected, wrong password")
		return ErrBadRequest{Fields: map[string]string{"password": "does not match"}}
	}

	return nil
}

func (s *serviceImpl) GetUserIDByUsername(username string) (snowflake.ID, error) {
	usr, err := s.repo.UserByUsername(username)
	if err != nil {
		return 0, err
	}
	return usr.ID, nil
}

func (s *serviceImpl) UpdateBasicUserInfo(username string, upd UserInfoUpdate) error {
	if upd.empty() {
		return ErrBadRequest{Fields: map[string]string{"update": "no fields given"}}
	}
	usr, err := s.repo.UserByUsername(username)
	if err != nil {
		return err
	}
	if upd.Address != nil {
		usr.Address = *upd.Address
	}
	if upd.Email != nil {
		usr.Email = *upd.Email
	}
	if upd.Mobile != nil {
		usr.Mobile = *upd.Mobile
	}

	return s.repo.UpdateUser(usr)
}

func (s *serviceImpl) ChangeUserPassword(username, newPassword string) error {
	usr, err := s.repo.UserByUsername(username)
	if err != nil {
		return err
	}
	digest, err := HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	usr.PasswordDigest = digest

	return s.repo.UpdateUser(usr)
}

func (s *serviceImpl) ChangeUsername(newUsername string, sel UserSelector) error {
	if sel.empty() {
		return ErrBadRequest{Fields: map[string]string{"selector": "id or username required"}}
	}
	_, err := s.repo.UserByUsername(newUsername)
	if err == nil {
		s.log.Error().Str("username", newUsername).Msg("username change rejected, name taken")
		return ErrDuplicate{Field: "username", Value: newUsername}
	}
	nf := ErrNotFound{}
	if !errors.As(err, &nf) {
		return err
	}
	usr, err := s.resolveUser(sel)
	if err != nil {
		return err
	}
	usr.Username = newUsername

	return s.repo.UpdateUser(usr)
}

func (s *serviceImpl) DisableUser(sel UserSelector) error {
	return s.setUserDisabled(sel, true)
}

func (s *serviceImpl) EnableUser(sel UserSelector) error {
	return s.setUserDisabled(sel, false)
}

func (s *serviceImpl) setUserDisabled(sel UserSelector, disabled bool) error {
	if sel.empty() {
		return ErrBadRequest{Fields: map[string]string{"selector": "id or username required"}}
	}
	usr, err := s.resolveUser(sel)
	if err != nil {
		return err
	}
	usr.Disabled = disabled
	if err = s.repo.UpdateUser(usr); err != nil {
		return err
	}
	s.log.Info().Str("username", usr.Username).Bool("disabled", disabled).Msg("user flag updated")

	return nil
}

func (s *serviceImpl) resolveUser(sel UserSelector) (*User, error) {
	if sel.ID != nil {
		return s.repo.UserByID(*sel.ID)
	}
	return s.repo.UserByUsername(sel.Username)
}

func (s *serviceImpl) CreateBankAccount(req CreateAccountReq) (*Account, error) {
	var num string
	for i := 0; ; i++ {
		if i == acctNumRetries {
			return nil, ErrAcctNumExhausted
		}
		n, err := newAccountNumber()
		if err != nil {
			return nil, err
		}
		exists, err := s.repo.AccountNumberExists(n)
		if err != nil {
			return nil, err
		}
		if !exists {
			num = n
			break
		}
		s.log.Error().Str("account_number", n).Msg("account number collision, retrying")
	}

	acct := &Account{
		ID:            s.node.Generate(),
		UserID:        req.UserID,
		AccountNumber: num,
		Balance:       decimal.Zero,
		AccountType:   req.AccountType,
		CreatedDate:   time.Now().UTC(),
		Status:        AccountActive,
		InterestRate:  req.InterestRate,
	}
	if err := s.repo.CreateAccount(acct); err != nil {
		return nil, err
	}
	s.log.Info().Str("account_number", num).Int64("id", acct.ID.Int64()).Msg("account created")

	return acct, nil
}

func (s *serviceImpl) GetAccountByID(id snowflake.ID) (*Account, error) {
	return s.repo.AccountByID(id)
}

// GetAccountsByUserID treats an empty result as a failure; this keeps
// the original contract where a user without accounts is reported as
// not found rather than as an empty list.
func (s *serviceImpl) GetAccountsByUserID(userID snowflake.ID) ([]Account, error) {
	accts, err := s.repo.AccountsByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(accts) == 0 {
		return nil, ErrNotFound{Entity: "accounts", ID: userID.String()}
	}
	return accts, nil
}

func (s *serviceImpl) UpdateAccountBalance(id snowflake.ID, delta decimal.Decimal) (*decimal.Decimal, error) {
	bal, err := s.repo.AdjustBalance(id, delta)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Int64("account_id", id.Int64()).
		Str("delta", delta.String()).
		Str("balance", bal.String()).
		Msg("account balance updated")

	return bal, nil
}

func (s *serviceImpl) UpdateAccountInterest(id snowflake.ID, rate decimal.Decimal) error {
	return s.repo.SetAccountInterest(id, rate)
}

func (s *serviceImpl) DisableAccount(id snowflake.ID) error {
	return s.repo.SetAccountStatus(id, AccountDisabled)
}

func (s *serviceImpl) EnableAccount(id snowflake.ID) error {
	return s.repo.SetAccountStatus(id, AccountActive)
}

func (s *serviceImpl) FlagAccount(id snowflake.ID) error {
	return s.repo.SetAccountStatus(id, AccountFlagged)
}

func (s *serviceImpl) CreateTransaction(req CreateTransactionReq) (*Transaction, error) {
	ref, err := newTxnRef(req.AccountID)
	if err != nil {
		return nil, err
	}
	txn := &Transaction{
		ID:          s.node.Generate(),
		AccountID:   req.AccountID,
		Ref:         ref,
		Amount:      req.Amount,
		Timestamp:   time.Now().UTC(),
		Description: req.Description,
		Status:      TxnProcessing,
		TxnType:     req.TxnType,
	}
	if err = s.repo.PostTransaction(txn); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("txn_ref", txn.Ref).
		Str("amount", txn.Amount.String()).
		Str("post_tx_balance", txn.PostTxBalance.String()).
		Msg("transaction posted")

	return txn, nil
}

func (s *serviceImpl) GetTransactionByID(id snowflake.ID) (*Transaction, error) {
	return s.repo.TransactionByID(id)
}

func (s *serviceImpl) GetTransactionsByAccountID(acctID snowflake.ID) ([]Transaction, error) {
	txns, err := s.repo.TransactionsByAccountID(acctID)
	if err != nil {
		return nil, err
	}
	return nonEmpty(txns, acctID)
}

func (s *serviceImpl) UpdateTransactionStatus(ref string, statusIndex int) error {
	status, ok := TxnStatusByIndex(statusIndex)
	if !ok {
		return ErrBadRequest{Fields: map[string]string{"status": "index out of range"}}
	}
	return s.repo.SetTransactionStatus(ref, status)
}

func (s *serviceImpl) GetRecentTransactions(acctID snowflake.ID, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	txns, err := s.repo.RecentTransactions(acctID, limit)
	if err != nil {
		return nil, err
	}
	return nonEmpty(txns, acctID)
}

func (s *serviceImpl) GetTransactionsByType(acctID snowflake.ID, txnType string) ([]Transaction, error) {
	txns, err := s.repo.TransactionsByType(acctID, txnType)
	if err != nil {
		return nil, err
	}
	return nonEmpty(txns, acctID)
}

func (s *serviceImpl) Statement(w io.Writer, acctID snowflake.ID) error {
	acct, err := s.repo.AccountByID(acctID)
	if err != nil {
		return err
	}
	txns, err := s.repo.RecentTransactions(acctID, DefaultRecentLimit)
	if err != nil {
		return err
	}

	return writeStatement(w, acct, txns)
}

func nonEmpty(txns []Transaction, acctID snowflake.ID) ([]Transaction, error) {
	if len(txns) == 0 {
		return nil, ErrNotFound{Entity: "transactions", ID: acctID.String()}
	}
	return txns, nil
}
