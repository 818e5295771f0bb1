package bankcore

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

// validationMiddleware rejects malformed requests before they reach the
// service. It embeds the next Service so operations without checks pass
// straight through.
type validationMiddleware struct {
	Service
}

var (
	_ Service = (*validationMiddleware)(nil)
)

func NewValidationMiddleware() Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{Service: svc}
	}
}

func (v *validationMiddleware) AddUser(req AddUserReq) (*User, error) {
	fields := map[string]string{}
	required := map[string]string{
		"username":   req.Username,
		"password":   req.Password,
		"email":      req.Email,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"mobile":     req.Mobile,
		"address":    req.Address,
	}
	for name, val := range required {
		if val == "" {
			fields[name] = "required"
		}
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.Service.AddUser(req)
}

func (v *validationMiddleware) AuthenticateUser(username, password string) error {
	if username == "" || password == "" {
		return ErrBadRequest{Fields: map[string]string{"credentials": "username and password required"}}
	}
	return v.Service.AuthenticateUser(username, password)
}

func (v *validationMiddleware) UpdateBasicUserInfo(username string, upd UserInfoUpdate) error {
	if upd.empty() {
		return ErrBadRequest{Fields: map[string]string{"update": "no fields given"}}
	}
	return v.Service.UpdateBasicUserInfo(username, upd)
}

func (v *validationMiddleware) ChangeUserPassword(username, newPassword string) error {
	if newPassword == "" {
		return ErrBadRequest{Fields: map[string]string{"password": "required"}}
	}
	return v.Service.ChangeUserPassword(username, newPassword)
}

func (v *validationMiddleware) ChangeUsername(newUsername string, sel UserSelector) error {
	if newUsername == "" {
		return ErrBadRequest{Fields: map[string]string{"username": "required"}}
	}
	if sel.empty() {
		return ErrBadRequest{Fields: map[string]string{"selector": "id or username required"}}
	}
	return v.Service.ChangeUsername(newUsername, sel)
}

func (v *validationMiddleware) DisableUser(sel UserSelector) error {
	if sel.empty() {
		return ErrBadRequest{Fields: map[string]string{"selector": "id or username required"}}
	}
	return v.Service.DisableUser(sel)
}

func (v *validationMiddleware) EnableUser(sel UserSelector) error {
	if sel.empty() {
		return ErrBadRequest{Fields: map[string]string{"selector": "id or username required"}}
	}
	return v.Service.EnableUser(sel)
}

func (v *validationMiddleware) CreateBankAccount(req CreateAccountReq) (*Account, error) {
	fields := map[string]string{}
	if req.UserID == 0 {
		fields["user_id"] = "required"
	}
	if req.AccountType == "" {
		fields["account_type"] = "required"
	}
	if req.InterestRate.IsNegative() {
		fields["interest_rate"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.Service.CreateBankAccount(req)
}

func (v *validationMiddleware) CreateTransaction(req CreateTransactionReq) (*Transaction, error) {
	fields := map[string]string{}
	if req.AccountID == 0 {
		fields["account_id"] = "required"
	}
	if req.Description == "" {
		fields["description"] = "required"
	}
	if req.TxnType == "" {
		fields["transaction_type"] = "required"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.Service.CreateTransaction(req)
}

func (v *validationMiddleware) UpdateTransactionStatus(ref string, statusIndex int) error {
	if _, ok := TxnStatusByIndex(statusIndex); !ok {
		return ErrBadRequest{Fields: map[string]string{"status": "index out of range"}}
	}
	return v.Service.UpdateTransactionStatus(ref, statusIndex)
}

//
// Rate limiting middlewares
//

// limitMiddleware caps in-flight requests per entity family with weighted
// semaphores. Acquisition waits up to acquireTimeout; load beyond that is
// shed with ErrInternalServer.
type limitMiddleware struct {
	Service
	limits *ServiceLimits
}

var (
	_ Service = (*limitMiddleware)(nil)
)

const acquireTimeout = 3 * time.Second

type ServiceLimits struct {
	Users        *semaphore.Weighted
	Accounts     *semaphore.Weighted
	Transactions *semaphore.Weighted
}

func NewServiceLimits(users, accounts, transactions int64) *ServiceLimits {
	return &ServiceLimits{
		Users:        semaphore.NewWeighted(users),
		Accounts:     semaphore.NewWeighted(accounts),
		Transactions: semaphore.NewWeighted(transactions),
	}
}

func NewLimitMiddleware(limits *ServiceLimits) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			Service: next,
			limits:  limits,
		}
	}
}

func acquire(sem *semaphore.Weighted) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
	defer cancel()
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, ErrInternalServer
	}
	return func() { sem.Release(1) }, nil
}

func (l *limitMiddleware) AddUser(req AddUserReq) (*User, error) {
	release, err := acquire(l.limits.Users)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.Service.AddUser(req)
}

func (l *limitMiddleware) AuthenticateUser(username, password string) error {
	release, err := acquire(l.limits.Users)
	if err != nil {
		return err
	}
	defer release()
	return l.Service.AuthenticateUser(username, password)
}

func (l *limitMiddleware) CreateBankAccount(req CreateAccountReq) (*Account, error) {
	release, err := acquire(l.limits.Accounts)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.Service.CreateBankAccount(req)
}

func (l *limitMiddleware) UpdateAccountBalance(id snowflake.ID, delta decimal.Decimal) (*decimal.Decimal, error) {
	release, err := acquire(l.limits.Accounts)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.Service.UpdateAccountBalance(id, delta)
}

func (l *limitMiddleware) CreateTransaction(req CreateTransactionReq) (*Transaction, error) {
	release, err := acquire(l.limits.Transactions)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.Service.CreateTransaction(req)
}

func (l *limitMiddleware) Statement(w io.Writer, acctID snowflake.ID) error {
	release, err := acquire(l.limits.Transactions)
	if err != nil {
		return err
	}
	defer release()
	return l.Service.Statement(w, acctID)
}

type ServiceBreaker struct {
	CreateUser        *gobreaker.CircuitBreaker[*User]
	CreateAccount     *gobreaker.CircuitBreaker[*Account]
	AdjustBalance     *gobreaker.CircuitBreaker[*decimal.Decimal]
	CreateTransaction *gobreaker.CircuitBreaker[*Transaction]
}

// notStoreFailure keeps domain rejections (not found, bad request,
// duplicates) from tripping the breakers; only store-level faults count.
func notStoreFailure(err error) bool {
	if err == nil {
		return true
	}
	nf := ErrNotFound{}
	br := ErrBadRequest{}
	dup := ErrDuplicate{}
	return errors.As(err, &nf) || errors.As(err, &br) || errors.As(err, &dup)
}

func NewServiceBreaker(st gobreaker.Settings) *ServiceBreaker {
	if st.IsSuccessful == nil {
		st.IsSuccessful = notStoreFailure
	}
	return &ServiceBreaker{
		CreateUser:        gobreaker.NewCircuitBreaker[*User](st),
		CreateAccount:     gobreaker.NewCircuitBreaker[*Account](st),
		AdjustBalance:     gobreaker.NewCircuitBreaker[*decimal.Decimal](st),
		CreateTransaction: gobreaker.NewCircuitBreaker[*Transaction](st),
	}
}

// circuitBreakMiddleware guards the write paths against a struggling
// store; once a breaker opens, calls fail fast until it half-opens.
type circuitBreakMiddleware struct {
	Service
	brkrs *ServiceBreaker
}

var (
	_ Service = (*circuitBreakMiddleware)(nil)
)

func NewCircuitBreakMiddleware(brkrs *ServiceBreaker) Middleware {
	return func(next Service) Service {
		return &circuitBreakMiddleware{
			Service: next,
			brkrs:   brkrs,
		}
	}
}

func (c *circuitBreakMiddleware) AddUser(req AddUserReq) (*User, error) {
	return c.brkrs.CreateUser.Execute(func() (*User, error) {
		return c.Service.AddUser(req)
	})
}

func (c *circuitBreakMiddleware) CreateBankAccount(req CreateAccountReq) (*Account, error) {
	return c.brkrs.CreateAccount.Execute(func() (*Account, error) {
		return c.Service.CreateBankAccount(req)
	})
}

func (c *circuitBreakMiddleware) UpdateAccountBalance(id snowflake.ID, delta decimal.Decimal) (*decimal.Decimal, error) {
	return c.brkrs.AdjustBalance.Execute(func() (*decimal.Decimal, error) {
		return c.Service.UpdateAccountBalance(id, delta)
	})
}

func (c *circuitBreakMiddleware) CreateTransaction(req CreateTransactionReq) (*Transaction, error) {
	return c.brkrs.CreateTransaction.Execute(func() (*Transaction, error) {
		return c.Service.CreateTransaction(req)
	})
}
