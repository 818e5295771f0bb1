package bankcore_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/herrick/bankcore"
	"github.com/herrick/bankcore/mocks"
)

func TestHTTPCreateUser(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("returns the created user", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			AddUser(gomock.AssignableToTypeOf(bankcore.AddUserReq{})).
			DoAndReturn(func(r bankcore.AddUserReq) (*bankcore.User, error) {
				return &bankcore.User{
					ID:       snowflake.ParseInt64(7241407009730334720),
					Username: r.Username,
					Email:    r.Email,
				}, nil
			}).
			Times(1)

		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"username":"jdoe","password":"hunter2","email":"jdoe@example.com","first_name":"John","last_name":"Doe","mobile":"+15550001111","address":"12 Elm St"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusCreated, w.Code)
		resp := map[string]any{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		as.Equal("jdoe", resp["username"])
		as.NotContains(w.Body.String(), "password")
	})

	t.Run("returns error on malformed request body", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"username":"jdoe"`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusBadRequest, w.Code)
		resp := map[string]map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		as.Contains(resp, "fields")
		as.Contains(resp["fields"], "request body")
	})

	t.Run("maps a duplicate username to 409", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			AddUser(gomock.AssignableToTypeOf(bankcore.AddUserReq{})).
			Return(nil, bankcore.ErrDuplicate{Field: "username", Value: "jdoe"})

		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"username":"jdoe"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusConflict, w.Code)
	})
}

func TestHTTPAuthenticate(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("returns OK on valid credentials", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().AuthenticateUser("jdoe", "hunter2").Return(nil)

		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"username":"jdoe","password":"hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/authenticate", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		as.JSONEq(`{"status":"OK"}`, w.Body.String())
	})

	t.Run("maps an unknown user to 404", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			AuthenticateUser("ghost", "hunter2").
			Return(bankcore.ErrNotFound{Entity: "user"})

		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"username":"ghost","password":"hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/authenticate", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNotFound, w.Code)
	})
}

func TestHTTPGetAccount(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("returns the account", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		acctID := snowflake.ParseInt64(1834563581361305763)
		svc.EXPECT().
			GetAccountByID(acctID).
			Return(&bankcore.Account{
				ID:            acctID,
				AccountNumber: "00112233445566778899aabbccddeeff",
				Balance:       decimal.NewFromInt(100),
				Status:        bankcore.AccountActive,
			}, nil)

		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts/1834563581361305763", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		resp := map[string]any{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		as.Equal("00112233445566778899aabbccddeeff", resp["account_number"])
		as.Equal("active", resp["status"])
	})

	t.Run("returns error on a non-numeric account ID", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)

		req := httptest.NewRequest(http.MethodGet, "/accounts/24j24g", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNotFound, w.Code)
		resp := map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		as.Contains(resp, "path")
	})
}

func TestHTTPAdjustBalance(t *testing.T) {
	nooplog := zerolog.Nop()

	as := assert.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	acctID := snowflake.ParseInt64(1834563581361305763)
	bal := decimal.NewFromInt(100)
	svc.EXPECT().
		UpdateAccountBalance(acctID, gomock.AssignableToTypeOf(decimal.Decimal{})).
		DoAndReturn(func(_ snowflake.ID, _ decimal.Decimal) (*decimal.Decimal, error) {
			return &bal, nil
		})

	hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
	body := bytes.NewBufferString(`{"delta":100}`)
	req := httptest.NewRequest(http.MethodPost, "/accounts/1834563581361305763/balance", body)
	w := httptest.NewRecorder()
	hndlr.ServeHTTP(w, req)

	as.Equal(http.StatusOK, w.Code)
	resp := map[string]string{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	as.Nil(err)
	as.Equal("100", resp["balance"])
}

func TestHTTPCreateTransaction(t *testing.T) {
	nooplog := zerolog.Nop()

	as := assert.New(t)
	reqrd := require.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	acctID := snowflake.ParseInt64(1834563581361305763)
	svc.EXPECT().
		CreateTransaction(gomock.AssignableToTypeOf(bankcore.CreateTransactionReq{})).
		DoAndReturn(func(r bankcore.CreateTransactionReq) (*bankcore.Transaction, error) {
			reqrd.Equal(acctID, r.AccountID)
			return &bankcore.Transaction{
				AccountID:     r.AccountID,
				Ref:           r.AccountID.String() + "_deadbeef",
				Amount:        r.Amount,
				Status:        bankcore.TxnProcessing,
				TxnType:       r.TxnType,
				PostTxBalance: r.Amount,
			}, nil
		})

	hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
	body := bytes.NewBufferString(`{"amount":25.5,"description":"groceries","transaction_type":"debit"}`)
	req := httptest.NewRequest(http.MethodPost, "/accounts/1834563581361305763/transactions", body)
	w := httptest.NewRecorder()
	hndlr.ServeHTTP(w, req)

	as.Equal(http.StatusCreated, w.Code)
	resp := map[string]any{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	reqrd.Nil(err)
	as.Equal("processing", resp["status"])
	as.Equal(acctID.String()+"_deadbeef", resp["transaction_id"])
}

func TestHTTPListTransactions(t *testing.T) {
	nooplog := zerolog.Nop()
	acctID := snowflake.ParseInt64(1834563581361305763)

	t.Run("filters by type", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			GetTransactionsByType(acctID, "debit").
			Return([]bankcore.Transaction{{AccountID: acctID, TxnType: "debit"}}, nil)

		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts/1834563581361305763/transactions?type=debit", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
	})

	t.Run("serves the recent listing with a limit", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			GetRecentTransactions(acctID, 5).
			Return([]bankcore.Transaction{{AccountID: acctID}}, nil)

		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts/1834563581361305763/transactions?recent=true&limit=5", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
	})

	t.Run("maps an empty history to 404", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			GetTransactionsByAccountID(acctID).
			Return(nil, bankcore.ErrNotFound{Entity: "transactions"})

		hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts/1834563581361305763/transactions", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNotFound, w.Code)
	})
}

func TestHTTPUpdateTransactionStatus(t *testing.T) {
	nooplog := zerolog.Nop()

	as := assert.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().UpdateTransactionStatus("123_abcd1234", 1).Return(nil)

	hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
	body := bytes.NewBufferString(`{"status_index":1}`)
	req := httptest.NewRequest(http.MethodPut, "/transactions/123_abcd1234/status", body)
	w := httptest.NewRecorder()
	hndlr.ServeHTTP(w, req)

	as.Equal(http.StatusOK, w.Code)
	as.JSONEq(`{"status":"OK"}`, w.Body.String())
}

func TestHTTPStatement(t *testing.T) {
	nooplog := zerolog.Nop()

	as := assert.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	acctID := snowflake.ParseInt64(1834563581361305763)
	svc.EXPECT().
		Statement(gomock.Any(), acctID).
		DoAndReturn(func(w io.Writer, _ snowflake.ID) error {
			_, err := w.Write([]byte("%PDF-1.3 stub"))
			return err
		})

	hndlr := bankcore.NewHTTPHandler(svc, &nooplog)
	req := httptest.NewRequest(http.MethodGet, "/accounts/1834563581361305763/statement", nil)
	w := httptest.NewRecorder()
	hndlr.ServeHTTP(w, req)

	as.Equal(http.StatusOK, w.Code)
	as.Equal("application/pdf", w.Header().Get("Content-Type"))
	as.True(strings.HasPrefix(w.Body.String(), "%PDF"))
}
