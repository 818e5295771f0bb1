package bankcore

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	statusOK = []byte(`{"status":"OK"}`)
)

type balanceJSONResp struct {
	Balance decimal.Decimal `json:"balance"`
}

type userIDJSONResp struct {
	ID snowflake.ID `json:"id"`
}

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.NotFound(HTTPNotFound)
	mux.Route("/users", func(r chi.Router) {
		r.Post("/", hndlr.CreateUser)
		r.Post("/authenticate", hndlr.Authenticate)
		r.Route("/{username}", func(rr chi.Router) {
			rr.Get("/id", hndlr.UserID)
			rr.Patch("/", hndlr.UpdateUser)
			rr.Put("/password", hndlr.ChangePassword)
			rr.Put("/username", hndlr.RenameUser)
			rr.Post("/disable", hndlr.userFlagHandler(svc.DisableUser))
			rr.Post("/enable", hndlr.userFlagHandler(svc.EnableUser))
			rr.Get("/accounts", hndlr.UserAccounts)
		})
	})
	mux.Route("/accounts", func(r chi.Router) {
		r.Post("/", hndlr.CreateAccount)
		r.Route("/{acctID:[0-9]+}", func(rr chi.Router) {
			rr.Get("/", hndlr.GetAccount)
			rr.Post("/balance", hndlr.AdjustBalance)
			rr.Put("/interest", hndlr.SetInterest)
			rr.Post("/disable", hndlr.acctStatusHandler(svc.DisableAccount))
			rr.Post("/enable", hndlr.acctStatusHandler(svc.EnableAccount))
			rr.Post("/flag", hndlr.acctStatusHandler(svc.FlagAccount))
			rr.Post("/transactions", hndlr.CreateTransaction)
			rr.Get("/transactions", hndlr.ListTransactions)
			rr.Get("/statement", hndlr.Statement)
		})
	})
	mux.Put("/transactions/{ref}/status", hndlr.UpdateTransactionStatus)

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) decode(w http.ResponseWriter, r *http.Request, method string, v any) bool {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return false
	}
	if err = json.Unmarshal(buf, v); err != nil {
		h.Log.Err(err).Str("method", method).Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return false
	}
	return true
}

func (h *httpHandler) acctID(w http.ResponseWriter, r *http.Request, method string) (snowflake.ID, bool) {
	pid := chi.URLParam(r, "acctID")
	acctID, err := snowflake.ParseString(pid)
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error parsing account ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"acctID": "invalid format"}})
		return 0, false
	}
	return acctID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req AddUserReq
	if !h.decode(w, r, "create_user", &req) {
		return
	}
	usr, err := h.Svc.AddUser(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, usr)
}

func (h *httpHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !h.decode(w, r, "authenticate", &req) {
		return
	}
	if err := h.Svc.AuthenticateUser(req.Username, req.Password); err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(statusOK)
}

func (h *httpHandler) UserID(w http.ResponseWriter, r *http.Request) {
	id, err := h.Svc.GetUserIDByUsername(chi.URLParam(r, "username"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userIDJSONResp{ID: id})
}

func (h *httpHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var upd UserInfoUpdate
	if !h.decode(w, r, "update_user", &upd) {
		return
	}
	if err := h.Svc.UpdateBasicUserInfo(chi.URLParam(r, "username"), upd); err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(statusOK)
}

func (h *httpHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !h.decode(w, r, "change_password", &req) {
		return
	}
	if err := h.Svc.ChangeUserPassword(chi.URLParam(r, "username"), req.Password); err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(statusOK)
}

func (h *httpHandler) RenameUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if !h.decode(w, r, "rename_user", &req) {
		return
	}
	sel := UserSelector{Username: chi.URLParam(r, "username")}
	if err := h.Svc.ChangeUsername(req.Username, sel); err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(statusOK)
}

func (h *httpHandler) userFlagHandler(flip func(UserSelector) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := UserSelector{Username: chi.URLParam(r, "username")}
		if err := flip(sel); err != nil {
			WriteHTTPError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(statusOK)
	}
}

func (h *httpHandler) UserAccounts(w http.ResponseWriter, r *http.Request) {
	id, err := h.Svc.GetUserIDByUsername(chi.URLParam(r, "username"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	accts, err := h.Svc.GetAccountsByUserID(id)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, accts)
}

func (h *httpHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountReq
	if !h.decode(w, r, "create_account", &req) {
		return
	}
	acct, err := h.Svc.CreateBankAccount(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, acct)
}

func (h *httpHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	acctID, ok := h.acctID(w, r, "get_account")
	if !ok {
		return
	}
	acct, err := h.Svc.GetAccountByID(acctID)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, acct)
}

func (h *httpHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	acctID, ok := h.acctID(w, r, "adjust_balance")
	if !ok {
		return
	}
	var req struct {
		Delta decimal.Decimal `json:"delta"`
	}
	if !h.decode(w, r, "adjust_balance", &req) {
		return
	}
	bal, err := h.Svc.UpdateAccountBalance(acctID, req.Delta)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceJSONResp{Balance: *bal})
}

func (h *httpHandler) SetInterest(w http.ResponseWriter, r *http.Request) {
	acctID, ok := h.acctID(w, r, "set_interest")
	if !ok {
		return
	}
	var req struct {
		InterestRate decimal.Decimal `json:"interest_rate"`
	}
	if !h.decode(w, r, "set_interest", &req) {
		return
	}
	if err := h.Svc.UpdateAccountInterest(acctID, req.InterestRate); err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(statusOK)
}

func (h *httpHandler) acctStatusHandler(set func(snowflake.ID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acctID, ok := h.acctID(w, r, "account_status")
		if !ok {
			return
		}
		if err := set(acctID); err != nil {
			WriteHTTPError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(statusOK)
	}
}

func (h *httpHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	acctID, ok := h.acctID(w, r, "create_transaction")
	if !ok {
		return
	}
	var req CreateTransactionReq
	if !h.decode(w, r, "create_transaction", &req) {
		return
	}
	req.AccountID = acctID
	txn, err := h.Svc.CreateTransaction(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, txn)
}

// ListTransactions serves three query shapes: ?type= filters by
// transaction type, ?recent=true&limit=n returns the newest n, and no
// parameters returns the full history.
func (h *httpHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	acctID, ok := h.acctID(w, r, "list_transactions")
	if !ok {
		return
	}

	var (
		txns []Transaction
		err  error
	)
	q := r.URL.Query()
	switch {
	case q.Get("type") != "":
		txns, err = h.Svc.GetTransactionsByType(acctID, q.Get("type"))
	case q.Get("recent") != "":
		limit, _ := strconv.Atoi(q.Get("limit"))
		txns, err = h.Svc.GetRecentTransactions(acctID, limit)
	default:
		txns, err = h.Svc.GetTransactionsByAccountID(acctID)
	}
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, txns)
}

func (h *httpHandler) UpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StatusIndex int `json:"status_index"`
	}
	if !h.decode(w, r, "update_transaction_status", &req) {
		return
	}
	if err := h.Svc.UpdateTransactionStatus(chi.URLParam(r, "ref"), req.StatusIndex); err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(statusOK)
}

func (h *httpHandler) Statement(w http.ResponseWriter, r *http.Request) {
	acctID, ok := h.acctID(w, r, "statement")
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := h.Svc.Statement(w, acctID); err != nil {
		h.Log.Err(err).Str("method", "statement").Msg("error writing statement")
	}
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	errnf := &ErrNotFound{}
	errbr := &ErrBadRequest{}
	errdup := &ErrDuplicate{}
	if errors.As(err, errnf) {
		w.WriteHeader(http.StatusNotFound)
		ne = json.NewEncoder(w).Encode(errnf)
	} else if errors.As(err, errbr) {
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errbr)
	} else if errors.As(err, errdup) {
		w.WriteHeader(http.StatusConflict)
		ne = json.NewEncoder(w).Encode(errdup)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
		resp := map[string]string{
			"message": "server error",
		}
		ne = json.NewEncoder(w).Encode(resp)
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}
