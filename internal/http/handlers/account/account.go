// Package account contains the HTTP handlers for the Account resource.
//
// Each exported function is a factory: it receives the storage once at
// route registration and returns the http.HandlerFunc that runs on every
// request.
//
//	router.HandleFunc("POST /api/accounts/{id}/withdraw", account.Withdraw(storage))
package account

import (
	"log/slog"
	"net/http"

	"github.com/IvanLB1405/records-api/internal/record"
	"github.com/IvanLB1405/records-api/internal/storage"
	"github.com/IvanLB1405/records-api/internal/types"
	"github.com/IvanLB1405/records-api/internal/utils/request"
	"github.com/IvanLB1405/records-api/internal/utils/response"
)

// New handles POST /api/accounts
//
//	{ "owner": "Ivan", "balance": 0 }  →  201 { "id": 1 }
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an account")

		var req types.AccountRequest
		if !request.Decode(w, r, &req) {
			return
		}

		lastID, err := storage.CreateAccount(req.Owner, req.Balance)
		if err != nil {
			slog.Error("error creating account", slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		slog.Info("account created", slog.Int64("id", lastID))
		response.WriteJSON(w, http.StatusCreated, map[string]int64{"id": lastID})
	}
}

// GetByID handles GET /api/accounts/{id}
func GetByID(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}
		slog.Info("getting an account", slog.Int64("id", id))

		account, err := storage.GetAccountByID(id)
		if err != nil {
			slog.Error("error getting account", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, account)
	}
}

// GetList handles GET /api/accounts. An empty table yields [].
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all accounts")

		accounts, err := storage.GetAccounts()
		if err != nil {
			slog.Error("error getting accounts", slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, accounts)
	}
}

// Delete handles DELETE /api/accounts/{id}
func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting an account", slog.Int64("id", id))

		if err := storage.DeleteAccountByID(id); err != nil {
			slog.Error("error deleting account", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		slog.Info("account deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// Deposit handles POST /api/accounts/{id}/deposit
//
//	{ "amount": 100 }  →  200 { "account": {...}, "outcome": { "status": "applied", ... } }
func Deposit(storage storage.Storage) http.HandlerFunc {
	return apply(storage, "deposit", (*record.Account).Deposit)
}

// Withdraw handles POST /api/accounts/{id}/withdraw
//
// A withdrawal larger than the balance is rejected with 409 Conflict;
// the body still carries the account and an outcome whose status is
// "rejected" and whose reason is "insufficient funds".
func Withdraw(storage storage.Storage) http.HandlerFunc {
	return apply(storage, "withdrawal", (*record.Account).Withdraw)
}

func apply(storage storage.Storage, action string, op func(*record.Account, int64) record.Result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}

		var req types.AmountRequest
		if !request.Decode(w, r, &req) {
			return
		}
		slog.Info("applying "+action, slog.Int64("id", id), slog.Int64("amount", req.Amount))

		account, res, err := storage.ApplyToAccount(id, func(a *record.Account) record.Result {
			return op(a, req.Amount)
		})
		if err != nil {
			slog.Error("error applying "+action, slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		status := http.StatusOK
		if !res.Applied() {
			slog.Warn(action+" rejected",
				slog.Int64("id", id),
				slog.String("reason", res.Reason),
				slog.Int64("balance", account.Balance))
			status = http.StatusConflict
		}

		response.WriteJSON(w, status, types.AccountOutcome{
			Account: account,
			Outcome: types.NewOutcome(res),
		})
	}
}
