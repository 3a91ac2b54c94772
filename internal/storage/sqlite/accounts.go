package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/IvanLB1405/records-api/internal/record"
	"github.com/IvanLB1405/records-api/internal/storage"
	"github.com/IvanLB1405/records-api/internal/types"
)

// CreateAccount inserts a new account and returns its generated id.
// Placeholders (?) keep owner from ever being interpreted as SQL.
func (s *SQLite) CreateAccount(owner string, balance int64) (int64, error) {
	stmt, err := s.Db.Prepare("INSERT INTO accounts (owner, balance) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("CreateAccount: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(owner, balance)
	if err != nil {
		return 0, fmt.Errorf("CreateAccount: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateAccount: last insert id: %w", err)
	}

	return lastID, nil
}

// GetAccountByID fetches exactly one account matched by primary key.
func (s *SQLite) GetAccountByID(id int64) (types.Account, error) {
	var account types.Account
	err := s.Db.QueryRow(
		"SELECT id, owner, balance FROM accounts WHERE id = ? LIMIT 1", id,
	).Scan(&account.ID, &account.Owner, &account.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Account{}, notFound("GetAccountByID", id)
		}
		return types.Account{}, fmt.Errorf("GetAccountByID: scan: %w", err)
	}

	return account, nil
}

// GetAccounts returns every account, ordered by id. The slice is empty
// (not nil) when there are none so it encodes as [] in JSON.
func (s *SQLite) GetAccounts() ([]types.Account, error) {
	rows, err := s.Db.Query("SELECT id, owner, balance FROM accounts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("GetAccounts: query: %w", err)
	}
	defer rows.Close()

	accounts := make([]types.Account, 0)
	for rows.Next() {
		var account types.Account
		if err := rows.Scan(&account.ID, &account.Owner, &account.Balance); err != nil {
			return nil, fmt.Errorf("GetAccounts: scan row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetAccounts: rows iteration: %w", err)
	}

	return accounts, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// ApplyToAccount runs a guarded mutation against a stored account.
//
// INSIDE ONE TRANSACTION:
//  1. read the current owner and balance
//  2. rebuild a record.Account from them
//  3. run op (Deposit / Withdraw / ...)
//  4. write the new balance back — only if op was applied
//
// A rejected op still commits (nothing was written) and its Result is
// returned with a nil error: rejection is an outcome, not a failure.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) ApplyToAccount(id int64, op storage.AccountOp) (types.Account, record.Result, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return types.Account{}, record.Result{}, fmt.Errorf("ApplyToAccount: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	var (
		owner   string
		balance int64
	)
	err = tx.QueryRow("SELECT owner, balance FROM accounts WHERE id = ?", id).Scan(&owner, &balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Account{}, record.Result{}, notFound("ApplyToAccount", id)
		}
		return types.Account{}, record.Result{}, fmt.Errorf("ApplyToAccount: scan: %w", err)
	}

	account := record.NewAccount(owner, balance)
	res := op(account)

	if res.Applied() {
		if _, err := tx.Exec("UPDATE accounts SET balance = ? WHERE id = ?", account.Balance(), id); err != nil {
			return types.Account{}, record.Result{}, fmt.Errorf("ApplyToAccount: update: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.Account{}, record.Result{}, fmt.Errorf("ApplyToAccount: commit: %w", err)
	}

	return types.NewAccount(id, account), res, nil
}

// DeleteAccountByID removes an account row by primary key.
func (s *SQLite) DeleteAccountByID(id int64) error {
	result, err := s.Db.Exec("DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("DeleteAccountByID: exec: %w", err)
	}
	return checkAffected(result, "DeleteAccountByID", id)
}
