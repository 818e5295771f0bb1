package bankcore

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var (
	pgInsertAcctSQL = `
		INSERT INTO accounts (id, user_id, account_number, balance, account_type, created_date, status, interest_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	pgSelectAcctSQL = `
		SELECT id, user_id, account_number, balance, account_type, created_date, status, interest_rate
		FROM accounts
	`

	pgAcctNumExistsSQL = `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1);
	`

	pgLockAcctBalanceSQL = `
		SELECT balance
		FROM accounts
		WHERE id = $1
		FOR UPDATE;
	`

	pgSetAcctBalanceSQL = `
		UPDATE accounts
		SET balance = $2
		WHERE id = $1;
	`

	pgSetAcctInterestSQL = `
		UPDATE accounts
		SET interest_rate = $2
		WHERE id = $1;
	`

	pgSetAcctStatusSQL = `
		UPDATE accounts
		SET status = $2
		WHERE id = $1;
	`
)

func (pg *PostgresEndpoint) CreateAccount(acct *Account) error {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, pgInsertAcctSQL,
		acct.ID.Int64(), acct.UserID.Int64(), acct.AccountNumber, acct.Balance,
		acct.AccountType, acct.CreatedDate, string(acct.Status), acct.InterestRate)
	if err != nil {
		pg.log.Err(err).Str("account_number", acct.AccountNumber).Msg("insert account fail")
		return mapPgError(err)
	}

	return nil
}

func (pg *PostgresEndpoint) AccountByID(id snowflake.ID) (*Account, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, pgSelectAcctSQL+"WHERE id = $1;", id.Int64())
	acct, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{Entity: "account", ID: id.String()}
		}
		return nil, err
	}

	return acct, nil
}

func (pg *PostgresEndpoint) AccountsByUserID(userID snowflake.ID) ([]Account, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, pgSelectAcctSQL+"WHERE user_id = $1;", userID.Int64())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accts []Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accts = append(accts, *acct)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accts, nil
}

func (pg *PostgresEndpoint) AccountNumberExists(num string) (bool, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var exists bool
	row := conn.QueryRow(ctx, pgAcctNumExistsSQL, num)
	if err = row.Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (pg *PostgresEndpoint) AdjustBalance(id snowflake.ID, delta decimal.Decimal) (*decimal.Decimal, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var bal decimal.Decimal
	row := tx.QueryRow(ctx, pgLockAcctBalanceSQL, id.Int64())
	if err = row.Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{Entity: "account", ID: id.String()}
		}
		return nil, err
	}

	bal = bal.Add(delta)
	if _, err = tx.Exec(ctx, pgSetAcctBalanceSQL, id.Int64(), bal); err != nil {
		pg.log.Err(err).Int64("account_id", id.Int64()).Msg("balance update fail")
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &bal, nil
}

func (pg *PostgresEndpoint) SetAccountInterest(id snowflake.ID, rate decimal.Decimal) error {
	return pg.updateAccount(id, pgSetAcctInterestSQL, rate)
}

func (pg *PostgresEndpoint) SetAccountStatus(id snowflake.ID, status AccountStatus) error {
	return pg.updateAccount(id, pgSetAcctStatusSQL, string(status))
}

func (pg *PostgresEndpoint) updateAccount(id snowflake.ID, sql string, arg any) error {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, sql, id.Int64(), arg)
	if err != nil {
		pg.log.Err(err).Int64("account_id", id.Int64()).Msg("account update fail")
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound{Entity: "account", ID: id.String()}
	}

	return nil
}

func scanAccount(row pgx.Row) (*Account, error) {
	var (
		acct   Account
		id     int64
		userID int64
		status string
	)
	err := row.Scan(&id, &userID, &acct.AccountNumber, &acct.Balance,
		&acct.AccountType, &acct.CreatedDate, &status, &acct.InterestRate)
	if err != nil {
		return nil, err
	}
	acct.ID = snowflake.ParseInt64(id)
	acct.UserID = snowflake.ParseInt64(userID)
	acct.Status = AccountStatus(status)
	return &acct, nil
}
