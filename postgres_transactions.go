package bankcore

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var (
	pgInsertTxnSQL = `
		INSERT INTO transactions (id, account_id, txn_ref, amount, ts, description, status, transaction_type, post_tx_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	pgSelectTxnSQL = `
		SELECT id, account_id, txn_ref, amount, ts, description, status, transaction_type, post_tx_balance
		FROM transactions
	`

	pgSetTxnStatusSQL = `
		UPDATE transactions
		SET status = $2
		WHERE txn_ref = $1;
	`
)

// PostTransaction records the transaction and moves the owning account's
// balance by its amount in a single store transaction: the row and the
// balance change commit or roll back together.
func (pg *PostgresEndpoint) PostTransaction(txn *Transaction) error {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var bal decimal.Decimal
	row := tx.QueryRow(ctx, pgLockAcctBalanceSQL, txn.AccountID.Int64())
	if err = row.Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound{Entity: "account", ID: txn.AccountID.String()}
		}
		return err
	}

	txn.PostTxBalance = bal.Add(txn.Amount)
	_, err = tx.Exec(ctx, pgInsertTxnSQL,
		txn.ID.Int64(), txn.AccountID.Int64(), txn.Ref, txn.Amount, txn.Timestamp,
		txn.Description, string(txn.Status), txn.TxnType, txn.PostTxBalance)
	if err != nil {
		pg.log.Err(err).Str("txn_ref", txn.Ref).Msg("insert transaction fail")
		return mapPgError(err)
	}
	if _, err = tx.Exec(ctx, pgSetAcctBalanceSQL, txn.AccountID.Int64(), txn.PostTxBalance); err != nil {
		pg.log.Err(err).Str("txn_ref", txn.Ref).Msg("balance apply fail")
		return err
	}

	return tx.Commit(ctx)
}

func (pg *PostgresEndpoint) TransactionByID(id snowflake.ID) (*Transaction, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, pgSelectTxnSQL+"WHERE id = $1;", id.Int64())
	txn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{Entity: "transaction", ID: id.String()}
		}
		return nil, err
	}

	return txn, nil
}

func (pg *PostgresEndpoint) TransactionsByAccountID(acctID snowflake.ID) ([]Transaction, error) {
	return pg.selectTransactions(pgSelectTxnSQL+"WHERE account_id = $1;", acctID.Int64())
}

// RecentTransactions returns the newest transactions first, ties on the
// timestamp broken by id.
func (pg *PostgresEndpoint) RecentTransactions(acctID snowflake.ID, limit int) ([]Transaction, error) {
	sql := pgSelectTxnSQL + `
		WHERE account_id = $1
		ORDER BY ts DESC, id DESC
		LIMIT $2;
	`
	return pg.selectTransactions(sql, acctID.Int64(), limit)
}

func (pg *PostgresEndpoint) TransactionsByType(acctID snowflake.ID, txnType string) ([]Transaction, error) {
	sql := pgSelectTxnSQL + "WHERE account_id = $1 AND transaction_type = $2;"
	return pg.selectTransactions(sql, acctID.Int64(), txnType)
}

func (pg *PostgresEndpoint) selectTransactions(sql string, args ...any) ([]Transaction, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *txn)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return txns, nil
}

func (pg *PostgresEndpoint) SetTransactionStatus(ref string, status TxnStatus) error {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, pgSetTxnStatusSQL, ref, string(status))
	if err != nil {
		pg.log.Err(err).Str("txn_ref", ref).Msg("transaction status update fail")
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound{Entity: "transaction", ID: ref}
	}

	return nil
}

func scanTransaction(row pgx.Row) (*Transaction, error) {
	var (
		txn    Transaction
		id     int64
		acctID int64
		status string
	)
	err := row.Scan(&id, &acctID, &txn.Ref, &txn.Amount, &txn.Timestamp,
		&txn.Description, &status, &txn.TxnType, &txn.PostTxBalance)
	if err != nil {
		return nil, err
	}
	txn.ID = snowflake.ParseInt64(id)
	txn.AccountID = snowflake.ParseInt64(acctID)
	txn.Status = TxnStatus(status)
	return &txn, nil
}
