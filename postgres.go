package bankcore

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

var (
	pgInsertUserSQL = `
		INSERT INTO users (id, username, password_digest, email, first_name, last_name, mobile, address, disabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	pgSelectUserSQL = `
		SELECT id, username, password_digest, email, first_name, last_name, mobile, address, disabled
		FROM users
	`

	pgTakenUserFieldsSQL = `
		SELECT
			EXISTS(SELECT 1 FROM users WHERE username = $1),
			EXISTS(SELECT 1 FROM users WHERE email = $2),
			EXISTS(SELECT 1 FROM users WHERE mobile = $3);
	`

	pgUpdateUserSQL = `
		UPDATE users
		SET username = $2, password_digest = $3, email = $4, mobile = $5, address = $6, disabled = $7
		WHERE id = $1;
	`
)

type PostgresEndpoint struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

var (
	_ Repository = (*PostgresEndpoint)(nil)
)

func NewPostgresEndpoint(connStr string, log *zerolog.Logger) (*PostgresEndpoint, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	if err = pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	endpt := &PostgresEndpoint{
		pool: pool,
		log:  log,
	}
	return endpt, err
}

// mapPgError translates store-level constraint errors into the package
// error taxonomy. Unique violations carry the offending column derived
// from the constraint name ("users_email_key" -> "email").
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		field := pgErr.ConstraintName
		if i := strings.Index(field, "_"); i >= 0 {
			field = strings.TrimSuffix(field[i+1:], "_key")
		}
		return ErrDuplicate{Field: field}
	case pgFKViolation:
		entity := strings.TrimSuffix(strings.TrimPrefix(pgErr.ConstraintName, pgErr.TableName+"_"), "_id_fkey")
		return ErrNotFound{Entity: entity}
	}
	return err
}

func (pg *PostgresEndpoint) CreateUser(usr *User) error {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, pgInsertUserSQL,
		usr.ID.Int64(), usr.Username, usr.PasswordDigest, usr.Email,
		usr.FirstName, usr.LastName, usr.Mobile, usr.Address, usr.Disabled)
	if err != nil {
		pg.log.Err(err).Str("username", usr.Username).Msg("insert user fail")
		return mapPgError(err)
	}

	return nil
}

func (pg *PostgresEndpoint) UserByUsername(username string) (*User, error) {
	return pg.selectUser(pgSelectUserSQL+"WHERE username = $1;", username)
}

func (pg *PostgresEndpoint) UserByID(id snowflake.ID) (*User, error) {
	return pg.selectUser(pgSelectUserSQL+"WHERE id = $1;", id.Int64())
}

func (pg *PostgresEndpoint) selectUser(sql string, arg any) (*User, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var (
		usr User
		uid int64
	)
	row := conn.QueryRow(ctx, sql, arg)
	err = row.Scan(&uid, &usr.Username, &usr.PasswordDigest, &usr.Email,
		&usr.FirstName, &usr.LastName, &usr.Mobile, &usr.Address, &usr.Disabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{Entity: "user"}
		}
		return nil, err
	}
	usr.ID = snowflake.ParseInt64(uid)

	return &usr, nil
}

func (pg *PostgresEndpoint) TakenUserFields(username, email, mobile string) ([]string, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var unameTaken, emailTaken, mobileTaken bool
	row := conn.QueryRow(ctx, pgTakenUserFieldsSQL, username, email, mobile)
	if err = row.Scan(&unameTaken, &emailTaken, &mobileTaken); err != nil {
		return nil, err
	}

	var taken []string
	if unameTaken {
		taken = append(taken, "username")
	}
	if emailTaken {
		taken = append(taken, "email")
	}
	if mobileTaken {
		taken = append(taken, "mobile")
	}
	return taken, nil
}

func (pg *PostgresEndpoint) UpdateUser(usr *User) error {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, pgUpdateUserSQL,
		usr.ID.Int64(), usr.Username, usr.PasswordDigest, usr.Email,
		usr.Mobile, usr.Address, usr.Disabled)
	if err != nil {
		pg.log.Err(err).Int64("id", usr.ID.Int64()).Msg("update user fail")
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound{Entity: "user", ID: usr.ID.String()}
	}

	return nil
}
