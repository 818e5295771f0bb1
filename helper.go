package bankcore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
)

// LocalHelper bootstraps a local database for the seeder binary and the
// integration tests: schema creation, demo data, and teardown.
type LocalHelper struct {
	Conn *pgx.Conn
	Node *snowflake.Node
}

func NewLocalHelper(cfg *Config) (*LocalHelper, error) {
	conn, err := pgx.Connect(context.Background(), cfg.Database.ConnectionString)
	if err != nil {
		return nil, err
	}
	node, err := snowflake.NewNode(cfg.Snowflake.Node)
	if err != nil {
		return nil, err
	}

	return &LocalHelper{
		Conn: conn,
		Node: node,
	}, nil
}

func (lh *LocalHelper) InitDB() (func(), error) {
	initSQLpath := filepath.Join("testdata", "init_db.sql")
	bits, err := os.ReadFile(initSQLpath)
	if err != nil {
		return nil, err
	}
	if _, err = lh.Conn.Exec(context.Background(), string(bits)); err != nil {
		return nil, err
	}
	return lh.teardownDB(), err
}

// SeedDemoUser inserts one demo user with a zero-balance account so a
// fresh environment has something to poke at.
func (lh *LocalHelper) SeedDemoUser() error {
	seedPath := filepath.Join("testdata", "seed_demo_user.tmpl")
	bits, err := os.ReadFile(seedPath)
	if err != nil {
		return err
	}
	tmpl, err := template.New("seed_demo_user").Parse(string(bits))
	if err != nil {
		return err
	}

	num, err := newAccountNumber()
	if err != nil {
		return err
	}
	digest, err := HashPassword("changeme", 0)
	if err != nil {
		return err
	}
	input := map[string]string{
		"UserID":         lh.Node.Generate().String(),
		"AccountID":      lh.Node.Generate().String(),
		"AccountNumber":  num,
		"PasswordDigest": digest,
	}
	buf := new(bytes.Buffer)
	if err = tmpl.Execute(buf, input); err != nil {
		return err
	}

	if _, err = lh.Conn.Exec(context.Background(), buf.String()); err != nil {
		return err
	}

	return err
}

func (lh *LocalHelper) teardownDB() func() {
	return func() {
		defer lh.Conn.Close(context.Background())

		tearSQLpath := filepath.Join("testdata", "teardown_db.sql")
		bits, err := os.ReadFile(tearSQLpath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup read teardown sql: %s", err.Error())
			return
		}
		if _, err = lh.Conn.Exec(context.Background(), string(bits)); err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup exec teardown sql: %s", err.Error())
			return
		}
	}
}
