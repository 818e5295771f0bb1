package bankcore

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const (
	acctNumBytes = 16
	txnRefBytes  = 4
)

func newAccountNumber() (string, error) {
	b := make([]byte, acctNumBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func newTxnRef(acctID snowflake.ID) (string, error) {
	b := make([]byte, txnRefBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d_%s", acctID.Int64(), hex.EncodeToString(b)), nil
}
