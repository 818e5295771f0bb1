package bankcore

import (
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountNumber(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)

	num, err := newAccountNumber()
	reqrd.NoError(err)
	as.Len(num, 32)
	for _, c := range num {
		as.Contains("0123456789abcdef", string(c))
	}

	other, err := newAccountNumber()
	reqrd.NoError(err)
	as.NotEqual(num, other)
}

func TestNewTxnRef(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)

	acctID := snowflake.ParseInt64(1834563581361305763)
	ref, err := newTxnRef(acctID)
	reqrd.NoError(err)

	parts := strings.SplitN(ref, "_", 2)
	reqrd.Len(parts, 2)
	as.Equal(acctID.String(), parts[0])
	as.Len(parts[1], 8)
	for _, c := range parts[1] {
		as.Contains("0123456789abcdef", string(c))
	}
}
