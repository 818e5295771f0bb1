package bankcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundtrip(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)

	digest, err := HashPassword("hunter2", 4)
	reqrd.NoError(err)
	as.NotEqual("hunter2", digest)

	as.True(CheckPassword("hunter2", digest))
	as.False(CheckPassword("hunter3", digest))
	as.False(CheckPassword("", digest))
}

func TestHashPasswordDistinctDigests(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)

	first, err := HashPassword("hunter2", 4)
	reqrd.NoError(err)
	second, err := HashPassword("hunter2", 4)
	reqrd.NoError(err)

	// bcrypt salts every digest
	as.NotEqual(first, second)
}
