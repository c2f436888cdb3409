//go:build unit

package password_test

import (
	"testing"

	"netcard-manager/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier(t *testing.T) {
	v, err := password.NewFastVerifier("admin123")
	require.NoError(t, err)

	assert.NoError(t, v.Verify("admin123"))
	assert.ErrorIs(t, v.Verify("admin124"), password.ErrComparisonFailed)
	assert.ErrorIs(t, v.Verify(""), password.ErrInvalidPassword)

	_, err = password.NewFastVerifier("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashPassword(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
}
