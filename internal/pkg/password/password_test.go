//go:build unit

package password_test

import (
	"testing"

	"hutbook/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := password.HashPassword("farmhouse-admin")
		require.NoError(t, err)

		assert.NoError(t, password.ComparePassword(hash, "farmhouse-admin"))
	})

	t.Run("wrong password fails comparison", func(t *testing.T) {
		hash, err := password.HashPassword("farmhouse-admin")
		require.NoError(t, err)

		assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
	})

	t.Run("empty inputs are rejected", func(t *testing.T) {
		_, err := password.HashPassword("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)

		assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword("hash", ""), password.ErrInvalidPassword)
	})
}
