package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureEnv(t *testing.T) {
	t.Run("set variable", func(t *testing.T) {
		t.Setenv("DEVAI_TEST_VAR", "value-1")

		value, err := NewResolver().EnsureEnv("DEVAI_TEST_VAR")

		require.NoError(t, err)
		assert.Equal(t, "value-1", value)
	})

	t.Run("empty variable counts as set", func(t *testing.T) {
		t.Setenv("DEVAI_TEST_VAR", "")

		value, err := NewResolver().EnsureEnv("DEVAI_TEST_VAR")

		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("unset variable", func(t *testing.T) {
		t.Setenv("DEVAI_TEST_VAR", "placeholder")
		require.NoError(t, os.Unsetenv("DEVAI_TEST_VAR"))

		value, err := NewResolver().EnsureEnv("DEVAI_TEST_VAR")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingEnvVariable)
		assert.Contains(t, err.Error(), "DEVAI_TEST_VAR")
		assert.Empty(t, value)
	})

	t.Run("reads the live environment", func(t *testing.T) {
		r := NewResolver()
		t.Setenv(ProjectIDEnv, "first")
		first, err := r.EnsureEnv(ProjectIDEnv)
		require.NoError(t, err)

		t.Setenv(ProjectIDEnv, "second")
		second, err := r.EnsureEnv(ProjectIDEnv)
		require.NoError(t, err)

		assert.Equal(t, "first", first)
		assert.Equal(t, "second", second)
	})
}
