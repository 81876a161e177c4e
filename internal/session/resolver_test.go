package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataRootEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(UserRootEnv, dir)

	root, err := Host().DataRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestDataRootEnvOverrideMissingDir(t *testing.T) {
	t.Setenv(UserRootEnv, filepath.Join(t.TempDir(), "gone"))

	_, err := Host().DataRoot()
	assert.Error(t, err)
}

func TestDataRootDefaultsToHome(t *testing.T) {
	t.Setenv(UserRootEnv, "")

	root, err := Host().DataRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)
}
