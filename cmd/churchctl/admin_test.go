package main

import (
	"bytes"
	"testing"

	"church-portal/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAdminSQL(t *testing.T) {
	var buf bytes.Buffer
	err := writeAdminSQL(&buf, &database.User{
		ID:           "id-1",
		Email:        "admin@casadeprovision.es",
		PasswordHash: "$2a$12$abc",
		Name:         "O'Brien",
		Role:         "admin",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "INSERT INTO users")
	assert.Contains(t, out, "'admin@casadeprovision.es'")
	assert.Contains(t, out, "'O''Brien'")
	assert.Contains(t, out, "'$2a$12$abc'")
}

func TestEnvOr(t *testing.T) {
	t.Setenv("CHURCHCTL_TEST_VALUE", "  set  ")
	assert.Equal(t, "set", envOr("CHURCHCTL_TEST_VALUE", "default"))
	assert.Equal(t, "default", envOr("CHURCHCTL_TEST_UNSET", "default"))
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{{"create-admin"}, {"reset-password"}, {"migrate", "up"}, {"migrate", "down"}, {"migrate", "version"}, {"audit", "prune"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "configs/server.yaml", flag.DefValue)
}
