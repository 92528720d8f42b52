package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/env"
	"github.com/Lexv0lk/transfer-engine/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	missingEnv := filepath.Join(t.TempDir(), "none.env")
	cmd.SetArgs(append([]string{"--env-file", missingEnv}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv(env.EnvJwtSecret, "cli-secret")

	out, err := executeRoot(t, "token", "--subject", "ops", "--ttl", "10m")
	require.NoError(t, err)

	claims, err := jwt.NewJWTTokenParser().ParseToken([]byte("cli-secret"), strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Operator)
}

func TestTokenCommand_Errors(t *testing.T) {
	t.Setenv(env.EnvJwtSecret, "")

	_, err := executeRoot(t, "token")
	assert.ErrorIs(t, err, ErrSubjectMissing)

	_, err = executeRoot(t, "token", "--subject", "ops")
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}

func TestServeCommand_RejectsInvalidConfig(t *testing.T) {
	t.Setenv(env.EnvLockMaxAttempts, "0")

	_, err := executeRoot(t, "serve")
	assert.Error(t, err)
}
