package env

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"testing"
	"time"
)

func TestOrDefault(t *testing.T) {
	log := zaptest.NewLogger(t).Sugar()

	t.Setenv("NOTES_TEST_VALUE", "")
	assert.Equal(t, "fallback", OrDefault(log, "NOTES_TEST_VALUE", "fallback"))

	t.Setenv("NOTES_TEST_VALUE", "set")
	assert.Equal(t, "set", OrDefault(log, "NOTES_TEST_VALUE", "fallback"))
}

func TestRequired(t *testing.T) {
	t.Setenv("NOTES_TEST_DSN", "")
	_, err := Required("NOTES_TEST_DSN")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissing))

	t.Setenv("NOTES_TEST_DSN", "postgres://localhost/notes")
	v, err := Required("NOTES_TEST_DSN")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/notes", v)
}

func TestTypedDefaults(t *testing.T) {
	log := zaptest.NewLogger(t).Sugar()

	t.Setenv("NOTES_TEST_INT", "25")
	t.Setenv("NOTES_TEST_DURATION", "3s")
	t.Setenv("NOTES_TEST_BOOL", "t")
	assert.Equal(t, 25, IntDefault(log, "NOTES_TEST_INT", "10"))
	assert.Equal(t, 3*time.Second, DurationDefault(log, "NOTES_TEST_DURATION", "5s"))
	assert.True(t, BoolDefault(log, "NOTES_TEST_BOOL", "f"))

	t.Setenv("NOTES_TEST_INT", "ten")
	t.Setenv("NOTES_TEST_DURATION", "soon")
	t.Setenv("NOTES_TEST_BOOL", "maybe")
	assert.Equal(t, 10, IntDefault(log, "NOTES_TEST_INT", "10"))
	assert.Equal(t, 5*time.Second, DurationDefault(log, "NOTES_TEST_DURATION", "5s"))
	assert.False(t, BoolDefault(log, "NOTES_TEST_BOOL", "f"))
}
