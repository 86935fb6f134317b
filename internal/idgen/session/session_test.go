package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/vacaystar/internal/idgen/session"
)

func TestGenerator_GetID(t *testing.T) {
	g := session.New()

	first, err := g.GetID(context.Background())
	require.NoError(t, err)

	second, err := g.GetID(context.Background())
	require.NoError(t, err)

	assert.True(t, first.IsValid())
	assert.NotEqual(t, first, second)
	assert.True(t, session.SpanID(first).IsValid())
}
