package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchID(t *testing.T) {
	ids := []string{"abc12345", "abd67890", "xyz00000"}

	t.Run("exact match wins", func(t *testing.T) {
		got, err := matchID(ids, "abc12345", "lead")
		require.NoError(t, err)
		assert.Equal(t, "abc12345", got)
	})

	t.Run("unique prefix resolves", func(t *testing.T) {
		got, err := matchID(ids, "xyz", "lead")
		require.NoError(t, err)
		assert.Equal(t, "xyz00000", got)
	})

	t.Run("ambiguous prefix errors", func(t *testing.T) {
		_, err := matchID(ids, "ab", "lead")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ambiguous")
	})

	t.Run("no match errors", func(t *testing.T) {
		_, err := matchID(ids, "zzz", "lead")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestResolveLeadID_SkipsLostLeads(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	l := seedLead(t, app, "Ana Costa")

	got, err := resolveLeadID(ctx, app, l.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, l.ID, got)

	_, err = executeCmd(t, app, "lead", "lose", l.DisplayID(), "--reason", "withdrawn")
	require.NoError(t, err)

	_, err = resolveLeadID(ctx, app, l.ID[:8])
	require.Error(t, err)
}
