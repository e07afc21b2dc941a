package keystore

import (
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/coinkeeper/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateSalt_StableAcrossCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	salt1, err := s.GetOrCreateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, cryptox.SaltSize)

	salt2, err := s.GetOrCreateSalt()
	require.NoError(t, err)
	assert.Equal(t, salt1, salt2)
}

func TestGetOrCreateSalt_StableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.db")

	s, err := Open(path)
	require.NoError(t, err)
	salt1, err := s.GetOrCreateSalt()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// As after a process restart: the persisted salt is reused, so the
	// re-derived vault key matches the previous run's.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	salt2, err := s.GetOrCreateSalt()
	require.NoError(t, err)
	assert.Equal(t, salt1, salt2)
}
