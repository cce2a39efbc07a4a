package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--id", "node-a:50051",
		"--peers", "node-a:50051,node-b:50051,node-c:50051",
		"--postgres", "postgres://kv:kv@localhost/kv",
	})
	require.NoError(t, err)

	assert.Equal(t, "node-a:50051", cfg.NodeID)
	assert.Equal(t, []string{"node-a:50051", "node-b:50051", "node-c:50051"}, cfg.Peers)
	assert.Equal(t, 3, cfg.ReplicationN)
	assert.Equal(t, 64, cfg.Vnodes)
	assert.Equal(t, ":50051", cfg.ListenAddr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NODE_ID", "node-a:50051")
	t.Setenv("CACHE_PEERS", "node-a:50051, node-b:50051")
	t.Setenv("REPLICATION_N", "2")
	t.Setenv("POSTGRES_URL", "postgres://kv:kv@localhost/kv")
	t.Setenv("LEGACY_API_URL", "http://legacy:8000")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "node-a:50051", cfg.NodeID)
	assert.Equal(t, []string{"node-a:50051", "node-b:50051"}, cfg.Peers)
	assert.Equal(t, 2, cfg.ReplicationN)
	assert.Equal(t, "http://legacy:8000", cfg.LegacyAPIURL)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("NODE_ID", "env:50051")
	t.Setenv("CACHE_PEERS", "env:50051")
	t.Setenv("POSTGRES_URL", "postgres://kv:kv@localhost/kv")

	cfg, err := Load([]string{"--id", "flag:50051", "--peers", "flag:50051"})
	require.NoError(t, err)
	assert.Equal(t, "flag:50051", cfg.NodeID)
}

func TestValidation(t *testing.T) {
	base := func() []string {
		return []string{
			"--id", "node-a:50051",
			"--peers", "node-a:50051,node-b:50051",
			"--postgres", "postgres://kv:kv@localhost/kv",
		}
	}

	t.Run("missing node id", func(t *testing.T) {
		_, err := Load([]string{"--peers", "a:1", "--postgres", "url"})
		assert.Error(t, err)
	})

	t.Run("node id without port", func(t *testing.T) {
		_, err := Load([]string{"--id", "node-a", "--peers", "node-a", "--postgres", "url"})
		assert.Error(t, err)
	})

	t.Run("missing peers", func(t *testing.T) {
		_, err := Load([]string{"--id", "node-a:50051", "--postgres", "url"})
		assert.Error(t, err)
	})

	t.Run("self not in peers", func(t *testing.T) {
		_, err := Load([]string{
			"--id", "node-a:50051",
			"--peers", "node-b:50051,node-c:50051",
			"--postgres", "url",
		})
		assert.Error(t, err)
	})

	t.Run("missing postgres url", func(t *testing.T) {
		_, err := Load([]string{"--id", "node-a:50051", "--peers", "node-a:50051"})
		assert.Error(t, err)
	})

	t.Run("replication factor below one", func(t *testing.T) {
		_, err := Load(append(base(), "--n", "0"))
		assert.Error(t, err)
	})

	t.Run("replication factor capped at membership", func(t *testing.T) {
		cfg, err := Load(append(base(), "--n", "5"))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.ReplicationN)
	})
}
