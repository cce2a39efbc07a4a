package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	members := []string{"node-a:50051", "node-b:50051", "node-c:50051"}

	// Dialing is non-blocking, so no server needs to be listening.
	p, err := NewPool("node-a:50051", members)
	require.NoError(t, err)
	defer p.Close()

	t.Run("channels for every peer but self", func(t *testing.T) {
		for _, peer := range []string{"node-b:50051", "node-c:50051"} {
			cli, err := p.Client(peer)
			require.NoError(t, err)
			assert.NotNil(t, cli)
		}
	})

	t.Run("no channel to self", func(t *testing.T) {
		_, err := p.Client("node-a:50051")
		assert.Error(t, err)
	})

	t.Run("unknown peer fails immediately", func(t *testing.T) {
		_, err := p.Client("stranger:50051")
		assert.Error(t, err)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		p.Close()
		p.Close()
		_, err := p.Client("node-b:50051")
		assert.Error(t, err)
	})
}
