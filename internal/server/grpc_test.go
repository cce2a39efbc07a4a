package server

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"kvcluster/internal/cluster"
	"kvcluster/internal/store"
	kvpb "kvcluster/proto"
)

// memDurable is an in-memory durable store; setting down makes every call fail.
type memDurable struct {
	data map[string][]byte
	down bool
}

func (d *memDurable) Put(_ context.Context, key string, value []byte) error {
	if d.down {
		return errors.New("database down")
	}
	d.data[key] = value
	return nil
}

func (d *memDurable) Delete(_ context.Context, key string) error {
	if d.down {
		return errors.New("database down")
	}
	delete(d.data, key)
	return nil
}

func (d *memDurable) Get(_ context.Context, key string) ([]byte, bool, error) {
	if d.down {
		return nil, false, errors.New("database down")
	}
	v, ok := d.data[key]
	return v, ok, nil
}

// noPeers refuses every channel request, as a pool does for unknown peers.
type noPeers struct{}

func (noPeers) Client(peer string) (kvpb.KVClient, error) {
	return nil, errors.New("no channel for peer " + peer)
}

func newTestServer(t *testing.T, self string, members []string) (*Server, *store.Store, *memDurable) {
	t.Helper()

	ring, err := cluster.BuildRing(members, 64)
	require.NoError(t, err)

	st := store.New()
	d := &memDurable{data: make(map[string][]byte)}
	coord := cluster.NewCoordinator(cluster.CoordinatorConfig{
		Self:         self,
		Ring:         ring,
		Store:        st,
		Peers:        noPeers{},
		Durable:      d,
		ReplicationN: 3,
	})
	return New(coord, nil), st, d
}

func TestSetGetDelete(t *testing.T) {
	s, _, d := newTestServer(t, "solo:50051", []string{"solo:50051"})
	ctx := context.Background()

	setReply, err := s.Set(ctx, &kvpb.SetRequest{Key: "alpha", Value: []byte("1")})
	require.NoError(t, err)
	assert.True(t, setReply.GetOk())
	assert.Equal(t, []byte("1"), d.data["alpha"])

	getReply, err := s.Get(ctx, &kvpb.GetRequest{Key: "alpha"})
	require.NoError(t, err)
	assert.True(t, getReply.GetFound())
	assert.Equal(t, []byte("1"), getReply.GetValue())

	delReply, err := s.Delete(ctx, &kvpb.DeleteRequest{Key: "alpha"})
	require.NoError(t, err)
	assert.True(t, delReply.GetOk())

	_, err = s.Get(ctx, &kvpb.GetRequest{Key: "alpha"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestStatusMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("miss is NotFound", func(t *testing.T) {
		s, _, _ := newTestServer(t, "solo:50051", []string{"solo:50051"})
		_, err := s.Get(ctx, &kvpb.GetRequest{Key: "missing"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("durable failure is Aborted", func(t *testing.T) {
		s, st, d := newTestServer(t, "solo:50051", []string{"solo:50051"})
		d.down = true

		_, err := s.Set(ctx, &kvpb.SetRequest{Key: "x", Value: []byte("1")})
		assert.Equal(t, codes.Aborted, status.Code(err))
		assert.False(t, st.Exists("x"))
	})

	t.Run("empty key is InvalidArgument", func(t *testing.T) {
		s, _, _ := newTestServer(t, "solo:50051", []string{"solo:50051"})
		_, err := s.Set(ctx, &kvpb.SetRequest{Key: ""})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unreachable owner is Unavailable", func(t *testing.T) {
		members := []string{"node-a:50051", "node-b:50051"}
		s, _, _ := newTestServer(t, "node-a:50051", members)

		ring, err := cluster.BuildRing(members, 64)
		require.NoError(t, err)
		key := probeKeyOwnedBy(t, ring, "node-b:50051")

		_, err = s.Set(ctx, &kvpb.SetRequest{Key: key, Value: []byte("1")})
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})

	t.Run("misrouted peer request is FailedPrecondition", func(t *testing.T) {
		members := []string{"node-a:50051", "node-b:50051"}
		s, st, _ := newTestServer(t, "node-a:50051", members)

		ring, err := cluster.BuildRing(members, 64)
		require.NoError(t, err)
		key := probeKeyOwnedBy(t, ring, "node-b:50051")

		_, err = s.InternalSet(ctx, &kvpb.SetRequest{Key: key, Value: []byte("1")})
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
		assert.False(t, st.Exists(key))
	})
}

func TestReplicateRPC(t *testing.T) {
	s, st, d := newTestServer(t, "solo:50051", []string{"solo:50051"})
	ctx := context.Background()

	ack, err := s.Replicate(ctx, &kvpb.ReplicateRequest{
		Key: "r", Op: kvpb.Op_OP_SET, Value: []byte("v"),
	})
	require.NoError(t, err)
	assert.True(t, ack.GetOk())
	assert.True(t, st.Exists("r"))
	// Replication writes memory only.
	_, inDurable := d.data["r"]
	assert.False(t, inDurable)

	_, err = s.Replicate(ctx, &kvpb.ReplicateRequest{Key: "r", Op: kvpb.Op_OP_DELETE})
	require.NoError(t, err)
	assert.False(t, st.Exists("r"))

	_, err = s.Replicate(ctx, &kvpb.ReplicateRequest{Key: "r", Op: kvpb.Op_OP_UNSPECIFIED})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func probeKeyOwnedBy(t *testing.T, ring *cluster.Ring, node string) string {
	t.Helper()
	for i := 0; i < 100000; i++ {
		key := fmt.Sprintf("probe-%d", i)
		if ring.Owner(key) == node {
			return key
		}
	}
	t.Fatalf("no key owned by %s", node)
	return ""
}
