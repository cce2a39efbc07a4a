package cluster

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kvcluster/internal/fault"
	"kvcluster/internal/store"
	kvpb "kvcluster/proto"
)

// MaxValueBytes bounds a single value. The transport rejects larger messages
// anyway; checking here gives the client a typed Invalid instead of a raw
// transport error.
const MaxValueBytes = 4 << 20

// DefaultReplicaTimeout bounds each replication RPC.
const DefaultReplicaTimeout = 250 * time.Millisecond

// DurableStore is the write-through contract. Put and Delete are invoked on
// the owner, synchronously, before the local store is touched; if they fail
// the client call fails and nothing is applied.
type DurableStore interface {
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
}

// LegacySource is the read-through contract, consulted on an owner GET miss.
// Implementations report absent on any failure; a fetch never fails a read.
type LegacySource interface {
	Fetch(ctx context.Context, key string) ([]byte, bool)
}

// Coordinator orchestrates each request on its own: it routes to the key's
// owner, applies the write-through and read-through bridges, and fans
// replication out to the successor nodes. Every node runs one; which role it
// plays (owner or forwarder) depends only on the key.
type Coordinator struct {
	self    string
	ring    *Ring
	store   *store.Store
	peers   PeerClients
	durable DurableStore
	legacy  LegacySource
	lgr     *zap.Logger

	replicationN   int
	replicaTimeout time.Duration
}

// CoordinatorConfig carries the node context a Coordinator needs. Legacy may
// be nil to disable read-through.
type CoordinatorConfig struct {
	Self           string
	Ring           *Ring
	Store          *store.Store
	Peers          PeerClients
	Durable        DurableStore
	Legacy         LegacySource
	ReplicationN   int
	ReplicaTimeout time.Duration
	Logger         *zap.Logger
}

// NewCoordinator creates a Coordinator. ReplicationN is capped at the ring
// size; ReplicaTimeout defaults to DefaultReplicaTimeout.
func NewCoordinator(cfg CoordinatorConfig) *Coordinator {
	n := cfg.ReplicationN
	if n < 1 {
		n = 1
	}
	if n > cfg.Ring.Size() {
		n = cfg.Ring.Size()
	}
	rt := cfg.ReplicaTimeout
	if rt <= 0 {
		rt = DefaultReplicaTimeout
	}
	lgr := cfg.Logger
	if lgr == nil {
		lgr = zap.NewNop()
	}
	return &Coordinator{
		self:           cfg.Self,
		ring:           cfg.Ring,
		store:          cfg.Store,
		peers:          cfg.Peers,
		durable:        cfg.Durable,
		legacy:         cfg.Legacy,
		lgr:            lgr,
		replicationN:   n,
		replicaTimeout: rt,
	}
}

// ─── Client surface ───────────────────────────────────────────────────────────

// Get serves a client read. Non-owners forward to the owner in a single hop;
// the owner reads its local store and falls back to the durable store and the
// legacy source on a miss.
func (c *Coordinator) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", fault.ErrInvalid)
	}

	owner := c.ring.Owner(key)
	if owner != c.self {
		cli, err := c.peers.Client(owner)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", fault.ErrUnavailable, owner)
		}
		reply, err := cli.InternalGet(ctx, &kvpb.GetRequest{Key: key})
		if err != nil {
			return nil, fault.FromStatus(err)
		}
		if !reply.GetFound() {
			return nil, fault.ErrNotFound
		}
		return reply.GetValue(), nil
	}
	return c.ownerGet(ctx, key)
}

// Set serves a client write. Non-owners forward; the owner runs the
// write-through path.
func (c *Coordinator) Set(ctx context.Context, key string, value []byte) error {
	if err := validateWrite(key, value); err != nil {
		return err
	}

	owner := c.ring.Owner(key)
	if owner != c.self {
		cli, err := c.peers.Client(owner)
		if err != nil {
			return fmt.Errorf("%w: %s", fault.ErrUnavailable, owner)
		}
		if _, err := cli.InternalSet(ctx, &kvpb.SetRequest{Key: key, Value: value}); err != nil {
			return fault.FromStatus(err)
		}
		return nil
	}
	return c.ownerSet(ctx, key, value)
}

// Delete serves a client delete, routed like Set.
func (c *Coordinator) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", fault.ErrInvalid)
	}

	owner := c.ring.Owner(key)
	if owner != c.self {
		cli, err := c.peers.Client(owner)
		if err != nil {
			return fmt.Errorf("%w: %s", fault.ErrUnavailable, owner)
		}
		if _, err := cli.InternalDelete(ctx, &kvpb.DeleteRequest{Key: key}); err != nil {
			return fault.FromStatus(err)
		}
		return nil
	}
	return c.ownerDelete(ctx, key)
}

// ─── Peer surface ─────────────────────────────────────────────────────────────

// InternalGet handles a forwarded read. The sender resolved ownership on an
// identical ring, so a non-owner receiving this has hit a bug or a stale
// peer; it fails fast rather than forwarding again.
func (c *Coordinator) InternalGet(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", fault.ErrInvalid)
	}
	if c.ring.Owner(key) != c.self {
		return nil, fmt.Errorf("%w: %s is not owner of %q", fault.ErrNotOwner, c.self, key)
	}
	return c.ownerGet(ctx, key)
}

// InternalSet handles a forwarded write, with the same anti-loop guard.
func (c *Coordinator) InternalSet(ctx context.Context, key string, value []byte) error {
	if err := validateWrite(key, value); err != nil {
		return err
	}
	if c.ring.Owner(key) != c.self {
		return fmt.Errorf("%w: %s is not owner of %q", fault.ErrNotOwner, c.self, key)
	}
	return c.ownerSet(ctx, key, value)
}

// InternalDelete handles a forwarded delete.
func (c *Coordinator) InternalDelete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", fault.ErrInvalid)
	}
	if c.ring.Owner(key) != c.self {
		return fmt.Errorf("%w: %s is not owner of %q", fault.ErrNotOwner, c.self, key)
	}
	return c.ownerDelete(ctx, key)
}

// ApplyReplicated applies a replication RPC from the owner. It touches only
// the local store: replicas never write through to the durable store, or the
// cluster would write every value R times.
func (c *Coordinator) ApplyReplicated(key string, op kvpb.Op, value []byte) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", fault.ErrInvalid)
	}
	switch op {
	case kvpb.Op_OP_SET:
		c.store.Set(key, value)
		return nil
	case kvpb.Op_OP_DELETE:
		c.store.Delete(key)
		return nil
	default:
		return fmt.Errorf("%w: unknown replication op %d", fault.ErrInvalid, op)
	}
}

// ─── Owner paths ──────────────────────────────────────────────────────────────

func (c *Coordinator) ownerGet(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.store.Get(key); ok {
		return v, nil
	}

	// Miss. The durable store is consulted first: after an owner restart the
	// local store is empty while Postgres still has the data, and rehydrating
	// here needs no second write-through.
	if c.durable != nil {
		v, ok, err := c.durable.Get(ctx, key)
		if err != nil {
			c.lgr.Warn("durable read failed on miss", zap.String("key", key), zap.Error(err))
		} else if ok {
			c.store.Set(key, v)
			c.replicate(ctx, key, kvpb.Op_OP_SET, v)
			return v, nil
		}
	}

	if c.legacy != nil {
		if v, ok := c.legacy.Fetch(ctx, key); ok {
			// Hydrate through the full write path so the value is durable and
			// replicated before the client sees it. If the write-through
			// fails the read still succeeds; the next miss retries.
			if err := c.ownerSet(ctx, key, v); err != nil {
				c.lgr.Warn("legacy hydration failed", zap.String("key", key), zap.Error(err))
			}
			return v, nil
		}
	}
	return nil, fault.ErrNotFound
}

func (c *Coordinator) ownerSet(ctx context.Context, key string, value []byte) error {
	// Write-through: the durable store is the system of record. If it refuses
	// the write, the local store must not diverge from it.
	if err := c.durable.Put(ctx, key, value); err != nil {
		return fmt.Errorf("%w: %v", fault.ErrDurability, err)
	}
	c.store.Set(key, value)
	c.replicate(ctx, key, kvpb.Op_OP_SET, value)
	return nil
}

func (c *Coordinator) ownerDelete(ctx context.Context, key string) error {
	if err := c.durable.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", fault.ErrDurability, err)
	}
	c.store.Delete(key)
	c.replicate(ctx, key, kvpb.Op_OP_DELETE, nil)
	return nil
}

// replicate fans the mutation out to the other successors in parallel and
// waits for every call to finish or hit its deadline. Failures are collected
// and logged, never returned: durability is already settled by the durable
// store. Replica copies live only in the replicas' local stores; no read path
// here serves them, so a Get for a key whose owner is unreachable returns
// ErrUnavailable.
func (c *Coordinator) replicate(ctx context.Context, key string, op kvpb.Op, value []byte) {
	replicas := c.ring.Successors(key, c.replicationN)[1:]
	if len(replicas) == 0 {
		return
	}

	type result struct {
		peer string
		err  error
	}
	results := make(chan result, len(replicas))
	for _, peer := range replicas {
		go func(peer string) {
			results <- result{peer, c.replicateOne(ctx, peer, key, op, value)}
		}(peer)
	}

	var failed int
	for range replicas {
		if r := <-results; r.err != nil {
			failed++
			c.lgr.Warn("replication degraded",
				zap.String("key", key),
				zap.String("peer", r.peer),
				zap.Error(r.err))
		}
	}
	if failed == len(replicas) {
		c.lgr.Warn("no replica holds key", zap.String("key", key))
	}
}

func (c *Coordinator) replicateOne(ctx context.Context, peer, key string, op kvpb.Op, value []byte) error {
	cli, err := c.peers.Client(peer)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, c.replicaTimeout)
	defer cancel()

	ack, err := cli.Replicate(ctx, &kvpb.ReplicateRequest{Key: key, Op: op, Value: value})
	if err != nil {
		return err
	}
	if !ack.GetOk() {
		return fmt.Errorf("peer %s rejected replication", peer)
	}
	return nil
}

func validateWrite(key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", fault.ErrInvalid)
	}
	if len(value) > MaxValueBytes {
		return fmt.Errorf("%w: value exceeds %d bytes", fault.ErrInvalid, MaxValueBytes)
	}
	return nil
}
