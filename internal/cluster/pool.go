package cluster

import (
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	kvpb "kvcluster/proto"
)

// PeerClients hands out an RPC client for a peer node. The coordinator talks
// to peers through this interface so tests can substitute fakes.
type PeerClients interface {
	Client(peer string) (kvpb.KVClient, error)
}

// Pool keeps one long-lived gRPC channel per peer. Channels are created at
// boot but connect lazily and reconnect on their own; a call made while the
// peer is down fails with Unavailable instead of blocking. Per-call state
// (deadlines, in-flight requests) belongs to callers, never to the pool.
type Pool struct {
	mu      sync.RWMutex
	conns   map[string]*grpc.ClientConn
	clients map[string]kvpb.KVClient
}

// NewPool dials every peer in the membership list except self. Dialing is
// non-blocking: a peer that is still booting becomes reachable as soon as it
// binds its port.
func NewPool(self string, members []string) (*Pool, error) {
	p := &Pool{
		conns:   make(map[string]*grpc.ClientConn),
		clients: make(map[string]kvpb.KVClient),
	}
	for _, peer := range members {
		if peer == self {
			continue
		}
		conn, err := grpc.Dial(peer, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("pool: dial %s: %w", peer, err)
		}
		p.conns[peer] = conn
		p.clients[peer] = kvpb.NewKVClient(conn)
	}
	return p, nil
}

// Client returns the RPC client for peer. Unknown peers are an error
// immediately; nothing ever blocks here.
func (p *Pool) Client(peer string) (kvpb.KVClient, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	c, ok := p.clients[peer]
	if !ok {
		return nil, fmt.Errorf("pool: no channel for peer %s", peer)
	}
	return c, nil
}

// Close tears down every channel.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for peer, conn := range p.conns {
		_ = conn.Close()
		delete(p.conns, peer)
		delete(p.clients, peer)
	}
}
