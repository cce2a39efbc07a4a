// Package server exposes the coordinator over gRPC. The client surface
// (Get/Set/Delete) and the peer surface (Internal*, Replicate) share one
// endpoint; the disjoint method names are what let the peer surface refuse to
// forward a request twice.
package server

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"kvcluster/internal/cluster"
	"kvcluster/internal/fault"
	kvpb "kvcluster/proto"
)

// DefaultOpTimeout bounds a client-facing operation end to end: the forward
// hop, the durable write, and the replication wait all happen under it.
const DefaultOpTimeout = 2 * time.Second

// Server implements kvpb.KVServer on top of a Coordinator.
type Server struct {
	kvpb.UnimplementedKVServer

	coord     *cluster.Coordinator
	lgr       *zap.Logger
	opTimeout time.Duration
}

// New creates a Server.
func New(coord *cluster.Coordinator, lgr *zap.Logger) *Server {
	if lgr == nil {
		lgr = zap.NewNop()
	}
	return &Server{coord: coord, lgr: lgr, opTimeout: DefaultOpTimeout}
}

// Register mounts the service on g.
func (s *Server) Register(g *grpc.Server) {
	kvpb.RegisterKVServer(g, s)
}

// ─── Client surface ───────────────────────────────────────────────────────────

func (s *Server) Get(ctx context.Context, req *kvpb.GetRequest) (*kvpb.GetReply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	value, err := s.coord.Get(ctx, req.GetKey())
	if err != nil {
		return nil, fault.ToStatus(err)
	}
	return &kvpb.GetReply{Found: true, Value: value}, nil
}

func (s *Server) Set(ctx context.Context, req *kvpb.SetRequest) (*kvpb.SetReply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.coord.Set(ctx, req.GetKey(), req.GetValue()); err != nil {
		return nil, fault.ToStatus(err)
	}
	return &kvpb.SetReply{Ok: true}, nil
}

func (s *Server) Delete(ctx context.Context, req *kvpb.DeleteRequest) (*kvpb.DeleteReply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.coord.Delete(ctx, req.GetKey()); err != nil {
		return nil, fault.ToStatus(err)
	}
	return &kvpb.DeleteReply{Ok: true}, nil
}

// ─── Peer surface ─────────────────────────────────────────────────────────────

func (s *Server) InternalGet(ctx context.Context, req *kvpb.GetRequest) (*kvpb.GetReply, error) {
	value, err := s.coord.InternalGet(ctx, req.GetKey())
	if err != nil {
		return nil, fault.ToStatus(err)
	}
	return &kvpb.GetReply{Found: true, Value: value}, nil
}

func (s *Server) InternalSet(ctx context.Context, req *kvpb.SetRequest) (*kvpb.SetReply, error) {
	if err := s.coord.InternalSet(ctx, req.GetKey(), req.GetValue()); err != nil {
		return nil, fault.ToStatus(err)
	}
	return &kvpb.SetReply{Ok: true}, nil
}

func (s *Server) InternalDelete(ctx context.Context, req *kvpb.DeleteRequest) (*kvpb.DeleteReply, error) {
	if err := s.coord.InternalDelete(ctx, req.GetKey()); err != nil {
		return nil, fault.ToStatus(err)
	}
	return &kvpb.DeleteReply{Ok: true}, nil
}

func (s *Server) Replicate(ctx context.Context, req *kvpb.ReplicateRequest) (*kvpb.Ack, error) {
	if err := s.coord.ApplyReplicated(req.GetKey(), req.GetOp(), req.GetValue()); err != nil {
		return nil, fault.ToStatus(err)
	}
	return &kvpb.Ack{Ok: true}, nil
}
