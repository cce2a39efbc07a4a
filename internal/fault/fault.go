// Package fault defines the error taxonomy shared by the coordinator, the RPC
// server, and the client library. Every failure a request can surface is one
// of these kinds; the server maps each kind to a transport status exactly
// once, at the boundary.
package fault

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrNotFound is returned when a GET misses the cluster and the legacy
	// fallback also missed.
	ErrNotFound = errors.New("key not found")

	// ErrUnavailable is returned when the owner of a key cannot be reached.
	// Clients may retry against another node.
	ErrUnavailable = errors.New("owner unavailable")

	// ErrDurability is returned when the durable store refused a write. The
	// mutation was not applied anywhere.
	ErrDurability = errors.New("durable store write failed")

	// ErrNotOwner is returned when a peer RPC lands on a node that does not
	// own the key. Peer requests are never re-forwarded.
	ErrNotOwner = errors.New("node does not own key")

	// ErrInvalid is returned for malformed requests, e.g. an empty key.
	ErrInvalid = errors.New("invalid request")
)

// ToStatus converts a coordinator error into a gRPC status error. Unknown
// errors become codes.Internal so nothing internal leaks to clients untyped.
func ToStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ErrDurability):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, ErrNotOwner):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// FromStatus maps a gRPC status error received from a peer or a server back
// into the taxonomy. Transport-level failures (no status) count as
// ErrUnavailable: the remote never processed the request.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return ErrUnavailable
	}
	switch st.Code() {
	case codes.NotFound:
		return ErrNotFound
	case codes.Aborted:
		return ErrDurability
	case codes.FailedPrecondition:
		return ErrNotOwner
	case codes.InvalidArgument:
		return ErrInvalid
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return ErrUnavailable
	default:
		return err
	}
}
