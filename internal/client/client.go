// Package client is the Go SDK for the cluster. It talks to the nodes it is
// given and hides the transport; the cluster routes each request to the
// key's owner on its own, so any node is a valid entry point.
//
// Per the error contract, only Unavailable is retried, and only against a
// different node: the ring is identical everywhere, so retrying the same
// node cannot help, while a surviving node can still coordinate.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"kvcluster/internal/fault"
	kvpb "kvcluster/proto"
)

// ErrNotFound is returned when a key does not exist in the cluster.
var ErrNotFound = fault.ErrNotFound

// Client holds a channel to each configured node.
type Client struct {
	addrs   []string
	conns   []*grpc.ClientConn
	clients []kvpb.KVClient
	timeout time.Duration
}

// New dials every address. At least one is required; extras are failover
// targets.
func New(addrs []string, timeout time.Duration) (*Client, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("client: no server addresses")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := &Client{addrs: addrs, timeout: timeout}
	for _, addr := range addrs {
		conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("client: dial %s: %w", addr, err)
		}
		c.conns = append(c.conns, conn)
		c.clients = append(c.clients, kvpb.NewKVClient(conn))
	}
	return c, nil
}

// Get retrieves the value for key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.eachNode(func(cli kvpb.KVClient) error {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		reply, err := cli.Get(ctx, &kvpb.GetRequest{Key: key})
		if err != nil {
			return fault.FromStatus(err)
		}
		value = reply.GetValue()
		return nil
	})
	return value, err
}

// Put stores value under key.
func (c *Client) Put(ctx context.Context, key string, value []byte) error {
	return c.eachNode(func(cli kvpb.KVClient) error {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		if _, err := cli.Set(ctx, &kvpb.SetRequest{Key: key, Value: value}); err != nil {
			return fault.FromStatus(err)
		}
		return nil
	})
}

// Delete removes key.
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.eachNode(func(cli kvpb.KVClient) error {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		if _, err := cli.Delete(ctx, &kvpb.DeleteRequest{Key: key}); err != nil {
			return fault.FromStatus(err)
		}
		return nil
	})
}

// eachNode runs call against nodes in order, moving to the next only on
// Unavailable. Every other error is final.
func (c *Client) eachNode(call func(kvpb.KVClient) error) error {
	var lastErr error
	for _, cli := range c.clients {
		err := call(cli)
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.Is(err, fault.ErrUnavailable) {
			return err
		}
	}
	return lastErr
}

// Close tears down all channels.
func (c *Client) Close() {
	for _, conn := range c.conns {
		_ = conn.Close()
	}
	c.conns = nil
	c.clients = nil
}
