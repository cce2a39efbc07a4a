// Package config assembles a node's boot configuration from flags with
// environment fallback, so a single binary serves any role in the cluster.
package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// DefaultReplicationN is the replication factor when REPLICATION_N is unset.
// It is capped at the membership size.
const DefaultReplicationN = 3

// Config is everything a node needs to boot. Membership is fixed here for
// the process lifetime; there is no runtime join or leave.
type Config struct {
	NodeID       string   // this node's host:port, also its identity on the ring
	Peers        []string // full membership including self, ordered
	ReplicationN int
	Vnodes       int
	PostgresURL  string
	LegacyAPIURL string // empty disables read-through
	AdminAddr    string // empty disables the admin HTTP listener
}

// Load parses args (without the program name). Each flag except --vnodes
// defaults to its environment variable, so both `--peers` and CACHE_PEERS work.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	cfg := &Config{}
	var peers string
	fs.StringVar(&cfg.NodeID, "id", os.Getenv("NODE_ID"),
		"This node's host:port (env NODE_ID)")
	fs.StringVar(&peers, "peers", os.Getenv("CACHE_PEERS"),
		"Comma-separated host:port membership list including self (env CACHE_PEERS)")
	fs.IntVar(&cfg.ReplicationN, "n", envInt("REPLICATION_N", DefaultReplicationN),
		"Replication factor (env REPLICATION_N)")
	fs.IntVar(&cfg.Vnodes, "vnodes", 64,
		"Virtual nodes per physical node on the ring")
	fs.StringVar(&cfg.PostgresURL, "postgres", os.Getenv("POSTGRES_URL"),
		"Durable store connection string (env POSTGRES_URL)")
	fs.StringVar(&cfg.LegacyAPIURL, "legacy", os.Getenv("LEGACY_API_URL"),
		"Legacy source base URL, empty to disable (env LEGACY_API_URL)")
	fs.StringVar(&cfg.AdminAddr, "admin", os.Getenv("ADMIN_ADDR"),
		"Admin HTTP listen address, empty to disable (env ADMIN_ADDR)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for _, p := range strings.Split(peers, ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.Peers = append(cfg.Peers, p)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.NodeID == "" {
		return fmt.Errorf("config: NODE_ID is required")
	}
	if _, _, err := net.SplitHostPort(c.NodeID); err != nil {
		return fmt.Errorf("config: NODE_ID must be host:port: %w", err)
	}
	if len(c.Peers) == 0 {
		return fmt.Errorf("config: CACHE_PEERS is required")
	}
	self := false
	for _, p := range c.Peers {
		if _, _, err := net.SplitHostPort(p); err != nil {
			return fmt.Errorf("config: peer %q must be host:port: %w", p, err)
		}
		if p == c.NodeID {
			self = true
		}
	}
	if !self {
		return fmt.Errorf("config: CACHE_PEERS must include NODE_ID %q", c.NodeID)
	}
	if c.ReplicationN < 1 {
		return fmt.Errorf("config: replication factor must be at least 1")
	}
	if c.ReplicationN > len(c.Peers) {
		// Cap rather than fail: min(3, cluster size) is the documented default
		// behavior for small clusters.
		c.ReplicationN = len(c.Peers)
	}
	if c.PostgresURL == "" {
		return fmt.Errorf("config: POSTGRES_URL is required")
	}
	return nil
}

// ListenAddr returns the address the RPC server binds: every interface, on
// the port named by NodeID.
func (c *Config) ListenAddr() string {
	_, port, _ := net.SplitHostPort(c.NodeID)
	return ":" + port
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
