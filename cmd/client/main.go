// cmd/client is the CLI entry-point built with Cobra.
//
// Usage:
//
//	kvctl put mykey "hello world"   --server localhost:50051
//	kvctl get mykey                 --server localhost:50051,localhost:50052
//	kvctl del mykey                 --server localhost:50051
//	kvctl ring mykey                --admin http://localhost:8080
//
// Several --server addresses may be given; the client fails over to the next
// one when a node is unreachable.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kvcluster/internal/client"
)

var (
	serverAddrs string
	adminAddr   string
	timeout     time.Duration
)

func main() {
	root := &cobra.Command{
		Use:   "kvctl",
		Short: "CLI client for the kvcluster store",
	}

	root.PersistentFlags().StringVarP(&serverAddrs, "server", "s",
		"localhost:50051", "Comma-separated node addresses")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second,
		"Per-request timeout")
	root.PersistentFlags().StringVar(&adminAddr, "admin",
		"http://localhost:8080", "Admin HTTP base URL (ring command only)")

	root.AddCommand(putCmd(), getCmd(), delCmd(), ringCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dial() (*client.Client, error) {
	return client.New(strings.Split(serverAddrs, ","), timeout)
}

// ─── put ──────────────────────────────────────────────────────────────────────

func putCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <key> <value>",
		Short: "Store a key-value pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Put(context.Background(), args[0], []byte(args[1])); err != nil {
				return err
			}
			fmt.Printf("stored %q\n", args[0])
			return nil
		},
	}
}

// ─── get ──────────────────────────────────────────────────────────────────────

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Retrieve a value by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()

			value, err := c.Get(context.Background(), args[0])
			if errors.Is(err, client.ErrNotFound) {
				fmt.Printf("key %q not found\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(string(value))
			return nil
		},
	}
}

// ─── del ──────────────────────────────────────────────────────────────────────

func delCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del <key>",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %q\n", args[0])
			return nil
		},
	}
}

// ─── ring ─────────────────────────────────────────────────────────────────────

func ringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ring <key>",
		Short: "Show which nodes own a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/cluster/ring?key=%s", adminAddr, args[0])
			resp, err := http.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("admin returned HTTP %d: %s", resp.StatusCode, body)
			}
			var pretty map[string]any
			if err := json.Unmarshal(body, &pretty); err != nil {
				fmt.Println(string(body))
				return nil
			}
			out, _ := json.MarshalIndent(pretty, "", "  ")
			fmt.Println(string(out))
			return nil
		},
	}
}
