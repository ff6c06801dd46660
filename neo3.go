//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package neo3 provides Neo N3 blockchain query tools for AI agents: block,
// transaction, contract, governance and token-balance lookups plus address
// validation, all backed by the public JSON-RPC interface of a Neo N3 node.
package neo3

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-agent-go/tool/neo3/internal/provider"
)

const defaultName = "neo3"

// config holds the configuration for the Neo N3 tool set.
type config struct {
	network         string
	mainnetEndpoint string
	testnetEndpoint string
	timeout         time.Duration
}

// Option is a functional option for configuring the Neo N3 tool set.
type Option func(*config)

// WithNetwork sets the network used when a tool call omits the network
// parameter. Must be "mainnet" or "testnet"; the default is "testnet".
func WithNetwork(network string) Option {
	return func(c *config) {
		c.network = network
	}
}

// WithMainnetEndpoint overrides the mainnet RPC endpoint.
func WithMainnetEndpoint(endpoint string) Option {
	return func(c *config) {
		c.mainnetEndpoint = endpoint
	}
}

// WithTestnetEndpoint overrides the testnet RPC endpoint.
func WithTestnetEndpoint(endpoint string) Option {
	return func(c *config) {
		c.testnetEndpoint = endpoint
	}
}

// WithTimeout sets the RPC dial and request timeout for every call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// ToolSet implements the tool.ToolSet interface for Neo N3 blockchain
// queries. Every tool call is stateless: it builds its own provider bound
// to the requested network, issues one RPC call and releases the
// connection.
type ToolSet struct {
	cfg   *config
	tools []tool.Tool
}

// Tools implements the ToolSet interface.
func (t *ToolSet) Tools(_ context.Context) []tool.Tool {
	return t.tools
}

// Name implements the ToolSet interface.
func (t *ToolSet) Name() string {
	return defaultName
}

// Close implements the ToolSet interface. Providers are created and closed
// per call, so there is nothing to release here.
func (t *ToolSet) Close() error {
	return nil
}

// NewToolSet creates a new Neo N3 tool set with the given options.
func NewToolSet(opts ...Option) (*ToolSet, error) {
	cfg := &config{
		network:         provider.Testnet,
		mainnetEndpoint: provider.MainnetEndpoint,
		testnetEndpoint: provider.TestnetEndpoint,
		timeout:         provider.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.network != provider.Mainnet && cfg.network != provider.Testnet {
		return nil, provider.ErrInvalidNetwork
	}

	t := &ToolSet{cfg: cfg}
	var tools []tool.Tool
	tools = append(tools, t.blockTools()...)
	tools = append(tools, t.transactionTools()...)
	tools = append(tools, t.contractTools()...)
	tools = append(tools, t.governanceTools()...)
	tools = append(tools, t.tokenTools()...)
	tools = append(tools, t.nodeTools()...)
	tools = append(tools, t.utilityTools()...)
	t.tools = tools
	return t, nil
}

// provider builds a single-call Provider bound to the requested network,
// falling back to the tool set's default network when the call omits one.
func (t *ToolSet) provider(ctx context.Context, network string) (*provider.Provider, error) {
	if network == "" {
		network = t.cfg.network
	}
	return provider.New(ctx, network,
		provider.WithMainnetEndpoint(t.cfg.mainnetEndpoint),
		provider.WithTestnetEndpoint(t.cfg.testnetEndpoint),
		provider.WithTimeout(t.cfg.timeout),
	)
}

// formatIndex renders a block height the way the provider's
// hash-or-index inputs expect it.
func formatIndex(index uint32) string {
	return strconv.FormatUint(uint64(index), 10)
}

// validVerbose rejects verbosity flags outside the node API's 0/1 range.
func validVerbose(verbose int) error {
	if verbose != 0 && verbose != 1 {
		return fmt.Errorf("verbose must be 0 or 1, got %d", verbose)
	}
	return nil
}
