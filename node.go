//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package neo3

import (
	"context"

	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"
)

type getVersionRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getConnectionCountRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getPeersRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getStateRootRequest struct {
	Index   *uint32 `json:"index" jsonschema:"description=Block index (height) as a non-negative integer,required"`
	Network string  `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getStateHeightRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

func (t *ToolSet) getVersion(ctx context.Context, req getVersionRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	version, err := p.Version()
	if err != nil {
		return failure(err), nil
	}
	return success("Node version", version), nil
}

func (t *ToolSet) getConnectionCount(ctx context.Context, req getConnectionCountRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	count, err := p.ConnectionCount()
	if err != nil {
		return failure(err), nil
	}
	return success("Connection count", count), nil
}

func (t *ToolSet) getPeers(ctx context.Context, req getPeersRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	peers, err := p.Peers()
	if err != nil {
		return failure(err), nil
	}
	return success("Peers", peers), nil
}

func (t *ToolSet) getStateRoot(ctx context.Context, req getStateRootRequest) (Result, error) {
	if req.Index == nil {
		return failuref("index is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	root, err := p.StateRoot(*req.Index)
	if err != nil {
		return failure(err), nil
	}
	return success("State root", root), nil
}

func (t *ToolSet) getStateHeight(ctx context.Context, req getStateHeightRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	height, err := p.StateHeight()
	if err != nil {
		return failure(err), nil
	}
	return success("State height", height), nil
}

func (t *ToolSet) nodeTools() []tool.Tool {
	return []tool.Tool{
		function.NewFunctionTool(
			t.getVersion,
			function.WithName("get_version"),
			function.WithDescription("Get version and protocol information of a Neo N3 node. "+
				"Useful when you need to verify node software, check protocol settings, or confirm network magic. "+
				"Returns the node version with protocol details."),
		),
		function.NewFunctionTool(
			t.getConnectionCount,
			function.WithName("get_connection_count"),
			function.WithDescription("Get the number of peers currently connected to a Neo N3 node. "+
				"Useful when you need to assess node connectivity or monitor network health. Returns an integer."),
		),
		function.NewFunctionTool(
			t.getPeers,
			function.WithName("get_peers"),
			function.WithDescription("Get the peers a Neo N3 node knows about, grouped by connection state. "+
				"Useful when you need to inspect network topology or diagnose connectivity issues. "+
				"Returns connected, unconnected and bad peer lists."),
		),
		function.NewFunctionTool(
			t.getStateRoot,
			function.WithName("get_state_root"),
			function.WithDescription("Get the state root at a block height on the Neo N3 blockchain. "+
				"Useful when you need to verify chain state or build state proofs. "+
				"Requires the StateService plugin on the node. Returns the state root with witnesses."),
		),
		function.NewFunctionTool(
			t.getStateHeight,
			function.WithName("get_state_height"),
			function.WithDescription("Get the local and validated state root heights of a Neo N3 node. "+
				"Useful when you need to check state synchronization progress. "+
				"Requires the StateService plugin on the node. Returns both heights."),
		),
	}
}
