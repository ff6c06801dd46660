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

type getBlockCountRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getBestBlockHashRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getBlockByHashRequest struct {
	BlockHash string `json:"block_hash" jsonschema:"description=Block hash in hexadecimal format,required"`
	Verbose   int    `json:"verbose,omitempty" jsonschema:"description=Verbose level (0 or 1; default 0),enum=0,enum=1"`
	Network   string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getBlockByHeightRequest struct {
	BlockHeight *uint32 `json:"block_height" jsonschema:"description=Block height as a non-negative integer,required"`
	Verbose     int     `json:"verbose,omitempty" jsonschema:"description=Verbose level (0 or 1; default 0),enum=0,enum=1"`
	Network     string  `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getBlockHashRequest struct {
	Index   *uint32 `json:"index" jsonschema:"description=Block index (height) as a non-negative integer,required"`
	Network string  `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getBlockHeaderRequest struct {
	HashOrIndex string `json:"hash_or_index" jsonschema:"description=Block hash (hexadecimal) or block height (decimal string),required"`
	Verbose     int    `json:"verbose,omitempty" jsonschema:"description=Verbose level (0 or 1; default 0),enum=0,enum=1"`
	Network     string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getBlockHeaderCountRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getBlockSysFeeRequest struct {
	Index   *uint32 `json:"index" jsonschema:"description=Block index (height) as a non-negative integer,required"`
	Network string  `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

func (t *ToolSet) getBlockCount(ctx context.Context, req getBlockCountRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	count, err := p.BlockCount()
	if err != nil {
		return failure(err), nil
	}
	return success("Block count", count), nil
}

func (t *ToolSet) getBestBlockHash(ctx context.Context, req getBestBlockHashRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	hash, err := p.BestBlockHash()
	if err != nil {
		return failure(err), nil
	}
	return success("Best block hash", hash), nil
}

func (t *ToolSet) getBlockByHash(ctx context.Context, req getBlockByHashRequest) (Result, error) {
	if req.BlockHash == "" {
		return failuref("block_hash is required"), nil
	}
	if err := validVerbose(req.Verbose); err != nil {
		return failure(err), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	block, err := p.Block(req.BlockHash, req.Verbose == 1)
	if err != nil {
		return failure(err), nil
	}
	return success("Block info", block), nil
}

func (t *ToolSet) getBlockByHeight(ctx context.Context, req getBlockByHeightRequest) (Result, error) {
	if req.BlockHeight == nil {
		return failuref("block_height is required"), nil
	}
	if err := validVerbose(req.Verbose); err != nil {
		return failure(err), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	block, err := p.Block(formatIndex(*req.BlockHeight), req.Verbose == 1)
	if err != nil {
		return failure(err), nil
	}
	return success("Block info", block), nil
}

func (t *ToolSet) getBlockHash(ctx context.Context, req getBlockHashRequest) (Result, error) {
	if req.Index == nil {
		return failuref("index is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	hash, err := p.BlockHash(*req.Index)
	if err != nil {
		return failure(err), nil
	}
	return success("Block hash", hash), nil
}

func (t *ToolSet) getBlockHeader(ctx context.Context, req getBlockHeaderRequest) (Result, error) {
	if req.HashOrIndex == "" {
		return failuref("hash_or_index is required"), nil
	}
	if err := validVerbose(req.Verbose); err != nil {
		return failure(err), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	header, err := p.BlockHeader(req.HashOrIndex, req.Verbose == 1)
	if err != nil {
		return failure(err), nil
	}
	return success("Block header", header), nil
}

func (t *ToolSet) getBlockHeaderCount(ctx context.Context, req getBlockHeaderCountRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	count, err := p.BlockHeaderCount()
	if err != nil {
		return failure(err), nil
	}
	return success("Block header count", count), nil
}

func (t *ToolSet) getBlockSysFee(ctx context.Context, req getBlockSysFeeRequest) (Result, error) {
	if req.Index == nil {
		return failuref("index is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	fee, err := p.BlockSysFee(*req.Index)
	if err != nil {
		return failure(err), nil
	}
	return success("Block system fee", fee), nil
}

func (t *ToolSet) blockTools() []tool.Tool {
	return []tool.Tool{
		function.NewFunctionTool(
			t.getBlockCount,
			function.WithName("get_block_count"),
			function.WithDescription("Get total number of blocks on the Neo N3 blockchain. "+
				"Useful when you need to understand blockchain growth or verify current block height. "+
				"Returns an integer representing the total block count."),
		),
		function.NewFunctionTool(
			t.getBestBlockHash,
			function.WithName("get_best_block_hash"),
			function.WithDescription("Get the hash of the latest block in the Neo N3 blockchain. "+
				"Useful when you need the most recent block hash or want to verify blockchain state. "+
				"Returns the best block hash."),
		),
		function.NewFunctionTool(
			t.getBlockByHash,
			function.WithName("get_block_by_hash"),
			function.WithDescription("Get detailed block information by block hash on the Neo N3 blockchain. "+
				"Useful when you need to analyze specific block details or verify block data. "+
				"Returns block information."),
		),
		function.NewFunctionTool(
			t.getBlockByHeight,
			function.WithName("get_block_by_height"),
			function.WithDescription("Get block information by block height on the Neo N3 blockchain. "+
				"Useful when you need to retrieve block data by position or analyze historical blocks. "+
				"Returns block information."),
		),
		function.NewFunctionTool(
			t.getBlockHash,
			function.WithName("get_block_hash"),
			function.WithDescription("Get block hash by block index on the Neo N3 blockchain. "+
				"Useful when you need to derive a block hash from a block height. Returns the block hash."),
		),
		function.NewFunctionTool(
			t.getBlockHeader,
			function.WithName("get_block_header"),
			function.WithDescription("Get block header information by block hash or height on the Neo N3 blockchain. "+
				"Useful when you need header data without full block details or want to analyze block metadata. "+
				"Returns block header information."),
		),
		function.NewFunctionTool(
			t.getBlockHeaderCount,
			function.WithName("get_block_header_count"),
			function.WithDescription("Get the number of block headers in the Neo N3 main chain. "+
				"Useful when you need to compare header and block heights during sync. Returns an integer."),
		),
		function.NewFunctionTool(
			t.getBlockSysFee,
			function.WithName("get_block_sysfee"),
			function.WithDescription("Get the aggregated system fees of a block by its height on the Neo N3 blockchain. "+
				"Only supported by NeoGo servers. Returns the fee as a fixed-point GAS amount."),
		),
	}
}
