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

type getNEP17BalancesRequest struct {
	Address string `json:"address" jsonschema:"description=Neo address or script hash of the account,required"`
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getNEP17TransfersRequest struct {
	Address   string  `json:"address" jsonschema:"description=Neo address or script hash of the account,required"`
	Timestamp *uint64 `json:"timestamp,omitempty" jsonschema:"description=Optional start timestamp in milliseconds since epoch"`
	Network   string  `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getNEP11BalancesRequest struct {
	Address string `json:"address" jsonschema:"description=Neo address or script hash of the account,required"`
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getNEP11PropertiesRequest struct {
	ContractHash string `json:"contract_hash" jsonschema:"description=NFT contract script hash in hexadecimal format,required"`
	TokenID      string `json:"token_id" jsonschema:"description=Token ID in hexadecimal format,required"`
	Network      string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getNEP11TransfersRequest struct {
	Address   string  `json:"address" jsonschema:"description=Neo address or script hash of the account,required"`
	Timestamp *uint64 `json:"timestamp,omitempty" jsonschema:"description=Optional start timestamp in milliseconds since epoch"`
	Network   string  `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

func (t *ToolSet) getNEP17Balances(ctx context.Context, req getNEP17BalancesRequest) (Result, error) {
	if req.Address == "" {
		return failuref("address is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	balances, err := p.NEP17Balances(req.Address)
	if err != nil {
		return failure(err), nil
	}
	return success("NEP-17 balances", balances), nil
}

func (t *ToolSet) getNEP17Transfers(ctx context.Context, req getNEP17TransfersRequest) (Result, error) {
	if req.Address == "" {
		return failuref("address is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	transfers, err := p.NEP17Transfers(req.Address, req.Timestamp)
	if err != nil {
		return failure(err), nil
	}
	return success("NEP-17 transfers", transfers), nil
}

func (t *ToolSet) getNEP11Balances(ctx context.Context, req getNEP11BalancesRequest) (Result, error) {
	if req.Address == "" {
		return failuref("address is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	balances, err := p.NEP11Balances(req.Address)
	if err != nil {
		return failure(err), nil
	}
	return success("NEP-11 balances", balances), nil
}

func (t *ToolSet) getNEP11Properties(ctx context.Context, req getNEP11PropertiesRequest) (Result, error) {
	if req.ContractHash == "" {
		return failuref("contract_hash is required"), nil
	}
	if req.TokenID == "" {
		return failuref("token_id is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	properties, err := p.NEP11Properties(req.ContractHash, req.TokenID)
	if err != nil {
		return failure(err), nil
	}
	return success("NEP-11 properties", properties), nil
}

func (t *ToolSet) getNEP11Transfers(ctx context.Context, req getNEP11TransfersRequest) (Result, error) {
	if req.Address == "" {
		return failuref("address is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	transfers, err := p.NEP11Transfers(req.Address, req.Timestamp)
	if err != nil {
		return failure(err), nil
	}
	return success("NEP-11 transfers", transfers), nil
}

func (t *ToolSet) tokenTools() []tool.Tool {
	return []tool.Tool{
		function.NewFunctionTool(
			t.getNEP17Balances,
			function.WithName("get_nep17_balances"),
			function.WithDescription("Get all NEP-17 fungible token balances for an address on the Neo N3 blockchain. "+
				"Useful when you need to check token holdings, analyze portfolio composition, or verify account balances. "+
				"Returns balances with token contract hashes and amounts."),
		),
		function.NewFunctionTool(
			t.getNEP17Transfers,
			function.WithName("get_nep17_transfers"),
			function.WithDescription("Get NEP-17 fungible token transfer history for an address on the Neo N3 blockchain. "+
				"Useful when you need to track token movements, analyze transaction patterns, or audit transfer history. "+
				"Accepts an optional start timestamp in milliseconds. Returns sent and received transfers."),
		),
		function.NewFunctionTool(
			t.getNEP11Balances,
			function.WithName("get_nep11_balances"),
			function.WithDescription("Get all NEP-11 non-fungible token balances for an address on the Neo N3 blockchain. "+
				"Useful when you need to check NFT holdings or verify NFT ownership. "+
				"Returns balances with token contract hashes and token IDs."),
		),
		function.NewFunctionTool(
			t.getNEP11Properties,
			function.WithName("get_nep11_properties"),
			function.WithDescription("Get the custom properties of a NEP-11 non-fungible token on the Neo N3 blockchain. "+
				"Useful when you need NFT metadata such as name, description or image. "+
				"Requires the NFT contract hash and a hex-encoded token ID. Returns the property map."),
		),
		function.NewFunctionTool(
			t.getNEP11Transfers,
			function.WithName("get_nep11_transfers"),
			function.WithDescription("Get NEP-11 non-fungible token transfer history for an address on the Neo N3 blockchain. "+
				"Useful when you need to track NFT movements or audit NFT trading history. "+
				"Accepts an optional start timestamp in milliseconds. Returns sent and received transfers."),
		),
	}
}
