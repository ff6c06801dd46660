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

type getContractStateRequest struct {
	ScriptHash string `json:"script_hash" jsonschema:"description=Contract script hash in hexadecimal format (e.g. 0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5),required"`
	Network    string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getStorageRequest struct {
	ScriptHash string `json:"script_hash" jsonschema:"description=Contract script hash in hexadecimal format,required"`
	Key        string `json:"key" jsonschema:"description=Storage key to retrieve (base64-encoded),required"`
	Network    string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type invokeFunctionRequest struct {
	ScriptHash string   `json:"script_hash" jsonschema:"description=Contract script hash in hexadecimal format,required"`
	Operation  string   `json:"operation" jsonschema:"description=Contract method name to invoke,required"`
	Params     []string `json:"params,omitempty" jsonschema:"description=Positional string parameters for the method"`
	Sender     string   `json:"sender,omitempty" jsonschema:"description=Optional sender address or script hash used as a called-by-entry signer"`
	Network    string   `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getNativeContractsRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

func (t *ToolSet) getContractState(ctx context.Context, req getContractStateRequest) (Result, error) {
	if req.ScriptHash == "" {
		return failuref("script_hash is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	cs, err := p.ContractState(req.ScriptHash)
	if err != nil {
		return failure(err), nil
	}
	return success("Contract state", cs), nil
}

func (t *ToolSet) getStorage(ctx context.Context, req getStorageRequest) (Result, error) {
	if req.ScriptHash == "" {
		return failuref("script_hash is required"), nil
	}
	if req.Key == "" {
		return failuref("key is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	value, err := p.Storage(req.ScriptHash, req.Key)
	if err != nil {
		return failure(err), nil
	}
	return success("Storage value", value), nil
}

func (t *ToolSet) invokeFunction(ctx context.Context, req invokeFunctionRequest) (Result, error) {
	if req.ScriptHash == "" {
		return failuref("script_hash is required"), nil
	}
	if req.Operation == "" {
		return failuref("operation is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	res, err := p.InvokeFunction(req.ScriptHash, req.Operation, req.Params, req.Sender)
	if err != nil {
		return failure(err), nil
	}
	return success("Invocation result", res), nil
}

func (t *ToolSet) getNativeContracts(ctx context.Context, req getNativeContractsRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	contracts, err := p.NativeContracts()
	if err != nil {
		return failure(err), nil
	}
	return success("Native contracts", contracts), nil
}

func (t *ToolSet) contractTools() []tool.Tool {
	return []tool.Tool{
		function.NewFunctionTool(
			t.getContractState,
			function.WithName("get_contract_state"),
			function.WithDescription("Get contract state information by contract script hash on the Neo N3 blockchain. "+
				"Useful when you need to verify contract details, analyze contract properties, or check contract "+
				"deployment information. Returns contract state including name, hash, NEF and manifest."),
		),
		function.NewFunctionTool(
			t.getStorage,
			function.WithName("get_storage"),
			function.WithDescription("Get a storage value by contract script hash and base64-encoded key on the Neo N3 blockchain. "+
				"Useful when you need to read contract storage data or verify stored values. "+
				"Returns the storage value base64-encoded."),
		),
		function.NewFunctionTool(
			t.invokeFunction,
			function.WithName("invoke_function"),
			function.WithDescription("Invoke a smart contract function on the Neo N3 blockchain without persisting anything. "+
				"Useful when you need to call read-only contract methods or simulate contract execution. "+
				"Returns the invocation result with VM state and stack."),
		),
		function.NewFunctionTool(
			t.getNativeContracts,
			function.WithName("get_native_contracts"),
			function.WithDescription("Get the list of native contracts on the Neo N3 blockchain. "+
				"Useful when you need to understand system contracts or verify native contract hashes. "+
				"Returns a list of native contracts with their details."),
		),
	}
}
