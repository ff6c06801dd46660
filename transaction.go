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

type getRawTransactionRequest struct {
	TxID    string `json:"txid" jsonschema:"description=Transaction hash in hexadecimal format,required"`
	Verbose int    `json:"verbose,omitempty" jsonschema:"description=Verbose level (0 or 1; default 0),enum=0,enum=1"`
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getRawMempoolRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getTransactionHeightRequest struct {
	TxID    string `json:"txid" jsonschema:"description=Transaction hash in hexadecimal format,required"`
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getApplicationLogRequest struct {
	TxID    string `json:"txid" jsonschema:"description=Transaction hash in hexadecimal format,required"`
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

func (t *ToolSet) getRawTransaction(ctx context.Context, req getRawTransactionRequest) (Result, error) {
	if req.TxID == "" {
		return failuref("txid is required"), nil
	}
	if err := validVerbose(req.Verbose); err != nil {
		return failure(err), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	tx, err := p.RawTransaction(req.TxID, req.Verbose == 1)
	if err != nil {
		return failure(err), nil
	}
	return success("Transaction info", tx), nil
}

func (t *ToolSet) getRawMempool(ctx context.Context, req getRawMempoolRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	hashes, err := p.RawMempool()
	if err != nil {
		return failure(err), nil
	}
	return success("Mempool transactions", hashes), nil
}

func (t *ToolSet) getTransactionHeight(ctx context.Context, req getTransactionHeightRequest) (Result, error) {
	if req.TxID == "" {
		return failuref("txid is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	height, err := p.TransactionHeight(req.TxID)
	if err != nil {
		return failure(err), nil
	}
	return success("Transaction height", height), nil
}

func (t *ToolSet) getApplicationLog(ctx context.Context, req getApplicationLogRequest) (Result, error) {
	if req.TxID == "" {
		return failuref("txid is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	log, err := p.ApplicationLog(req.TxID)
	if err != nil {
		return failure(err), nil
	}
	return success("Application log", log), nil
}

func (t *ToolSet) transactionTools() []tool.Tool {
	return []tool.Tool{
		function.NewFunctionTool(
			t.getRawTransaction,
			function.WithName("get_raw_transaction"),
			function.WithDescription("Get detailed transaction information by transaction hash on the Neo N3 blockchain. "+
				"Useful when you need to analyze transaction details, verify transaction data, or check transaction status. "+
				"Returns transaction information including signers, scripts and attributes."),
		),
		function.NewFunctionTool(
			t.getRawMempool,
			function.WithName("get_raw_mempool"),
			function.WithDescription("Get the list of verified transactions currently in the memory pool of a Neo N3 node. "+
				"Useful when you need to check pending transactions or monitor network activity. "+
				"Returns a list of transaction hashes."),
		),
		function.NewFunctionTool(
			t.getTransactionHeight,
			function.WithName("get_transaction_height"),
			function.WithDescription("Get the block height where a transaction was included on the Neo N3 blockchain. "+
				"Useful when you need to find when a transaction was confirmed. Returns the block height as an integer."),
		),
		function.NewFunctionTool(
			t.getApplicationLog,
			function.WithName("get_application_log"),
			function.WithDescription("Get the application log for a transaction on the Neo N3 blockchain. "+
				"Useful when you need smart contract execution logs, want to debug contract interactions, "+
				"or analyze transaction execution details. Returns the application log with execution details."),
		),
	}
}
