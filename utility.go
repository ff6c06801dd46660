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
	"strconv"

	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"

	"trpc.group/trpc-go/trpc-agent-go/tool/neo3/internal/provider"
)

type validateAddressRequest struct {
	Address string `json:"address" jsonschema:"description=Neo address or script hash to validate,required"`
}

type getUnclaimedGasRequest struct {
	Address string `json:"address" jsonschema:"description=Neo address or script hash of the account,required"`
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

// validateAddress checks the identifier locally. No network round trip, so
// no provider is built and the result is the same on every network.
func (t *ToolSet) validateAddress(_ context.Context, req validateAddressRequest) (Result, error) {
	if req.Address == "" {
		return failuref("address is required"), nil
	}
	return success("Address validation result", strconv.FormatBool(provider.ValidateAddress(req.Address))), nil
}

func (t *ToolSet) getUnclaimedGas(ctx context.Context, req getUnclaimedGasRequest) (Result, error) {
	if req.Address == "" {
		return failuref("address is required"), nil
	}
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	gas, err := p.UnclaimedGas(req.Address)
	if err != nil {
		return failure(err), nil
	}
	return success("Unclaimed GAS", gas), nil
}

func (t *ToolSet) utilityTools() []tool.Tool {
	return []tool.Tool{
		function.NewFunctionTool(
			t.validateAddress,
			function.WithName("validate_address"),
			function.WithDescription("Validate whether a string is a correct Neo N3 address or script hash. "+
				"Useful when you need to verify address format before other operations. "+
				"Returns true or false; the check is offline and never fails on malformed input."),
		),
		function.NewFunctionTool(
			t.getUnclaimedGas,
			function.WithName("get_unclaimed_gas"),
			function.WithDescription("Get the unclaimed GAS amount for an address on the Neo N3 blockchain. "+
				"Useful when you need to check claimable GAS rewards from holding NEO. "+
				"Returns the unclaimed amount with the height it was computed at."),
		),
	}
}
