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

type getCommitteeRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getNextBlockValidatorsRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

type getCandidatesRequest struct {
	Network string `json:"network,omitempty" jsonschema:"description=Neo network type ('mainnet' or 'testnet'; default testnet),enum=mainnet,enum=testnet"`
}

func (t *ToolSet) getCommittee(ctx context.Context, req getCommitteeRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	committee, err := p.Committee()
	if err != nil {
		return failure(err), nil
	}
	return success("Committee members", committee), nil
}

func (t *ToolSet) getNextBlockValidators(ctx context.Context, req getNextBlockValidatorsRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	validators, err := p.NextBlockValidators()
	if err != nil {
		return failure(err), nil
	}
	return success("Next block validators", validators), nil
}

func (t *ToolSet) getCandidates(ctx context.Context, req getCandidatesRequest) (Result, error) {
	p, err := t.provider(ctx, req.Network)
	if err != nil {
		return failure(err), nil
	}
	defer p.Close()
	candidates, err := p.Candidates()
	if err != nil {
		return failure(err), nil
	}
	return success("Candidates", candidates), nil
}

func (t *ToolSet) governanceTools() []tool.Tool {
	return []tool.Tool{
		function.NewFunctionTool(
			t.getCommittee,
			function.WithName("get_committee"),
			function.WithDescription("Get the public key list of current Neo N3 committee members. "+
				"Useful when you need to understand governance structure or verify committee composition. "+
				"Returns a list of committee member public keys."),
		),
		function.NewFunctionTool(
			t.getNextBlockValidators,
			function.WithName("get_next_block_validators"),
			function.WithDescription("Get the validator list for the next block on the Neo N3 blockchain. "+
				"Useful when you need to understand the consensus mechanism or verify validator selection. "+
				"Returns the validators with their voting data."),
		),
		function.NewFunctionTool(
			t.getCandidates,
			function.WithName("get_candidates"),
			function.WithDescription("Get the registered validator candidates on the Neo N3 blockchain. "+
				"Useful when you need to analyze governance participation or check candidate votes. "+
				"Returns the candidates with votes and validator status."),
		),
	}
}
