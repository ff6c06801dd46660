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
	"encoding/json"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/block"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	neoio "github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeBlockFixture serializes an empty block the way a node serves it on
// a non-verbose getblock call: base64 inside a JSON string.
func encodeBlockFixture(t *testing.T, b *block.Block) string {
	t.Helper()
	w := neoio.NewBufBinWriter()
	b.EncodeBinary(w.BinWriter)
	require.NoError(t, w.Err)
	raw, err := json.Marshal(w.Bytes())
	require.NoError(t, err)
	return string(raw)
}

func testBlock() *block.Block {
	return &block.Block{
		Header: block.Header{
			Timestamp:     1627894840919,
			Nonce:         7,
			Index:         42,
			NextConsensus: util.Uint160{1, 2, 3},
			Script: transaction.Witness{
				InvocationScript:   []byte{},
				VerificationScript: []byte{},
			},
		},
	}
}

func TestGetBlockCount(t *testing.T) {
	node := newTestNode(t, map[string]string{"getblockcount": `12345`})
	ts := node.toolSet(t)

	res, err := ts.getBlockCount(context.Background(), getBlockCountRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Block count: 12345", res.Output)
	assert.Empty(t, res.Error)
}

func TestGetBlockCount_NodeError(t *testing.T) {
	node := newTestNode(t, nil) // getblockcount not stubbed, node answers with an RPC error.
	ts := node.toolSet(t)

	res, err := ts.getBlockCount(context.Background(), getBlockCountRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Output)
	assert.Contains(t, res.Error, "failed to get block count")
}

func TestGetBestBlockHash(t *testing.T) {
	hash := "0x91a0fa30ca84dc9f65c70e57f0c61e1b10cbec564294e9e1e9a3e43e2f4951b0"
	node := newTestNode(t, map[string]string{"getbestblockhash": `"` + hash + `"`})
	ts := node.toolSet(t)

	res, err := ts.getBestBlockHash(context.Background(), getBestBlockHashRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Best block hash: "+hash, res.Output)
}

func TestGetBlockHash(t *testing.T) {
	hash := "0x91a0fa30ca84dc9f65c70e57f0c61e1b10cbec564294e9e1e9a3e43e2f4951b0"
	node := newTestNode(t, map[string]string{"getblockhash": `"` + hash + `"`})
	ts := node.toolSet(t)

	index := uint32(42)
	res, err := ts.getBlockHash(context.Background(), getBlockHashRequest{Index: &index})
	require.NoError(t, err)
	assert.Equal(t, "Block hash: "+hash, res.Output)
}

func TestGetBlockHash_MissingIndex(t *testing.T) {
	node := newTestNode(t, nil)
	ts := node.toolSet(t)

	res, err := ts.getBlockHash(context.Background(), getBlockHashRequest{})
	require.NoError(t, err)
	assert.Equal(t, "index is required", res.Error)
}

func TestGetBlock_ByHeightMatchesByHash(t *testing.T) {
	b := testBlock()
	node := newTestNode(t, map[string]string{"getblock": encodeBlockFixture(t, b)})
	ts := node.toolSet(t)

	height := uint32(42)
	byHeight, err := ts.getBlockByHeight(context.Background(), getBlockByHeightRequest{BlockHeight: &height})
	require.NoError(t, err)
	require.Empty(t, byHeight.Error)

	byHash, err := ts.getBlockByHash(context.Background(), getBlockByHashRequest{
		BlockHash: "0x" + b.Hash().StringLE(),
	})
	require.NoError(t, err)
	require.Empty(t, byHash.Error)

	assert.Equal(t, byHeight.Output, byHash.Output)
	assert.Contains(t, byHeight.Output, "Block info: ")
	assert.Contains(t, byHeight.Output, `"index": 42`)
}

func TestGetBlockByHash_MissingHash(t *testing.T) {
	node := newTestNode(t, nil)
	ts := node.toolSet(t)

	res, err := ts.getBlockByHash(context.Background(), getBlockByHashRequest{})
	require.NoError(t, err)
	assert.Equal(t, "block_hash is required", res.Error)
}

func TestGetBlockByHash_BadVerbose(t *testing.T) {
	node := newTestNode(t, nil)
	ts := node.toolSet(t)

	res, err := ts.getBlockByHash(context.Background(), getBlockByHashRequest{
		BlockHash: "0x91a0fa30ca84dc9f65c70e57f0c61e1b10cbec564294e9e1e9a3e43e2f4951b0",
		Verbose:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, "verbose must be 0 or 1, got 2", res.Error)
}

func TestGetBlockHeader_ByIndexResolvesHash(t *testing.T) {
	b := testBlock()
	w := neoio.NewBufBinWriter()
	b.Header.EncodeBinary(w.BinWriter)
	require.NoError(t, w.Err)
	headerFixture, err := json.Marshal(w.Bytes())
	require.NoError(t, err)

	node := newTestNode(t, map[string]string{
		"getblockhash":   `"0x` + b.Hash().StringLE() + `"`,
		"getblockheader": string(headerFixture),
	})
	ts := node.toolSet(t)

	res, err := ts.getBlockHeader(context.Background(), getBlockHeaderRequest{HashOrIndex: "42"})
	require.NoError(t, err)
	require.Empty(t, res.Error)
	assert.Contains(t, res.Output, "Block header: ")

	// The height form must go through getblockhash before fetching the header.
	hashCall := node.lastCall(t, "getblockhash")
	require.Len(t, hashCall.Params, 1)
	assert.Equal(t, "42", string(hashCall.Params[0]))
	headerCall := node.lastCall(t, "getblockheader")
	require.Len(t, headerCall.Params, 1)
	assert.Equal(t, `"`+b.Hash().StringLE()+`"`, string(headerCall.Params[0]))
}

func TestGetBlockHeaderCount(t *testing.T) {
	node := newTestNode(t, map[string]string{"getblockheadercount": `54321`})
	ts := node.toolSet(t)

	res, err := ts.getBlockHeaderCount(context.Background(), getBlockHeaderCountRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Block header count: 54321", res.Output)
}

func TestGetBlockSysFee(t *testing.T) {
	node := newTestNode(t, map[string]string{"getblocksysfee": `"195500"`})
	ts := node.toolSet(t)

	index := uint32(42)
	res, err := ts.getBlockSysFee(context.Background(), getBlockSysFeeRequest{Index: &index})
	require.NoError(t, err)
	assert.Equal(t, "Block system fee: 195500", res.Output)
}
