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
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-agent-go/tool"

	"trpc.group/trpc-go/trpc-agent-go/tool/neo3/internal/provider"
)

// versionFixture is the minimal getversion payload the RPC client accepts:
// msperblock must be non-zero so the client picks the N3 protocol section.
const versionFixture = `{
	"tcpport": 10333,
	"nonce": 1,
	"useragent": "/NEO-GO:0.106.3/",
	"rpc": {"maxiteratorresultitems": 100, "sessionenabled": false},
	"protocol": {
		"addressversion": 53,
		"network": 894710606,
		"validatorscount": 7,
		"msperblock": 15000,
		"maxtraceableblocks": 2102400,
		"maxvaliduntilblockincrement": 5760,
		"maxtransactionsperblock": 512,
		"memorypoolmaxtransactions": 50000,
		"initialgasdistribution": 5200000000000000,
		"hardforks": [],
		"standbycommittee": [],
		"seedlist": []
	}
}`

type rpcCall struct {
	Method string
	Params []json.RawMessage
}

// testNode is a stub Neo N3 JSON-RPC node. It serves canned results keyed by
// method name and records every call for parameter assertions. getversion and
// getnativecontracts are stubbed by default so client initialization works.
type testNode struct {
	srv *httptest.Server

	mu      sync.Mutex
	results map[string]string
	calls   []rpcCall
}

func newTestNode(t *testing.T, results map[string]string) *testNode {
	t.Helper()
	n := &testNode{results: map[string]string{
		"getversion":         versionFixture,
		"getnativecontracts": `[]`,
	}}
	for method, result := range results {
		n.results[method] = result
	}
	n.srv = httptest.NewServer(http.HandlerFunc(n.handle))
	t.Cleanup(n.srv.Close)
	return n
}

func (n *testNode) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
		ID     json.RawMessage   `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n.mu.Lock()
	n.calls = append(n.calls, rpcCall{Method: req.Method, Params: req.Params})
	result, ok := n.results[req.Method]
	n.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"Method not found"}}`, req.ID)
		return
	}
	fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, req.ID, result)
}

// toolSet builds a ToolSet whose default (testnet) endpoint points at the
// stub node.
func (n *testNode) toolSet(t *testing.T) *ToolSet {
	t.Helper()
	ts, err := NewToolSet(WithTestnetEndpoint(n.srv.URL))
	require.NoError(t, err)
	return ts
}

// lastCall returns the most recent recorded call for the given method.
func (n *testNode) lastCall(t *testing.T, method string) rpcCall {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.calls) - 1; i >= 0; i-- {
		if n.calls[i].Method == method {
			return n.calls[i]
		}
	}
	t.Fatalf("no recorded call for method %s", method)
	return rpcCall{}
}

var expectedToolNames = []string{
	"get_block_count", "get_best_block_hash", "get_block_by_hash", "get_block_by_height",
	"get_block_hash", "get_block_header", "get_block_header_count", "get_block_sysfee",
	"get_raw_transaction", "get_raw_mempool", "get_transaction_height", "get_application_log",
	"get_contract_state", "get_storage", "invoke_function", "get_native_contracts",
	"get_committee", "get_next_block_validators", "get_candidates",
	"get_nep17_balances", "get_nep17_transfers", "get_nep11_balances",
	"get_nep11_properties", "get_nep11_transfers",
	"get_version", "get_connection_count", "get_peers", "get_state_root", "get_state_height",
	"validate_address", "get_unclaimed_gas",
}

func TestNewToolSet_Defaults(t *testing.T) {
	ts, err := NewToolSet()
	require.NoError(t, err)
	require.NotNil(t, ts)

	assert.Equal(t, "neo3", ts.Name())
	assert.NoError(t, ts.Close())

	tools := ts.Tools(context.Background())
	require.Len(t, tools, len(expectedToolNames))

	seen := make(map[string]bool, len(tools))
	for _, tl := range tools {
		decl := tl.Declaration()
		require.NotNil(t, decl)
		assert.NotEmpty(t, decl.Name)
		assert.NotEmpty(t, decl.Description)
		assert.NotNil(t, decl.InputSchema)
		assert.False(t, seen[decl.Name], "duplicate tool name %s", decl.Name)
		seen[decl.Name] = true
	}
	for _, name := range expectedToolNames {
		assert.True(t, seen[name], "missing tool %s", name)
	}
}

func TestNewToolSet_Options(t *testing.T) {
	testCases := []struct {
		name string
		opts []Option
	}{
		{name: "default options", opts: nil},
		{name: "with mainnet", opts: []Option{WithNetwork("mainnet")}},
		{name: "with endpoints", opts: []Option{
			WithMainnetEndpoint("http://localhost:20332"),
			WithTestnetEndpoint("http://localhost:20333"),
		}},
		{name: "with timeout", opts: []Option{WithTimeout(5 * time.Second)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := NewToolSet(tc.opts...)
			require.NoError(t, err)
			require.NotNil(t, ts)
			assert.NotEmpty(t, ts.Tools(context.Background()))
		})
	}
}

func TestNewToolSet_DefaultTimeout(t *testing.T) {
	ts, err := NewToolSet()
	require.NoError(t, err)
	assert.Equal(t, provider.DefaultTimeout, ts.cfg.timeout)
}

func TestNewToolSet_InvalidNetwork(t *testing.T) {
	ts, err := NewToolSet(WithNetwork("devnet"))
	require.Nil(t, ts)
	assert.ErrorIs(t, err, provider.ErrInvalidNetwork)
}

func TestToolCall_JSONArgs(t *testing.T) {
	node := newTestNode(t, map[string]string{"getblockcount": `12345`})
	ts := node.toolSet(t)

	var blockCount tool.CallableTool
	for _, tl := range ts.Tools(context.Background()) {
		if tl.Declaration().Name == "get_block_count" {
			ct, ok := tl.(tool.CallableTool)
			require.True(t, ok, "get_block_count is not callable")
			blockCount = ct
		}
	}
	require.NotNil(t, blockCount, "get_block_count not registered")

	result, err := blockCount.Call(context.Background(), []byte(`{}`))
	require.NoError(t, err)

	res, ok := result.(Result)
	require.True(t, ok, "expected Result type")
	assert.Equal(t, "Block count: 12345", res.Output)
	assert.Empty(t, res.Error)
}

func TestToolCall_UnknownNetwork(t *testing.T) {
	node := newTestNode(t, nil)
	ts := node.toolSet(t)

	res, err := ts.getBlockCount(context.Background(), getBlockCountRequest{Network: "devnet"})
	require.NoError(t, err)
	assert.Empty(t, res.Output)
	assert.Contains(t, res.Error, "network must be 'mainnet' or 'testnet'")
}
