//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gasHashLE = "d2a4cff31913016155e38e474a2c06d08be276cf"

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Method not found"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_InvalidNetwork(t *testing.T) {
	p, err := New(context.Background(), "devnet")
	require.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidNetwork)
}

func TestNew_EndpointSelection(t *testing.T) {
	srv := newStubServer(t)

	p, err := New(context.Background(), Mainnet, WithMainnetEndpoint(srv.URL))
	require.NoError(t, err)
	defer p.Close()
	assert.Equal(t, Mainnet, p.Network())
	assert.Equal(t, srv.URL, p.Endpoint())

	p2, err := New(context.Background(), Testnet, WithTestnetEndpoint(srv.URL))
	require.NoError(t, err)
	defer p2.Close()
	assert.Equal(t, Testnet, p2.Network())
	assert.Equal(t, srv.URL, p2.Endpoint())
}

func TestNew_EmptyOptionValuesKeepDefaults(t *testing.T) {
	p, err := New(context.Background(), Testnet,
		WithMainnetEndpoint(""),
		WithTestnetEndpoint(""),
		WithTimeout(0),
	)
	require.NoError(t, err)
	defer p.Close()
	assert.Equal(t, TestnetEndpoint, p.Endpoint())
}

func TestParseAddressOrHash(t *testing.T) {
	want, err := util.Uint160DecodeStringLE(gasHashLE)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		input string
	}{
		{name: "hash with 0x prefix", input: "0x" + gasHashLE},
		{name: "hash without prefix", input: gasHashLE},
		{name: "standard address", input: address.Uint160ToString(want)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAddressOrHash(tc.input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseAddressOrHash_Invalid(t *testing.T) {
	for _, input := range []string{"", "zzz", "0x1234", "NOTanAddress123"} {
		_, err := ParseAddressOrHash(input)
		require.Error(t, err, "input %q", input)
		assert.Contains(t, err.Error(), "invalid Neo address or script hash")
	}
}

func TestValidateAddress(t *testing.T) {
	assert.True(t, ValidateAddress("0x"+gasHashLE))
	assert.True(t, ValidateAddress(gasHashLE))
	assert.True(t, ValidateAddress(address.Uint160ToString(util.Uint160{1, 2, 3})))
	assert.False(t, ValidateAddress("garbage"))
	assert.False(t, ValidateAddress(""))
}

func TestRawRPCFailureIsWrapped(t *testing.T) {
	srv := newStubServer(t)
	p, err := New(context.Background(), Testnet, WithTestnetEndpoint(srv.URL))
	require.NoError(t, err)
	defer p.Close()

	_, err = p.BlockCount()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get block count")
}
