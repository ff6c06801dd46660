//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package provider wraps the Neo N3 JSON-RPC client behind one method per
// supported node call. Every method issues a single semantic RPC request,
// validates its inputs up front and wraps failures with the failed
// operation's name so tool-level error strings stay diagnostic.
package provider

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Supported Neo N3 networks.
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
)

// Default RPC endpoints per network.
const (
	MainnetEndpoint = "https://mainnet1.neo.coz.io:443"
	TestnetEndpoint = "https://testnet2.neo.coz.io:443"
)

// DefaultTimeout is the default RPC dial and request timeout.
const DefaultTimeout = 30 * time.Second

// ErrInvalidNetwork is returned when the requested network is neither
// mainnet nor testnet.
var ErrInvalidNetwork = errors.New("network must be 'mainnet' or 'testnet'")

// config holds the endpoint and transport configuration for a Provider.
type config struct {
	mainnetEndpoint string
	testnetEndpoint string
	timeout         time.Duration
}

// Option is a functional option for configuring a Provider.
type Option func(*config)

// WithMainnetEndpoint overrides the mainnet RPC endpoint.
func WithMainnetEndpoint(endpoint string) Option {
	return func(c *config) {
		if endpoint != "" {
			c.mainnetEndpoint = endpoint
		}
	}
}

// WithTestnetEndpoint overrides the testnet RPC endpoint.
func WithTestnetEndpoint(endpoint string) Option {
	return func(c *config) {
		if endpoint != "" {
			c.testnetEndpoint = endpoint
		}
	}
}

// WithTimeout sets the RPC dial and request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// Provider is a single-use Neo N3 data provider bound to one network.
// It holds the only disposable resource of a tool invocation, the RPC
// connection, which must be released with Close after use.
type Provider struct {
	network  string
	endpoint string
	client   *rpcclient.Client

	initOnce sync.Once
	initErr  error
}

// New creates a Provider for the given network. The network must be
// "mainnet" or "testnet"; anything else fails before any RPC traffic.
func New(ctx context.Context, network string, opts ...Option) (*Provider, error) {
	cfg := &config{
		mainnetEndpoint: MainnetEndpoint,
		testnetEndpoint: TestnetEndpoint,
		timeout:         DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var endpoint string
	switch network {
	case Mainnet:
		endpoint = cfg.mainnetEndpoint
	case Testnet:
		endpoint = cfg.testnetEndpoint
	default:
		return nil, ErrInvalidNetwork
	}

	client, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    cfg.timeout,
		RequestTimeout: cfg.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client: %w", err)
	}
	return &Provider{network: network, endpoint: endpoint, client: client}, nil
}

// Network returns the network this provider is bound to.
func (p *Provider) Network() string { return p.network }

// Endpoint returns the RPC endpoint this provider talks to.
func (p *Provider) Endpoint() string { return p.endpoint }

// Close releases the underlying RPC connection.
func (p *Provider) Close() { p.client.Close() }

// init fetches the network magic and in-header state root setting once.
// The RPC client needs both to decode block and header payloads.
func (p *Provider) init() error {
	p.initOnce.Do(func() {
		p.initErr = p.client.Init()
	})
	return p.initErr
}

// ParseAddressOrHash converts an account or contract identifier in either
// supported form into its canonical 160-bit hash. Script-hash parsing (with
// an optional 0x prefix) is tried first, standard Neo address decoding
// second.
func ParseAddressOrHash(s string) (util.Uint160, error) {
	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err == nil {
		return h, nil
	}
	h, err = address.StringToUint160(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid Neo address or script hash: %s", s)
	}
	return h, nil
}

// ValidateAddress reports whether s is a valid script hash or standard Neo
// address. Purely local, no RPC round trip, so callers need no Provider.
func ValidateAddress(s string) bool {
	_, err := ParseAddressOrHash(s)
	return err == nil
}

func parseTxHash(txid string) (util.Uint256, error) {
	h, err := util.Uint256DecodeStringLE(strings.TrimPrefix(txid, "0x"))
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid transaction hash: %s", txid)
	}
	return h, nil
}

func parseBlockHash(s string) (util.Uint256, error) {
	h, err := util.Uint256DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid block hash or index: %s", s)
	}
	return h, nil
}

// BestBlockHash returns the hash of the latest block in the chain.
func (p *Provider) BestBlockHash() (string, error) {
	h, err := p.client.GetBestBlockHash()
	if err != nil {
		return "", fmt.Errorf("failed to get best block hash: %w", err)
	}
	return "0x" + h.StringLE(), nil
}

// BlockCount returns the number of blocks in the chain.
func (p *Provider) BlockCount() (uint32, error) {
	count, err := p.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get block count: %w", err)
	}
	return count, nil
}

// Block returns a block by hash or by decimal height. Verbose selects the
// node's JSON form with confirmations metadata over the bare decoded block.
func (p *Provider) Block(hashOrIndex string, verbose bool) (any, error) {
	if err := p.init(); err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	if index, err := strconv.ParseUint(hashOrIndex, 10, 32); err == nil {
		if verbose {
			b, err := p.client.GetBlockByIndexVerbose(uint32(index))
			if err != nil {
				return nil, fmt.Errorf("failed to get block: %w", err)
			}
			return b, nil
		}
		b, err := p.client.GetBlockByIndex(uint32(index))
		if err != nil {
			return nil, fmt.Errorf("failed to get block: %w", err)
		}
		return b, nil
	}
	hash, err := parseBlockHash(hashOrIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	if verbose {
		b, err := p.client.GetBlockByHashVerbose(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to get block: %w", err)
		}
		return b, nil
	}
	b, err := p.client.GetBlockByHash(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	return b, nil
}

// BlockHash returns the hash of the block at the given height.
func (p *Provider) BlockHash(index uint32) (string, error) {
	h, err := p.client.GetBlockHash(index)
	if err != nil {
		return "", fmt.Errorf("failed to get block hash: %w", err)
	}
	return "0x" + h.StringLE(), nil
}

// BlockHeader returns a block header by hash or decimal height. A height is
// first resolved to its hash since the typed client fetches headers by hash
// only.
func (p *Provider) BlockHeader(hashOrIndex string, verbose bool) (any, error) {
	if err := p.init(); err != nil {
		return nil, fmt.Errorf("failed to get block header: %w", err)
	}
	var hash util.Uint256
	if index, err := strconv.ParseUint(hashOrIndex, 10, 32); err == nil {
		hash, err = p.client.GetBlockHash(uint32(index))
		if err != nil {
			return nil, fmt.Errorf("failed to get block header: %w", err)
		}
	} else {
		hash, err = parseBlockHash(hashOrIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to get block header: %w", err)
		}
	}
	if verbose {
		h, err := p.client.GetBlockHeaderVerbose(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to get block header: %w", err)
		}
		return h, nil
	}
	h, err := p.client.GetBlockHeader(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get block header: %w", err)
	}
	return h, nil
}

// BlockHeaderCount returns the number of headers in the main chain.
func (p *Provider) BlockHeaderCount() (uint32, error) {
	count, err := p.client.GetBlockHeaderCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get block header count: %w", err)
	}
	return count, nil
}

// BlockSysFee returns the aggregated system fees of the block at the given
// height. NeoGo servers only.
func (p *Provider) BlockSysFee(index uint32) (fixedn.Fixed8, error) {
	fee, err := p.client.GetBlockSysFee(index)
	if err != nil {
		return 0, fmt.Errorf("failed to get block system fee: %w", err)
	}
	return fee, nil
}

// RawTransaction returns a transaction by its hash.
func (p *Provider) RawTransaction(txid string, verbose bool) (any, error) {
	hash, err := parseTxHash(txid)
	if err != nil {
		return nil, fmt.Errorf("failed to get raw transaction: %w", err)
	}
	if verbose {
		tx, err := p.client.GetRawTransactionVerbose(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to get raw transaction: %w", err)
		}
		return tx, nil
	}
	tx, err := p.client.GetRawTransaction(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get raw transaction: %w", err)
	}
	return tx, nil
}

// RawMempool returns the hashes of verified transactions currently sitting
// in the node's memory pool.
func (p *Provider) RawMempool() ([]string, error) {
	hashes, err := p.client.GetRawMemPool()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw mempool: %w", err)
	}
	out := make([]string, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, "0x"+h.StringLE())
	}
	return out, nil
}

// TransactionHeight returns the height of the block that contains the given
// transaction.
func (p *Provider) TransactionHeight(txid string) (uint32, error) {
	hash, err := parseTxHash(txid)
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction height: %w", err)
	}
	height, err := p.client.GetTransactionHeight(hash)
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction height: %w", err)
	}
	return height, nil
}

// ApplicationLog returns the contract execution log of a transaction.
func (p *Provider) ApplicationLog(txid string) (*result.ApplicationLog, error) {
	hash, err := parseTxHash(txid)
	if err != nil {
		return nil, fmt.Errorf("failed to get application log: %w", err)
	}
	log, err := p.client.GetApplicationLog(hash, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get application log: %w", err)
	}
	return log, nil
}

// ContractState returns deployment information for the given contract.
func (p *Provider) ContractState(scriptHash string) (*state.Contract, error) {
	hash, err := ParseAddressOrHash(scriptHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract state: %w", err)
	}
	cs, err := p.client.GetContractStateByHash(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract state: %w", err)
	}
	return cs, nil
}

// Storage returns a contract storage value for a base64-encoded key. The
// value comes back base64-encoded the way the node serves it.
func (p *Provider) Storage(scriptHash, key string) (string, error) {
	hash, err := ParseAddressOrHash(scriptHash)
	if err != nil {
		return "", fmt.Errorf("failed to get storage: %w", err)
	}
	rawKey, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return "", fmt.Errorf("failed to get storage: invalid base64 key: %s", key)
	}
	value, err := p.client.GetStorageByHash(hash, rawKey)
	if err != nil {
		return "", fmt.Errorf("failed to get storage: %w", err)
	}
	return base64.StdEncoding.EncodeToString(value), nil
}

// InvokeFunction test-invokes a contract method with string parameters and
// an optional sender signer. Nothing is persisted on chain.
func (p *Provider) InvokeFunction(scriptHash, operation string, params []string, sender string) (*result.Invoke, error) {
	contract, err := ParseAddressOrHash(scriptHash)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke function: %w", err)
	}
	contractParams := make([]smartcontract.Parameter, 0, len(params))
	for _, param := range params {
		contractParams = append(contractParams, smartcontract.Parameter{
			Type:  smartcontract.StringType,
			Value: param,
		})
	}
	var signers []transaction.Signer
	if sender != "" {
		account, err := ParseAddressOrHash(sender)
		if err != nil {
			return nil, fmt.Errorf("failed to invoke function: %w", err)
		}
		signers = append(signers, transaction.Signer{
			Account: account,
			Scopes:  transaction.CalledByEntry,
		})
	}
	res, err := p.client.InvokeFunction(contract, operation, contractParams, signers)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke function: %w", err)
	}
	return res, nil
}

// NativeContracts returns the list of contracts built into the network.
func (p *Provider) NativeContracts() ([]state.Contract, error) {
	contracts, err := p.client.GetNativeContracts()
	if err != nil {
		return nil, fmt.Errorf("failed to get native contracts: %w", err)
	}
	return contracts, nil
}

// Committee returns the compressed public keys of the current committee
// members.
func (p *Provider) Committee() ([]string, error) {
	committee, err := p.client.GetCommittee()
	if err != nil {
		return nil, fmt.Errorf("failed to get committee: %w", err)
	}
	out := make([]string, 0, len(committee))
	for _, key := range committee {
		out = append(out, key.StringCompressed())
	}
	return out, nil
}

// NextBlockValidators returns the consensus nodes for the next block with
// their voting data.
func (p *Provider) NextBlockValidators() ([]result.Validator, error) {
	validators, err := p.client.GetNextBlockValidators()
	if err != nil {
		return nil, fmt.Errorf("failed to get next block validators: %w", err)
	}
	return validators, nil
}

// Candidates returns the registered validator candidates with their votes.
func (p *Provider) Candidates() ([]result.Candidate, error) {
	candidates, err := p.client.GetCandidates()
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	return candidates, nil
}

// NEP17Balances returns the fungible token balances of an account.
func (p *Provider) NEP17Balances(addr string) (*result.NEP17Balances, error) {
	account, err := ParseAddressOrHash(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-17 balances: %w", err)
	}
	balances, err := p.client.GetNEP17Balances(account)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-17 balances: %w", err)
	}
	return balances, nil
}

// NEP17Transfers returns the fungible token transfer history of an account,
// optionally starting from a millisecond timestamp. The positional parameter
// order [address, timestamp] is fixed by the typed client.
func (p *Provider) NEP17Transfers(addr string, timestamp *uint64) (*result.NEP17Transfers, error) {
	account, err := ParseAddressOrHash(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-17 transfers: %w", err)
	}
	transfers, err := p.client.GetNEP17Transfers(account, timestamp, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-17 transfers: %w", err)
	}
	return transfers, nil
}

// NEP11Balances returns the non-fungible token balances of an account.
func (p *Provider) NEP11Balances(addr string) (*result.NEP11Balances, error) {
	account, err := ParseAddressOrHash(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-11 balances: %w", err)
	}
	balances, err := p.client.GetNEP11Balances(account)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-11 balances: %w", err)
	}
	return balances, nil
}

// NEP11Properties returns the custom properties of a non-fungible token.
// The token ID is hex-encoded, matching the node API.
func (p *Provider) NEP11Properties(contractHash, tokenID string) (map[string]any, error) {
	contract, err := ParseAddressOrHash(contractHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-11 properties: %w", err)
	}
	token, err := hex.DecodeString(tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-11 properties: invalid hex token ID: %s", tokenID)
	}
	properties, err := p.client.GetNEP11Properties(contract, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-11 properties: %w", err)
	}
	return properties, nil
}

// NEP11Transfers returns the non-fungible token transfer history of an
// account, optionally starting from a millisecond timestamp.
func (p *Provider) NEP11Transfers(addr string, timestamp *uint64) (*result.NEP11Transfers, error) {
	account, err := ParseAddressOrHash(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-11 transfers: %w", err)
	}
	transfers, err := p.client.GetNEP11Transfers(account, timestamp, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-11 transfers: %w", err)
	}
	return transfers, nil
}

// UnclaimedGas returns the unclaimed GAS amount of an account.
func (p *Provider) UnclaimedGas(addr string) (result.UnclaimedGas, error) {
	account, err := ParseAddressOrHash(addr)
	if err != nil {
		return result.UnclaimedGas{}, fmt.Errorf("failed to get unclaimed gas: %w", err)
	}
	gas, err := p.client.GetUnclaimedGas(address.Uint160ToString(account))
	if err != nil {
		return result.UnclaimedGas{}, fmt.Errorf("failed to get unclaimed gas: %w", err)
	}
	return gas, nil
}

// ConnectionCount returns the number of peers the node is connected to.
func (p *Provider) ConnectionCount() (int, error) {
	count, err := p.client.GetConnectionCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get connection count: %w", err)
	}
	return count, nil
}

// Peers returns the peers the node knows about, grouped by state.
func (p *Provider) Peers() (*result.GetPeers, error) {
	peers, err := p.client.GetPeers()
	if err != nil {
		return nil, fmt.Errorf("failed to get peers: %w", err)
	}
	return peers, nil
}

// Version returns the node's version and protocol information.
func (p *Provider) Version() (*result.Version, error) {
	version, err := p.client.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// StateRoot returns the state root at the given block height. StateService
// plugin only.
func (p *Provider) StateRoot(index uint32) (*state.MPTRoot, error) {
	root, err := p.client.GetStateRootByHeight(index)
	if err != nil {
		return nil, fmt.Errorf("failed to get state root: %w", err)
	}
	return root, nil
}

// StateHeight returns the local and validated state root heights.
// StateService plugin only.
func (p *Provider) StateHeight() (*result.StateHeight, error) {
	height, err := p.client.GetStateHeight()
	if err != nil {
		return nil, fmt.Errorf("failed to get state height: %w", err)
	}
	return height, nil
}
