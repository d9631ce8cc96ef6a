package domain

const (
	// SUI_COIN_TYPE is the coin type used to pay gas
	SUI_COIN_TYPE = "0x2::sui::SUI"

	// JOURNAL_MODULE is the Move module holding the journal entry points and events
	JOURNAL_MODULE = "journal"

	// UNKNOWN_ACTION_TYPE is recorded when the sponsored action cannot be derived
	UNKNOWN_ACTION_TYPE = "unknown"
)

// Network is the chain network selector
type Network string

const (
	NetworkMainnet  Network = "mainnet"
	NetworkTestnet  Network = "testnet"
	NetworkDevnet   Network = "devnet"
	NetworkLocalnet Network = "localnet"
)

// IsValidNetwork checks if a network is known
func IsValidNetwork(n Network) bool {
	return n == NetworkMainnet ||
		n == NetworkTestnet ||
		n == NetworkDevnet ||
		n == NetworkLocalnet
}

// FullnodeURL returns the public fullnode JSON-RPC URL of the network
func (n Network) FullnodeURL() string {
	switch n {
	case NetworkMainnet:
		return "https://fullnode.mainnet.sui.io:443"
	case NetworkTestnet:
		return "https://fullnode.testnet.sui.io:443"
	case NetworkDevnet:
		return "https://fullnode.devnet.sui.io:443"
	case NetworkLocalnet:
		return "http://127.0.0.1:9000"
	default:
		return ""
	}
}
