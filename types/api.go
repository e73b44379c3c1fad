package types

type (
	// HumanizeAddressFunc is a type for functions that convert a canonical address (bytes)
	// to a human readable address (typically bech32).
	HumanizeAddressFunc func([]byte) (string, error)
	// CanonicalizeAddressFunc is a type for functions that convert a human readable address
	// (typically bech32) to a canonical address (bytes).
	CanonicalizeAddressFunc func(string) ([]byte, error)
	// ValidateAddressFunc is a type for functions that validate a human readable address
	// (typically bech32).
	ValidateAddressFunc func(string) error
)

// GoAPI groups the address hooks of the local chain. Address formats are
// chain-specific and opaque to the packet codec, so validation is injected
// here and applied at the dispatch/reconcile call sites.
type GoAPI struct {
	HumanizeAddress     HumanizeAddressFunc
	CanonicalizeAddress CanonicalizeAddressFunc
	ValidateAddress     ValidateAddressFunc
}
