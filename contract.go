// Package catalystibc implements the IBC interface of the Catalyst
// cross-chain AMM: channel lifecycle and version negotiation, the dispatch
// of inbound Catalyst V1 packets into vault calls, and the reconciliation of
// acknowledgements, timeouts and sub-call replies into exactly-once
// success/failure notifications towards the sending vault.
//
// The contract never touches vault accounting directly: every effect is
// expressed as a message in the returned response, executed by the host
// within the same transaction.
package catalystibc

import "github.com/catalystdao/catalyst-ibc-interface/types"

// ChannelVersion is the protocol version negotiated during the channel
// handshake. It must match on both ends of the channel.
const ChannelVersion = "catalyst-v1"

// ReceiveReplyID tags the vault sub-call issued on packet receive, so the
// host routes its outcome back into Reply. It is the only reply id this
// contract ever issues.
const ReceiveReplyID uint64 = 0x100

// The two legal wire acknowledgements. An acknowledgement is exactly one
// byte; no other layout is ever produced by this contract.
const (
	AckSuccess byte = 0
	AckFail    byte = 1
)

func ackSuccess() []byte {
	return []byte{AckSuccess}
}

func ackFail() []byte {
	return []byte{AckFail}
}

// Contract wires the packet-protocol layer to its host: a key-value store
// holding the open-channel registry and the address hooks of the local
// chain. All entry points are invoked synchronously by the host, one
// transport event at a time.
type Contract struct {
	store KVStore
	api   types.GoAPI
}

// NewContract creates the interface contract on top of the given store and
// address hooks.
func NewContract(store KVStore, api types.GoAPI) *Contract {
	return &Contract{
		store: store,
		api:   api,
	}
}
