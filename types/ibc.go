package types

type IBCEndpoint struct {
	PortID    string `json:"port_id"`
	ChannelID string `json:"channel_id"`
}

type IBCChannel struct {
	Endpoint             IBCEndpoint `json:"endpoint"`
	CounterpartyEndpoint IBCEndpoint `json:"counterparty_endpoint"`
	Order                IBCOrder    `json:"order"`
	Version              string      `json:"version"`
	ConnectionID         string      `json:"connection_id"`
}

type IBCOrder = string

// These are the only two valid values for IBCOrder
const Unordered = "ORDER_UNORDERED"
const Ordered = "ORDER_ORDERED"

// IBCTimeoutHeight is a monotonically increasing data type that can be
// compared against another height for the purposes of updating and freezing
// clients. Ordering is (revision_number, timeout_height)
type IBCTimeoutHeight struct {
	RevisionNumber uint64 `json:"revision_number"`
	// block height after which the packet times out,
	// the height within the given revision
	TimeoutHeight uint64 `json:"timeout_height"`
}

// IBCTimeout is the timeout for an outgoing IBC packet. At least one of
// Block and Timestamp must be set.
type IBCTimeout struct {
	Block *IBCTimeoutHeight `json:"block,omitempty"`
	// Nanoseconds since UNIX epoch
	Timestamp Uint64 `json:"timestamp,omitempty"`
}

type IBCPacket struct {
	Data             []byte           `json:"data"`
	Src              IBCEndpoint      `json:"src"`
	Dest             IBCEndpoint      `json:"dest"`
	Sequence         uint64           `json:"sequence"`
	TimeoutHeight    IBCTimeoutHeight `json:"timeout_height"`
	TimeoutTimestamp uint64           `json:"timeout_timestamp"`
}

type IBCAcknowledgement struct {
	Acknowledgement []byte    `json:"acknowledgement"`
	OriginalPacket  IBCPacket `json:"original_packet"`
}

// ChannelInfo is the registry record kept for every open channel, keyed by
// the local channel id. An entry exists if and only if the channel is
// currently open and usable for sending.
type ChannelInfo struct {
	Endpoint             IBCEndpoint `json:"endpoint"`
	CounterpartyEndpoint IBCEndpoint `json:"counterparty_endpoint"`
	ConnectionID         string      `json:"connection_id"`
}

// Channel handshake messages. CounterpartyVersion is only set during the
// try/ack steps; it is empty on init/confirm.
type IBCChannelOpenMsg struct {
	Channel             IBCChannel `json:"channel"`
	CounterpartyVersion string     `json:"counterparty_version,omitempty"`
}

type IBCChannelConnectMsg struct {
	Channel             IBCChannel `json:"channel"`
	CounterpartyVersion string     `json:"counterparty_version,omitempty"`
}

type IBCChannelCloseMsg struct {
	Channel IBCChannel `json:"channel"`
}

type IBCPacketReceiveMsg struct {
	Packet  IBCPacket `json:"packet"`
	Relayer string    `json:"relayer"`
}

type IBCPacketAckMsg struct {
	Acknowledgement IBCAcknowledgement `json:"acknowledgement"`
	Relayer         string             `json:"relayer"`
}

type IBCPacketTimeoutMsg struct {
	Packet  IBCPacket `json:"packet"`
	Relayer string    `json:"relayer"`
}

// IBCBasicResponse is the return value of the ibc handlers that can dispatch
// messages on their own but have no meaningful return value to the calling
// code (connect, close, ack, timeout).
type IBCBasicResponse struct {
	// Messages comes directly from the contract and is its request for action
	Messages []SubMsg `json:"messages"`
	// attributes for a log event to return over the host interface
	Attributes []EventAttribute `json:"attributes"`
}

// IBCReceiveResponse defines the return value of packet receive processing.
// This "success" case should be returned even on application-level errors,
// where the Acknowledgement bytes encode the failure to be returned to the
// calling chain. (An outward error would abort processing of the packet and
// not inform the calling chain.)
type IBCReceiveResponse struct {
	// Messages comes directly from the contract and is its request for action
	Messages []SubMsg `json:"messages"`
	// binary encoded data returned to the calling chain as the acknowledgement
	Acknowledgement []byte `json:"acknowledgement"`
	// attributes for a log event to return over the host interface
	Attributes []EventAttribute `json:"attributes"`
}
