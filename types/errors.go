package types

import "fmt"

// InvalidChannelVersion rejects a channel handshake whose version string
// (local or counterparty) does not match the fixed protocol version.
type InvalidChannelVersion struct {
	Version string `json:"version"`
}

var _ error = InvalidChannelVersion{}

func (e InvalidChannelVersion) Error() string {
	return fmt.Sprintf("invalid channel version: %s", e.Version)
}

// UnknownReplyID indicates a reply with an ID this contract never issued.
// This is a host/contract mismatch and should be unreachable in correct
// deployments.
type UnknownReplyID struct {
	ID uint64 `json:"id"`
}

var _ error = UnknownReplyID{}

func (e UnknownReplyID) Error() string {
	return fmt.Sprintf("unknown reply id: %d", e.ID)
}

// ChannelNotFound indicates a send or query against a channel id that has no
// open-channel registry entry.
type ChannelNotFound struct {
	ChannelID string `json:"channel_id"`
}

var _ error = ChannelNotFound{}

func (e ChannelNotFound) Error() string {
	return fmt.Sprintf("channel not found: %s", e.ChannelID)
}

// OverflowError indicates a wire-scale numeric value that does not fit the
// target numeric type. This is an expected decode-time failure, never a
// panic.
type OverflowError struct {
	Value      string `json:"value"`
	TargetType string `json:"target_type"`
}

var _ error = OverflowError{}

func (e OverflowError) Error() string {
	return fmt.Sprintf("value %s overflows %s", e.Value, e.TargetType)
}
