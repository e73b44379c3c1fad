package catalystibc

import (
	"github.com/catalystdao/catalyst-ibc-interface/types"
)

// IBCChannelOpen is invoked on the init and try steps of the channel
// handshake. It enforces the protocol version and has no side effects.
func (c *Contract) IBCChannelOpen(msg types.IBCChannelOpenMsg) error {
	return validateChannelConfig(msg.Channel, msg.CounterpartyVersion)
}

// IBCChannelConnect is invoked on the ack and confirm steps. It enforces the
// protocol version again and, on success, persists the channel into the
// open-channel registry, making it usable for sending.
func (c *Contract) IBCChannelConnect(msg types.IBCChannelConnectMsg) (*types.IBCBasicResponse, error) {
	if err := validateChannelConfig(msg.Channel, msg.CounterpartyVersion); err != nil {
		return nil, err
	}

	err := c.saveChannel(msg.Channel.Endpoint.ChannelID, types.ChannelInfo{
		Endpoint:             msg.Channel.Endpoint,
		CounterpartyEndpoint: msg.Channel.CounterpartyEndpoint,
		ConnectionID:         msg.Channel.ConnectionID,
	})
	if err != nil {
		return nil, err
	}

	return &types.IBCBasicResponse{
		Attributes: []types.EventAttribute{
			{Key: "action", Value: "channel_connect"},
			{Key: "channel_id", Value: msg.Channel.Endpoint.ChannelID},
		},
	}, nil
}

// IBCChannelClose removes the channel from the registry. Pending swaps tied
// to the channel are not recovered here: a replacement channel has to be
// established and the affected vaults re-pointed at it.
func (c *Contract) IBCChannelClose(msg types.IBCChannelCloseMsg) (*types.IBCBasicResponse, error) {
	c.removeChannel(msg.Channel.Endpoint.ChannelID)

	return &types.IBCBasicResponse{
		Attributes: []types.EventAttribute{
			{Key: "action", Value: "channel_close"},
			{Key: "channel_id", Value: msg.Channel.Endpoint.ChannelID},
		},
	}, nil
}

// validateChannelConfig enforces version agreement on every handshake step.
// The counterparty version is only present on the try/ack steps, so it is
// checked when set; at least one of the two steps sees it.
//
// Channel ordering is deliberately not constrained: existing counterparty
// deployments negotiate unordered channels and the protocol's escrow
// uniqueness does not rely on delivery order.
func validateChannelConfig(channel types.IBCChannel, counterpartyVersion string) error {
	if channel.Version != ChannelVersion {
		return types.InvalidChannelVersion{Version: channel.Version}
	}

	if counterpartyVersion != "" && counterpartyVersion != ChannelVersion {
		return types.InvalidChannelVersion{Version: counterpartyVersion}
	}

	return nil
}
