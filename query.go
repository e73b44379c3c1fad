package catalystibc

import (
	"github.com/catalystdao/catalyst-ibc-interface/types"
)

// ListChannelsResponse lists every channel currently open for sending.
type ListChannelsResponse struct {
	Channels []ChannelRecord `json:"channels"`
}

// QueryListChannels returns the open-channel registry in key order.
func (c *Contract) QueryListChannels() (*ListChannelsResponse, error) {
	channels, err := c.listChannels()
	if err != nil {
		return nil, err
	}
	return &ListChannelsResponse{Channels: channels}, nil
}

// QueryChannelInfo returns the registry entry for one channel id, or
// ChannelNotFound when the channel is not open.
func (c *Contract) QueryChannelInfo(channelID string) (*types.ChannelInfo, error) {
	info, found, err := c.loadChannel(channelID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ChannelNotFound{ChannelID: channelID}
	}
	return &info, nil
}
