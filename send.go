package catalystibc

import (
	"github.com/catalystdao/catalyst-ibc-interface/payload"
	"github.com/catalystdao/catalyst-ibc-interface/types"
)

// SendCrossChainAsset encodes an outbound asset swap and hands it to the
// transport over the given channel. The channel must be open (present in the
// registry); the vault has already escrowed the source amount before calling
// this.
func (c *Contract) SendCrossChainAsset(channelID string, p payload.SendAssetPayload, timeout types.IBCTimeout) (*types.Response, error) {
	if err := c.requireChannel(channelID); err != nil {
		return nil, err
	}

	pkt := payload.CatalystV1Packet{SendAsset: &p}
	return c.sendPacketResponse(channelID, "send_asset", pkt.Encode(), timeout), nil
}

// SendCrossChainLiquidity is the liquidity analogue of SendCrossChainAsset.
func (c *Contract) SendCrossChainLiquidity(channelID string, p payload.SendLiquidityPayload, timeout types.IBCTimeout) (*types.Response, error) {
	if err := c.requireChannel(channelID); err != nil {
		return nil, err
	}

	pkt := payload.CatalystV1Packet{SendLiquidity: &p}
	return c.sendPacketResponse(channelID, "send_liquidity", pkt.Encode(), timeout), nil
}

func (c *Contract) requireChannel(channelID string) error {
	_, found, err := c.loadChannel(channelID)
	if err != nil {
		return err
	}
	if !found {
		return types.ChannelNotFound{ChannelID: channelID}
	}
	return nil
}

func (c *Contract) sendPacketResponse(channelID, action string, data []byte, timeout types.IBCTimeout) *types.Response {
	return &types.Response{
		Messages: []types.SubMsg{{
			Msg: types.CosmosMsg{
				IBC: &types.IBCMsg{
					SendPacket: &types.SendPacketMsg{
						ChannelID: channelID,
						Data:      data,
						Timeout:   timeout,
					},
				},
			},
			ReplyOn: types.ReplyNever,
		}},
		Attributes: []types.EventAttribute{
			{Key: "action", Value: action},
			{Key: "channel_id", Value: channelID},
		},
	}
}
