package catalystibc

import (
	"encoding/hex"

	"github.com/catalystdao/catalyst-ibc-interface/payload"
	"github.com/catalystdao/catalyst-ibc-interface/types"
)

// IBCPacketAck reconciles the counterparty's verdict for a packet this chain
// sent. Only the first acknowledgement byte is inspected; an empty or
// unrecognized acknowledgement is a silent no-op. The latter may mask a
// misbehaving counterparty, so the event log at least records it.
func (c *Contract) IBCPacketAck(msg types.IBCPacketAckMsg) *types.IBCBasicResponse {
	ack := msg.Acknowledgement.Acknowledgement
	if len(ack) == 0 {
		return unrecognizedAckResponse(ack)
	}

	switch ack[0] {
	case AckSuccess:
		return c.onPacketResponse(msg.Acknowledgement.OriginalPacket, true)
	case AckFail:
		return c.onPacketResponse(msg.Acknowledgement.OriginalPacket, false)
	default:
		return unrecognizedAckResponse(ack)
	}
}

// IBCPacketTimeout reconciles a packet the transport gave up on. A timeout
// is definitionally an unsuccessful round trip, so it always takes the
// failure path.
func (c *Contract) IBCPacketTimeout(msg types.IBCPacketTimeoutMsg) *types.IBCBasicResponse {
	return c.onPacketResponse(msg.Packet, false)
}

// onPacketResponse decodes the original outgoing packet and issues the
// matching success/failure notification to the originating vault. The
// notification fields must match exactly what the vault used to create the
// escrow, so they are copied verbatim from the decoded packet.
//
// Decode or validation failures are swallowed: failing the ack/timeout
// handler would wedge the channel, so correctness prefers a silently-stuck
// escrow. The swallow path is surfaced as a reconcile_error attribute so
// hosts can index stuck escrows.
func (c *Contract) onPacketResponse(packet types.IBCPacket, success bool) *types.IBCBasicResponse {
	resp, err := c.buildPacketResponse(packet, success)
	if err != nil {
		return &types.IBCBasicResponse{
			Attributes: []types.EventAttribute{
				{Key: "action", Value: "reconcile"},
				{Key: "reconcile_error", Value: err.Error()},
			},
		}
	}
	return resp
}

func (c *Contract) buildPacketResponse(packet types.IBCPacket, success bool) (*types.IBCBasicResponse, error) {
	pkt, err := payload.Decode(packet.Data)
	if err != nil {
		return nil, err
	}

	var fromVault string
	var vaultMsg types.VaultMsg

	switch {
	case pkt.SendAsset != nil:
		p := pkt.SendAsset

		// the originating vault is the sole destination of the notification
		fromVault, err = c.validateAddress(p.FromVault)
		if err != nil {
			return nil, err
		}
		amount, err := p.FromAmount.Uint128()
		if err != nil {
			return nil, err
		}

		// to_account, asset and block number are not validated: they must
		// match the values the escrow was derived from, whatever those were
		body := types.OnSendAssetResponseMsg{
			ChannelID:      packet.Dest.ChannelID,
			ToAccount:      p.ToAccount.Bytes(),
			U:              p.U,
			Amount:         amount,
			Asset:          p.FromAsset.String(),
			BlockNumberMod: p.BlockNumber,
		}
		if success {
			vaultMsg = types.VaultMsg{OnSendAssetSuccess: &body}
		} else {
			vaultMsg = types.VaultMsg{OnSendAssetFailure: &body}
		}

	case pkt.SendLiquidity != nil:
		p := pkt.SendLiquidity

		fromVault, err = c.validateAddress(p.FromVault)
		if err != nil {
			return nil, err
		}
		amount, err := p.FromAmount.Uint128()
		if err != nil {
			return nil, err
		}

		body := types.OnSendLiquidityResponseMsg{
			ChannelID:      packet.Dest.ChannelID,
			ToAccount:      p.ToAccount.Bytes(),
			U:              p.U,
			Amount:         amount,
			BlockNumberMod: p.BlockNumber,
		}
		if success {
			vaultMsg = types.VaultMsg{OnSendLiquiditySuccess: &body}
		} else {
			vaultMsg = types.VaultMsg{OnSendLiquidityFailure: &body}
		}
	}

	cosmosMsg, err := types.WasmExecuteVault(fromVault, &vaultMsg)
	if err != nil {
		return nil, err
	}

	return &types.IBCBasicResponse{
		Messages: []types.SubMsg{{
			Msg:     cosmosMsg,
			ReplyOn: types.ReplyNever,
		}},
		Attributes: []types.EventAttribute{
			{Key: "action", Value: "reconcile"},
			{Key: "success", Value: boolString(success)},
		},
	}, nil
}

func unrecognizedAckResponse(ack []byte) *types.IBCBasicResponse {
	return &types.IBCBasicResponse{
		Attributes: []types.EventAttribute{
			{Key: "action", Value: "reconcile"},
			{Key: "unrecognized_acknowledgement", Value: hex.EncodeToString(ack)},
		},
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
