package catalystibc

import (
	"github.com/catalystdao/catalyst-ibc-interface/payload"
	"github.com/catalystdao/catalyst-ibc-interface/types"
)

// IBCPacketReceive dispatches an inbound packet into the destination vault.
// It has no error return on purpose: a failed receive call would be read by
// the transport as a delivery problem rather than an application-level
// rejection, so every failure is folded into the failure acknowledgement
// with zero side effects.
//
// On success the success acknowledgement is attached optimistically,
// alongside the vault sub-call: only a subsequent Reply can retroactively
// downgrade it.
func (c *Contract) IBCPacketReceive(msg types.IBCPacketReceiveMsg) *types.IBCReceiveResponse {
	resp, err := c.onPacketReceive(msg.Packet)
	if err != nil {
		return &types.IBCReceiveResponse{
			Acknowledgement: ackFail(),
		}
	}
	return resp
}

func (c *Contract) onPacketReceive(packet types.IBCPacket) (*types.IBCReceiveResponse, error) {
	pkt, err := payload.Decode(packet.Data)
	if err != nil {
		return nil, err
	}

	var toVault string
	var vaultMsg types.VaultMsg

	switch {
	case pkt.SendAsset != nil:
		p := pkt.SendAsset

		toVault, err = c.validateAddress(p.ToVault)
		if err != nil {
			return nil, err
		}
		toAccount, err := c.validateAddress(p.ToAccount)
		if err != nil {
			return nil, err
		}
		minOut, err := p.MinOut.Uint128()
		if err != nil {
			return nil, err
		}
		calldataTarget, calldata, err := c.parseCalldata(p.Calldata)
		if err != nil {
			return nil, err
		}

		vaultMsg = types.VaultMsg{
			ReceiveAsset: &types.ReceiveAssetMsg{
				ChannelID: packet.Dest.ChannelID,
				// from_vault is not validated: its format belongs to the
				// source chain and it is only used for logging
				FromVault:          p.FromVault.Bytes(),
				ToAssetIndex:       p.ToAssetIndex,
				ToAccount:          toAccount,
				U:                  p.U,
				MinOut:             minOut,
				FromAmount:         p.FromAmount,
				FromAsset:          p.FromAsset.Bytes(),
				FromBlockNumberMod: p.BlockNumber,
				CalldataTarget:     calldataTarget,
				Calldata:           calldata,
			},
		}

	case pkt.SendLiquidity != nil:
		p := pkt.SendLiquidity

		toVault, err = c.validateAddress(p.ToVault)
		if err != nil {
			return nil, err
		}
		toAccount, err := c.validateAddress(p.ToAccount)
		if err != nil {
			return nil, err
		}
		minVaultTokens, err := p.MinVaultTokens.Uint128()
		if err != nil {
			return nil, err
		}
		minReferenceAsset, err := p.MinReferenceAsset.Uint128()
		if err != nil {
			return nil, err
		}
		calldataTarget, calldata, err := c.parseCalldata(p.Calldata)
		if err != nil {
			return nil, err
		}

		vaultMsg = types.VaultMsg{
			ReceiveLiquidity: &types.ReceiveLiquidityMsg{
				ChannelID:          packet.Dest.ChannelID,
				FromVault:          p.FromVault.Bytes(),
				ToAccount:          toAccount,
				U:                  p.U,
				MinVaultTokens:     minVaultTokens,
				MinReferenceAsset:  minReferenceAsset,
				FromAmount:         p.FromAmount,
				FromBlockNumberMod: p.BlockNumber,
				CalldataTarget:     calldataTarget,
				Calldata:           calldata,
			},
		}
	}

	cosmosMsg, err := types.WasmExecuteVault(toVault, &vaultMsg)
	if err != nil {
		return nil, err
	}

	return &types.IBCReceiveResponse{
		Acknowledgement: ackSuccess(),
		Messages: []types.SubMsg{{
			// reply on every outcome, so a failed vault call can downgrade
			// the optimistic acknowledgement
			ID:      ReceiveReplyID,
			Msg:     cosmosMsg,
			ReplyOn: types.ReplyAlways,
		}},
	}, nil
}

// Reply receives the outcome of the vault sub-call issued on packet receive.
// The transport's default handling of a failed sub-call would abort the
// whole receive with a generic failure; intercepting here lets the receive
// itself stand while the acknowledgement correctly reports the failure.
func (c *Contract) Reply(reply types.Reply) (*types.Response, error) {
	if reply.ID != ReceiveReplyID {
		return nil, types.UnknownReplyID{ID: reply.ID}
	}

	if reply.Result.Err != "" {
		return &types.Response{
			Data: ackFail(),
			Attributes: []types.EventAttribute{
				{Key: "action", Value: "receive_revert"},
				{Key: "error", Value: reply.Result.Err},
			},
		}, nil
	}

	return &types.Response{}, nil
}

// validateAddress resolves an identifier slot against the local chain's
// address format.
func (c *Contract) validateAddress(b payload.Bytes65) (string, error) {
	addr := b.String()
	if err := c.api.ValidateAddress(addr); err != nil {
		return "", err
	}
	return addr, nil
}

func (c *Contract) parseCalldata(cd *payload.Calldata) (target string, data []byte, err error) {
	if cd == nil {
		return "", nil, nil
	}
	target, err = c.validateAddress(cd.Target)
	if err != nil {
		return "", nil, err
	}
	return target, cd.Bytes, nil
}
