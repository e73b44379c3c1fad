package catalystibc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystdao/catalyst-ibc-interface/payload"
	"github.com/catalystdao/catalyst-ibc-interface/types"
)

func TestPacketReceiveAssetSwap(t *testing.T) {
	c := testContract(t)
	data := (&payload.CatalystV1Packet{SendAsset: testAssetPayload(t)}).Encode()

	resp := c.IBCPacketReceive(types.IBCPacketReceiveMsg{
		Packet: inboundPacket(data, "channel-0"),
	})

	// the success ack is attached before the vault call's result is known
	assert.Equal(t, []byte{AckSuccess}, resp.Acknowledgement)
	require.Len(t, resp.Messages, 1)

	sub := resp.Messages[0]
	assert.Equal(t, ReceiveReplyID, sub.ID)
	assert.Equal(t, types.ReplyAlways, sub.ReplyOn)

	addr, msg := unmarshalVaultMsg(t, sub)
	assert.Equal(t, "cosmos1tovault", addr)
	require.NotNil(t, msg.ReceiveAsset)
	recv := msg.ReceiveAsset
	assert.Equal(t, "channel-0", recv.ChannelID)
	assert.Equal(t, []byte("cosmos1fromvault"), recv.FromVault)
	assert.Equal(t, uint8(1), recv.ToAssetIndex)
	assert.Equal(t, "cosmos1toaccount", recv.ToAccount)
	assert.Equal(t, "1234567", recv.U.String())
	assert.Equal(t, "900", recv.MinOut.String())
	assert.Equal(t, "1000", recv.FromAmount.String())
	assert.Equal(t, []byte("uatom"), recv.FromAsset)
	assert.Equal(t, uint32(777), recv.FromBlockNumberMod)
	assert.Empty(t, recv.CalldataTarget)
	assert.Empty(t, recv.Calldata)
}

func TestPacketReceiveLiquiditySwap(t *testing.T) {
	c := testContract(t)
	data := (&payload.CatalystV1Packet{SendLiquidity: testLiquidityPayload(t)}).Encode()

	resp := c.IBCPacketReceive(types.IBCPacketReceiveMsg{
		Packet: inboundPacket(data, "channel-1"),
	})

	assert.Equal(t, []byte{AckSuccess}, resp.Acknowledgement)
	require.Len(t, resp.Messages, 1)

	addr, msg := unmarshalVaultMsg(t, resp.Messages[0])
	assert.Equal(t, "cosmos1tovault", addr)
	require.NotNil(t, msg.ReceiveLiquidity)
	recv := msg.ReceiveLiquidity
	assert.Equal(t, "channel-1", recv.ChannelID)
	assert.Equal(t, "cosmos1toaccount", recv.ToAccount)
	assert.Equal(t, "10", recv.MinVaultTokens.String())
	assert.Equal(t, "20", recv.MinReferenceAsset.String())
	assert.Equal(t, "3000", recv.FromAmount.String())
	assert.Equal(t, uint32(31415), recv.FromBlockNumberMod)
}

func TestPacketReceiveWithCalldata(t *testing.T) {
	c := testContract(t)
	asset := testAssetPayload(t)
	asset.Calldata = &payload.Calldata{
		Target: mustBytes65(t, "cosmos1calltarget"),
		Bytes:  []byte{1, 2, 3},
	}
	data := (&payload.CatalystV1Packet{SendAsset: asset}).Encode()

	resp := c.IBCPacketReceive(types.IBCPacketReceiveMsg{
		Packet: inboundPacket(data, "channel-0"),
	})

	assert.Equal(t, []byte{AckSuccess}, resp.Acknowledgement)
	require.Len(t, resp.Messages, 1)
	_, msg := unmarshalVaultMsg(t, resp.Messages[0])
	require.NotNil(t, msg.ReceiveAsset)
	assert.Equal(t, "cosmos1calltarget", msg.ReceiveAsset.CalldataTarget)
	assert.Equal(t, []byte{1, 2, 3}, msg.ReceiveAsset.Calldata)
}

func TestPacketReceiveNeverFails(t *testing.T) {
	failCases := map[string]func(t *testing.T) []byte{
		"malformed payload": func(t *testing.T) []byte {
			return []byte{0x00, 0x01, 0x02}
		},
		"unknown discriminant": func(t *testing.T) []byte {
			data := (&payload.CatalystV1Packet{SendAsset: testAssetPayload(t)}).Encode()
			data[0] = 0x7f
			return data
		},
		"invalid to_vault address": func(t *testing.T) []byte {
			asset := testAssetPayload(t)
			asset.ToVault = mustBytes65(t, "0xEvmStyleVault")
			return (&payload.CatalystV1Packet{SendAsset: asset}).Encode()
		},
		"invalid to_account address": func(t *testing.T) []byte {
			asset := testAssetPayload(t)
			asset.ToAccount = mustBytes65(t, "not-a-local-account")
			return (&payload.CatalystV1Packet{SendAsset: asset}).Encode()
		},
		"invalid calldata target": func(t *testing.T) []byte {
			asset := testAssetPayload(t)
			asset.Calldata = &payload.Calldata{Target: mustBytes65(t, "badtarget")}
			return (&payload.CatalystV1Packet{SendAsset: asset}).Encode()
		},
		"min_out exceeds local range": func(t *testing.T) []byte {
			asset := testAssetPayload(t)
			minOut, err := types.NewU256FromBig(new(big.Int).Lsh(big.NewInt(1), 200))
			require.NoError(t, err)
			asset.MinOut = minOut
			return (&payload.CatalystV1Packet{SendAsset: asset}).Encode()
		},
		"liquidity min_vault_tokens exceeds local range": func(t *testing.T) []byte {
			liq := testLiquidityPayload(t)
			minVaultTokens, err := types.NewU256FromBig(new(big.Int).Lsh(big.NewInt(1), 129))
			require.NoError(t, err)
			liq.MinVaultTokens = minVaultTokens
			return (&payload.CatalystV1Packet{SendLiquidity: liq}).Encode()
		},
	}

	for name, build := range failCases {
		t.Run(name, func(t *testing.T) {
			c := testContract(t)
			resp := c.IBCPacketReceive(types.IBCPacketReceiveMsg{
				Packet: inboundPacket(build(t), "channel-0"),
			})
			// failure acknowledgement, zero side effects
			assert.Equal(t, []byte{AckFail}, resp.Acknowledgement)
			assert.Empty(t, resp.Messages)
		})
	}
}

func TestReply(t *testing.T) {
	c := testContract(t)

	t.Run("success keeps the optimistic ack", func(t *testing.T) {
		resp, err := c.Reply(types.Reply{
			ID:     ReceiveReplyID,
			Result: types.SubMsgResult{Ok: &types.SubMsgResponse{}},
		})
		require.NoError(t, err)
		assert.Nil(t, resp.Data)
	})

	t.Run("failure overwrites the ack", func(t *testing.T) {
		resp, err := c.Reply(types.Reply{
			ID:     ReceiveReplyID,
			Result: types.SubMsgResult{Err: "vault rejected swap: min_out not met"},
		})
		require.NoError(t, err)
		assert.Equal(t, []byte{AckFail}, resp.Data)
	})

	t.Run("unknown reply id is fatal", func(t *testing.T) {
		_, err := c.Reply(types.Reply{
			ID:     0x200,
			Result: types.SubMsgResult{Ok: &types.SubMsgResponse{}},
		})
		require.Error(t, err)
		var unknownReply types.UnknownReplyID
		require.ErrorAs(t, err, &unknownReply)
		assert.Equal(t, uint64(0x200), unknownReply.ID)
	})
}
