package catalystibc

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catalystdao/catalyst-ibc-interface/payload"
	"github.com/catalystdao/catalyst-ibc-interface/types"
)

// mockAPI accepts any address with the local bech32 prefix and rejects
// everything else, which is all the tests need to steer validation.
func mockAPI() types.GoAPI {
	return types.GoAPI{
		ValidateAddress: func(addr string) error {
			if !strings.HasPrefix(addr, "cosmos1") {
				return fmt.Errorf("invalid address: %s", addr)
			}
			return nil
		},
		CanonicalizeAddress: func(addr string) ([]byte, error) {
			return []byte(addr), nil
		},
		HumanizeAddress: func(canon []byte) (string, error) {
			return string(canon), nil
		},
	}
}

func testContract(t *testing.T) *Contract {
	t.Helper()
	return NewContract(NewMemStore(), mockAPI())
}

func testChannel(channelID string) types.IBCChannel {
	return types.IBCChannel{
		Endpoint:             types.IBCEndpoint{PortID: "wasm.catalyst", ChannelID: channelID},
		CounterpartyEndpoint: types.IBCEndpoint{PortID: "wasm.counterparty", ChannelID: "channel-9"},
		Order:                types.Unordered,
		Version:              ChannelVersion,
		ConnectionID:         "connection-0",
	}
}

func connectChannel(t *testing.T, c *Contract, channelID string) {
	t.Helper()
	_, err := c.IBCChannelConnect(types.IBCChannelConnectMsg{
		Channel:             testChannel(channelID),
		CounterpartyVersion: ChannelVersion,
	})
	require.NoError(t, err)
}

func mustBytes65(t *testing.T, s string) payload.Bytes65 {
	t.Helper()
	b, err := payload.NewBytes65([]byte(s))
	require.NoError(t, err)
	return b
}

func testAssetPayload(t *testing.T) *payload.SendAssetPayload {
	t.Helper()
	return &payload.SendAssetPayload{
		FromVault:    mustBytes65(t, "cosmos1fromvault"),
		ToVault:      mustBytes65(t, "cosmos1tovault"),
		ToAccount:    mustBytes65(t, "cosmos1toaccount"),
		U:            types.NewU256FromUint64(1234567),
		ToAssetIndex: 1,
		MinOut:       types.NewU256FromUint64(900),
		FromAmount:   types.NewU256FromUint64(1000),
		FromAsset:    mustBytes65(t, "uatom"),
		BlockNumber:  777,
	}
}

func testLiquidityPayload(t *testing.T) *payload.SendLiquidityPayload {
	t.Helper()
	return &payload.SendLiquidityPayload{
		FromVault:         mustBytes65(t, "cosmos1fromvault"),
		ToVault:           mustBytes65(t, "cosmos1tovault"),
		ToAccount:         mustBytes65(t, "cosmos1toaccount"),
		U:                 types.NewU256FromUint64(55555),
		MinVaultTokens:    types.NewU256FromUint64(10),
		MinReferenceAsset: types.NewU256FromUint64(20),
		FromAmount:        types.NewU256FromUint64(3000),
		BlockNumber:       31415,
	}
}

func inboundPacket(data []byte, destChannelID string) types.IBCPacket {
	return types.IBCPacket{
		Data:     data,
		Src:      types.IBCEndpoint{PortID: "wasm.counterparty", ChannelID: "channel-9"},
		Dest:     types.IBCEndpoint{PortID: "wasm.catalyst", ChannelID: destChannelID},
		Sequence: 1,
	}
}

// unmarshalVaultMsg digs the vault call out of a dispatched wasm execute.
func unmarshalVaultMsg(t *testing.T, sub types.SubMsg) (string, types.VaultMsg) {
	t.Helper()
	require.NotNil(t, sub.Msg.Wasm)
	require.NotNil(t, sub.Msg.Wasm.Execute)
	var msg types.VaultMsg
	require.NoError(t, json.Unmarshal(sub.Msg.Wasm.Execute.Msg, &msg))
	return sub.Msg.Wasm.Execute.ContractAddr, msg
}
