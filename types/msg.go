package types

import "encoding/json"

// EventAttribute is one key/value pair of the log event returned over the
// host interface.
type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CosmosMsg represents a message the contract asks the host to dispatch.
// Exactly one of the fields is set.
type CosmosMsg struct {
	Wasm *WasmMsg `json:"wasm,omitempty"`
	IBC  *IBCMsg  `json:"ibc,omitempty"`
}

// WasmMsg represents a message to the wasm module.
type WasmMsg struct {
	Execute *ExecuteMsg `json:"execute,omitempty"`
}

// ExecuteMsg is a request to call a given (already instantiated) contract
// with the given (contract-specific, json-encoded) message.
type ExecuteMsg struct {
	ContractAddr string `json:"contract_addr"`
	Msg          []byte `json:"msg"`
	Funds        []Coin `json:"funds"`
}

// Coin is a string representation of the sdk.Coin type (more portable than sdk.Int)
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// IBCMsg represents a message for the IBC transport.
type IBCMsg struct {
	SendPacket *SendPacketMsg `json:"send_packet,omitempty"`
}

// SendPacketMsg hands an encoded payload to the transport for delivery over
// the given (open) channel.
type SendPacketMsg struct {
	ChannelID string     `json:"channel_id"`
	Data      []byte     `json:"data"`
	Timeout   IBCTimeout `json:"timeout"`
}

// VaultMsg is the execute interface of a Catalyst vault, as far as this
// contract is concerned. Exactly one of the fields is set. These six calls
// are the only points of contact with vault accounting; the interface never
// reads or writes vault balances directly.
type VaultMsg struct {
	ReceiveAsset     *ReceiveAssetMsg     `json:"receive_asset,omitempty"`
	ReceiveLiquidity *ReceiveLiquidityMsg `json:"receive_liquidity,omitempty"`

	OnSendAssetSuccess     *OnSendAssetResponseMsg     `json:"on_send_asset_success,omitempty"`
	OnSendAssetFailure     *OnSendAssetResponseMsg     `json:"on_send_asset_failure,omitempty"`
	OnSendLiquiditySuccess *OnSendLiquidityResponseMsg `json:"on_send_liquidity_success,omitempty"`
	OnSendLiquidityFailure *OnSendLiquidityResponseMsg `json:"on_send_liquidity_failure,omitempty"`
}

// ReceiveAssetMsg completes an inbound asset swap on the destination vault.
// FromVault and FromAsset are opaque source-chain identifiers, used by the
// vault for logging and escrow derivation only.
type ReceiveAssetMsg struct {
	ChannelID    string `json:"channel_id"`
	FromVault    []byte `json:"from_vault"`
	ToAssetIndex uint8  `json:"to_asset_index"`
	ToAccount    string `json:"to_account"`
	U            U256   `json:"u"`
	// MinOut is in the local amount domain, converted from wire scale
	MinOut             Uint128 `json:"min_out"`
	FromAmount         U256    `json:"from_amount"`
	FromAsset          []byte  `json:"from_asset"`
	FromBlockNumberMod uint32  `json:"from_block_number_mod"`
	CalldataTarget     string  `json:"calldata_target,omitempty"`
	Calldata           []byte  `json:"calldata,omitempty"`
}

// ReceiveLiquidityMsg completes an inbound liquidity swap on the destination
// vault. It carries two output guarantees instead of one and no asset index.
type ReceiveLiquidityMsg struct {
	ChannelID          string  `json:"channel_id"`
	FromVault          []byte  `json:"from_vault"`
	ToAccount          string  `json:"to_account"`
	U                  U256    `json:"u"`
	MinVaultTokens     Uint128 `json:"min_vault_tokens"`
	MinReferenceAsset  Uint128 `json:"min_reference_asset"`
	FromAmount         U256    `json:"from_amount"`
	FromBlockNumberMod uint32  `json:"from_block_number_mod"`
	CalldataTarget     string  `json:"calldata_target,omitempty"`
	Calldata           []byte  `json:"calldata,omitempty"`
}

// OnSendAssetResponseMsg notifies the sending vault of the verdict for an
// outbound asset swap. Every field must match the values the vault used to
// create the escrow, so the vault can locate and release it.
type OnSendAssetResponseMsg struct {
	ChannelID      string  `json:"channel_id"`
	ToAccount      []byte  `json:"to_account"`
	U              U256    `json:"u"`
	Amount         Uint128 `json:"amount"`
	Asset          string  `json:"asset"`
	BlockNumberMod uint32  `json:"block_number_mod"`
}

// OnSendLiquidityResponseMsg is the liquidity analogue of
// OnSendAssetResponseMsg.
type OnSendLiquidityResponseMsg struct {
	ChannelID      string  `json:"channel_id"`
	ToAccount      []byte  `json:"to_account"`
	U              U256    `json:"u"`
	Amount         Uint128 `json:"amount"`
	BlockNumberMod uint32  `json:"block_number_mod"`
}

// WasmExecuteVault builds the CosmosMsg executing the given vault message on
// the given contract address.
func WasmExecuteVault(contractAddr string, msg *VaultMsg) (CosmosMsg, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return CosmosMsg{}, err
	}
	return CosmosMsg{
		Wasm: &WasmMsg{
			Execute: &ExecuteMsg{
				ContractAddr: contractAddr,
				Msg:          bz,
				Funds:        []Coin{},
			},
		},
	}, nil
}
