package catalystibc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystdao/catalyst-ibc-interface/types"
)

func TestChannelOpen(t *testing.T) {
	c := testContract(t)

	t.Run("matching versions succeed", func(t *testing.T) {
		err := c.IBCChannelOpen(types.IBCChannelOpenMsg{
			Channel:             testChannel("channel-0"),
			CounterpartyVersion: ChannelVersion,
		})
		require.NoError(t, err)
	})

	t.Run("counterparty version absent on init", func(t *testing.T) {
		err := c.IBCChannelOpen(types.IBCChannelOpenMsg{
			Channel: testChannel("channel-0"),
		})
		require.NoError(t, err)
	})

	t.Run("wrong local version fails", func(t *testing.T) {
		channel := testChannel("channel-0")
		channel.Version = "ics20-1"
		err := c.IBCChannelOpen(types.IBCChannelOpenMsg{Channel: channel})
		require.Error(t, err)
		var versionErr types.InvalidChannelVersion
		require.ErrorAs(t, err, &versionErr)
		assert.Equal(t, "ics20-1", versionErr.Version)
	})

	t.Run("wrong counterparty version fails", func(t *testing.T) {
		err := c.IBCChannelOpen(types.IBCChannelOpenMsg{
			Channel:             testChannel("channel-0"),
			CounterpartyVersion: "catalyst-v2",
		})
		require.Error(t, err)
		var versionErr types.InvalidChannelVersion
		require.ErrorAs(t, err, &versionErr)
		assert.Equal(t, "catalyst-v2", versionErr.Version)
	})
}

func TestChannelConnect(t *testing.T) {
	t.Run("persists channel info", func(t *testing.T) {
		c := testContract(t)
		connectChannel(t, c, "channel-3")

		info, err := c.QueryChannelInfo("channel-3")
		require.NoError(t, err)
		assert.Equal(t, "channel-3", info.Endpoint.ChannelID)
		assert.Equal(t, "wasm.catalyst", info.Endpoint.PortID)
		assert.Equal(t, "channel-9", info.CounterpartyEndpoint.ChannelID)
		assert.Equal(t, "connection-0", info.ConnectionID)
	})

	t.Run("version mismatch leaves registry unchanged", func(t *testing.T) {
		c := testContract(t)
		channel := testChannel("channel-3")
		channel.Version = "bad-version"
		_, err := c.IBCChannelConnect(types.IBCChannelConnectMsg{Channel: channel})
		require.Error(t, err)

		_, err = c.QueryChannelInfo("channel-3")
		require.Error(t, err)
		assert.ErrorAs(t, err, &types.ChannelNotFound{})
	})

	t.Run("reconnect overwrites entry", func(t *testing.T) {
		c := testContract(t)
		connectChannel(t, c, "channel-3")

		channel := testChannel("channel-3")
		channel.ConnectionID = "connection-1"
		_, err := c.IBCChannelConnect(types.IBCChannelConnectMsg{
			Channel:             channel,
			CounterpartyVersion: ChannelVersion,
		})
		require.NoError(t, err)

		info, err := c.QueryChannelInfo("channel-3")
		require.NoError(t, err)
		assert.Equal(t, "connection-1", info.ConnectionID)
	})
}

func TestChannelClose(t *testing.T) {
	c := testContract(t)
	connectChannel(t, c, "channel-5")

	_, err := c.IBCChannelClose(types.IBCChannelCloseMsg{Channel: testChannel("channel-5")})
	require.NoError(t, err)

	_, err = c.QueryChannelInfo("channel-5")
	assert.ErrorAs(t, err, &types.ChannelNotFound{})

	// closing an already closed channel is not an error
	_, err = c.IBCChannelClose(types.IBCChannelCloseMsg{Channel: testChannel("channel-5")})
	require.NoError(t, err)
}

func TestQueryListChannels(t *testing.T) {
	c := testContract(t)

	resp, err := c.QueryListChannels()
	require.NoError(t, err)
	assert.Empty(t, resp.Channels)

	connectChannel(t, c, "channel-2")
	connectChannel(t, c, "channel-0")
	connectChannel(t, c, "channel-1")

	resp, err = c.QueryListChannels()
	require.NoError(t, err)
	require.Len(t, resp.Channels, 3)
	// key order
	assert.Equal(t, "channel-0", resp.Channels[0].ChannelID)
	assert.Equal(t, "channel-1", resp.Channels[1].ChannelID)
	assert.Equal(t, "channel-2", resp.Channels[2].ChannelID)
}
