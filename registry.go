package catalystibc

import (
	"encoding/json"

	"github.com/catalystdao/catalyst-ibc-interface/types"
)

// Registry keys are "channels/<channel-id>".
var channelKeyPrefix = []byte("channels/")

func channelKey(channelID string) []byte {
	return append(append([]byte(nil), channelKeyPrefix...), channelID...)
}

// prefixRange returns the [start, end) iterator bounds covering every key
// with the given prefix.
func prefixRange(prefix []byte) (start, end []byte) {
	start = prefix
	end = append([]byte(nil), prefix...)
	end[len(end)-1]++
	return start, end
}

// saveChannel upserts the registry entry for a channel id, overwriting any
// prior entry.
func (c *Contract) saveChannel(channelID string, info types.ChannelInfo) error {
	bz, err := json.Marshal(info)
	if err != nil {
		return err
	}
	c.store.Set(channelKey(channelID), bz)
	return nil
}

// removeChannel deletes the registry entry for a channel id. Removing an
// absent id is not an error.
func (c *Contract) removeChannel(channelID string) {
	c.store.Delete(channelKey(channelID))
}

// loadChannel looks up the registry entry for a channel id. The second
// return is false when no entry exists.
func (c *Contract) loadChannel(channelID string) (types.ChannelInfo, bool, error) {
	bz := c.store.Get(channelKey(channelID))
	if bz == nil {
		return types.ChannelInfo{}, false, nil
	}
	var info types.ChannelInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		return types.ChannelInfo{}, false, err
	}
	return info, true, nil
}

// ChannelRecord pairs a channel id with its registry entry.
type ChannelRecord struct {
	ChannelID string            `json:"channel_id"`
	Info      types.ChannelInfo `json:"info"`
}

// listChannels returns every open channel in key order.
func (c *Contract) listChannels() ([]ChannelRecord, error) {
	start, end := prefixRange(channelKeyPrefix)
	iter := c.store.Iterator(start, end)
	defer iter.Close()

	var out []ChannelRecord
	for ; iter.Valid(); iter.Next() {
		var info types.ChannelInfo
		if err := json.Unmarshal(iter.Value(), &info); err != nil {
			return nil, err
		}
		out = append(out, ChannelRecord{
			ChannelID: string(iter.Key()[len(channelKeyPrefix):]),
			Info:      info,
		})
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return out, nil
}
