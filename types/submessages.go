package types

import (
	"encoding/json"
	"fmt"
)

type replyOn int

const (
	UnsetReplyOn replyOn = iota // The default value. We never return this in any valid instance (see toReplyOn).
	ReplyAlways
	ReplySuccess
	ReplyError
	ReplyNever
)

var fromReplyOn = map[replyOn]string{
	ReplyAlways:  "always",
	ReplySuccess: "success",
	ReplyError:   "error",
	ReplyNever:   "never",
}

var toReplyOn = map[string]replyOn{
	"always":  ReplyAlways,
	"success": ReplySuccess,
	"error":   ReplyError,
	"never":   ReplyNever,
}

func (r replyOn) String() string {
	return fromReplyOn[r]
}

func (r replyOn) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *replyOn) UnmarshalJSON(b []byte) error {
	var j string
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	parsed, ok := toReplyOn[j]
	if !ok {
		return fmt.Errorf("invalid reply_on value '%v'", j)
	}
	*r = parsed
	return nil
}

// SubMsg wraps a CosmosMsg with some metadata for handling replies (ID).
// The host invokes the reply entry point with the same ID when the
// sub-message result matches ReplyOn.
type SubMsg struct {
	// An arbitrary ID chosen by the contract, matched in the reply entry point.
	ID      uint64    `json:"id"`
	Msg     CosmosMsg `json:"msg"`
	ReplyOn replyOn   `json:"reply_on"`
}

// Reply is the result object handed to the reply entry point. We always get
// the ID of the sub-message back and must handle success and error cases
// ourselves.
type Reply struct {
	ID     uint64       `json:"id"`
	Result SubMsgResult `json:"result"`
}

// SubMsgResult is the raw result of executing a SubMsg.
// Exactly one of the fields is set.
type SubMsgResult struct {
	Ok  *SubMsgResponse `json:"ok,omitempty"`
	Err string          `json:"error,omitempty"`
}

// SubMsgResponse contains the information we get back from a successful
// sub-message execution.
type SubMsgResponse struct {
	Events []Event `json:"events"`
	Data   []byte  `json:"data,omitempty"`
}

// Event represents an event emitted during sub-message execution.
type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

// Response defines the return value of the reply entry point. Data, when
// set, overwrites the acknowledgement already attached by the receive
// handler.
type Response struct {
	Messages   []SubMsg         `json:"messages"`
	Data       []byte           `json:"data,omitempty"`
	Attributes []EventAttribute `json:"attributes"`
}
