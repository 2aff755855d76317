package ws

import (
	"bytes"
	"encoding/json"

	"github.com/roushou/polyte/clob/types"
)

// decodeFrame turns one wire frame into zero or more messages. Keepalive and
// housekeeping frames decode to nothing; frames that cannot be classified are
// protocol errors and terminate the stream.
func decodeFrame(data []byte) ([]Message, error) {
	data = bytes.TrimSpace(data)

	// Keepalive replies and empty housekeeping frames carry no events.
	switch string(data) {
	case "", "PONG", "{}":
		return nil, nil
	}

	if data[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil, types.WrapError(types.KindProtocol, err, "decode event array")
		}
		if len(elems) == 0 {
			return nil, types.NewError(types.KindProtocol, "empty event array")
		}
		msgs := make([]Message, 0, len(elems))
		for _, elem := range elems {
			msg, err := decodeEvent(elem)
			if err != nil {
				return nil, err
			}
			if msg != nil {
				msgs = append(msgs, msg)
			}
		}
		return msgs, nil
	}

	var peek struct {
		EventType string `json:"event_type"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return nil, types.WrapError(types.KindProtocol, err, "decode event")
	}
	if peek.EventType == "" {
		// Objects without an event type are server housekeeping; skip them.
		return nil, nil
	}

	msg, err := decodeEvent(data)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, nil
	}
	return []Message{msg}, nil
}

// decodeEvent decodes one event object by its event_type.
func decodeEvent(data []byte) (Message, error) {
	var peek struct {
		EventType string `json:"event_type"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return nil, types.WrapError(types.KindProtocol, err, "decode event")
	}

	var msg Message
	switch peek.EventType {
	case EventTypeBook:
		msg = &BookMessage{}
	case EventTypePriceChange:
		msg = &PriceChangeMessage{}
	case EventTypeTickSizeChange:
		msg = &TickSizeChangeMessage{}
	case EventTypeLastTradePrice:
		msg = &LastTradePriceMessage{}
	case EventTypeTrade:
		msg = &TradeMessage{}
	case EventTypeOrder:
		msg = &OrderMessage{}
	case "":
		return nil, nil
	default:
		return nil, types.Errorf(types.KindProtocol, "unknown event type %q", peek.EventType)
	}

	if err := json.Unmarshal(data, msg); err != nil {
		return nil, types.WrapError(types.KindProtocol, err, "decode "+peek.EventType+" event")
	}
	return msg, nil
}
