package pkg

import (
	"encoding/json"
	"log"
)

type MessageType int

const (
	TypeMessageTransport MessageType = iota
	TypeMessageConnect
	TypeMessageScore
	TypeMessageLeaderboard
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageTransport:
		return "TypeMessageTransport"
	case TypeMessageConnect:
		return "TypeMessageConnect"
	case TypeMessageScore:
		return "TypeMessageScore"
	case TypeMessageLeaderboard:
		return "TypeMessageLeaderboard"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
	Encode() json.RawMessage
}

// MessageTransport is the envelope every message travels in, one JSON
// object per line on the wire.
type MessageTransport struct {
	MsgType  MessageType
	Data     json.RawMessage
	PlayerId int
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

func (m MessageTransport) Encode() json.RawMessage {
	return Encode(m)
}

// MessageConnect greets a new player with their assigned name and the
// current standings.
type MessageConnect struct {
	Name  string
	Board []ScoreEntry
}

func (m MessageConnect) Type() MessageType {
	return TypeMessageConnect
}

func (m MessageConnect) Encode() json.RawMessage {
	return Encode(m)
}

// MessageScore reports the player's running score after a roll or reset.
type MessageScore struct {
	Score int
}

func (m MessageScore) Type() MessageType {
	return TypeMessageScore
}

func (m MessageScore) Encode() json.RawMessage {
	return Encode(m)
}

// MessageLeaderboard carries the top standings, broadcast whenever they
// change.
type MessageLeaderboard struct {
	Board []ScoreEntry
}

func (m MessageLeaderboard) Type() MessageType {
	return TypeMessageLeaderboard
}

func (m MessageLeaderboard) Encode() json.RawMessage {
	return Encode(m)
}

func Encode(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}
	return data
}

func Decode(data []byte, v interface{}) {
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Failed to decode message: %v", err)
	}
}
