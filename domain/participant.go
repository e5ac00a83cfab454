// Package domain contains core concepts of the chat room.
// This file defines the lifecycle of a connection inside the room.
// No runtime, network, or UI logic should be added here.
package domain

type ConnectionState int

const (
	StateConnected ConnectionState = iota
	StateNamed
	StateClosed
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateNamed:
		return "named"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
