package models

import "time"

// Button is a logical remote button
type Button string

const (
	ButtonPower   Button = "power"
	ButtonTeamA   Button = "team_a"
	ButtonTeamB   Button = "team_b"
	ButtonConfirm Button = "confirm"
	ButtonUp      Button = "up"
	ButtonDown    Button = "down"
	ButtonLeft    Button = "left"
	ButtonRight   Button = "right"
)

// Buttons lists every logical button
var Buttons = []Button{
	ButtonPower,
	ButtonTeamA,
	ButtonTeamB,
	ButtonConfirm,
	ButtonUp,
	ButtonDown,
	ButtonLeft,
	ButtonRight,
}

// EventKind distinguishes remote presses from badge reads
type EventKind string

const (
	// EventButton is a remote control button press
	EventButton EventKind = "button"

	// EventBadge is a proximity badge read
	EventBadge EventKind = "badge"
)

// Event is a single hardware input, in the order it was observed
type Event struct {
	Kind    EventKind
	Button  Button
	BadgeID string
	At      time.Time
}

// ButtonEvent builds a button press event
func ButtonEvent(b Button, at time.Time) Event {
	return Event{Kind: EventButton, Button: b, At: at}
}

// BadgeEvent builds a badge read event
func BadgeEvent(id string, at time.Time) Event {
	return Event{Kind: EventBadge, BadgeID: id, At: at}
}

// Tone is the kind of short feedback sound played on input
type Tone string

const (
	// ToneAccepted acknowledges a press that reached a handler
	ToneAccepted Tone = "accepted"

	// ToneInvalid signals a rejected scan or move
	ToneInvalid Tone = "invalid"
)
