package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed makes message choice repeatable; zero uses the current time
	Seed int64
}

// GetHammerMessageInput contains parameters for a hammer announcement
type GetHammerMessageInput struct {
	TeamName string
	End      int
}

// GetHammerMessageOutput contains the announcement
type GetHammerMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetCheckInMessageInput contains parameters for a check-in announcement
type GetCheckInMessageInput struct {
	PlayerName string
	TeamName   string

	// Skip is true for the team's lead scorer
	Skip bool
}

// GetCheckInMessageOutput contains the announcement
type GetCheckInMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetInvalidScanMessageInput contains parameters for a rejected badge
type GetInvalidScanMessageInput struct {
	TeamName string

	// Duplicate is true when the badge already checked in
	Duplicate bool
}

// GetInvalidScanMessageOutput contains the announcement
type GetInvalidScanMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetEndSummaryMessageInput contains parameters for an end summary
type GetEndSummaryMessageInput struct {
	End     int
	NumEnds int

	// ScoringTeam is empty for a blank end
	ScoringTeam string
}

// GetEndSummaryMessageOutput contains the announcement
type GetEndSummaryMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput contains parameters for the final announcement
type GetGameOverMessageInput struct {
	TeamAName string
	TeamBName string
	NumEnds   int
}

// GetGameOverMessageOutput contains the announcement
type GetGameOverMessageOutput struct {
	Message string
	Tone    MessageTone
}
