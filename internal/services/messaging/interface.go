package messaging

import "context"

// Service is the interface for the announcer lines shown alongside the scoreboard
type Service interface {
	// GetHammerMessage returns a line for a team gaining the hammer
	GetHammerMessage(ctx context.Context, input *GetHammerMessageInput) (*GetHammerMessageOutput, error)

	// GetCheckInMessage returns a line for a player badging in
	GetCheckInMessage(ctx context.Context, input *GetCheckInMessageInput) (*GetCheckInMessageOutput, error)

	// GetInvalidScanMessage returns a line for an unknown or repeated badge
	GetInvalidScanMessage(ctx context.Context, input *GetInvalidScanMessageInput) (*GetInvalidScanMessageOutput, error)

	// GetEndSummaryMessage returns a line for a locked end card
	GetEndSummaryMessage(ctx context.Context, input *GetEndSummaryMessageInput) (*GetEndSummaryMessageOutput, error)

	// GetGameOverMessage returns a line for the final end
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
