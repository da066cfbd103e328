package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetHammerMessage returns a line for a team gaining the hammer
func (s *service) GetHammerMessage(ctx context.Context, input *GetHammerMessageInput) (*GetHammerMessageOutput, error) {
	if input == nil || input.TeamName == "" {
		return nil, errors.New("team name cannot be empty")
	}

	messages := []string{
		"%s has the hammer in end %d.",
		"Hammer to %s for end %d. Make it count!",
		"%s gets last rock in end %d.",
		"End %[2]d: the hammer swings to %[1]s.",
	}

	return &GetHammerMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.TeamName, input.End),
		Tone:    ToneNeutral,
	}, nil
}

// GetCheckInMessage returns a line for a player badging in
func (s *service) GetCheckInMessage(ctx context.Context, input *GetCheckInMessageInput) (*GetCheckInMessageOutput, error) {
	if input == nil || input.PlayerName == "" {
		return nil, errors.New("player name cannot be empty")
	}

	if input.Skip {
		messages := []string{
			"Skip %s takes the house for %s!",
			"%s is calling the shots for %s tonight.",
			"Make way for skip %s of %s!",
		}
		return &GetCheckInMessageOutput{
			Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.TeamName),
			Tone:    ToneCelebration,
		}, nil
	}

	messages := []string{
		"%s is on the ice for %s.",
		"Welcome %s! Brooms up, %s.",
		"%s checks in with %s. Sweep hard!",
		"Here comes %s for %s!",
	}
	return &GetCheckInMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.TeamName),
		Tone:    ToneFunny,
	}, nil
}

// GetInvalidScanMessage returns a line for an unknown or repeated badge
func (s *service) GetInvalidScanMessage(ctx context.Context, input *GetInvalidScanMessageInput) (*GetInvalidScanMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Duplicate {
		messages := []string{
			"You're already checked in. Nice try.",
			"One badge, one player!",
			"We've seen that badge already.",
		}
		return &GetInvalidScanMessageOutput{
			Message: s.pick(messages),
			Tone:    ToneFunny,
		}, nil
	}

	messages := []string{
		"INVALID. Tap a fob...",
		"Never heard of that badge.",
		"That badge isn't on the list.",
	}
	return &GetInvalidScanMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneNeutral,
	}, nil
}

// GetEndSummaryMessage returns a line for a locked end card
func (s *service) GetEndSummaryMessage(ctx context.Context, input *GetEndSummaryMessageInput) (*GetEndSummaryMessageOutput, error) {
	if input == nil || input.End < 1 {
		return nil, errors.New("end must be positive")
	}

	remaining := input.NumEnds - input.End
	var suffix string
	switch {
	case remaining == 1:
		suffix = " One end to go."
	case remaining > 1:
		suffix = fmt.Sprintf(" %d ends to go.", remaining)
	}

	if input.ScoringTeam == "" {
		messages := []string{
			"End %d is blanked.",
			"Nobody scores in end %d.",
			"End %d: a blank, the hammer stays put.",
		}
		return &GetEndSummaryMessageOutput{
			Message: fmt.Sprintf(s.pick(messages), input.End) + suffix,
			Tone:    ToneNeutral,
		}, nil
	}

	messages := []string{
		"End %[1]d goes to %[2]s.",
		"%[2]s takes end %[1]d!",
		"Points on the board for %[2]s in end %[1]d.",
	}
	return &GetEndSummaryMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.End, input.ScoringTeam) + suffix,
		Tone:    ToneEncouraging,
	}, nil
}

// GetGameOverMessage returns a line for the final end
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"That's the game! %s vs %s after %d ends. Shake hands!",
		"Final end is done: %s and %s, %d ends in the books.",
		"Brooms down. %s and %s finish all %d ends.",
	}
	return &GetGameOverMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.TeamAName, input.TeamBName, input.NumEnds),
		Tone:    ToneCelebration,
	}, nil
}
