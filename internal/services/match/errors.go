package match

// MatchError is a custom error type for match construction and sequencing
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    MatchError = "config cannot be nil"
	ErrNilEvents    MatchError = "event channel cannot be nil"
	ErrNilRenderer  MatchError = "renderer cannot be nil"
	ErrNilDirectory MatchError = "player directory cannot be nil"
	ErrInvalidEnds  MatchError = "default end count must be between 1 and 10"

	// errRestart unwinds the launch sequence after power is pressed mid-launch
	errRestart MatchError = "launch sequence restarted"
)
