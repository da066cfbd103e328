package stones

// TrackerError is returned for deliveries attributed to an unknown team
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

const (
	ErrUnknownTeam TrackerError = "unknown team"
)
