package registration

// RegistrationError is an invalid-input condition raised while collecting scans
type RegistrationError string

// Error implements the error interface
func (e RegistrationError) Error() string {
	return string(e)
}

const (
	ErrNotStarted           RegistrationError = "registration session not started"
	ErrInvalidRequiredCount RegistrationError = "required scan count must be positive"
	ErrUnknownBadge         RegistrationError = "unknown badge"
	ErrDuplicateBadge       RegistrationError = "badge already registered in this session"
	ErrScanSuppressed       RegistrationError = "scan ignored while an entry cue is playing"
	ErrSessionComplete      RegistrationError = "registration session already complete"
	ErrNilDirectory         RegistrationError = "player directory cannot be nil"
	ErrNilPresenter         RegistrationError = "presenter cannot be nil"
	ErrNilCueRunner         RegistrationError = "cue runner cannot be nil"
)
