package cards

// CardError is an invalid-input condition raised by the layout engine.
// Callers recover from it locally; it never means the engine state changed.
type CardError string

// Error implements the error interface
func (e CardError) Error() string {
	return string(e)
}

const (
	ErrRankOutOfRange    CardError = "card rank out of range"
	ErrInvalidTransition CardError = "invalid card transition"
	ErrSlotOccupied      CardError = "destination slot is occupied"
	ErrColumnFull        CardError = "column is full"
	ErrNoSelection       CardError = "no card selected"
	ErrCardNotPlaced     CardError = "card is still in the start row"
	ErrNilDrawer         CardError = "drawer cannot be nil"
)
