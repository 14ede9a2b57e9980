package typedevents

import (
	"errors"
	"fmt"
)

// ErrEmitAborted indicates a broadcast stopped early because a listener
// did not return. It is only reported to observability backends; Emit
// itself lets the panic propagate.
var ErrEmitAborted = errors.New("emit aborted")

// AbortError identifies the registration whose listener stopped a broadcast.
type AbortError struct {
	// Channel is the name of the channel.
	Channel string
	// SubscriptionID identifies the listener that did not return.
	SubscriptionID string
	// Delivered counts listeners that returned normally before the abort.
	Delivered int
}

// Error implements the error interface.
func (e *AbortError) Error() string {
	return fmt.Sprintf("channel %s: listener %s: %v after %d deliveries",
		e.Channel, e.SubscriptionID, ErrEmitAborted, e.Delivered)
}

// Unwrap returns ErrEmitAborted for errors.Is support.
func (e *AbortError) Unwrap() error {
	return ErrEmitAborted
}
