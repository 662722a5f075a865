package notification

import "errors"

// Notification domain errors
var (
	ErrStreamingUnsupported = errors.New("streaming not supported")
)
