package notifications

import "errors"

var (
	// ErrPublish возвращается, когда брокер не принял событие
	ErrPublish = errors.New("notifications: failed to publish event")
)
