package mediator

import "errors"

// ErrNotifierNotSet is returned by SendNotification when the mediator was
// never given a Notifier.
var ErrNotifierNotSet = errors.New("mediator: notifier is not set")
