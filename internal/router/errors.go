package router

import "errors"

// ErrNoNameFound means no usable person name could be isolated from a
// faculty-intent message.
var ErrNoNameFound = errors.New("no faculty name found in message")
