// Package options validates input-source selections shared by the parser
// and the tool front ends.
package options

import "github.com/erraggy/oasquery/oaserrors"

// CountSet returns how many of sources are set.
func CountSet(sources ...bool) int {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	return n
}

// RequireOne returns a ConfigError for option unless exactly one of sources
// is set. noneMsg and manyMsg become the error message.
func RequireOne(option, noneMsg, manyMsg string, sources ...bool) error {
	switch CountSet(sources...) {
	case 0:
		return &oaserrors.ConfigError{Option: option, Message: noneMsg}
	case 1:
		return nil
	default:
		return &oaserrors.ConfigError{Option: option, Message: manyMsg}
	}
}

// AtMostOne returns a ConfigError for option when more than one of sources
// is set. Setting none is allowed.
func AtMostOne(option, manyMsg string, sources ...bool) error {
	if CountSet(sources...) > 1 {
		return &oaserrors.ConfigError{Option: option, Message: manyMsg}
	}
	return nil
}
