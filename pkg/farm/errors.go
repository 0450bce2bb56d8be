package farm

import "errors"

var (
	ErrZoneNotFound       = errors.New("zone not found")
	ErrServiceUnavailable = errors.New("service not available")
)
