package notify

import "errors"

// ErrNotAuthorized signals that the platform notification service refused
// the operation. Callers treat it as a silent no-op, never as a failure.
var ErrNotAuthorized = errors.New("notification service not authorized")

// Service is the port onto the platform notification service. Cancel of an
// unknown identifier is not an error; Schedule replaces any live plan with
// the same identifier.
type Service interface {
	Cancel(ids ...string) error
	Schedule(plans ...Plan) error
}
