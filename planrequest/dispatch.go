package planrequest

import (
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// ErrMalformedPayload is returned by HandlePayload for a payload that is
// neither a valid "ALG:" batch nor a valid "NONE,<id>" fallback line.
var ErrMalformedPayload = errors.New("planrequest: payload is neither an ALG: batch nor a NONE,<id> fallback")

// HandlePayload dispatches a raw wire payload to the ALG: batch planner or
// the NONE,<id> fallback, the two entry points spec.md §6 describes. It
// always plans from DefaultStart, since the wire protocol carries no other
// start-pose field.
func HandlePayload(logger golog.Logger, payload string, seed int64) (Plan, spatialmath.RobotPose, error) {
	payload = strings.TrimSpace(payload)

	if id, ok := ParseNone(payload); ok {
		return FallbackPlan(id), DefaultStart, nil
	}

	if strings.HasPrefix(payload, batchPrefix) {
		obstacles, err := ParseBatch(logger, payload)
		if err != nil {
			return Plan{}, DefaultStart, errors.Wrap(err, "parsing obstacle batch")
		}
		return BuildPlan(logger, DefaultStart, obstacles, seed), DefaultStart, nil
	}

	return Plan{}, DefaultStart, ErrMalformedPayload
}
