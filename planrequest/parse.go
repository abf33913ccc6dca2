// Package planrequest is the thin request surface: it parses the ASCII
// obstacle batch wire format, assembles a full plan by wiring the tour
// solver to the kinematic A* planner leg by leg, and renders the result
// back into the bit-exact wire encoding (spec.md §4.5, §6).
package planrequest

import (
	"strconv"
	"strings"

	"github.com/edaniels/golog"

	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// batchPrefix is the required prefix of an ALG: obstacle batch line.
const batchPrefix = "ALG:"

// nonePrefix is the required prefix of a NONE,<id> fallback line.
const nonePrefix = "NONE,"

// ParseBatch parses an "ALG:<x>,<y>,<dir>,<id>;...;" obstacle batch line
// into a set of obstacles. Each malformed record (wrong field count, a
// non-integer field, or an unrecognised direction letter) is logged and
// skipped rather than failing the whole batch; if every record is
// malformed, ParseBatch returns an empty, non-nil slice and a nil error
// (spec.md §7 "Malformed input", matching the original's silent `continue`
// in pathing_algo.py: parse_rpi_message).
func ParseBatch(logger golog.Logger, line string) ([]*obstacle.Obstacle, error) {
	body := strings.TrimPrefix(line, batchPrefix)
	records := strings.Split(body, ";")

	obstacles := make([]*obstacle.Obstacle, 0, len(records))
	for _, record := range records {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}

		o, ok := parseRecord(logger, record)
		if !ok {
			continue
		}
		obstacles = append(obstacles, o)
	}
	return obstacles, nil
}

func parseRecord(logger golog.Logger, record string) (*obstacle.Obstacle, bool) {
	fields := strings.Split(record, ",")
	if len(fields) != 4 {
		logger.Warnw("skipping malformed obstacle record: wrong field count", "record", record)
		return nil, false
	}

	cellX, err := strconv.Atoi(fields[0])
	if err != nil {
		logger.Warnw("skipping malformed obstacle record: bad x", "record", record)
		return nil, false
	}
	cellY, err := strconv.Atoi(fields[1])
	if err != nil {
		logger.Warnw("skipping malformed obstacle record: bad y", "record", record)
		return nil, false
	}
	heading, ok := spatialmath.DirectionFromLetter(fields[2])
	if !ok {
		logger.Warnw("skipping malformed obstacle record: bad direction", "record", record)
		return nil, false
	}
	id, err := strconv.Atoi(fields[3])
	if err != nil || id < 0 {
		logger.Warnw("skipping malformed obstacle record: bad id", "record", record)
		return nil, false
	}

	o, err := obstacle.New(id, cellX*obstacle.Cell, cellY*obstacle.Cell, heading)
	if err != nil {
		logger.Warnw("skipping obstacle record: failed precondition", "record", record, "err", err)
		return nil, false
	}
	return o, true
}

// ParseNone parses a "NONE,<id>" fallback payload, returning the obstacle
// id and ok=true on success.
func ParseNone(line string) (id int, ok bool) {
	if !strings.HasPrefix(line, nonePrefix) {
		return 0, false
	}
	idStr := strings.TrimPrefix(line, nonePrefix)
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
