package domain

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/tptester/internal/model"
)

// maxRangeSize guards against typos such as "1-1000000000".
const maxRangeSize = 1_000_000

// ParseIndexes expands an index set such as "1-5,8,sample" into an ordered
// list. Numeric ranges may descend ("5-1"). Anything that is not a numeric
// range is taken as a literal index. Order and duplicates are preserved as
// written.
func ParseIndexes(set string) ([]m.TestIndex, error) {
	var indexes []m.TestIndex

	for _, field := range strings.Split(set, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		from, to, ok := parseRange(field)
		if !ok {
			indexes = append(indexes, m.TestIndex(field))
			continue
		}

		step := 1
		if to < from {
			step = -1
		}

		span := uint64(to) - uint64(from)
		if to < from {
			span = uint64(from) - uint64(to)
		}

		if span >= maxRangeSize {
			return nil, errors.Mark(errors.Newf("range %q is too large", field), ErrInvalidIndex)
		}

		for n := from; ; n += step {
			indexes = append(indexes, m.IntIndex(n))
			if n == to {
				break
			}
		}
	}

	if len(indexes) == 0 {
		return nil, errors.Mark(errors.Newf("index set %q is empty", set), ErrInvalidIndex)
	}

	return indexes, nil
}

func parseRange(field string) (int, int, bool) {
	left, right, found := strings.Cut(field, "-")
	if !found {
		return 0, 0, false
	}

	lo, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}

	hi, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, false
	}

	return lo, hi, true
}
