package httpadapter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"perf-bi/internal/core/domain"
	"perf-bi/internal/core/port"
)

// maxHorizon bounds the projection horizon accepted over HTTP.
const maxHorizon = 366

// parseDay reads an optional date parameter in any format the sheets use.
func (h *Handler) parseDay(q url.Values, name string) (time.Time, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return time.Time{}, nil
	}
	t, ok := domain.ParseDate(raw, h.loc)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: invalid %q date", port.ErrInvalidArgument, name)
	}
	return t, nil
}

func (h *Handler) parseRange(q url.Values) (port.RangeQuery, error) {
	var (
		rq  port.RangeQuery
		err error
	)
	if rq.From, err = h.parseDay(q, "from"); err != nil {
		return rq, err
	}
	if rq.To, err = h.parseDay(q, "to"); err != nil {
		return rq, err
	}
	return rq, nil
}

func parseHorizon(q url.Values) (int, error) {
	raw := strings.TrimSpace(q.Get("horizon"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxHorizon {
		return 0, fmt.Errorf("%w: horizon must be between 1 and %d", port.ErrInvalidArgument, maxHorizon)
	}
	return n, nil
}
