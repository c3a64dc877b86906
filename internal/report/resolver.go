package report

import (
	"fmt"
	"time"

	"expense-tracker/pkg/auth"
)

// Request carries the optional parameters of a monthly report request.
// Empty YearMonth means the current month; nil UserID means the caller.
type Request struct {
	YearMonth string
	UserID    *int64
}

// Resolver turns a caller and a request into the period and scope to query.
type Resolver struct {
	now func() time.Time
}

func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// Resolve validates the request before anything touches the store.
// Reports for another user's id require the ADMIN role; a caller may
// always address their own id.
func (r *Resolver) Resolve(caller auth.Caller, req Request) (Period, Scope, error) {
	if caller.Username == "" {
		return Period{}, Scope{}, ErrUnauthenticated
	}

	period := PeriodOf(r.now())
	if req.YearMonth != "" {
		p, err := ParsePeriod(req.YearMonth)
		if err != nil {
			return Period{}, Scope{}, err
		}
		period = p
	}

	if req.UserID == nil {
		return period, SelfScope(caller.Username), nil
	}

	id := *req.UserID
	if id <= 0 {
		return Period{}, Scope{}, fmt.Errorf("%w: userId must be positive", ErrValidation)
	}
	if id != caller.ID && !caller.IsAdmin() {
		return Period{}, Scope{}, fmt.Errorf("%w: user %q cannot read reports of user %d", ErrForbidden, caller.Username, id)
	}
	return period, UserScope(id), nil
}
