package report

import "errors"

var (
	// ErrValidation marks malformed request input such as a bad yearMonth.
	ErrValidation = errors.New("invalid report request")
	// ErrUnauthenticated means no caller identity was available.
	ErrUnauthenticated = errors.New("caller not authenticated")
	// ErrForbidden means the caller may not see the requested scope.
	ErrForbidden = errors.New("report scope not permitted")
	// ErrStore wraps failures of the expense store.
	ErrStore = errors.New("expense store failure")
	// ErrReportGeneration wraps faults raised while aggregating fetched records.
	ErrReportGeneration = errors.New("report generation failed")
)
