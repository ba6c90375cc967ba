package domain

// FetchStatus classifies the outcome of a single retrieval attempt
type FetchStatus string

// retrieval outcomes; every call attempt ends in exactly one of these
const (
	StatusOK            FetchStatus = "ok"
	StatusQuotaExceeded FetchStatus = "quota_exceeded"
	StatusAPIError      FetchStatus = "api_error"
	StatusNetworkError  FetchStatus = "network_error"
)

// FetchResult is the outcome of one retrieval attempt. A failed or skipped
// attempt still produces a result so that a multi-trigger batch can report
// mixed outcomes instead of failing as a whole.
type FetchResult struct {
	Trigger  string      `json:"trigger,omitempty"` // trigger name for orchestrated fetches, empty for ad-hoc
	Status   FetchStatus `json:"status"`
	Articles []Article   `json:"articles"`
	Error    string      `json:"error,omitempty"` // failure detail for non-ok statuses
}
