package domain

// TriggerType is a named sales-trigger category with its canned search intent.
// The set of trigger types forms a fixed catalog defined at process start.
type TriggerType struct {
	Name  string
	Query SearchQuery
}
