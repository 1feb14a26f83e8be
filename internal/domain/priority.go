package domain

// Priority classifies how urgently a task should be scheduled.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsMedium() bool {
	return p == PriorityMedium
}
