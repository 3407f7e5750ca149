package policy

// Policy is assigned to department names, or to "all". acknowledgedBy grows
// monotonically; there is no de-acknowledgment.
type Policy struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Category       string   `json:"category"`
	AssignedTo     []string `json:"assignedTo"`
	CreatedAt      string   `json:"createdAt"`
	AcknowledgedBy []string `json:"acknowledgedBy"`
}

type Patch struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Category   *string   `json:"category"`
	AssignedTo *[]string `json:"assignedTo"`
}
