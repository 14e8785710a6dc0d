package department

// Department is read-only reference data; views resolve department ids to
// display names against the fetched list.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
