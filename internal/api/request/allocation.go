package request

// SetTargetsRequest maps sector name to target percent. The full set replaces
// the stored allocation in one call.
type SetTargetsRequest struct {
	Targets map[string]float64 `json:"targets"`
}
