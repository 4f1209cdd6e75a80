// ABOUTME: Request DTOs for the result table endpoints
// ABOUTME: Provides defaults for incoming table requests

package requests

// DefaultTableSearch is the name query used when a load request names nothing
const DefaultTableSearch = "a"

// LoadTableRequest represents the body of a table load
type LoadTableRequest struct {
	// Name is the drink name query passed to the upstream search
	Name string `json:"name,omitempty" doc:"Drink name to search for; defaults to \"a\""`
}

// ApplyDefaults sets default values for optional fields
func (r *LoadTableRequest) ApplyDefaults() {
	if r.Name == "" {
		r.Name = DefaultTableSearch
	}
}

// SetFilterRequest represents the body of a filter update
type SetFilterRequest struct {
	// Value is the case-insensitive substring to match; empty clears the field
	Value string `json:"value" doc:"Substring to match; empty clears the field"`
}
