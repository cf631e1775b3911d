package handlers

// MissingFieldError names the first required field absent from a request
// payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required field: " + e.Field
}

// requireFields checks the payload against the endpoint's required fields in
// declaration order and reports the first one missing. Presence is what
// counts; a field explicitly set to null passes.
func requireFields(payload map[string]any, required []string) *MissingFieldError {
	for _, field := range required {
		if _, ok := payload[field]; !ok {
			return &MissingFieldError{Field: field}
		}
	}
	return nil
}
