package handlers

// Accessors for decoded JSON payloads. Values arrive as json.Unmarshal
// produces them (string, float64, bool, nil); a wrong-typed value reads as
// absent and falls through to the zero value, letting the statement itself
// surface the problem.

func stringField(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}

func optionalString(payload map[string]any, key string) *string {
	if v, ok := payload[key].(string); ok {
		return &v
	}
	return nil
}

func intField(payload map[string]any, key string) int64 {
	if v, ok := payload[key].(float64); ok {
		return int64(v)
	}
	return 0
}

func optionalInt(payload map[string]any, key string) *int {
	if v, ok := payload[key].(float64); ok {
		i := int(v)
		return &i
	}
	return nil
}
