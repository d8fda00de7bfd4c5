package utils

// ParseBool reports whether a query parameter is an affirmative flag.
// Used for the ?confirm= parameter on destructive endpoints.
func ParseBool(value string) bool {
	switch value {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
