package mailpreview

// PreferredPart picks the part the email page shows first: the requested
// type when the email has it, otherwise the first part. It reports false
// for an email without parts.
func PreferredPart(e *Email, requested string) (string, bool) {
	if requested != "" {
		if _, ok := e.Part(requested); ok {
			return requested, true
		}
	}
	if len(e.parts) == 0 {
		return "", false
	}
	return e.parts[0].Type, true
}
