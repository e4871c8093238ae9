package course

import "strings"

func isValidCourseID(courseID string) bool {
	return strings.TrimSpace(courseID) != ""
}

// cityOf reads the city out of "street, 69001 Lyon". Anything else comes back trimmed.
func cityOf(address string) string {
	address = strings.TrimSpace(address)
	if i := strings.LastIndex(address, ","); i >= 0 {
		address = strings.TrimSpace(address[i+1:])
	}

	postalCode, city, found := strings.Cut(address, " ")
	if found && postalCode != "" && strings.Trim(postalCode, "0123456789") == "" {
		return strings.TrimSpace(city)
	}
	return address
}
