package notifier

import "regexp"

// international format: leading plus followed by 10 to 15 digits, no separators
var phoneRegexp = regexp.MustCompile(`^\+\d{10,15}$`)

// IsValidPhone reports whether number is a valid international phone number
// like +12345678901
func IsValidPhone(number string) bool {
	return phoneRegexp.MatchString(number)
}
