package validators

import (
	"regexp"
	"strings"
)

const (
	countryCode     = "254"
	canonicalLength = 12
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone converts a Kenyan phone number into the canonical
// 254XXXXXXXXX form.
//
// Non-digit characters are dropped first. The digits are then accepted in
// exactly four shapes:
//
//	254XXXXXXXXX   (12 digits)      kept as is
//	07XXXXXXXX     (10 digits)      leading 0 replaced by 254
//	7XXXXXXXX      (9 digits)       254 prepended
//	2540…XXXXXXXXX (over 12 digits) zeros after 254 dropped, must end up 12 digits
//
// Anything else reports false. Normalizing a canonical number returns it
// unchanged.
func NormalizePhone(raw string) (string, bool) {
	digits := nonDigits.ReplaceAllString(raw, "")

	switch {
	case strings.HasPrefix(digits, countryCode) && len(digits) == canonicalLength:
		return digits, true
	case strings.HasPrefix(digits, "07") && len(digits) == 10:
		return countryCode + digits[1:], true
	case strings.HasPrefix(digits, "7") && len(digits) == 9:
		return countryCode + digits, true
	case strings.HasPrefix(digits, countryCode) && len(digits) > canonicalLength:
		normalized := countryCode + strings.TrimLeft(digits[len(countryCode):], "0")
		if len(normalized) == canonicalLength {
			return normalized, true
		}
	}

	return "", false
}
