package validators

import "strings"

// NormalizeEmail returns the canonical form of a syntactically valid email
// address: the whole address is lower-cased and a "+tag" sub-address is
// removed from the local part, so "Jane.Doe+news@Example.COM" becomes
// "jane.doe@example.com".
//
// The rules are provider-agnostic. Dots in the local part are kept.
func NormalizeEmail(address string) string {
	address = strings.ToLower(address)

	at := strings.LastIndex(address, "@")
	if at <= 0 {
		return address
	}

	local, domain := address[:at], address[at+1:]
	if plus := strings.Index(local, "+"); plus > 0 {
		local = local[:plus]
	}

	return local + "@" + domain
}
