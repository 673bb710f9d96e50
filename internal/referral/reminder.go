package referral

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds the outbound reminder deep link for a phone number.
// Numbers are reduced to digits; a leading "0" (local dialing form) is
// rewritten with the configured country prefix, e.g. "012-3456789" with
// prefix "6" becomes wa.me/60123456789. Returns "" when no digits remain.
func WhatsAppLink(phone, countryPrefix, message string) string {
	digits := digitsOnly(phone)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "0") {
		digits = countryPrefix + digits
	}

	link := "https://wa.me/" + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
