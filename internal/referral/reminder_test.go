package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	t.Run("Local number gets country prefix", func(t *testing.T) {
		link := WhatsAppLink("012-345 6789", "6", "")
		assert.Equal(t, "https://wa.me/60123456789", link)
	})

	t.Run("International number kept as-is", func(t *testing.T) {
		link := WhatsAppLink("+60123456789", "6", "")
		assert.Equal(t, "https://wa.me/60123456789", link)
	})

	t.Run("Message is escaped", func(t *testing.T) {
		link := WhatsAppLink("0123456789", "6", "Hi there! Follow up?")
		assert.Equal(t, "https://wa.me/60123456789?text=Hi+there%21+Follow+up%3F", link)
	})

	t.Run("No digits yields empty link", func(t *testing.T) {
		assert.Equal(t, "", WhatsAppLink("n/a", "6", "hello"))
	})
}
