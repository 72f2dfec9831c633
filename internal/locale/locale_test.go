package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{accept: "en-US,en;q=0.9", want: "en"},
		{accept: "id-ID,en;q=0.8", want: "id"},
		{accept: "es-MX", want: "es"},
		{accept: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.accept, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.accept))
		})
	}
}

func TestForCountry(t *testing.T) {
	assert.Equal(t, "id", ForCountry("id"))
	assert.Equal(t, "es", ForCountry("MX"))
	assert.Equal(t, "en", ForCountry("US"))
	assert.Equal(t, "", ForCountry(""))
}

func TestRegion(t *testing.T) {
	assert.Equal(t, "GB", Region("en-GB,en;q=0.9"))
	assert.Equal(t, "", Region("en"))
}

func TestThankYouIsLocalized(t *testing.T) {
	en := ThankYou("en", 50, "Digital Arts Studio Upgrade")
	assert.Contains(t, en, "Thank you for your donation of $50")
	assert.Contains(t, en, "Digital Arts Studio Upgrade")

	id := ThankYou("id", 50, "Digital Arts Studio Upgrade")
	assert.Contains(t, id, "Terima kasih")

	es := ThankYou("es", 50, "Digital Arts Studio Upgrade")
	assert.Contains(t, es, "Gracias")
}

func TestFormatUSDGroupsThousands(t *testing.T) {
	assert.Equal(t, "$1,250", FormatUSD("en", 1250))
}
