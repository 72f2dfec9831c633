// Package locale picks a supported language for a request and formats
// donor-facing text in it.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Default is used when nothing better is known.
const Default = "en"

var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.Indonesian,
}

var matcher = language.NewMatcher(supported)

const thankYouKey = "Thank you for your donation of %s to %s!"

func init() {
	_ = message.SetString(language.Spanish, thankYouKey, "¡Gracias por tu donación de %s a %s!")
	_ = message.SetString(language.Indonesian, thankYouKey, "Terima kasih atas donasi %s untuk %s!")
}

// Match returns the supported base language closest to the given
// Accept-Language style value, or "" when nothing matches.
func Match(accept string) string {
	accept = strings.TrimSpace(accept)
	if accept == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return ""
	}
	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// ForCountry maps an ISO country code to a supported language.
func ForCountry(country string) string {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "":
		return ""
	case "ID":
		return "id"
	case "ES", "MX", "AR", "CO", "CL", "PE":
		return "es"
	}
	return Default
}

// Region returns the region subtag of a locale such as "en-GB", or "".
func Region(accept string) string {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil {
		return ""
	}
	for _, tag := range tags {
		if region, confidence := tag.Region(); confidence == language.Exact {
			return region.String()
		}
	}
	return ""
}

func printer(loc string) *message.Printer {
	tag, err := language.Parse(loc)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// FormatUSD renders a dollar amount with locale digit grouping.
func FormatUSD(loc string, amount float64) string {
	return "$" + printer(loc).Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// ThankYou renders the donation confirmation message.
func ThankYou(loc string, amount float64, campaignTitle string) string {
	return printer(loc).Sprintf(thankYouKey, FormatUSD(loc, amount), campaignTitle)
}
