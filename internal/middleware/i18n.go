package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"campusfund/internal/locale"
)

type localeContextKey struct{}
type countryContextKey struct{}

var (
	LocaleKey  = localeContextKey{}
	CountryKey = countryContextKey{}
)

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// I18N stores the negotiated locale and the caller's country in the request
// context. Donation confirmations are rendered in that locale.
func I18N(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := ResolveCountry(r, lookup)
			loc := detectLocale(r, defaultLocale, country)
			ctx := context.WithValue(r.Context(), LocaleKey, loc)
			if country != "" {
				ctx = context.WithValue(ctx, CountryKey, country)
			}
			w.Header().Set("Content-Language", loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// detectLocale prefers an explicit X-Locale header, then Accept-Language,
// then the country, then the configured fallback.
func detectLocale(r *http.Request, fallback string, country string) string {
	if v := locale.Match(r.Header.Get("X-Locale")); v != "" {
		return v
	}
	if v := locale.Match(r.Header.Get("Accept-Language")); v != "" {
		return v
	}
	if v := locale.ForCountry(country); v != "" {
		return v
	}
	if v := locale.Match(fallback); v != "" {
		return v
	}
	return locale.Default
}

// ClientIP returns the best-effort client IP address for the request. The
// first valid X-Forwarded-For entry wins over the socket address.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok && v != "" {
		return v
	}
	return locale.Default
}

// CountryFromContext returns the ISO country code stored in the request context.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CountryKey).(string); ok {
		return v
	}
	return ""
}

// ResolveCountry resolves a best-effort ISO country code for the request:
// CDN headers first, then the region of the requested locale, then GeoIP.
func ResolveCountry(r *http.Request, lookup CountryLookup) string {
	if r == nil {
		return ""
	}
	for _, key := range []string{"X-Country-Code", "CF-IPCountry", "X-Appengine-Country"} {
		if val := strings.TrimSpace(r.Header.Get(key)); val != "" && val != "XX" {
			return strings.ToUpper(val)
		}
	}
	if region := locale.Region(r.Header.Get("X-Locale")); region != "" {
		return region
	}
	if region := locale.Region(r.Header.Get("Accept-Language")); region != "" {
		return region
	}
	if lookup != nil {
		if ip := ClientIP(r); ip != "" {
			if country, err := lookup(ip); err == nil && country != "" {
				return strings.ToUpper(country)
			}
		}
	}
	return ""
}
