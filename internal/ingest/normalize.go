package ingest

import (
	"net/url"
	"strings"
)

// deriveCompanyDomain resolves the canonical company domain with a fixed
// priority: the contact email's domain part, then the website hostname, then
// the slugified company name suffixed with ".com". Returns "" when none of
// the inputs yield a domain.
func deriveCompanyDomain(email, website, companyName string) string {
	if d := emailDomain(email); d != "" {
		return d
	}
	if d := websiteHost(website); d != "" {
		return d
	}
	if slug := slugify(companyName); slug != "" {
		return slug + ".com"
	}
	return ""
}

// emailDomain extracts the lowercase domain part of an email address.
func emailDomain(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// websiteHost extracts the hostname from a website URL, tolerating a missing
// scheme and stripping a leading "www.".
func websiteHost(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	if !strings.Contains(website, "://") {
		website = "https://" + website
	}
	parsed, err := url.Parse(website)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	return host
}

// slugify lowercases a name and strips everything that is not alphanumeric.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// joinRegion builds "state, country" when both parts are present, otherwise
// whichever is present, otherwise "".
func joinRegion(state, country string) string {
	state = strings.TrimSpace(state)
	country = strings.TrimSpace(country)
	switch {
	case state != "" && country != "":
		return state + ", " + country
	case state != "":
		return state
	default:
		return country
	}
}
