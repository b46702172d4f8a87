package booking

import (
	"net/url"
	"strings"

	"ksrtc_booker/domain/entities"
)

// SearchURL builds the search results URL for a one-way journey, e.g.
// /search?fromCity=298%7CBangalore&toCity=462%7CPalakkad&departDate=28-09-2025&mode=oneway&src=h&stationInFromCity=&stationInToCity=
func SearchURL(baseURL string, j entities.Journey) string {
	// url.Values would sort the keys; keep the order the site itself emits
	params := []struct{ key, value string }{
		{"fromCity", j.From.SearchValue()},
		{"toCity", j.To.SearchValue()},
		{"departDate", entities.FormatTravelDate(j.Date)},
		{"mode", "oneway"},
		{"src", "h"},
		{"stationInFromCity", ""},
		{"stationInToCity", ""},
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString("/search?")
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
