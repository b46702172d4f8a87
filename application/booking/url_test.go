package booking

import (
	"testing"
	"time"

	"ksrtc_booker/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestSearchURL(t *testing.T) {
	j := entities.Journey{
		From: entities.City{ID: 298, Name: "Bangalore"},
		To:   entities.City{ID: 462, Name: "Palakkad"},
		Date: time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC),
	}

	got := SearchURL("https://onlineksrtcswift.com/", j)
	assert.Equal(t,
		"https://onlineksrtcswift.com/search?fromCity=298%7CBangalore&toCity=462%7CPalakkad&departDate=28-09-2025&mode=oneway&src=h&stationInFromCity=&stationInToCity=",
		got)
}

func TestSearchURLEscapesNames(t *testing.T) {
	j := entities.Journey{
		From: entities.City{ID: 1, Name: "Sulthan Bathery"},
		To:   entities.City{ID: 2, Name: "Palakkad"},
		Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	got := SearchURL("https://example.test", j)
	assert.Contains(t, got, "fromCity=1%7CSulthan+Bathery&")
	assert.Contains(t, got, "departDate=05-01-2025")
}
