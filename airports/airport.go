package airports

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/geotour/geo"
)

// Sentinel errors.
var (
	// ErrUnknownAirport is returned by Select for ids missing from the dataset.
	ErrUnknownAirport = errors.New("airports: unknown airport")
	// ErrNoData is returned by Refresh when the API yielded no airports.
	ErrNoData = errors.New("airports: no data fetched")
	// ErrUnexpectedStatus is returned by the client for non-200, non-429 replies.
	ErrUnexpectedStatus = errors.New("airports: unexpected HTTP status")
	// ErrRateLimited is returned once the client exhausted its 429 retries.
	ErrRateLimited = errors.New("airports: rate limited")
)

// Airport is one entry of the dataset.
type Airport struct {
	ID        string
	Name      string
	City      string
	Country   string
	IATA      string
	ICAO      string
	Timezone  string
	Altitude  int
	Latitude  float64
	Longitude float64
}

// Label formats the airport as "City (Country) [ID]".
func (a Airport) Label() string {
	return fmt.Sprintf("%s (%s) [%s]", a.City, a.Country, a.ID)
}

// Point returns the airport's coordinates.
func (a Airport) Point() geo.Point {
	return geo.Point{Lat: a.Latitude, Lon: a.Longitude}
}

// Place returns the airport as a named geo.Place.
func (a Airport) Place() geo.Place {
	return geo.Place{ID: a.ID, Label: a.Label(), Point: a.Point()}
}

// Places converts airports to places, preserving order.
func Places(list []Airport) []geo.Place {
	out := make([]geo.Place, len(list))
	for i := range list {
		out[i] = list[i].Place()
	}

	return out
}

// Select returns the airports whose ID is in ids, in dataset order.
// Matching is case-insensitive and repeated ids are ignored. Unknown ids are
// reported together in one ErrUnknownAirport.
func Select(all []Airport, ids []string) ([]Airport, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id != "" {
			want[id] = false
		}
	}

	out := make([]Airport, 0, len(want))
	for _, a := range all {
		key := strings.ToUpper(a.ID)
		if found, ok := want[key]; ok && !found {
			want[key] = true
			out = append(out, a)
		}
	}

	var missing []string
	for id, found := range want {
		if !found {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, strings.Join(missing, ", "))
	}

	return out, nil
}

// record is the airportgap wire format of one airport.
type record struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Attributes attributes `json:"attributes"`
}

type attributes struct {
	Name      string     `json:"name"`
	City      string     `json:"city"`
	Country   string     `json:"country"`
	IATA      string     `json:"iata"`
	ICAO      string     `json:"icao"`
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
	Altitude  int        `json:"altitude"`
	Timezone  string     `json:"timezone"`
}

// page is one airportgap API response.
type page struct {
	Data  []record `json:"data"`
	Links struct {
		First string `json:"first"`
		Self  string `json:"self"`
		Last  string `json:"last"`
		Prev  string `json:"prev"`
		Next  string `json:"next"`
	} `json:"links"`
}

// coordinate accepts both "12.34" and 12.34 and is written back as a string,
// which is what the API sends.
type coordinate float64

func (c *coordinate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("airports: bad coordinate %s: %w", b, err)
	}
	*c = coordinate(v)

	return nil
}

func (c coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(float64(c), 'f', -1, 64))
}

func (r record) airport() Airport {
	return Airport{
		ID:        r.ID,
		Name:      r.Attributes.Name,
		City:      r.Attributes.City,
		Country:   r.Attributes.Country,
		IATA:      r.Attributes.IATA,
		ICAO:      r.Attributes.ICAO,
		Timezone:  r.Attributes.Timezone,
		Altitude:  r.Attributes.Altitude,
		Latitude:  float64(r.Attributes.Latitude),
		Longitude: float64(r.Attributes.Longitude),
	}
}

func toRecord(a Airport) record {
	return record{
		ID:   a.ID,
		Type: "airport",
		Attributes: attributes{
			Name:      a.Name,
			City:      a.City,
			Country:   a.Country,
			IATA:      a.IATA,
			ICAO:      a.ICAO,
			Latitude:  coordinate(a.Latitude),
			Longitude: coordinate(a.Longitude),
			Altitude:  a.Altitude,
			Timezone:  a.Timezone,
		},
	}
}

// MarshalJSON writes the airport in the API record format.
func (a Airport) MarshalJSON() ([]byte, error) {
	return json.Marshal(toRecord(a))
}

// UnmarshalJSON reads the airport from the API record format.
func (a *Airport) UnmarshalJSON(b []byte) error {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	*a = r.airport()

	return nil
}
