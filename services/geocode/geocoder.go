package geocode

import (
	"context"
	"fmt"
)

// Result is the top-ranked geocoding hit for a place name.
type Result struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// GeocodingError reports a transport-level geocoding failure (timeout,
// connection error, unexpected status). A lookup that simply finds nothing
// returns (nil, nil) instead.
type GeocodingError struct {
	Query string
	Err   error
}

func (e *GeocodingError) Error() string {
	return fmt.Sprintf("geocoding %q failed: %v", e.Query, e.Err)
}

func (e *GeocodingError) Unwrap() error { return e.Err }

// Geocoder resolves a free-text place name to coordinates. A nil Result
// with a nil error means the place was not found.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (*Result, error)
}
