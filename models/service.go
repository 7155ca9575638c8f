package models

import (
	"fmt"
	"strings"
)

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a latitude/longitude pair.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

// Service represents one registered point of service (hospital, pharmacy,
// police post, garage, ...). The type label is free text; the set of valid
// types is whatever currently exists in the directory.
type Service struct {
	ID        string  `bson:"id" json:"id,omitempty"`
	Name      string  `bson:"name" json:"name"`
	Type      string  `bson:"type" json:"type"`
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Location  string  `bson:"location,omitempty" json:"location,omitempty"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
	MobileNo  string  `bson:"mobileNo,omitempty" json:"mobile_no,omitempty"`
	Timings   string  `bson:"timings,omitempty" json:"timings,omitempty"`
	Cost      string  `bson:"cost,omitempty" json:"cost,omitempty"`
	Available *bool   `bson:"available,omitempty" json:"available,omitempty"`
	Contact   string  `bson:"contact,omitempty" json:"contact,omitempty"`

	// LocationGeo is maintained by the repository on insert and backs the
	// 2dsphere index; it is never exposed over the API.
	LocationGeo GeoPoint `bson:"locationGeo" json:"-"`
}

// Validate checks the invariants a record must satisfy before it is stored.
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("service name is required")
	}
	if strings.TrimSpace(s.Type) == "" {
		return fmt.Errorf("service type is required")
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", s.Latitude)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", s.Longitude)
	}
	return nil
}
