package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceValidate(t *testing.T) {
	valid := Service{Name: "City Hospital", Type: "hospital", Latitude: 40.7, Longitude: -73.9}

	tests := []struct {
		name    string
		mutate  func(*Service)
		wantErr bool
	}{
		{"valid record", func(s *Service) {}, false},
		{"boundary coordinates", func(s *Service) { s.Latitude, s.Longitude = -90, 180 }, false},
		{"empty name", func(s *Service) { s.Name = "  " }, true},
		{"empty type", func(s *Service) { s.Type = "" }, true},
		{"latitude too high", func(s *Service) { s.Latitude = 90.1 }, true},
		{"latitude too low", func(s *Service) { s.Latitude = -90.1 }, true},
		{"longitude too high", func(s *Service) { s.Longitude = 180.1 }, true},
		{"longitude too low", func(s *Service) { s.Longitude = -180.1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewGeoPoint(t *testing.T) {
	p := NewGeoPoint(40.7, -73.9)
	assert.Equal(t, "Point", p.Type)
	// GeoJSON ordering is [longitude, latitude].
	assert.Equal(t, []float64{-73.9, 40.7}, p.Coordinates)
}
