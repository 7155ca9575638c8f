package models

import (
	"encoding/json"
	"fmt"
)

// Urgency levels accepted on a help request. Anything else falls back to
// the default search radius, same as Medium.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

// ServiceTypeList accepts either a single JSON string or an array of
// strings, so clients may send "service_type": "hospital" as well as
// "service_type": ["hospital", "pharmacy"].
type ServiceTypeList []string

func (l *ServiceTypeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = ServiceTypeList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("service_type must be a string or an array of strings")
	}
	*l = ServiceTypeList(many)
	return nil
}

// HelpRequest is one user query asking for nearby services. Latitude and
// longitude are pointers so a missing coordinate is distinguishable from
// zero.
type HelpRequest struct {
	Query             string          `json:"query"`
	Latitude          *float64        `json:"latitude"`
	Longitude         *float64        `json:"longitude"`
	ServiceType       ServiceTypeList `json:"service_type,omitempty"`
	LocationMentioned string          `json:"location_mentioned,omitempty"`
	Urgency           string          `json:"urgency,omitempty"`
}

// NearbyService is a service record annotated with its distance from the
// resolved target point.
type NearbyService struct {
	Service
	DistanceKm float64 `json:"distance_km"`
}

// HelpResponse is the envelope returned for every valid help request.
// Message is set only when NearbyServices is empty.
type HelpResponse struct {
	OriginalQuery      string          `json:"original_query"`
	UnderstoodServices []string        `json:"understood_services"`
	TargetLocation     string          `json:"target_location"`
	TargetCoordinates  [2]float64      `json:"target_coordinates"`
	UserCoordinates    [2]float64      `json:"user_coordinates"`
	Urgency            string          `json:"urgency"`
	RadiusKm           float64         `json:"radius_km"`
	NearbyServices     []NearbyService `json:"nearby_services"`
	Message            string          `json:"message,omitempty"`
}
