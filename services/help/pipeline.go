package help

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"nearaid/models"

	"go.uber.org/zap"
)

// Radius cutoffs applied per urgency level, in kilometers. Medium and
// anything unrecognized use the configured default.
const (
	highUrgencyRadiusKm = 15
	lowUrgencyRadiusKm  = 5
)

// defaultTargetLabel names the search center when no mentioned place could
// be resolved.
const defaultTargetLabel = "your current location"

// Resolve runs the help resolution pipeline: validate, resolve intent,
// resolve the target point, scale the radius by urgency, fetch nearby
// candidates, filter by type and radius, and shape the distance-sorted
// response.
func (s *DefaultHelpService) Resolve(ctx context.Context, req models.HelpRequest) (*models.HelpResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, &ValidationError{Reason: "Query text is required"}
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, &ValidationError{Reason: "Location coordinates are required"}
	}
	userLat, userLon := *req.Latitude, *req.Longitude

	types := []string(req.ServiceType)
	mentioned := req.LocationMentioned
	if len(types) == 0 {
		location, hint := extractIntent(req.Query)
		mentioned = location
		if hint == "" {
			hint = req.Query
		}
		vocab, err := s.Repo.GetServiceTypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch service types: %w", err)
		}
		types = []string{matchServiceType(hint, vocab)}
	}

	// A geocoding failure falls back to the user's own coordinates and
	// never aborts the request.
	targetLat, targetLon := userLat, userLon
	targetLabel := defaultTargetLabel
	if mentioned != "" {
		gctx, cancel := context.WithTimeout(ctx, s.Config.GeocodeTimeout)
		place, err := s.Geocoder.Geocode(gctx, mentioned)
		cancel()
		switch {
		case err != nil:
			s.logger().Warn("geocoding failed, using user coordinates",
				zap.String("place", mentioned), zap.Error(err))
		case place != nil:
			targetLat, targetLon = place.Latitude, place.Longitude
			targetLabel = place.DisplayName
		}
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = models.UrgencyMedium
	}
	radiusKm := s.Config.DefaultRadiusKm
	switch urgency {
	case models.UrgencyHigh:
		radiusKm = highUrgencyRadiusKm
	case models.UrgencyLow:
		radiusKm = lowUrgencyRadiusKm
	}

	candidates, err := s.Repo.FindNearby(ctx, targetLat, targetLon, s.Config.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("nearby search failed: %w", err)
	}

	nearby := make([]models.NearbyService, 0, len(candidates))
	for _, cand := range candidates {
		if !matchesAnyType(cand.Type, types) {
			continue
		}
		dist := haversineKm(targetLat, targetLon, cand.Latitude, cand.Longitude)
		if dist > radiusKm {
			continue
		}
		nearby = append(nearby, models.NearbyService{
			Service:    cand,
			DistanceKm: math.Round(dist*100) / 100,
		})
	}
	// Stable keeps store iteration order for equal distances.
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	resp := &models.HelpResponse{
		OriginalQuery:      req.Query,
		UnderstoodServices: types,
		TargetLocation:     targetLabel,
		TargetCoordinates:  [2]float64{targetLat, targetLon},
		UserCoordinates:    [2]float64{userLat, userLon},
		Urgency:            urgency,
		RadiusKm:           radiusKm,
		NearbyServices:     nearby,
	}
	if len(nearby) == 0 {
		resp.Message = fmt.Sprintf(
			"No %s services found within %gkm of the target location. Try increasing the search radius or selecting a different service type.",
			strings.Join(types, ", "), radiusKm)
	}
	return resp, nil
}

// matchesAnyType reports whether a record's type label equals one of the
// resolved labels, case-insensitively and whitespace-trimmed. Exact label
// equality only: free text was already normalized against the live
// vocabulary upstream.
func matchesAnyType(label string, wanted []string) bool {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, w := range wanted {
		if label == strings.ToLower(strings.TrimSpace(w)) {
			return true
		}
	}
	return false
}
