// Package geo buckets raw "lat,lng" coordinate strings into the fixed
// catalog of Brazilian federal units.
package geo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dashboard-engine/internal/model"
)

// ParsePoint splits a "lat,lng" string into coordinates. Malformed
// input yields ok=false, never an error.
func ParsePoint(coords string) (lat, lng float64, ok bool) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// Classify maps a coordinate string to a region code, first bounding
// box match wins. Boxes are approximations, not exact polygons.
func Classify(coords string) (string, bool) {
	lat, lng, ok := ParsePoint(coords)
	if !ok {
		return "", false
	}
	for _, r := range regions {
		if lat >= r.LatMin && lat <= r.LatMax && lng >= r.LngMin && lng <= r.LngMax {
			return r.Code, true
		}
	}
	return "", false
}

// MapPoints aggregates deals into one point per non-empty region,
// sorted by volume descending.
func MapPoints(deals []model.Deal) []model.MapPoint {
	counts := map[string]int{}
	for _, d := range deals {
		if d.Coordenadas == "" {
			continue
		}
		if code, ok := Classify(d.Coordenadas); ok {
			counts[code]++
		}
	}

	points := make([]model.MapPoint, 0, len(counts))
	for _, r := range regions {
		volume, ok := counts[r.Code]
		if !ok {
			continue
		}
		points = append(points, model.MapPoint{
			State:  r.Code,
			X:      r.X,
			Y:      r.Y,
			Volume: volume,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Volume > points[j].Volume
	})
	for i := range points {
		points[i].ID = strconv.Itoa(i + 1)
	}
	return points
}

// HeatPoints keeps every deal whose coordinates parse, regardless of
// whether any region box contains it.
func HeatPoints(deals []model.Deal) []model.HeatPoint {
	var points []model.HeatPoint
	for idx, d := range deals {
		if d.Coordenadas == "" {
			continue
		}
		lat, lng, ok := ParsePoint(d.Coordenadas)
		if !ok {
			continue
		}
		id := d.DealID
		if id == 0 {
			id = d.ID
		}
		points = append(points, model.HeatPoint{
			ID:  fmt.Sprintf("heat-%d-%d", id, idx),
			Lat: lat,
			Lng: lng,
		})
	}
	return points
}
