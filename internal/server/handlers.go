// Package server handles HTTP requests and middleware.
package server

import (
	"fmt"
	"hash/fnv"
	"net/http"
)

// HandleZonesList serves the JSON summary of all loaded zones.
func (s *ServerContext) HandleZonesList(w http.ResponseWriter, r *http.Request) {
	s.serveBytes(w, r, s.ZoneList, "application/json")
}

// HandleGeoJSON serves the zone geometry as a GeoJSON FeatureCollection.
func (s *ServerContext) HandleGeoJSON(w http.ResponseWriter, r *http.Request) {
	s.serveBytes(w, r, s.GeoJSON, "application/geo+json")
}

// HandleIndex serves the viewer application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.serveBytes(w, r, s.IndexHTML, "text/html; charset=utf-8")
}

// serveBytes writes a pre-rendered payload with ETag revalidation.
func (s *ServerContext) serveBytes(w http.ResponseWriter, r *http.Request, payload []byte, contentType string) {
	etag := fmt.Sprintf(`"%x-%x"`, len(payload), checksum(payload))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(payload)
}

func checksum(data []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return h.Sum32()
}
