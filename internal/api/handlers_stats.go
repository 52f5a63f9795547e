package api

import "net/http"

// handleFetchStats reports rolling reference-fetch statistics.
func (s *Server) handleFetchStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.stats.Snapshot())
}
