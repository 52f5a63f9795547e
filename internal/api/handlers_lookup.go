package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/doclink/internal/editor"
	"github.com/dgallion1/doclink/internal/resolver"
	"github.com/go-chi/chi/v5"
)

type lookupRequest struct {
	Mode string `json:"mode"`
	Lang string `json:"lang"`
}

// handleLookup extracts the selected text and resolves link candidates for
// it in the requested mode.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	sess.Touch()

	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid lookup body: "+err.Error(), http.StatusBadRequest)
		return
	}

	selected, err := editor.SelectedText(sess.Doc)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var result resolver.Result
	switch req.Mode {
	case "", "files":
		result, err = s.files.Lookup(r.Context(), selected)
	case "reference":
		lang := req.Lang
		if lang == "" {
			lang = s.cfg.DefaultLang
		}
		result, err = s.reference.Lookup(r.Context(), selected, lang)
	default:
		jsonError(w, "unknown lookup mode: "+req.Mode, http.StatusBadRequest)
		return
	}
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, result)
}
