package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/doclink/internal/doc"
	"github.com/dgallion1/doclink/internal/editor"
	"github.com/go-chi/chi/v5"
)

// rangeRequest addresses one selected element by its child-index path from
// the body. Offsets apply when partial is true and are inclusive on end.
type rangeRequest struct {
	Path    []int `json:"path"`
	Partial bool  `json:"partial"`
	Start   int   `json:"start"`
	End     int   `json:"end"`
}

type cursorRequest struct {
	Path   []int `json:"path"`
	Offset int   `json:"offset"`
}

type selectionRequest struct {
	Ranges []rangeRequest `json:"ranges"`
	Cursor *cursorRequest `json:"cursor"`
}

// handleSetSelection replaces the document's selection or cursor.
func (s *Server) handleSetSelection(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	sess.Touch()

	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid selection body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Ranges) > 0 && req.Cursor != nil {
		jsonError(w, "selection and cursor are mutually exclusive", http.StatusBadRequest)
		return
	}

	d := sess.Doc

	if req.Cursor != nil {
		el, err := d.ElementAt(req.Cursor.Path)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		run, ok := el.(*doc.Text)
		if !ok {
			jsonError(w, "cursor must point into a text run", http.StatusBadRequest)
			return
		}
		if req.Cursor.Offset < 0 || req.Cursor.Offset > run.Len() {
			jsonError(w, "cursor offset out of range", http.StatusBadRequest)
			return
		}
		d.SetCursor(run, req.Cursor.Offset)
		writeJSON(w, map[string]any{"cursor": true})
		return
	}

	ranges := make([]doc.Range, 0, len(req.Ranges))
	for _, rr := range req.Ranges {
		el, err := d.ElementAt(rr.Path)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		ranges = append(ranges, doc.Range{El: el, Partial: rr.Partial, Start: rr.Start, End: rr.End})
	}
	d.SetSelection(ranges)
	writeJSON(w, map[string]any{"ranges": len(ranges)})
}

// handleSelectedText runs the extractor over the current selection.
func (s *Server) handleSelectedText(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	sess.Touch()

	fragments, err := editor.SelectedText(sess.Doc)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"text": fragments})
}

type linkRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// handleApplyLink writes the chosen link back into the document, either
// over the selection or as new text at the cursor.
func (s *Server) handleApplyLink(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	sess.Touch()

	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid link body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		jsonError(w, "url is required", http.StatusBadRequest)
		return
	}

	if err := editor.ApplyLink(sess.Doc, req.URL, req.Text); err != nil {
		if errors.Is(err, editor.ErrNoInsertPoint) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "apply link: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("link applied", "doc_id", sess.ID, "url", req.URL)
	writeJSON(w, map[string]any{"applied": true, "url": req.URL})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
