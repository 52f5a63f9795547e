package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/doclink/internal/parser"
	"github.com/dgallion1/doclink/internal/render"
	"github.com/go-chi/chi/v5"
)

// handleOpenDocument parses an uploaded file into an editable document and
// registers a session for it.
func (s *Server) handleOpenDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	d, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "parse document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	sess := s.sessions.Open(filename, d)
	s.log.Info("document opened", "doc_id", sess.ID, "filename", filename, "blocks", d.Body.ChildCount())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   sess.ID,
		"title":    d.Title,
		"filename": filename,
		"blocks":   d.Body.ChildCount(),
	})
}

// handleExportDocument renders the session's document as HTML.
func (s *Server) handleExportDocument(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	sess.Touch()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, render.HTML(sess.Doc))
}

// handleCloseDocument drops the session.
func (s *Server) handleCloseDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.sessions.Delete(docID) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	s.log.Info("document closed", "doc_id", docID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"doc_id": docID, "closed": true})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
