package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxNoteBytes caps note and flag request bodies.
const maxNoteBytes = 64 << 10

type noteBody struct {
	Text string `json:"text"`
}

type flagBody struct {
	On bool `json:"on"`
}

func (h *Handler) handleGetNote(w http.ResponseWriter, r *http.Request) {
	scope, id := chi.URLParam(r, "scope"), chi.URLParam(r, "id")
	text, err := h.svc.GetNote(r.Context(), scope, id)
	if err != nil {
		h.fail(w, r, "get note", err)
		return
	}
	h.writeJSON(w, noteBody{Text: text})
}

// handlePutNote stores {"text": "..."}; an empty text deletes the note.
func (h *Handler) handlePutNote(w http.ResponseWriter, r *http.Request) {
	var body noteBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxNoteBytes)).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.SaveNote(r.Context(), chi.URLParam(r, "scope"), chi.URLParam(r, "id"), body.Text); err != nil {
		h.fail(w, r, "save note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePutFlag(w http.ResponseWriter, r *http.Request) {
	var body flagBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxNoteBytes)).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.SetFlag(r.Context(), chi.URLParam(r, "scope"), chi.URLParam(r, "id"), body.On); err != nil {
		h.fail(w, r, "set flag", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListFlags(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.ListFlags(r.Context(), chi.URLParam(r, "scope"))
	if err != nil {
		h.fail(w, r, "list flags", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	h.writeJSON(w, map[string][]string{"ids": ids})
}
