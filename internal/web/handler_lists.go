package web

import (
	"net/http"
	"strings"

	"listcal/internal/domain"
	"listcal/internal/suggest"
)

// pageData is everything the index page needs. It is rebuilt from canonical
// repository state on every request; view flags (edit mode, open dialog,
// open add form) travel in the query string and never outlive a request.
type pageData struct {
	Lists    []domain.ShoppingList
	ActiveID string
	Active   *domain.ShoppingList

	EditMode   bool
	ShowDialog bool

	AddOpen     bool
	AddError    string
	AddName     string
	AddQuantity string
	AddPrice    string

	SuggestEnabled bool
	Suggestions    []suggest.Suggestion
}

func (s *Server) pageFromState(r *http.Request) pageData {
	data := pageData{
		Lists:          s.repo.Lists(),
		EditMode:       r.URL.Query().Get("edit") == "1",
		ShowDialog:     r.URL.Query().Get("new") == "1",
		AddOpen:        r.URL.Query().Get("add") == "1",
		AddQuantity:    "1",
		SuggestEnabled: s.suggester != nil,
	}
	if active, ok := s.repo.Active(); ok {
		data.Active = &active
		data.ActiveID = active.ID
	}
	return data
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderPage(w, http.StatusOK, s.pageFromState(r))
}

const maxListNameLen = 200

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "list name required", http.StatusBadRequest)
		return
	}
	if len(name) > maxListNameLen {
		http.Error(w, "list name too long", http.StatusBadRequest)
		return
	}

	s.repo.AddList(r.Context(), name)
	redirect(w, r, "/")
}

func (s *Server) handleSelectList(w http.ResponseWriter, r *http.Request) {
	// Selection is not validated here; a stale id self-heals on the next
	// observation. Switching lists always lands with edit mode off.
	s.repo.SelectList(r.PathValue("id"))
	redirect(w, r, "/")
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	s.repo.DeleteList(r.Context(), r.PathValue("id"))
	redirect(w, r, "/")
}

func (s *Server) handleRenameList(w http.ResponseWriter, r *http.Request) {
	l, ok := s.repo.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if renamed, changed := l.Renamed(r.FormValue("name")); changed {
		s.repo.UpdateList(r.Context(), renamed)
	}

	// Leaving edit mode submits the rename form too, so an in-progress
	// name edit is committed before the toggle takes effect.
	if r.FormValue("done") == "1" {
		redirect(w, r, "/")
		return
	}
	redirect(w, r, "/?edit=1")
}

func (s *Server) handleResetQuantities(w http.ResponseWriter, r *http.Request) {
	l, ok := s.repo.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.repo.UpdateList(r.Context(), l.WithQuantitiesReset())
	redirect(w, r, editTarget(r))
}

// editTarget keeps the edit-mode flag across mutations issued from
// edit-mode forms, which carry a hidden edit field.
func editTarget(r *http.Request) string {
	if r.FormValue("edit") == "1" {
		return "/?edit=1"
	}
	return "/"
}
