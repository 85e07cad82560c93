package web

import (
	"net/http"
)

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if s.suggester == nil {
		http.NotFound(w, r)
		return
	}

	l, ok := s.repo.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	have := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		have = append(have, it.Name)
	}

	suggestions, err := s.suggester.Suggest(r.Context(), l.Name, have)
	if err != nil {
		// Suggestions are decoration; a backend failure renders the page
		// without them rather than erroring.
		s.logger.Error("suggestion backend failed", "list_id", l.ID, "error", err)
	}

	data := s.pageFromState(r)
	data.Suggestions = suggestions
	s.renderPage(w, http.StatusOK, data)
}
