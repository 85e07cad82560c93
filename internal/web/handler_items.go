package web

import (
	"net/http"
	"strings"

	"listcal/internal/domain"
)

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	l, ok := s.repo.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	quantity, qtyErr := domain.ParseAmount(r.FormValue("quantity"))
	price, priceErr := domain.ParseAmount(r.FormValue("price"))

	// A rejected submission commits nothing and leaves the form open with
	// whatever was typed.
	if name == "" || qtyErr != nil || priceErr != nil {
		data := s.pageFromState(r)
		data.AddOpen = true
		data.EditMode = r.FormValue("edit") == "1"
		data.AddName = r.FormValue("name")
		data.AddQuantity = r.FormValue("quantity")
		data.AddPrice = r.FormValue("price")
		switch {
		case name == "":
			data.AddError = "item name is required"
		case qtyErr != nil:
			data.AddError = "quantity must be a whole number of 0 or more"
		default:
			data.AddError = "price must be a whole number of 0 or more"
		}
		s.renderPage(w, http.StatusUnprocessableEntity, data)
		return
	}

	s.repo.UpdateList(r.Context(), l.WithItem(domain.NewItem(name, quantity, price)))
	redirect(w, r, editTarget(r))
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	l, ok := s.repo.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	updated, found := l.WithItemUpdate(r.PathValue("itemID"), func(it domain.Item) domain.Item {
		// An emptied name field keeps the prior name; item names stay
		// non-empty. Quantity and price coerce bad input to 0.
		if name := strings.TrimSpace(r.FormValue("name")); name != "" {
			it.Name = name
		}
		it.Quantity = domain.CoerceAmount(r.FormValue("quantity"))
		it.Price = domain.CoerceAmount(r.FormValue("price"))
		return it
	})
	if !found {
		http.NotFound(w, r)
		return
	}

	s.repo.UpdateList(r.Context(), updated)
	redirect(w, r, editTarget(r))
}

func (s *Server) handleIncrementItem(w http.ResponseWriter, r *http.Request) {
	s.stepItem(w, r, +1)
}

func (s *Server) handleDecrementItem(w http.ResponseWriter, r *http.Request) {
	s.stepItem(w, r, -1)
}

// stepItem adjusts a quantity by delta. Increment has no upper bound;
// decrement floors at zero.
func (s *Server) stepItem(w http.ResponseWriter, r *http.Request, delta int) {
	l, ok := s.repo.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	updated, found := l.WithItemUpdate(r.PathValue("itemID"), func(it domain.Item) domain.Item {
		it.Quantity += delta
		if it.Quantity < 0 {
			it.Quantity = 0
		}
		return it
	})
	if !found {
		http.NotFound(w, r)
		return
	}

	s.repo.UpdateList(r.Context(), updated)
	redirect(w, r, editTarget(r))
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	l, ok := s.repo.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.repo.UpdateList(r.Context(), l.WithoutItem(r.PathValue("itemID")))
	redirect(w, r, "/?edit=1")
}
