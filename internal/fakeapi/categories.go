package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/category"
)

func (s *Server) categoryRoutes(r chi.Router) {
	r.Get("/", s.listCategories)
	r.Post("/", s.createCategory)
	r.Get("/{id}", s.getCategory)
	r.Put("/{id}", s.updateCategory)
	r.Delete("/{id}", s.deleteCategory)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.tenantOf(r).categories.list())
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req category.CreateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &category.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   s.now(),
	}
	s.tenantOf(r).categories.add(c.ID, c)

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, found := s.tenantOf(r).categories.get(id)
	if !found {
		notFound(w, "category")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req category.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, found := s.tenantOf(r).categories.get(id)
	if !found {
		notFound(w, "category")
		return
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Description != nil {
		c.Description = *req.Description
	}

	c.UpdatedAt = touch(s.now())

	writeJSON(w, http.StatusOK, c)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tenantOf(r).categories.remove(id) {
		notFound(w, "category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
