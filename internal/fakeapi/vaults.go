package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

func (s *Server) vaultRoutes(r chi.Router) {
	r.Get("/", s.listVaults)
	r.Post("/", s.createVault)
	r.Get("/{id}", s.getVault)
	r.Put("/{id}", s.updateVault)
	r.Delete("/{id}", s.deleteVault)
}

func (s *Server) listVaults(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.tenantOf(r).vaults.list())
}

func (s *Server) createVault(w http.ResponseWriter, r *http.Request) {
	var req vault.CreateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)
	if !exists(&t.banks, req.BankID) {
		notFound(w, "bank")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = vault.DefaultCurrency
	}

	v := &vault.Vault{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    currency,
		BankID:      req.BankID,
		UserID:      principalFrom(r.Context()).userID,
		CreatedAt:   s.now(),
	}
	t.vaults.add(v.ID, v)

	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) getVault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, found := s.tenantOf(r).vaults.get(id)
	if !found {
		notFound(w, "vault")
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (s *Server) updateVault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req vault.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenantOf(r)

	v, found := t.vaults.get(id)
	if !found {
		notFound(w, "vault")
		return
	}

	if !exists(&t.banks, req.BankID) {
		notFound(w, "bank")
		return
	}

	if req.Name != nil {
		v.Name = *req.Name
	}

	if req.Description != nil {
		v.Description = *req.Description
	}

	if req.Amount != nil {
		v.Amount = *req.Amount
	}

	if req.Currency != nil {
		v.Currency = *req.Currency
	}

	if req.BankID != nil {
		v.BankID = req.BankID
	}

	v.UpdatedAt = touch(s.now())

	writeJSON(w, http.StatusOK, v)
}

func (s *Server) deleteVault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tenantOf(r).vaults.remove(id) {
		notFound(w, "vault")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
