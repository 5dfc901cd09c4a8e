package mockapi

import (
	"errors"
	"net/http"

	"wholesale-admin/internal/catalog"
	"wholesale-admin/internal/domain"

	"github.com/go-chi/chi/v5"
)

// The production API never settled on one response envelope; each
// handler below replicates the shape its real counterpart ships so the
// console's normalization adapters get exercised end to end.

func (s *Server) handleCategoryList(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{"data": s.store.Categories()})
}

func (s *Server) handleCategoryTree(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, catalog.BuildTree(s.store.Categories()))
}

func (s *Server) handleParentCategories(w http.ResponseWriter, r *http.Request) {
	// Parent candidates are every category, in tree pre-order.
	flat := catalog.Flatten(catalog.BuildTree(s.store.Categories()))
	respondWithJSON(w, http.StatusOK, map[string]any{"data": flat})
}

func (s *Server) handleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.CategoryInput
	if msg, ok := decodeAndValidate(r, &in); !ok {
		respondWithMessage(w, http.StatusBadRequest, msg)
		return
	}

	created, err := s.store.CreateCategory(in)
	if err != nil {
		respondWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (s *Server) handleCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	var in domain.CategoryInput
	if msg, ok := decodeAndValidate(r, &in); !ok {
		respondWithMessage(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := s.store.UpdateCategory(chi.URLParam(r, "id"), in)
	if err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"data": updated})
}

func (s *Server) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCategory(chi.URLParam(r, "id")); err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "category deleted")
}

func (s *Server) handleProductList(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"products": s.store.Products()},
	})
}

func (s *Server) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.ProductInput
	if msg, ok := decodeAndValidate(r, &in); !ok {
		respondWithMessage(w, http.StatusBadRequest, msg)
		return
	}

	created, err := s.store.CreateProduct(in)
	if err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{"product": created})
}

func (s *Server) handleProductUpdate(w http.ResponseWriter, r *http.Request) {
	var in domain.ProductInput
	if msg, ok := decodeAndValidate(r, &in); !ok {
		respondWithMessage(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := s.store.UpdateProduct(chi.URLParam(r, "id"), in)
	if err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"product": updated},
	})
}

func (s *Server) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteProduct(chi.URLParam(r, "id")); err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "product deleted")
}

func (s *Server) handleOrderList(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.store.Orders())
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		respondWithMessage(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := s.store.UpdateOrderStatus(chi.URLParam(r, "id"), req.Status, req.Notes)
	if err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (s *Server) handleOrderDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteOrder(chi.URLParam(r, "id")); err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "order deleted")
}

func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{"data": s.store.Users()})
}

type userStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleUserStatus(w http.ResponseWriter, r *http.Request) {
	var req userStatusRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		respondWithMessage(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := s.store.UpdateUserStatus(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteUser(chi.URLParam(r, "id")); err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "user deleted")
}

func respondWithStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respondWithMessage(w, http.StatusNotFound, err.Error())
	default:
		respondWithMessage(w, http.StatusBadRequest, err.Error())
	}
}
