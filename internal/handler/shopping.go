package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/shopping"
)

// AddShoppingItemRequest is the body of POST /api/shopping-list
type AddShoppingItemRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"shopcategory"`
}

// ClearCompletedResponse reports how many items were removed
type ClearCompletedResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

// HandleListShopping returns the list grouped by category
// @Summary Get shopping list
// @Description Categories are alphabetical; items keep insertion order inside a category
// @Tags shopping
// @Produce json
// @Success 200 {array} domain.CategoryGroup
// @Failure 500 {object} ErrorResponse
// @Router /api/shopping-list [get]
func HandleListShopping(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "list shopping items", err)
			return
		}
		respondJSON(w, http.StatusOK, groups)
	}
}

// HandleAddShoppingItem adds an item by hand
// @Summary Add shopping item
// @Tags shopping
// @Accept json
// @Produce json
// @Param request body AddShoppingItemRequest true "Item"
// @Success 201 {object} domain.ShoppingItem
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shopping-list [post]
func HandleAddShoppingItem(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddShoppingItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add shopping item"); err != nil {
			return
		}

		item, err := svc.AddItem(r.Context(), req.Name, req.Category)
		if err != nil {
			respondServiceError(w, r, "add shopping item", err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleUpdateShoppingItem applies a partial update
// @Summary Update shopping item
// @Tags shopping
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body domain.ShoppingItemUpdate true "Fields to change"
// @Success 200 {object} domain.ShoppingItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shopping-list/{id} [patch]
func HandleUpdateShoppingItem(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ShoppingItemUpdate
		if err := DecodeAndValidateRequest(r, w, &req, "Update shopping item"); err != nil {
			return
		}
		if req.IsEmpty() {
			respondError(w, http.StatusBadRequest, ErrMsgEmptyUpdate)
			return
		}

		item, err := svc.UpdateItem(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			respondServiceError(w, r, "update shopping item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleToggleShoppingItem flips the completed flag
// @Summary Toggle shopping item
// @Tags shopping
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.ShoppingItem
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shopping-list/{id}/toggle [post]
func HandleToggleShoppingItem(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.ToggleCompleted(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "toggle shopping item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleRemoveShoppingItem deletes one item
// @Summary Remove shopping item
// @Tags shopping
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shopping-list/{id} [delete]
func HandleRemoveShoppingItem(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, "remove shopping item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgShoppingItemRemoved})
	}
}

// HandleClearCompleted deletes every completed item
// @Summary Clear completed items
// @Tags shopping
// @Produce json
// @Success 200 {object} ClearCompletedResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shopping-list/completed [delete]
func HandleClearCompleted(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.ClearCompleted(r.Context())
		if err != nil {
			respondServiceError(w, r, "clear completed items", err)
			return
		}
		respondJSON(w, http.StatusOK, ClearCompletedResponse{Message: MsgCompletedItemsCleared, Removed: n})
	}
}
