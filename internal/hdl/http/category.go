package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/go-attractions/internal/ctrl"
	"github.com/JMURv/go-attractions/internal/dto"
	"github.com/JMURv/go-attractions/internal/hdl"
	"github.com/JMURv/go-attractions/internal/hdl/http/utils"
	"go.uber.org/zap"
)

// listCategories godoc
//
//	@Summary		List categories
//	@Tags			Category
//	@Produce		json
//	@Success		200	{array}		models.Category
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	const op = "categories.listCategories.hdl"

	res, err := h.ctrl.ListCategories(r.Context())
	if err != nil {
		zap.L().Error("failed to list categories", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// createCategory godoc
//
//	@Summary		Create a category
//	@Tags			Category
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateCategoryRequest	true	"Category"
//	@Success		200		{object}	dto.SuccessResponse
//	@Failure		400		{object}	utils.ErrorResponse	"missing name or duplicate"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/categories [post]
func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	const op = "categories.createCategory.hdl"

	req := &dto.CreateCategoryRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.CreateCategory(r.Context(), req); err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusBadRequest, errors.New("category already exists"))
			return
		}

		zap.L().Error("failed to create category", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, &dto.SuccessResponse{Success: true})
}
