package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/go-attractions/internal/auth"
	"github.com/JMURv/go-attractions/internal/ctrl"
	"github.com/JMURv/go-attractions/internal/dto"
	"github.com/JMURv/go-attractions/internal/hdl"
	"github.com/JMURv/go-attractions/internal/hdl/http/utils"
	"go.uber.org/zap"
)

// register godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account and returns the public user with an access token
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterRequest	true	"Registration payload"
//	@Success		200		{object}	dto.RegisterResponse
//	@Failure		400		{object}	utils.ErrorResponse	"missing fields or email already registered"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/auth/register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register.hdl"

	req := &dto.RegisterRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusBadRequest, errors.New("email already registered"))
			return
		}

		zap.L().Error("failed to register", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// login godoc
//
//	@Summary		Log in
//	@Description	Checks credentials and returns the user with an access token
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.LoginRequest	true	"Credentials"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		400		{object}	utils.ErrorResponse	"invalid email or password"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login.hdl"

	req := &dto.LoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) || errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrInvalidLogin)
			return
		}

		zap.L().Error("failed to login", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
