package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/ctrl"
	"github.com/JMURv/go-attractions/internal/dto"
	"github.com/JMURv/go-attractions/internal/hdl"
	"github.com/JMURv/go-attractions/internal/hdl/http/utils"
	"github.com/JMURv/go-attractions/internal/repo/s3"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || uid == uuid.Nil {
		zap.L().Debug(
			hdl.ErrFailedToParseUUID.Error(),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return uuid.Nil, false
	}
	return uid, true
}

// getBiometrics godoc
//
//	@Summary		Get biometric login preference
//	@Tags			User
//	@Produce		json
//	@Param			id	path		string	true	"User UUID"
//	@Success		200	{object}	dto.BiometricsResponse
//	@Failure		400	{object}	utils.ErrorResponse	"invalid UUID"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/users/{id}/biometrics [get]
func (h *Handler) getBiometrics(w http.ResponseWriter, r *http.Request) {
	const op = "users.getBiometrics.hdl"

	uid, ok := parseUserID(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.GetBiometrics(r.Context(), uid)
	if err != nil {
		zap.L().Error("failed to get biometrics", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, &dto.BiometricsResponse{Enabled: res})
}

// setBiometrics godoc
//
//	@Summary		Set biometric login preference
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User UUID"
//	@Param			body	body		dto.BiometricsRequest	true	"Preference"
//	@Success		200		{object}	dto.BiometricsResponse
//	@Failure		400		{object}	utils.ErrorResponse	"bad request"
//	@Failure		404		{object}	utils.ErrorResponse	"user not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/users/{id}/biometrics [put]
func (h *Handler) setBiometrics(w http.ResponseWriter, r *http.Request) {
	const op = "users.setBiometrics.hdl"

	uid, ok := parseUserID(w, r)
	if !ok {
		return
	}

	req := &dto.BiometricsRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.SetBiometrics(r.Context(), uid, *req.Enabled)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, errors.New("user not found"))
			return
		}

		zap.L().Error("failed to set biometrics", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, &dto.BiometricsResponse{Enabled: res})
}

// updateAvatar godoc
//
//	@Summary		Set avatar reference
//	@Description	Stores an avatar URL or path chosen by the client
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User UUID"
//	@Param			body	body		dto.UpdateAvatarRequest	true	"Avatar"
//	@Success		200		{object}	dto.SuccessResponse
//	@Failure		400		{object}	utils.ErrorResponse	"bad request"
//	@Failure		404		{object}	utils.ErrorResponse	"user not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/users/{id}/avatar [put]
func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	const op = "users.updateAvatar.hdl"

	uid, ok := parseUserID(w, r)
	if !ok {
		return
	}

	req := &dto.UpdateAvatarRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.UpdateAvatar(r.Context(), uid, req.Avatar); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, errors.New("user not found"))
			return
		}

		zap.L().Error("failed to update avatar", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, &dto.SuccessResponse{Success: true})
}

// uploadAvatar godoc
//
//	@Summary		Upload avatar image
//	@Description	Stores the image and records its URL as the user's avatar
//	@Tags			User
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"User UUID"
//	@Param			avatar	formData	file	true	"Avatar image"
//	@Success		200		{object}	dto.AvatarResponse
//	@Failure		400		{object}	utils.ErrorResponse	"bad request or file too large"
//	@Failure		404		{object}	utils.ErrorResponse	"user not found"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/users/{id}/avatar [post]
func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	const op = "users.uploadAvatar.hdl"

	uid, ok := parseUserID(w, r)
	if !ok {
		return
	}

	file, ok := parseImage(w, r, "avatar")
	if !ok {
		return
	}

	url, err := h.ctrl.UploadAvatar(r.Context(), uid, file)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, errors.New("user not found"))
			return
		}

		zap.L().Error("failed to upload avatar", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, &dto.AvatarResponse{Avatar: url})
}

func parseImage(w http.ResponseWriter, r *http.Request, field string) (*s3.UploadFileRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxMemory+1<<20)
	if err := r.ParseMultipartForm(config.MaxMemory); err != nil {
		zap.L().Debug("failed to parse multipart form", zap.Error(err))
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return nil, false
	}

	file := &s3.UploadFileRequest{}
	if err := utils.ParseFileField(r, field, file); err != nil {
		if errors.Is(err, hdl.ErrInternal) {
			utils.ErrResponse(w, http.StatusInternalServerError, err)
			return nil, false
		}

		utils.ErrResponse(w, http.StatusBadRequest, err)
		return nil, false
	}

	return file, true
}
