package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/JMURv/go-attractions/internal/ctrl"
	"github.com/JMURv/go-attractions/internal/dto"
	"github.com/JMURv/go-attractions/internal/geo"
	"github.com/JMURv/go-attractions/internal/hdl"
	mid "github.com/JMURv/go-attractions/internal/hdl/http/middleware"
	"github.com/JMURv/go-attractions/internal/hdl/http/utils"
	"go.uber.org/zap"
)

// listAttractions godoc
//
//	@Summary		List attractions
//	@Description	Returns every attraction with its category name. Optional filters narrow the list; lat and lon add a distance in km and sort by it.
//	@Tags			Attraction
//	@Produce		json
//	@Param			category	query		string	false	"Category name"
//	@Param			q			query		string	false	"Case-insensitive text in name or description"
//	@Param			lat			query		number	false	"Device latitude"
//	@Param			lon			query		number	false	"Device longitude"
//	@Param			maxDistance	query		number	false	"Maximum distance in km"
//	@Success		200			{array}		dto.AttractionResponse
//	@Failure		400			{object}	utils.ErrorResponse	"invalid filters"
//	@Failure		500			{object}	utils.ErrorResponse	"internal error"
//	@Router			/attractions [get]
func (h *Handler) listAttractions(w http.ResponseWriter, r *http.Request) {
	const op = "attractions.listAttractions.hdl"

	filters, err := parseAttractionFilters(r)
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.ListAttractions(r.Context(), filters)
	if err != nil {
		zap.L().Error("failed to list attractions", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func parseAttractionFilters(r *http.Request) (*dto.AttractionFilters, error) {
	q := r.URL.Query()
	filters := &dto.AttractionFilters{
		Category: strings.TrimSpace(q.Get("category")),
		Query:    strings.TrimSpace(q.Get("q")),
	}

	lat, lon := q.Get("lat"), q.Get("lon")
	if lat != "" || lon != "" {
		la, errLat := strconv.ParseFloat(lat, 64)
		lo, errLon := strconv.ParseFloat(lon, 64)
		if errLat != nil || errLon != nil || !geo.ValidCoordinates(la, lo) {
			return nil, hdl.ErrInvalidCoordinates
		}
		filters.Latitude, filters.Longitude = &la, &lo
	}

	if raw := q.Get("maxDistance"); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || d <= 0 {
			return nil, hdl.ErrInvalidMaxDistance
		}
		filters.MaxDistance = d
	}

	return filters, nil
}

// createAttraction godoc
//
//	@Summary		Create an attraction
//	@Description	The category is given by name and must already exist
//	@Tags			Attraction
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateAttractionRequest	true	"Attraction"
//	@Success		200		{object}	dto.CreateAttractionResponse
//	@Failure		400		{object}	utils.ErrorResponse	"missing fields or invalid category"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/attractions [post]
func (h *Handler) createAttraction(w http.ResponseWriter, r *http.Request) {
	const op = "attractions.createAttraction.hdl"

	req := &dto.CreateAttractionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateAttraction(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrInvalidCategory) {
			utils.ErrResponse(w, http.StatusBadRequest, err)
			return
		}

		zap.L().Error("failed to create attraction", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// deleteAttractions godoc
//
//	@Summary		Delete attractions
//	@Description	Deletes every listed id; unknown ids are ignored
//	@Tags			Attraction
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.DeleteAttractionsRequest	true	"Ids"
//	@Success		200		{object}	dto.SuccessResponse
//	@Failure		400		{object}	utils.ErrorResponse	"empty or invalid ids"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/attractions [delete]
func (h *Handler) deleteAttractions(w http.ResponseWriter, r *http.Request) {
	const op = "attractions.deleteAttractions.hdl"

	req := &dto.DeleteAttractionsRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.DeleteAttractions(r.Context(), req.IDs); err != nil {
		if errors.Is(err, ctrl.ErrNoIDs) {
			utils.ErrResponse(w, http.StatusBadRequest, err)
			return
		}

		zap.L().Error("failed to delete attractions", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	fields := []zap.Field{zap.String("op", op), zap.Int("count", len(req.IDs))}
	if uid, ok := mid.UID(r.Context()); ok {
		fields = append(fields, zap.String("uid", uid.String()))
	}
	zap.L().Info("attractions deleted", fields...)

	utils.SuccessResponse(w, http.StatusOK, &dto.SuccessResponse{Success: true})
}

// uploadAttractionImage godoc
//
//	@Summary		Upload attraction image
//	@Description	Stores the image and returns its URL for use in the image field of a new attraction
//	@Tags			Attraction
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Image"
//	@Param			name	formData	string	true	"Attraction name"
//	@Success		200		{object}	dto.UploadImageResponse
//	@Failure		400		{object}	utils.ErrorResponse	"bad request or file too large"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/attractions/images [post]
func (h *Handler) uploadAttractionImage(w http.ResponseWriter, r *http.Request) {
	const op = "attractions.uploadAttractionImage.hdl"

	file, ok := parseImage(w, r, "image")
	if !ok {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		utils.ErrResponse(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	url, err := h.ctrl.UploadAttractionImage(r.Context(), name, file)
	if err != nil {
		zap.L().Error("failed to upload attraction image", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, &dto.UploadImageResponse{URL: url})
}
