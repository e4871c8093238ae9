package product_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightdesk/internal/dto"
	"freightdesk/internal/handlers/rest/respond"
	"freightdesk/internal/service/product"
	"freightdesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var productCreateDTO dto.ProductCreate
	err := json.NewDecoder(r.Body).Decode(&productCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateProduct(r.Context(), productCreateDTO.ToProductModify())
	if err != nil {
		switch {
		case errors.Is(err, product.ErrMissingRequiredFields),
			errors.Is(err, product.ErrInvalidName),
			errors.Is(err, product.ErrInvalidCategory),
			errors.Is(err, product.ErrInvalidWeight),
			errors.Is(err, product.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, product.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create product")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.ProductCreateResponse{ID: id})
}
