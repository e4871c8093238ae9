package product_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var productUpdateDTO dto.ProductUpdate
	err = json.NewDecoder(r.Body).Decode(&productUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	productModify := productUpdateDTO.ToProductModify()
	productModify.ID = &id

	res, err := h.service.UpdateProduct(r.Context(), productModify)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrMissingRequiredFields),
			errors.Is(err, product.ErrInvalidProductID),
			errors.Is(err, product.ErrInvalidName),
			errors.Is(err, product.ErrInvalidCategory),
			errors.Is(err, product.ErrInvalidWeight),
			errors.Is(err, product.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, product.ErrProductNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, product.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("product_id", id),
			).Error("update product")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromProduct(*res))
}
