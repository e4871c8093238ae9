package course_accept_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"freightdesk/internal/dto"
	"freightdesk/internal/handlers/rest/respond"
	"freightdesk/internal/pkg/middlewares/auth"
	"freightdesk/internal/service/course"
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

// ServeHTTP takes the course for the carrier behind the session and answers with the new delivery.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.SessionFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	courseID := mux.Vars(r)["id"]

	res, err := h.service.Accept(r.Context(), courseID, current.Email)
	if err != nil {
		switch {
		case errors.Is(err, course.ErrInvalidCourseID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, course.ErrMissingCarrier):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, course.ErrCourseNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, course.ErrCourseTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("course_id", courseID),
			).Error("accept course")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromDelivery(*res))
}
