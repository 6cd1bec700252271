package list_users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/users"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

const (
	msgInvalidUserType  = "Invalid userType. Must be one of: guest, host, both"
	codeInvalidUserType = "INVALID_USER_TYPE"
)

type Handler struct {
	service      UserService
	defaultLimit int
	maxLimit     int
	logger       Logger
}

func NewHandler(service UserService, defaultLimit, maxLimit int, logger Logger) *Handler {
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Handle GET /api/v1/users?search=&userType=&verified=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{
		Search:   handlers.QueryString(r, "search"),
		UserType: handlers.QueryString(r, "userType"),
	}
	// любое значение, кроме "true", выбирает неподтвержденных
	if raw := handlers.QueryString(r, "verified"); raw != nil {
		verified := *raw == "true"
		req.Verified = &verified
	}
	req.Limit, req.Offset = handlers.ParsePagination(r, h.defaultLimit, h.maxLimit)

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidUserType):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidUserType, codeInvalidUserType)

		default:
			h.logger.Error("GET /users - Failed to list users: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
