package list_properties

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/properties/models"
)

type Handler struct {
	service      PropertyService
	defaultLimit int
	maxLimit     int
	logger       Logger
}

func NewHandler(service PropertyService, defaultLimit, maxLimit int, logger Logger) *Handler {
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Handle GET /api/v1/properties?location=&guests=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{Location: handlers.QueryString(r, "location")}

	// нечисловое значение guests игнорируется
	if guests, ok := handlers.QueryInt64(r, "guests"); ok && guests != nil {
		minGuests := int(*guests)
		req.MinGuests = &minGuests
	}
	req.Limit, req.Offset = handlers.ParsePagination(r, h.defaultLimit, h.maxLimit)

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /properties - Failed to list properties: %v", err)
		handlers.RespondInternalError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
