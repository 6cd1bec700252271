package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	getAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"
)

const (
	msgMissingPropertyID = "propertyId is required"
	msgInvalidPropertyID = "Valid propertyId is required"
	msgPropertyNotFound  = "Property not found"
	msgInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD"
)

const (
	codeMissingPropertyID = "MISSING_PROPERTY_ID"
	codeInvalidPropertyID = "INVALID_PROPERTY_ID"
	codePropertyNotFound  = "PROPERTY_NOT_FOUND"
	codeInvalidDateFormat = "INVALID_DATE_FORMAT"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/property-availability?propertyId=&startDate=&endDate=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &getAvailability.Request{
		PropertyID: q.Get("propertyId"),
		StartDate:  handlers.QueryString(r, "startDate"),
		EndDate:    handlers.QueryString(r, "endDate"),
		Limit:      queryInt(q.Get("limit")),
		Offset:     queryInt(q.Get("offset")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMissingPropertyID):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingPropertyID, codeMissingPropertyID)

		case errors.Is(err, getAvailability.ErrInvalidPropertyID):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidPropertyID, codeInvalidPropertyID)

		case errors.Is(err, getAvailability.ErrPropertyNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgPropertyNotFound, codePropertyNotFound)

		case errors.Is(err, getAvailability.ErrInvalidDateFormat):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidDateFormat, codeInvalidDateFormat)

		default:
			h.logger.Error("GET /property-availability - Failed to get availability: property_id=%q, error=%v",
				req.PropertyID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /property-availability - Availability retrieved: property_id=%s, count=%d",
		req.PropertyID, len(result.Records))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// queryInt разбирает целое, мусор превращается в 0 и нормализуется в use case
func queryInt(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}
