package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

const (
	msgMissingRequiredFields = "Missing required fields"
	msgInvalidPropertyID     = "Valid propertyId is required"
	msgEmptyGuestName        = "Guest name cannot be empty"
	msgInvalidEmail          = "Invalid email format"
	msgInvalidGuests         = "Guests must be a positive number"
	msgInvalidTotalPrice     = "totalPrice must be a non-negative integer"
	msgPropertyNotFound      = "Property not found"
	msgInvalidDate           = "Invalid date format"
	msgInvalidDateRange      = "Check-out date must be after check-in date"
	msgStayTooLong           = "Stay is too long to reserve in the calendar"
	msgDatesUnavailable      = "Some of the requested nights are not available"
	msgConcurrentUpdate      = "The requested nights were modified concurrently, please retry"
)

const (
	codeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
	codeInvalidPropertyID     = "INVALID_PROPERTY_ID"
	codeEmptyGuestName        = "EMPTY_GUEST_NAME"
	codeInvalidEmail          = "INVALID_EMAIL"
	codeInvalidGuests         = "INVALID_GUESTS"
	codeInvalidTotalPrice     = "INVALID_TOTAL_PRICE"
	codePropertyNotFound      = "PROPERTY_NOT_FOUND"
	codeExceedsCapacity       = "EXCEEDS_CAPACITY"
	codeInvalidDate           = "INVALID_DATE"
	codeInvalidDateRange      = "INVALID_DATE_RANGE"
	codeStayTooLong           = "STAY_TOO_LONG"
	codeDatesUnavailable      = "DATES_UNAVAILABLE"
	codeConcurrentUpdate      = "CONCURRENT_UPDATE"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var capErr *createBooking.CapacityError

		switch {
		case errors.Is(err, createBooking.ErrMissingRequiredFields):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingRequiredFields, codeMissingRequiredFields)

		case errors.Is(err, createBooking.ErrInvalidPropertyID):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidPropertyID, codeInvalidPropertyID)

		case errors.Is(err, createBooking.ErrEmptyGuestName):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgEmptyGuestName, codeEmptyGuestName)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidEmail, codeInvalidEmail)

		case errors.Is(err, createBooking.ErrInvalidGuests):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidGuests, codeInvalidGuests)

		case errors.Is(err, createBooking.ErrInvalidTotalPrice):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidTotalPrice, codeInvalidTotalPrice)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgPropertyNotFound, codePropertyNotFound)

		case errors.As(err, &capErr):
			handlers.RespondKind(w, domain.KindInvalidRange, capErr.Error(), codeExceedsCapacity)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidDate, codeInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			handlers.RespondKind(w, domain.KindInvalidRange, msgInvalidDateRange, codeInvalidDateRange)

		case errors.Is(err, createBooking.ErrStayTooLong):
			handlers.RespondKind(w, domain.KindInvalidRange, msgStayTooLong, codeStayTooLong)

		case errors.Is(err, createBooking.ErrDatesUnavailable):
			handlers.RespondKind(w, domain.KindConflict, msgDatesUnavailable, codeDatesUnavailable)

		case errors.Is(err, createBooking.ErrConcurrentUpdate):
			handlers.RespondKind(w, domain.KindConflict, msgConcurrentUpdate, codeConcurrentUpdate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, property_id=%d",
		result.ID, result.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
