package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	CreateExcursion(ctx context.Context, e *domain.Excursion) (*domain.Excursion, error)
	CreateLodging(ctx context.Context, l *domain.Lodging) (*domain.Lodging, error)
	List(ctx context.Context, kind domain.ItemKind) ([]*domain.Listing, error)
	PutSlots(ctx context.Context, excursionID string, slots []domain.SlotCapacity) error
	PutNights(ctx context.Context, lodgingID string, nights []domain.NightlyRoomCapacity) error
}

type BookingSvc interface {
	Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	Transition(ctx context.Context, bookingID string, target domain.BookingStatus, actor domain.Actor, reason string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string, actor domain.Actor, reason string) (*domain.Booking, *domain.CancellationRecord, error)
	QueryAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.AvailabilityWindow, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type Handler struct {
	listingService ListingSvc
	bookingService BookingSvc
}

func NewHandler(listingService ListingSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		listingService: listingService,
		bookingService: bookingService,
	}
}

// Listings

func (h *Handler) CreateExcursion(c *ginext.Context) {
	var req dto.CreateExcursionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	excursion, err := h.listingService.CreateExcursion(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExcursionResponse(excursion))
}

func (h *Handler) CreateLodging(c *ginext.Context) {
	var req dto.CreateLodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	lodging, err := h.listingService.CreateLodging(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLodgingResponse(lodging))
}

func (h *Handler) ListExcursions(c *ginext.Context) {
	h.listListings(c, domain.ItemKindExcursion)
}

func (h *Handler) ListLodgings(c *ginext.Context) {
	h.listListings(c, domain.ItemKindLodging)
}

func (h *Handler) listListings(c *ginext.Context, kind domain.ItemKind) {
	listings, err := h.listingService.List(c.Request.Context(), kind)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l, kind))
	}

	c.JSON(http.StatusOK, resp)
}

// Inventory

func (h *Handler) PutSlots(c *ginext.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req dto.PutSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	slots, err := req.ToDomain()
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err = h.listingService.PutSlots(c.Request.Context(), id, slots); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"slots": len(slots)})
}

func (h *Handler) PutNights(c *ginext.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req dto.PutNightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	nights, err := req.ToDomain()
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err = h.listingService.PutNights(c.Request.Context(), id, nights); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"nights": len(nights)})
}

func (h *Handler) ExcursionAvailability(c *ginext.Context) {
	h.availability(c, domain.ItemKindExcursion)
}

func (h *Handler) LodgingAvailability(c *ginext.Context) {
	h.availability(c, domain.ItemKindLodging)
}

func (h *Handler) availability(c *ginext.Context, kind domain.ItemKind) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	dates, err := domain.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	windows, err := h.bookingService.QueryAvailability(c.Request.Context(), domain.AvailabilityQuery{
		Item:       domain.ItemRef{Kind: kind, ID: id},
		Dates:      dates,
		PartySize:  req.PartySize,
		Rooms:      req.Rooms,
		RoomTypeID: req.RoomTypeID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(windows))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) TransitionBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	target, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Transition(c.Request.Context(), id, target,
		domain.Actor{ID: req.ActorID, Role: req.ActorRole}, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, record, err := h.bookingService.Cancel(c.Request.Context(), id,
		domain.Actor{ID: req.ActorID, Role: req.ActorRole}, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Booking:      dto.ToBookingResponse(booking),
		Cancellation: dto.ToCancellationResponse(record),
	})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func listingID(c *ginext.Context) (string, bool) {
	return uuidParam(c, "invalid listing id")
}

func bookingID(c *ginext.Context) (string, bool) {
	return uuidParam(c, "invalid booking id")
}

func uuidParam(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrHoldNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrRoomTypeNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrImpossibleRequest),
		errors.Is(err, domain.ErrListingNotBookable),
		errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, domain.ErrHoldReleased),
		errors.Is(err, domain.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPolicy):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
