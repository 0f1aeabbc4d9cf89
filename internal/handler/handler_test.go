package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/handler/dto"
	hmocks "github.com/Shakesdigital/shakestravelapp-sub001/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockListingSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	listingSvc := hmocks.NewMockListingSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(listingSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/excursions", h.CreateExcursion)
		api.GET("/excursions", h.ListExcursions)
		api.PUT("/excursions/:id/slots", h.PutSlots)
		api.GET("/excursions/:id/availability", h.ExcursionAvailability)
		api.POST("/lodgings", h.CreateLodging)
		api.PUT("/lodgings/:id/nights", h.PutNights)
		api.GET("/lodgings/:id/availability", h.LodgingAvailability)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/transitions", h.TransitionBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return listingSvc, bookingSvc, r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBooking(id string) *domain.Booking {
	created := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:               id,
		BookingNumber:    "BK241201-7KQ2",
		ConfirmationCode: "H4TZP9QA",
		Item:             domain.ItemRef{Kind: domain.ItemKindExcursion, ID: uuid.New().String()},
		Requester:        domain.Requester{UserID: "u1"},
		Dates: domain.NewDateRange(
			time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC),
		),
		Reservation: domain.ExcursionReservation{SlotID: "s1", Party: domain.Party{Adults: 2}},
		Pricing: domain.PricingBreakdown{
			Currency: "USD",
			Gross:    decimal.NewFromInt(450),
			Base:     decimal.NewFromInt(450),
			Total:    decimal.RequireFromString("557.55"),
		},
		Status: domain.BookingStatusPending,
		StatusHistory: []domain.StatusChange{{
			To:    domain.BookingStatusPending,
			Actor: domain.Actor{ID: "u1", Role: "requester"},
			At:    created,
		}},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// --- Listings ---

func TestHandler_CreateExcursion_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t)

	listingSvc.EXPECT().CreateExcursion(mock.Anything, mock.MatchedBy(func(e *domain.Excursion) bool {
		return e.Title == "Gorilla trek" && e.UnitPrice.Equal(decimal.NewFromInt(150))
	})).RunAndReturn(func(_ context.Context, e *domain.Excursion) (*domain.Excursion, error) {
		e.ID = uuid.New().String()
		e.Status = domain.ListingStatusPublished
		return e, nil
	})

	w := do(r, http.MethodPost, "/api/excursions", dto.CreateExcursionRequest{
		ListingRequest: dto.ListingRequest{OwnerID: "op1", Title: "Gorilla trek", Currency: "USD"},
		UnitPrice:      decimal.NewFromInt(150),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ExcursionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gorilla trek", resp.Title)
	assert.Equal(t, "150.00", resp.UnitPrice)
	assert.Equal(t, "excursion", resp.Kind)
}

func TestHandler_CreateExcursion_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/excursions", map[string]any{"title": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateExcursion_InvalidPolicy(t *testing.T) {
	listingSvc, _, r := setupRouter(t)

	listingSvc.EXPECT().CreateExcursion(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidPolicy)

	w := do(r, http.MethodPost, "/api/excursions", dto.CreateExcursionRequest{
		ListingRequest: dto.ListingRequest{OwnerID: "op1", Title: "Trek", Currency: "USD"},
		UnitPrice:      decimal.NewFromInt(150),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateLodging_RequiresRoomTypes(t *testing.T) {
	_, _, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/lodgings", dto.CreateLodgingRequest{
		ListingRequest: dto.ListingRequest{OwnerID: "op1", Title: "Lodge", Currency: "USD"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListExcursions(t *testing.T) {
	listingSvc, _, r := setupRouter(t)

	listingSvc.EXPECT().List(mock.Anything, domain.ItemKindExcursion).Return([]*domain.Listing{
		{ID: "l1", Title: "Trek 1", Status: domain.ListingStatusPublished},
		{ID: "l2", Title: "Trek 2", Status: domain.ListingStatusDraft},
	}, nil)

	w := do(r, http.MethodGet, "/api/excursions", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Inventory ---

func TestHandler_PutSlots_DefaultsRemainingToTotal(t *testing.T) {
	listingSvc, _, r := setupRouter(t)
	id := uuid.New().String()

	listingSvc.EXPECT().PutSlots(mock.Anything, id, mock.MatchedBy(func(s []domain.SlotCapacity) bool {
		return len(s) == 1 && s[0].Total == 8 && s[0].Remaining == 8
	})).Return(nil)

	w := do(r, http.MethodPut, "/api/excursions/"+id+"/slots", dto.PutSlotsRequest{
		Slots: []dto.SlotRequest{{SlotID: "s1", StartDate: "2024-12-20", EndDate: "2024-12-23", Total: 8}},
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PutNights_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)
	id := uuid.New().String()

	w := do(r, http.MethodPut, "/api/lodgings/"+id+"/nights", dto.PutNightsRequest{
		Nights: []dto.NightRequest{{RoomTypeID: "dbl", Date: "06/12/2024", Total: 2}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ExcursionAvailability(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)
	id := uuid.New().String()

	bookingSvc.EXPECT().QueryAvailability(mock.Anything, mock.MatchedBy(func(q domain.AvailabilityQuery) bool {
		return q.Item.ID == id && q.Item.Kind == domain.ItemKindExcursion && q.PartySize == 2
	})).Return([]domain.AvailabilityWindow{{
		SlotID: "s1",
		Dates: domain.NewDateRange(
			time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC),
		),
		Total:     8,
		Remaining: 3,
	}}, nil)

	w := do(r, http.MethodGet, "/api/excursions/"+id+"/availability?start=2024-12-01&end=2024-12-31&party_size=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AvailabilityWindowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2024-12-20", resp[0].StartDate)
	assert.Equal(t, 3, resp[0].Remaining)
}

func TestHandler_LodgingAvailability_MissingDates(t *testing.T) {
	_, _, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/lodgings/"+uuid.New().String()+"/availability?rooms=1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Availability_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/excursions/not-a-uuid/availability?start=2024-12-01&end=2024-12-31", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func bookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ItemKind:  "excursion",
		ItemID:    uuid.New().String(),
		UserID:    "u1",
		StartDate: "2024-12-20",
		EndDate:   "2024-12-23",
		Party:     dto.PartyRequest{Adults: 2},
	}
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)
	booking := sampleBooking(uuid.New().String())

	bookingSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.Requester.UserID == "u1" && in.Party.Adults == 2 && in.Dates.Nights() == 3
	})).Return(booking, nil)

	w := do(r, http.MethodPost, "/api/bookings", bookingRequest())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BK241201-7KQ2", resp.BookingNumber)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "557.55", resp.Pricing.Total)
	assert.Equal(t, "s1", resp.SlotID)
	assert.Len(t, resp.StatusHistory, 1)
}

func TestHandler_CreateBooking_InsufficientCapacity(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, &domain.CapacityError{
		Err: domain.ErrInsufficientCapacity, SlotID: "s1", Requested: 2, Remaining: 1, Total: 8,
	})

	w := do(r, http.MethodPost, "/api/bookings", bookingRequest())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "remaining 1 of 8")
}

func TestHandler_CreateBooking_InvalidKind(t *testing.T) {
	_, _, r := setupRouter(t)
	req := bookingRequest()
	req.ItemKind = "cruise"

	w := do(r, http.MethodPost, "/api/bookings", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidDates(t *testing.T) {
	_, _, r := setupRouter(t)
	req := bookingRequest()
	req.StartDate = "tomorrow"

	w := do(r, http.MethodPost, "/api/bookings", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)
	id := uuid.New().String()

	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := do(r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/bookings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_TransitionBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)
	id := uuid.New().String()
	confirmed := sampleBooking(id)
	confirmed.Status = domain.BookingStatusConfirmed

	bookingSvc.EXPECT().Transition(mock.Anything, id, domain.BookingStatusConfirmed,
		domain.Actor{ID: "op1", Role: "operator"}, "paid").Return(confirmed, nil)

	w := do(r, http.MethodPost, "/api/bookings/"+id+"/transitions", dto.TransitionRequest{
		Status: "confirmed", ActorID: "op1", ActorRole: "operator", Reason: "paid",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
}

func TestHandler_TransitionBooking_Illegal(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)
	id := uuid.New().String()

	bookingSvc.EXPECT().Transition(mock.Anything, id, domain.BookingStatusConfirmed, mock.Anything, mock.Anything).
		Return(nil, &domain.TransitionError{From: domain.BookingStatusCompleted, To: domain.BookingStatusConfirmed})

	w := do(r, http.MethodPost, "/api/bookings/"+id+"/transitions", dto.TransitionRequest{
		Status: "confirmed", ActorID: "op1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_TransitionBooking_UnknownStatus(t *testing.T) {
	_, _, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/transitions", dto.TransitionRequest{
		Status: "teleported", ActorID: "op1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)
	id := uuid.New().String()
	cancelled := sampleBooking(id)
	cancelled.Status = domain.BookingStatusCancelled
	record := &domain.CancellationRecord{
		Refund:      domain.Refund{Percentage: 10, Amount: decimal.RequireFromString("55.76"), DaysBeforeStart: 3},
		Currency:    "USD",
		Status:      domain.RefundStatusPending,
		CancelledBy: "u1",
		CancelledAt: time.Date(2024, 12, 17, 0, 0, 0, 0, time.UTC),
	}
	cancelled.Cancellation = record

	bookingSvc.EXPECT().Cancel(mock.Anything, id, domain.Actor{ID: "u1", Role: "requester"}, "").
		Return(cancelled, record, nil)

	w := do(r, http.MethodPost, "/api/bookings/"+id+"/cancel", dto.CancelRequest{ActorID: "u1", ActorRole: "requester"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Cancellation)
	assert.Equal(t, 10, resp.Cancellation.RefundPercentage)
	assert.Equal(t, "55.76", resp.Cancellation.RefundAmount)
	assert.Equal(t, "cancelled", resp.Booking.Status)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.Booking{
		sampleBooking(uuid.New().String()),
		sampleBooking(uuid.New().String()),
	}, nil)

	w := do(r, http.MethodGet, "/api/users/u1/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)
	id := uuid.New().String()

	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, errors.New("unexpected db error"))

	w := do(r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
