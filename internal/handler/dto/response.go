package dto

import (
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
)

type ListingResponse struct {
	ID                 string                    `json:"id"`
	Kind               string                    `json:"kind,omitempty"`
	OwnerID            string                    `json:"owner_id"`
	Title              string                    `json:"title"`
	Status             string                    `json:"status"`
	Currency           string                    `json:"currency"`
	Extras             []domain.ExtraService     `json:"extras,omitempty"`
	CancellationPolicy domain.CancellationPolicy `json:"cancellation_policy"`
}

type ExcursionResponse struct {
	ListingResponse
	UnitPrice      string                 `json:"unit_price"`
	GroupDiscounts []domain.GroupDiscount `json:"group_discounts,omitempty"`
}

type LodgingResponse struct {
	ListingResponse
	RoomTypes     []domain.RoomType     `json:"room_types"`
	SeasonalRates []domain.SeasonalRate `json:"seasonal_rates,omitempty"`
}

type AvailabilityWindowResponse struct {
	SlotID     string `json:"slot_id,omitempty"`
	RoomTypeID string `json:"room_type_id,omitempty"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Total      int    `json:"total"`
	Remaining  int    `json:"remaining"`
}

type AdjustmentResponse struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Rate     string `json:"rate"`
	Quantity int    `json:"quantity,omitempty"`
	Amount   string `json:"amount"`
}

type PricingResponse struct {
	Currency  string               `json:"currency"`
	Gross     string               `json:"gross"`
	Discounts []AdjustmentResponse `json:"discounts"`
	Base      string               `json:"base"`
	Fees      []AdjustmentResponse `json:"fees"`
	FeesTotal string               `json:"fees_total"`
	TaxRate   string               `json:"tax_rate"`
	Tax       string               `json:"tax"`
	Total     string               `json:"total"`
}

type StatusChangeResponse struct {
	From      string `json:"from,omitempty"`
	To        string `json:"to"`
	ActorID   string `json:"actor_id"`
	ActorRole string `json:"actor_role"`
	Reason    string `json:"reason,omitempty"`
	At        string `json:"at"`
}

type CancellationResponse struct {
	RefundPercentage int    `json:"refund_percentage"`
	RefundAmount     string `json:"refund_amount"`
	Currency         string `json:"currency"`
	DaysBeforeStart  int    `json:"days_before_start"`
	Status           string `json:"status"`
	Reason           string `json:"reason,omitempty"`
	CancelledBy      string `json:"cancelled_by"`
	CancelledAt      string `json:"cancelled_at"`
}

type BookingResponse struct {
	ID               string                  `json:"id"`
	BookingNumber    string                  `json:"booking_number"`
	ConfirmationCode string                  `json:"confirmation_code"`
	ItemKind         string                  `json:"item_kind"`
	ItemID           string                  `json:"item_id"`
	UserID           string                  `json:"user_id"`
	StartDate        string                  `json:"start_date"`
	EndDate          string                  `json:"end_date"`
	SlotID           string                  `json:"slot_id,omitempty"`
	RoomTypeID       string                  `json:"room_type_id,omitempty"`
	Rooms            int                     `json:"rooms,omitempty"`
	Party            PartyRequest            `json:"party"`
	Extras           []domain.ExtraSelection `json:"extras,omitempty"`
	Pricing          PricingResponse         `json:"pricing"`
	Status           string                  `json:"status"`
	StatusHistory    []StatusChangeResponse  `json:"status_history"`
	Cancellation     *CancellationResponse   `json:"cancellation,omitempty"`
	CreatedAt        string                  `json:"created_at"`
	UpdatedAt        string                  `json:"updated_at"`
}

type CancelResponse struct {
	Booking      BookingResponse       `json:"booking"`
	Cancellation *CancellationResponse `json:"cancellation"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing, kind domain.ItemKind) ListingResponse {
	return ListingResponse{
		ID:                 l.ID,
		Kind:               string(kind),
		OwnerID:            l.OwnerID,
		Title:              l.Title,
		Status:             string(l.Status),
		Currency:           l.Currency,
		Extras:             l.Extras,
		CancellationPolicy: l.Policy,
	}
}

func ToExcursionResponse(e *domain.Excursion) ExcursionResponse {
	return ExcursionResponse{
		ListingResponse: ToListingResponse(&e.Listing, domain.ItemKindExcursion),
		UnitPrice:       e.UnitPrice.StringFixed(domain.MinorUnits(e.Currency)),
		GroupDiscounts:  e.GroupDiscounts,
	}
}

func ToLodgingResponse(l *domain.Lodging) LodgingResponse {
	return LodgingResponse{
		ListingResponse: ToListingResponse(&l.Listing, domain.ItemKindLodging),
		RoomTypes:       l.RoomTypes,
		SeasonalRates:   l.SeasonalRates,
	}
}

func ToAvailabilityResponse(windows []domain.AvailabilityWindow) []AvailabilityWindowResponse {
	resp := make([]AvailabilityWindowResponse, 0, len(windows))
	for _, w := range windows {
		resp = append(resp, AvailabilityWindowResponse{
			SlotID:     w.SlotID,
			RoomTypeID: w.RoomTypeID,
			StartDate:  w.Dates.Start.Format(domain.DateLayout),
			EndDate:    w.Dates.End.Format(domain.DateLayout),
			Total:      w.Total,
			Remaining:  w.Remaining,
		})
	}
	return resp
}

func toAdjustments(in []domain.Adjustment, currency string) []AdjustmentResponse {
	out := make([]AdjustmentResponse, 0, len(in))
	for _, a := range in {
		out = append(out, AdjustmentResponse{
			Name:     a.Name,
			Kind:     string(a.Kind),
			Rate:     a.Rate.String(),
			Quantity: a.Quantity,
			Amount:   a.Amount.StringFixed(domain.MinorUnits(currency)),
		})
	}
	return out
}

func toPricingResponse(p domain.PricingBreakdown) PricingResponse {
	places := domain.MinorUnits(p.Currency)
	return PricingResponse{
		Currency:  p.Currency,
		Gross:     p.Gross.StringFixed(places),
		Discounts: toAdjustments(p.Discounts, p.Currency),
		Base:      p.Base.StringFixed(places),
		Fees:      toAdjustments(p.Fees, p.Currency),
		FeesTotal: p.FeesTotal.StringFixed(places),
		TaxRate:   p.TaxRate.String(),
		Tax:       p.Tax.StringFixed(places),
		Total:     p.Total.StringFixed(places),
	}
}

func ToCancellationResponse(c *domain.CancellationRecord) *CancellationResponse {
	if c == nil {
		return nil
	}
	return &CancellationResponse{
		RefundPercentage: c.Percentage,
		RefundAmount:     c.Amount.StringFixed(domain.MinorUnits(c.Currency)),
		Currency:         c.Currency,
		DaysBeforeStart:  c.DaysBeforeStart,
		Status:           string(c.Status),
		Reason:           c.Reason,
		CancelledBy:      c.CancelledBy,
		CancelledAt:      c.CancelledAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               b.ID,
		BookingNumber:    b.BookingNumber,
		ConfirmationCode: b.ConfirmationCode,
		ItemKind:         string(b.Item.Kind),
		ItemID:           b.Item.ID,
		UserID:           b.Requester.UserID,
		StartDate:        b.Dates.Start.Format(domain.DateLayout),
		EndDate:          b.Dates.End.Format(domain.DateLayout),
		Extras:           b.Extras,
		Pricing:          toPricingResponse(b.Pricing),
		Status:           string(b.Status),
		StatusHistory:    make([]StatusChangeResponse, 0, len(b.StatusHistory)),
		Cancellation:     ToCancellationResponse(b.Cancellation),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}

	var party domain.Party
	switch r := b.Reservation.(type) {
	case domain.ExcursionReservation:
		resp.SlotID = r.SlotID
		party = r.Party
	case domain.LodgingReservation:
		resp.RoomTypeID = r.RoomTypeID
		resp.Rooms = r.Rooms
		party = r.Party
	}
	resp.Party = PartyRequest{Adults: party.Adults, Children: party.Children, Names: party.Names}

	for _, h := range b.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, StatusChangeResponse{
			From:      string(h.From),
			To:        string(h.To),
			ActorID:   h.Actor.ID,
			ActorRole: h.Actor.Role,
			Reason:    h.Reason,
			At:        h.At.Format(time.RFC3339),
		})
	}
	return resp
}
