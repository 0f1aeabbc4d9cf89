package dto

import (
	"fmt"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

type ListingRequest struct {
	OwnerID            string                    `json:"owner_id" binding:"required"`
	Title              string                    `json:"title" binding:"required"`
	Status             string                    `json:"status" binding:"omitempty,oneof=draft published archived"`
	Currency           string                    `json:"currency" binding:"required,len=3"`
	Extras             []domain.ExtraService     `json:"extras"`
	CancellationPolicy domain.CancellationPolicy `json:"cancellation_policy"`
}

func (r ListingRequest) listing() domain.Listing {
	return domain.Listing{
		OwnerID:  r.OwnerID,
		Title:    r.Title,
		Status:   domain.ListingStatus(r.Status),
		Currency: r.Currency,
		Extras:   r.Extras,
		Policy:   r.CancellationPolicy,
	}
}

type CreateExcursionRequest struct {
	ListingRequest
	UnitPrice      decimal.Decimal        `json:"unit_price"`
	GroupDiscounts []domain.GroupDiscount `json:"group_discounts"`
}

func (r CreateExcursionRequest) ToDomain() *domain.Excursion {
	return &domain.Excursion{
		Listing:        r.listing(),
		UnitPrice:      r.UnitPrice,
		GroupDiscounts: r.GroupDiscounts,
	}
}

type CreateLodgingRequest struct {
	ListingRequest
	RoomTypes     []domain.RoomType     `json:"room_types" binding:"required,min=1"`
	SeasonalRates []domain.SeasonalRate `json:"seasonal_rates"`
}

func (r CreateLodgingRequest) ToDomain() *domain.Lodging {
	return &domain.Lodging{
		Listing:       r.listing(),
		RoomTypes:     r.RoomTypes,
		SeasonalRates: r.SeasonalRates,
	}
}

// Remaining defaults to Total when omitted.
type SlotRequest struct {
	SlotID    string `json:"slot_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Total     int    `json:"total" binding:"gte=0"`
	Remaining *int   `json:"remaining"`
}

type PutSlotsRequest struct {
	Slots []SlotRequest `json:"slots" binding:"required,min=1,dive"`
}

func (r PutSlotsRequest) ToDomain() ([]domain.SlotCapacity, error) {
	out := make([]domain.SlotCapacity, 0, len(r.Slots))
	for _, s := range r.Slots {
		dates, err := domain.ParseDateRange(s.StartDate, s.EndDate)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.SlotCapacity{
			SlotID:    s.SlotID,
			Start:     dates.Start,
			End:       dates.End,
			Total:     s.Total,
			Remaining: remainingOr(s.Remaining, s.Total),
		})
	}
	return out, nil
}

type NightRequest struct {
	RoomTypeID string           `json:"room_type_id" binding:"required"`
	Date       string           `json:"date" binding:"required"`
	Total      int              `json:"total" binding:"gte=0"`
	Remaining  *int             `json:"remaining"`
	Price      *decimal.Decimal `json:"price"`
}

type PutNightsRequest struct {
	Nights []NightRequest `json:"nights" binding:"required,min=1,dive"`
}

func (r PutNightsRequest) ToDomain() ([]domain.NightlyRoomCapacity, error) {
	out := make([]domain.NightlyRoomCapacity, 0, len(r.Nights))
	for _, n := range r.Nights {
		date, err := time.Parse(domain.DateLayout, n.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid night date %q", domain.ErrValidation, n.Date)
		}
		out = append(out, domain.NightlyRoomCapacity{
			RoomTypeID: n.RoomTypeID,
			Date:       date,
			Total:      n.Total,
			Remaining:  remainingOr(n.Remaining, n.Total),
			Price:      n.Price,
		})
	}
	return out, nil
}

func remainingOr(remaining *int, total int) int {
	if remaining == nil {
		return total
	}
	return *remaining
}

type AvailabilityRequest struct {
	StartDate  string `form:"start" binding:"required"`
	EndDate    string `form:"end" binding:"required"`
	PartySize  int    `form:"party_size" binding:"gte=0"`
	Rooms      int    `form:"rooms" binding:"gte=0"`
	RoomTypeID string `form:"room_type"`
}

type PartyRequest struct {
	Adults   int      `json:"adults" binding:"gte=0"`
	Children int      `json:"children" binding:"gte=0"`
	Names    []string `json:"names"`
}

type CreateBookingRequest struct {
	RequestID      string                  `json:"request_id"`
	ItemKind       string                  `json:"item_kind" binding:"required,oneof=excursion lodging"`
	ItemID         string                  `json:"item_id" binding:"required,uuid"`
	UserID         string                  `json:"user_id" binding:"required"`
	TelegramChatID *int64                  `json:"telegram_chat_id"`
	StartDate      string                  `json:"start_date" binding:"required"`
	EndDate        string                  `json:"end_date" binding:"required"`
	SlotID         string                  `json:"slot_id"`
	RoomTypeID     string                  `json:"room_type_id"`
	Rooms          int                     `json:"rooms" binding:"gte=0"`
	Party          PartyRequest            `json:"party"`
	Extras         []domain.ExtraSelection `json:"extras"`
}

func (r CreateBookingRequest) ToDomain() (domain.CreateBookingInput, error) {
	dates, err := domain.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return domain.CreateBookingInput{}, err
	}
	return domain.CreateBookingInput{
		RequestID:  r.RequestID,
		Item:       domain.ItemRef{Kind: domain.ItemKind(r.ItemKind), ID: r.ItemID},
		Requester:  domain.Requester{UserID: r.UserID, TelegramChatID: r.TelegramChatID},
		Dates:      dates,
		SlotID:     r.SlotID,
		RoomTypeID: r.RoomTypeID,
		Rooms:      r.Rooms,
		Party:      domain.Party{Adults: r.Party.Adults, Children: r.Party.Children, Names: r.Party.Names},
		Extras:     r.Extras,
	}, nil
}

type TransitionRequest struct {
	Status    string `json:"status" binding:"required"`
	ActorID   string `json:"actor_id" binding:"required"`
	ActorRole string `json:"actor_role"`
	Reason    string `json:"reason"`
}

type CancelRequest struct {
	ActorID   string `json:"actor_id" binding:"required"`
	ActorRole string `json:"actor_role"`
	Reason    string `json:"reason"`
}
