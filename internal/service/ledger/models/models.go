package models

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// BookRequest запрос на бронь стола
type BookRequest struct {
	DeskID          int
	Date            string
	BookedBy        string
	Note            *string
	TZOffsetMinutes *float64 // nil - не передан
}

// UnbookRequest запрос на снятие брони
type UnbookRequest struct {
	DeskID   int
	Date     string
	BookedBy string
}

// BookingResponse бронь в формате API
type BookingResponse struct {
	DeskID   int     `json:"desk_id"`
	Date     string  `json:"date"`
	BookedBy string  `json:"booked_by"`
	Note     *string `json:"note"`
}

// FromDomainBooking конвертирует доменную бронь в response
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		DeskID:   b.DeskID,
		Date:     b.Date.String(),
		BookedBy: b.BookedBy,
		Note:     b.Note,
	}
}

// FromDomainBookingList конвертирует список броней
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
