package domain

import (
	"cloud.google.com/go/civil"
)

// Booking бронь стола на конкретный день.
// Для пары (DeskID, Date) существует не более одной брони.
type Booking struct {
	DeskID   int
	Date     civil.Date
	BookedBy string
	Note     *string
}

// IsOwnedBy проверяет, что бронь принадлежит name (точное совпадение с учетом регистра)
func (b *Booking) IsOwnedBy(name string) bool {
	return b.BookedBy == name
}

// Slot пара (стол, дата) - единица бронирования
type Slot struct {
	DeskID int
	Date   civil.Date
}

// Slot возвращает слот брони
func (b *Booking) Slot() Slot {
	return Slot{DeskID: b.DeskID, Date: b.Date}
}

// CountByMember возвращает количество броней, сделанных name
func CountByMember(name string, bookings []*Booking) int {
	count := 0
	for _, b := range bookings {
		if b.IsOwnedBy(name) {
			count++
		}
	}
	return count
}
