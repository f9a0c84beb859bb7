package book_desk

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	ledgerModels "github.com/m04kA/SMC-DeskBookingService/internal/service/ledger/models"
)

// BookDeskRequest HTTP request model
type BookDeskRequest struct {
	DeskID          handlers.FlexNumber `json:"deskId"`
	Date            string              `json:"date"` // "2024-06-03"
	BookedBy        string              `json:"bookedBy"`
	Note            *string             `json:"note,omitempty"`
	TZOffsetMinutes handlers.FlexNumber `json:"tzOffsetMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BookDeskRequest) ToServiceRequest() *ledgerModels.BookRequest {
	return &ledgerModels.BookRequest{
		DeskID:          r.DeskID.Int(),
		Date:            r.Date,
		BookedBy:        r.BookedBy,
		Note:            r.Note,
		TZOffsetMinutes: r.TZOffsetMinutes.Value,
	}
}
