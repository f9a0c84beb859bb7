package unbook_desk

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	ledgerModels "github.com/m04kA/SMC-DeskBookingService/internal/service/ledger/models"
)

// UnbookDeskRequest HTTP request model
type UnbookDeskRequest struct {
	DeskID   handlers.FlexNumber `json:"deskId"`
	Date     string              `json:"date"`
	BookedBy string              `json:"bookedBy"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UnbookDeskRequest) ToServiceRequest() *ledgerModels.UnbookRequest {
	return &ledgerModels.UnbookRequest{
		DeskID:   r.DeskID.Int(),
		Date:     r.Date,
		BookedBy: r.BookedBy,
	}
}
