package book_desk

import (
	"context"

	ledgerModels "github.com/m04kA/SMC-DeskBookingService/internal/service/ledger/models"
)

type LedgerService interface {
	Book(ctx context.Context, req *ledgerModels.BookRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
