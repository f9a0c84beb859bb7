package get_week

import (
	ledgerModels "github.com/m04kA/SMC-DeskBookingService/internal/service/ledger/models"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

// Request модель запроса недели
type Request struct {
	TZOffsetMinutes *float64 // смещение UTC - local в минутах, обязательно
}

// Response сетка недели: даты, столы, брони и прогресс участников
type Response struct {
	Dates       []string                       `json:"dates"`
	Desks       []rosterModels.DeskResponse    `json:"desks"`
	Bookings    []ledgerModels.BookingResponse `json:"bookings"`
	TeamMembers []TeamMemberSummary            `json:"teamMembers"`
	Demo        bool                           `json:"demo"`
}

// TeamMemberSummary участник и количество его броней на неделе
type TeamMemberSummary struct {
	Name        string `json:"name"`
	DesiredDays int    `json:"desiredDays"`
	BookedCount int    `json:"bookedCount"`
}
