package memory

import "github.com/m04kA/SMC-DeskBookingService/internal/domain"

// SeedBooking демо-бронь: стол и индекс дня недели (0 - понедельник)
type SeedBooking struct {
	DeskID   int
	DayIndex int
	BookedBy string
}

// DemoBookings брони демо-режима
var DemoBookings = []SeedBooking{
	{DeskID: 1, DayIndex: 0, BookedBy: "Бикташов"},
	{DeskID: 2, DayIndex: 0, BookedBy: "Ковзель"},
	{DeskID: 3, DayIndex: 0, BookedBy: "Перфильева"},
	{DeskID: 1, DayIndex: 1, BookedBy: "Бикташов"},
	{DeskID: 2, DayIndex: 1, BookedBy: "Малинова"},
	{DeskID: 3, DayIndex: 1, BookedBy: "Перфильева"},
	{DeskID: 2, DayIndex: 2, BookedBy: "Малинова"},
	{DeskID: 3, DayIndex: 2, BookedBy: "Самодова"},
	{DeskID: 1, DayIndex: 3, BookedBy: "Крутицкая"},
	{DeskID: 2, DayIndex: 3, BookedBy: "Ковзель"},
	{DeskID: 3, DayIndex: 3, BookedBy: "Воронцова"},
	{DeskID: 2, DayIndex: 4, BookedBy: "Раззаков"},
	{DeskID: 3, DayIndex: 4, BookedBy: "Антипина"},
}

var demoTeam = []struct {
	name        string
	desiredDays int
}{
	{"Бикташов", 2},
	{"Перфильева", 3},
	{"Ковзель", 2},
	{"Крутицкая", 3},
	{"Раззаков", 2},
	{"Антипина", 2},
	{"Воронцова", 3},
	{"Гребенюк", 2},
	{"Баскир", 5},
	{"Власов", 2},
	{"Власова", 1},
	{"Малинова", 3},
	{"Самодова", 2},
	{"Борщева", 2},
	{"Илюхин", 2},
}

// DemoTeam участники демо-режима с id 1..N
func DemoTeam() []domain.TeamMember {
	members := make([]domain.TeamMember, 0, len(demoTeam))
	for i, m := range demoTeam {
		members = append(members, domain.TeamMember{
			ID:          int64(i + 1),
			Name:        m.name,
			DesiredDays: m.desiredDays,
		})
	}
	return members
}

// Demo хранилища демо-режима
type Demo struct {
	Bookings *BookingStore
	Desks    *DeskStore
	Team     *TeamStore
}

// NewDemo создает хранилища демо-режима: 6 столов, демо-команда, демо-брони
func NewDemo() *Demo {
	return &Demo{
		Bookings: NewDemoBookingStore(),
		Desks:    NewDeskStore(domain.DefaultNumDesks),
		Team:     NewTeamStore(DemoTeam()...),
	}
}
