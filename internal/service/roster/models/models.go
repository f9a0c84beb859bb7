package models

import "github.com/m04kA/SMC-DeskBookingService/internal/domain"

// AddMemberRequest запрос на добавление участника
type AddMemberRequest struct {
	Name        string
	DesiredDays int
}

// UpdateMemberRequest частичное обновление участника, nil - поле не меняется
type UpdateMemberRequest struct {
	ID          int64
	Name        *string
	DesiredDays *int
}

// DeskInput имя стола из админки
type DeskInput struct {
	ID   int
	Name string
}

// SetDesksRequest запрос на изменение столов
type SetDesksRequest struct {
	NumDesks int // 0 - значение по умолчанию
	Desks    []DeskInput
}

// TeamMemberResponse участник в формате админки
type TeamMemberResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DesiredDays int    `json:"desired_days"`
}

// DeskResponse стол
type DeskResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DeskConfig количество столов и столы 1..NumDesks
type DeskConfig struct {
	NumDesks int
	Desks    []domain.Desk
}

// FromDomainMembers конвертирует участников
func FromDomainMembers(members []*domain.TeamMember) []TeamMemberResponse {
	result := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, TeamMemberResponse{ID: m.ID, Name: m.Name, DesiredDays: m.DesiredDays})
	}
	return result
}

// FromDomainDesks конвертирует столы
func FromDomainDesks(desks []domain.Desk) []DeskResponse {
	result := make([]DeskResponse, 0, len(desks))
	for _, d := range desks {
		result = append(result, DeskResponse{ID: d.ID, Name: d.Name})
	}
	return result
}
