package update_team_member

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
	"github.com/m04kA/SMC-DeskBookingService/pkg/ptr"
)

// UpdateTeamMemberRequest HTTP request model, отсутствующие поля не меняются
type UpdateTeamMemberRequest struct {
	Name        *string             `json:"name"`
	DesiredDays handlers.FlexNumber `json:"desiredDays"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTeamMemberRequest) ToServiceRequest(id int64) *rosterModels.UpdateMemberRequest {
	req := &rosterModels.UpdateMemberRequest{
		ID:   id,
		Name: r.Name,
	}
	if r.DesiredDays.Value != nil {
		req.DesiredDays = ptr.Ptr(r.DesiredDays.Int())
	}
	return req
}
