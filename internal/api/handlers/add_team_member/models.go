package add_team_member

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

// AddTeamMemberRequest HTTP request model
type AddTeamMemberRequest struct {
	Name        string              `json:"name"`
	DesiredDays handlers.FlexNumber `json:"desiredDays"`
}

// AddTeamMemberResponse HTTP response model: id нового участника и актуальный список
type AddTeamMemberResponse struct {
	ID          int64                             `json:"id"`
	TeamMembers []rosterModels.TeamMemberResponse `json:"teamMembers"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddTeamMemberRequest) ToServiceRequest() *rosterModels.AddMemberRequest {
	return &rosterModels.AddMemberRequest{
		Name:        r.Name,
		DesiredDays: r.DesiredDays.Int(),
	}
}
