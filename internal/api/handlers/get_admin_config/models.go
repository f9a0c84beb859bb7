package get_admin_config

import (
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
)

// AdminConfigResponse HTTP response model
type AdminConfigResponse struct {
	TeamMembers []rosterModels.TeamMemberResponse `json:"teamMembers"`
	NumDesks    int                               `json:"numDesks"`
	Desks       []rosterModels.DeskResponse       `json:"desks"`
	Demo        bool                              `json:"demo"`
}
