package update_desks

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	rosterModels "github.com/m04kA/SMC-DeskBookingService/internal/service/roster/models"
	"github.com/m04kA/SMC-DeskBookingService/pkg/ptr"
)

// UpdateDesksRequest HTTP request model
type UpdateDesksRequest struct {
	NumDesks handlers.FlexNumber `json:"numDesks"`
	Desks    []DeskItem          `json:"desks"`
}

// DeskItem стол из формы админки
type DeskItem struct {
	ID   handlers.FlexNumber `json:"id"`
	Name *string             `json:"name"`
}

// ToServiceRequest конвертирует HTTP запрос, отбрасывая столы без целого id
func (r *UpdateDesksRequest) ToServiceRequest() *rosterModels.SetDesksRequest {
	desks := make([]rosterModels.DeskInput, 0, len(r.Desks))
	for _, d := range r.Desks {
		id := d.ID.Int()
		if id == 0 {
			continue
		}
		desks = append(desks, rosterModels.DeskInput{ID: id, Name: ptr.Deref(d.Name, "")})
	}

	return &rosterModels.SetDesksRequest{
		NumDesks: r.NumDesks.Int(),
		Desks:    desks,
	}
}
