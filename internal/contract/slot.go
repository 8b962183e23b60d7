package contract

import (
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// SlotRequest asks for the earliest feasible start date for a prospective
// group, without committing it.
type SlotRequest struct {
	Lines     []LineSpec
	NotBefore *time.Time
	Today     *time.Time
}

func NewSlotRequest(lines []LineSpec) SlotRequest {
	return SlotRequest{Lines: lines}
}

type SlotResponse struct {
	StartDate time.Time

	// DaysNeeded is the consecutive machine-days the group would occupy,
	// per material it uses.
	DaysNeeded map[domain.Material]int
}
