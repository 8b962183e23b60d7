package contract

import "time"

// MoveRequest moves an existing group to a new start date.
type MoveRequest struct {
	GroupID int64
	Target  time.Time
	Today   *time.Time
}

func NewMoveRequest(groupID int64, target time.Time) MoveRequest {
	return MoveRequest{GroupID: groupID, Target: target}
}

type MoveResponse struct {
	GroupID int64

	// StartDate is the normalized date the group now starts on; it may be
	// later than the requested target when that fell on a weekend.
	StartDate time.Time
	Plan      PlanResponse
}
