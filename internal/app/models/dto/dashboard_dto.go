package dto

// DashboardResponse represents the owner's at-a-glance numbers. Seat counts
// are derived from active students at request time, never stored.
type DashboardResponse struct {
	TotalSeats         int   `json:"totalSeats" example:"50"`
	FullyOccupied      int   `json:"fullyOccupied"`
	PartiallyOccupied  int   `json:"partiallyOccupied"`
	FreeSeats          int   `json:"freeSeats"`
	ActiveStudents     int   `json:"activeStudents"`
	DepartedStudents   int   `json:"departedStudents"`
	FeeDueCount        int   `json:"feeDueCount"`
	CollectedThisMonth int64 `json:"collectedThisMonth"`
}
