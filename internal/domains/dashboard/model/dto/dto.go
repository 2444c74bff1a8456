package dto

import (
	"github.com/shopspring/decimal"

	roomModel "frontdesk/internal/domains/room/model"
)

// RoomStatusCounts breaks the room inventory down per status.
type RoomStatusCounts struct {
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Pending     int `json:"pending"`
	Maintenance int `json:"maintenance"`
}

func (r *RoomStatusCounts) FromModels(rooms []roomModel.Room) {
	for _, room := range rooms {
		switch room.Status {
		case roomModel.StatusAvailable:
			r.Available++
		case roomModel.StatusOccupied:
			r.Occupied++
		case roomModel.StatusPending:
			r.Pending++
		case roomModel.StatusMaintenance:
			r.Maintenance++
		}
	}
}

// DashboardMetricsResponse is the operational snapshot served to the
// back office landing page. TodayRevenue sums the total amount of every
// booking whose check in falls on the current day regardless of status,
// so a same-day cancellation still shows up in the figure.
type DashboardMetricsResponse struct {
	TotalRooms         int              `json:"total_rooms"`
	OccupancyRate      int              `json:"occupancy_rate"`
	RoomCounts         RoomStatusCounts `json:"room_counts"`
	ArrivalsToday      int              `json:"arrivals_today"`
	DeparturesToday    int              `json:"departures_today"`
	TodayRevenue       decimal.Decimal  `json:"today_revenue"`
	PendingMaintenance int              `json:"pending_maintenance"`
	ActiveStaff        int              `json:"active_staff"`
}
