package dto

type StatsResponse struct {
	TotalRooms       int     `json:"total_rooms"`
	AvailableRooms   int     `json:"available_rooms"`
	ReservedBookings int     `json:"reserved_bookings"`
	TotalGuests      int     `json:"total_guests"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
}
