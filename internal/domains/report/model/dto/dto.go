package dto

// DashboardResponse is a point-in-time operational summary for the landing
// page. Everything is recomputed from the live collections on each (uncached)
// read.
type DashboardResponse struct {
	TotalRooms        int     `json:"total_rooms"`
	AvailableRooms    int     `json:"available_rooms"`
	BookedRooms       int     `json:"booked_rooms"`
	MaintenanceRooms  int     `json:"maintenance_rooms"`
	ACRooms           int     `json:"ac_rooms"`
	NonACRooms        int     `json:"non_ac_rooms"`
	OccupancyRate     float64 `json:"occupancy_rate"`
	ActiveBookings    int     `json:"active_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalCustomers    int     `json:"total_customers"`
	BookingRevenue    int64   `json:"booking_revenue"`
	CollectedRevenue  int64   `json:"collected_revenue"`
}

type RevenueResponse struct {
	From         string           `json:"from"`
	To           string           `json:"to"`
	TotalAmount  int64            `json:"total_amount"`
	PaymentCount int              `json:"payment_count"`
	ByMethod     map[string]int64 `json:"by_method"`
}

// CustomerBookingRow is one line of the customer bookings report and of the
// XLSX export.
type CustomerBookingRow struct {
	BookingID    string `json:"booking_id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	RoomID       string `json:"room_id"`
	RoomNumber   string `json:"room_number"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Nights       int    `json:"nights"`
	Status       string `json:"status"`
	TotalAmount  int64  `json:"total_amount"`
}

type CustomerBookingsResponse struct {
	From     string               `json:"from"`
	To       string               `json:"to"`
	Bookings []CustomerBookingRow `json:"bookings"`
}
