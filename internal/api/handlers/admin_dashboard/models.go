package admin_dashboard

import (
	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/service/appointments"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Professors         int                        `json:"professors"`
	Students           int                        `json:"students"`
	Appointments       int                        `json:"appointments"`
	LatestAppointments []handlers.AppointmentJSON `json:"latestAppointments"`
}

// FromDashboard конвертирует сводку администратора в HTTP response
func FromDashboard(d *appointments.AdminDashboard) *DashboardResponse {
	return &DashboardResponse{
		Professors:         d.Stats.Professors,
		Students:           d.Stats.Students,
		Appointments:       d.Stats.Appointments,
		LatestAppointments: handlers.FromAppointments(d.Latest),
	}
}
