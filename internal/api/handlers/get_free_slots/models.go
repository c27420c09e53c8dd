package get_free_slots

import (
	"github.com/m04kA/office-hours-service/internal/domain"
	getFreeSlots "github.com/m04kA/office-hours-service/internal/usecase/get_free_slots"
	"github.com/m04kA/office-hours-service/pkg/types"
)

// SlotJSON слот приёма
type SlotJSON struct {
	StartTime        string `json:"startTime"`        // "10:30"
	EndTime          string `json:"endTime"`          // "11:00"
	StartTimeDisplay string `json:"startTimeDisplay"` // "10:30 AM"
	EndTimeDisplay   string `json:"endTimeDisplay"`   // "11:00 AM"
	IsAvailable      bool   `json:"isAvailable"`
}

// DayJSON слоты одного дня
type DayJSON struct {
	DateKey string     `json:"dateKey"` // "19_10_2026"
	Date    string     `json:"date"`    // "2026-10-19"
	Weekday string     `json:"weekday"`
	Slots   []SlotJSON `json:"slots"`
}

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	ProfessorID        string    `json:"professorId"`
	ProfessorAvailable bool      `json:"professorAvailable"`
	From               string    `json:"from"`
	Days               []DayJSON `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	days := make([]DayJSON, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, fromDay(day))
	}
	return &FreeSlotsResponse{
		ProfessorID:        resp.ProfessorID.String(),
		ProfessorAvailable: resp.ProfessorAvailable,
		From:               types.NewDateKey(resp.From).String(),
		Days:               days,
	}
}

func fromDay(day domain.DaySlots) DayJSON {
	out := DayJSON{
		DateKey: types.NewDateKey(day.Date).String(),
		Date:    day.Date.Format(domain.DateFormat),
		Weekday: day.Date.Weekday().String(),
		Slots:   make([]SlotJSON, 0),
	}
	for s := range day.Slots {
		out.Slots = append(out.Slots, SlotJSON{
			StartTime:        s.StartTime.String(),
			EndTime:          s.EndTime.String(),
			StartTimeDisplay: s.StartTime.Display(),
			EndTimeDisplay:   s.EndTime.Display(),
			IsAvailable:      s.IsAvailable,
		})
	}
	return out
}
