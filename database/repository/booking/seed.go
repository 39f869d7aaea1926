package bookingRepo

import "roombook/models"

// seedBookings is served by the local store until the first booking is written.
var seedBookings = []models.Booking{
	{ID: "1", Date: "2023-10-27", StartTime: "09:00", EndTime: "10:00", EmployeeName: "Анна Петрова", Topic: "Еженедельная планерка", Agenda: "Обсуждение KPI"},
	{ID: "2", Date: "2023-10-27", StartTime: "14:00", EndTime: "15:30", EmployeeName: "Иван Сидоров", Topic: "Собеседование Frontend", Agenda: "Техническое интервью"},
	{ID: "3", Date: "2023-10-28", StartTime: "11:00", EndTime: "12:00", EmployeeName: "Елена Смирнова", Topic: "Бюджет Q4", Agenda: "Согласование сметы"},
}

// SeedBookings returns a copy of the demo collection.
func SeedBookings() []models.Booking {
	out := make([]models.Booking, len(seedBookings))
	copy(out, seedBookings)
	return out
}
