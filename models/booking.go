package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Booking is a single meeting-room reservation. It is never updated after creation.
type Booking struct {
	ID           string `bson:"id" json:"id"`
	Date         string `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime    string `bson:"startTime" json:"startTime"` // "HH:mm", no timezone
	EndTime      string `bson:"endTime" json:"endTime"`     // "HH:mm", no timezone
	EmployeeName string `bson:"employeeName" json:"employeeName"`
	Topic        string `bson:"topic,omitempty" json:"topic,omitempty"`
	Agenda       string `bson:"agenda,omitempty" json:"agenda,omitempty"`
}

// BookingCreationRequest is the payload submitted by the booking form.
type BookingCreationRequest struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime      string `json:"endTime" validate:"required,datetime=15:04"`
	EmployeeName string `json:"employeeName" validate:"required"`
	Topic        string `json:"topic,omitempty"`
	Agenda       string `json:"agenda,omitempty"`

	// DraftAgenda asks for a generated agenda when Agenda is empty.
	DraftAgenda bool `json:"draftAgenda,omitempty"`
}

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize trims surrounding whitespace from the free-text fields.
func (r *BookingCreationRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	r.EmployeeName = strings.TrimSpace(r.EmployeeName)
	r.Topic = strings.TrimSpace(r.Topic)
	r.Agenda = strings.TrimSpace(r.Agenda)
}

// Validate checks field formats. An end time before the start time is accepted.
func (r BookingCreationRequest) Validate() error {
	return validate.Struct(r)
}

// ToBooking assembles the stored record under the given id.
func (r BookingCreationRequest) ToBooking(id string) Booking {
	return Booking{
		ID:           id,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		EmployeeName: r.EmployeeName,
		Topic:        r.Topic,
		Agenda:       r.Agenda,
	}
}

// HourlyLoad is one bar of the usage-by-hour chart.
type HourlyLoad struct {
	Hour  int    `json:"hour"`
	Name  string `json:"name"` // "9:00"
	Count int    `json:"count"`
}

// AgendaRequest asks for a drafted agenda without creating a booking.
type AgendaRequest struct {
	Topic     string `json:"topic" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AgendaResponse carries drafted agenda text.
type AgendaResponse struct {
	Agenda          string `json:"agenda"`
	DurationMinutes int    `json:"durationMinutes"`
}
