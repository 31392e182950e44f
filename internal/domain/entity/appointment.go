package entity

import (
	"bytes"
	"encoding/json"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked AppointmentStatus = "Booked"
)

// Appointment is a booking document. Creator and Center are relationship
// attributes that the platform returns either as an id or an expanded document.
type Appointment struct {
	ID        string            `json:"$id"`
	Date      time.Time         `json:"date"`
	Status    AppointmentStatus `json:"status"`
	Creator   Relation          `json:"creator"`
	Center    Relation          `json:"centerId"`
	CreatedAt time.Time         `json:"$createdAt"`
	UpdatedAt time.Time         `json:"$updatedAt"`
}

// IsBooked checks if appointment is still booked
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}

// Relation references another document by id.
type Relation struct {
	ID string
}

func (r *Relation) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		r.ID = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}

	var doc struct {
		ID string `json:"$id"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.ID = doc.ID
	return nil
}

func (r Relation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}
