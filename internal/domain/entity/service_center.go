package entity

import (
	"encoding/json"
	"time"
)

// ServiceCenter is a salon listed in the service centers collection.
// Attributes holds the full document so fields the app adds later survive a round trip.
type ServiceCenter struct {
	ID          string                 `json:"$id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Thumbnail   string                 `json:"thumbnail"`
	Location    string                 `json:"location"`
	CreatedAt   time.Time              `json:"$createdAt"`
	UpdatedAt   time.Time              `json:"$updatedAt"`
	Attributes  map[string]interface{} `json:"-"`
}

func (s *ServiceCenter) UnmarshalJSON(data []byte) error {
	type alias ServiceCenter
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	attrs := map[string]interface{}{}
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	*s = ServiceCenter(a)
	s.Attributes = attrs
	return nil
}

// VisitedServiceCenter is a service center together with the appointment
// that brought the user there.
type VisitedServiceCenter struct {
	ServiceCenter
	AppointmentDate   time.Time         `json:"appointmentDate"`
	AppointmentStatus AppointmentStatus `json:"appointmentStatus"`
	AppointmentID     string            `json:"appointmentId"`
}

func (s ServiceCenter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.fields())
}

func (s ServiceCenter) fields() map[string]interface{} {
	out := make(map[string]interface{}, len(s.Attributes)+7)
	for k, v := range s.Attributes {
		out[k] = v
	}
	out["$id"] = s.ID
	out["title"] = s.Title
	out["description"] = s.Description
	out["thumbnail"] = s.Thumbnail
	out["location"] = s.Location
	out["$createdAt"] = s.CreatedAt
	out["$updatedAt"] = s.UpdatedAt
	return out
}

func (v VisitedServiceCenter) MarshalJSON() ([]byte, error) {
	out := v.ServiceCenter.fields()
	out["appointmentDate"] = v.AppointmentDate
	out["appointmentStatus"] = v.AppointmentStatus
	out["appointmentId"] = v.AppointmentID
	return json.Marshal(out)
}
