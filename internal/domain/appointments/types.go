package appointments

import "strings"

// ServiceType es el tipo de atención reservada.
type ServiceType string

const (
	ServiceConsultation ServiceType = "consultation"
	ServiceVaccination  ServiceType = "vaccination"
	ServiceSurgery      ServiceType = "surgery"
	ServiceGrooming     ServiceType = "grooming"
	ServiceEmergency    ServiceType = "emergency"
)

func ParseServiceType(s string) (ServiceType, bool) {
	switch st := ServiceType(strings.ToLower(strings.TrimSpace(s))); st {
	case ServiceConsultation, ServiceVaccination, ServiceSurgery, ServiceGrooming, ServiceEmergency:
		return st, true
	}
	return "", false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}
