package models

import "time"

type PackageStatus string

const (
	PackageStatusInTransit PackageStatus = "in_transit"
	PackageStatusDelivered PackageStatus = "delivered"
	PackageStatusDelayed   PackageStatus = "delayed"
)

func (s PackageStatus) Valid() bool {
	switch s {
	case PackageStatusInTransit, PackageStatusDelivered, PackageStatusDelayed:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyCritical  Urgency = "critical"
	UrgencyPreferred Urgency = "preferred"
	UrgencyFlexible  Urgency = "flexible"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyCritical, UrgencyPreferred, UrgencyFlexible:
		return true
	}
	return false
}

type Package struct {
	ID            string // UUID assigned at creation
	PackageID     string // Caller-supplied natural key (e.g., "DEMO-001-HOSPITAL-CRIT")
	Destination   string
	Status        PackageStatus
	Urgency       Urgency
	Description   string // optional; input to category detection
	Category      string // empty until detected or set manually
	PriorityLabel string // empty until computed
	LastUpdated   time.Time
}
