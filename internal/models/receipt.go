package models

import "time"

type ReceiptStatus string

const (
	ReceiptStatusVerified ReceiptStatus = "verified"
	ReceiptStatusPending  ReceiptStatus = "pending"
)

func (s ReceiptStatus) Valid() bool {
	switch s {
	case ReceiptStatusVerified, ReceiptStatusPending:
		return true
	}
	return false
}

type Receipt struct {
	ID           string // UUID assigned at creation
	ReceiptID    string // Caller-supplied natural key (e.g., "RECEIPT-001-HOSPITAL")
	PackageID    string
	ProofSummary string
	Status       ReceiptStatus
	DisasterType string    // optional free-text label; empty when no disaster
	Timestamp    time.Time // when the receipt was recorded
}
