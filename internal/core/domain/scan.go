package domain

import "time"

// ScanRecord is one entry in the scan history.
type ScanRecord struct {
	ID          string
	Barcode     string
	ProductName string
	CategoryID  WasteCategoryID
	ScannedAt   time.Time
}
