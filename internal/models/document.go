package models

import "time"

// DocumentStatus is the processing state of an uploaded document
type DocumentStatus string

// Document status constants
const (
	StatusProcessed  DocumentStatus = "processed"
	StatusProcessing DocumentStatus = "processing"
	StatusFailed     DocumentStatus = "failed"
)

// Document represents uploaded document metadata
type Document struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Type       string         `json:"type"`
	Size       string         `json:"size"`
	Status     DocumentStatus `json:"status"`
	UploadedAt time.Time      `json:"uploadedAt"`
}
