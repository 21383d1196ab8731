package models

import "time"

// FileStatus is the upload lifecycle state of a FileRecord.
type FileStatus string

const (
	// StatusUploading marks a provisional record created before the server
	// confirmed the upload.
	StatusUploading FileStatus = "uploading"
	// StatusSynced marks a record confirmed by the server.
	StatusSynced FileStatus = "synced"
	// StatusError marks a record whose bytes the server accepted but whose
	// downstream processing failed. Kept visible so the user sees what failed.
	StatusError FileStatus = "error"
)

// FileRecord is one uploaded source file. Within one user's scope no two
// synced records may share both identical Filename and identical ContentHash.
type FileRecord struct {
	ID          string     `json:"id"`
	Filename    string     `json:"filename"`
	FileType    string     `json:"file_type"`
	SizeBytes   int64      `json:"size_bytes"`
	ContentHash string     `json:"content_hash,omitempty"`
	Status      FileStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FileUpload is a candidate file handed to the upload flow before any
// network or hashing work has happened.
type FileUpload struct {
	Filename string
	FileType string
	Data     []byte
}
