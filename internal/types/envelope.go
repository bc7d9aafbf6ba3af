package types

import "encoding/json"

// Envelope is the common wrapper every API response carries:
// {success, code?, message?, data?}. Data stays raw so callers can decode it
// into the type they expect after checking Success.
type Envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// EducationPage is the paginated education list response.
type EducationPage struct {
	Content       []Education `json:"content"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
}

// ResumePage is the paginated resume list response.
type ResumePage struct {
	Content       []Resume `json:"content"`
	Page          int      `json:"page"`
	Size          int      `json:"size"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
}

// PageCount returns the number of pages needed for total elements at the
// given page size.
func PageCount(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	return pages
}
