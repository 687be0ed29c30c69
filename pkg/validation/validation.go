package validation

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"asset-dashboard-api/internal/annotation"
)

// Field limits
const (
	DateLayout      = "2006-01-02"
	MaxTextLength   = 255
	MaxNoteLength   = 1000
	MaxPhotoURLSize = 2048
)

// ValidateAssetID checks that an asset id is a positive integer
func ValidateAssetID(id int) error {
	if id <= 0 {
		return fmt.Errorf("asset id must be a positive integer, got %d", id)
	}
	return nil
}

// ValidateRequired checks if a string field is not empty
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateLength checks a field does not exceed max characters.
func ValidateLength(fieldName, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%s cannot exceed %d characters", fieldName, max)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(fieldName, value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format: %s", fieldName, value)
	}
	return d, nil
}

// ValidatePhotoURL accepts absolute http(s) URLs and site-relative paths.
func ValidatePhotoURL(raw string) error {
	if err := ValidateRequired("url", raw); err != nil {
		return err
	}
	if len(raw) > MaxPhotoURLSize {
		return fmt.Errorf("url cannot exceed %d characters", MaxPhotoURLSize)
	}
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("url must be an http(s) URL or a relative path: %s", raw)
	}
	return nil
}

// ValidateAnnotation validates a decoded annotation payload and returns every
// problem found.
func ValidateAnnotation(payload any) []string {
	var errors []string
	check := func(err error) {
		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	switch p := payload.(type) {
	case *annotation.Photo:
		check(ValidatePhotoURL(p.URL))
		check(ValidateLength("caption", p.Caption, MaxTextLength))

	case *annotation.Document:
		check(ValidateRequired("fileName", p.FileName))
		check(ValidateLength("fileName", p.FileName, MaxTextLength))
		check(ValidateRequired("fileType", p.FileType))
		check(ValidateLength("description", p.Description, MaxNoteLength))
		if p.UploadDate != "" {
			_, err := ParseDate("uploadDate", p.UploadDate)
			check(err)
		}

	case *annotation.Warranty:
		check(ValidateRequired("type", p.Type))
		check(ValidateRequired("provider", p.Provider))
		check(ValidateLength("description", p.Description, MaxNoteLength))
		start, startErr := ParseDate("startDate", p.StartDate)
		end, endErr := ParseDate("endDate", p.EndDate)
		check(startErr)
		check(endErr)
		if startErr == nil && endErr == nil && end.Before(start) {
			errors = append(errors, "endDate cannot be before startDate")
		}

	case *annotation.Maintenance:
		_, err := ParseDate("date", p.Date)
		check(err)
		check(ValidateRequired("type", p.Type))
		check(ValidateRequired("performedBy", p.PerformedBy))
		check(ValidateLength("description", p.Description, MaxNoteLength))

	case *annotation.Event:
		_, err := ParseDate("date", p.Date)
		check(err)
		check(ValidateRequired("event", p.Event))
		check(ValidateLength("description", p.Description, MaxNoteLength))

	case *annotation.Depreciation:
		check(ValidateRequired("period", p.Period))
		check(ValidateRequired("depreciationAmount", p.DepreciationAmount))
		check(ValidateRequired("bookValue", p.BookValue))

	default:
		errors = append(errors, fmt.Sprintf("unsupported annotation payload %T", payload))
	}

	return errors
}
