package validation

import (
	"asset-dashboard-api/internal/annotation"
	"strings"
	"testing"
)

func TestValidateAssetID(t *testing.T) {
	tests := []struct {
		name        string
		id          int
		expectError bool
	}{
		{name: "Positive id", id: 42, expectError: false},
		{name: "Zero id", id: 0, expectError: true},
		{name: "Negative id", id: -3, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssetID(tt.id)
			if tt.expectError && err == nil {
				t.Errorf("Expected error for id %d, but got none", tt.id)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for id %d: %v", tt.id, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{name: "Valid date", value: "2025-04-02", expectError: false},
		{name: "US format", value: "04/02/2025", expectError: true},
		{name: "Impossible day", value: "2025-02-30", expectError: true},
		{name: "Empty", value: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate("date", tt.value)
			if tt.expectError && err == nil {
				t.Errorf("Expected error for %q, but got none", tt.value)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.value, err)
			}
		})
	}
}

func TestValidatePhotoURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expectError bool
	}{
		{name: "Relative path", url: "/placeholder.svg?height=200&width=200", expectError: false},
		{name: "HTTPS URL", url: "https://cdn.example.com/a.png", expectError: false},
		{name: "Protocol relative", url: "//cdn.example.com/a.png", expectError: true},
		{name: "FTP URL", url: "ftp://files.example.com/a.png", expectError: true},
		{name: "Javascript URL", url: "javascript:alert(1)", expectError: true},
		{name: "Empty", url: "", expectError: true},
		{name: "Too long", url: "/" + strings.Repeat("a", MaxPhotoURLSize), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhotoURL(tt.url)
			if tt.expectError && err == nil {
				t.Errorf("Expected error for %q, but got none", tt.url)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.url, err)
			}
		})
	}
}

func TestValidateAnnotation(t *testing.T) {
	tests := []struct {
		name          string
		payload       any
		expectedCount int
		contains      string
	}{
		{
			name:    "Valid photo",
			payload: &annotation.Photo{URL: "/photos/front.png", Caption: "Front view"},
		},
		{
			name:          "Photo without url",
			payload:       &annotation.Photo{Caption: "Front view"},
			expectedCount: 1,
			contains:      "url is required",
		},
		{
			name:    "Valid document",
			payload: &annotation.Document{FileName: "Invoice.pdf", FileType: "PDF", UploadDate: "2025-03-28"},
		},
		{
			name:          "Document missing name and type",
			payload:       &annotation.Document{},
			expectedCount: 2,
		},
		{
			name:    "Valid warranty",
			payload: &annotation.Warranty{Type: "Manufacturer", Provider: "Haas", StartDate: "2025-01-01", EndDate: "2027-01-01"},
		},
		{
			name:          "Warranty ending before it starts",
			payload:       &annotation.Warranty{Type: "Extended", Provider: "Haas", StartDate: "2025-01-01", EndDate: "2024-12-31"},
			expectedCount: 1,
			contains:      "endDate cannot be before startDate",
		},
		{
			name:          "Warranty with bad dates",
			payload:       &annotation.Warranty{Type: "Extended", Provider: "Haas", StartDate: "01/01/2025", EndDate: "soon"},
			expectedCount: 2,
		},
		{
			name:    "Valid maintenance",
			payload: &annotation.Maintenance{Date: "2025-04-02", Type: "Preventive", Cost: "₹2,500.00", PerformedBy: "Tech Support"},
		},
		{
			name:          "Maintenance missing fields",
			payload:       &annotation.Maintenance{Date: "2025-04-02"},
			expectedCount: 2,
		},
		{
			name:    "Valid event",
			payload: &annotation.Event{Date: "2025-03-30", Event: "Assigned", Description: "Asset assigned to John Smith"},
		},
		{
			name:    "Valid depreciation row",
			payload: &annotation.Depreciation{Period: "2025-2026", DepreciationAmount: "₹24,000.00", AccumulatedDepreciation: "₹24,000.00", BookValue: "₹96,000.00"},
		},
		{
			name:          "Depreciation row missing amount",
			payload:       &annotation.Depreciation{Period: "2025-2026", BookValue: "₹96,000.00"},
			expectedCount: 1,
			contains:      "depreciationAmount is required",
		},
		{
			name:          "Unsupported payload",
			payload:       &struct{}{},
			expectedCount: 1,
			contains:      "unsupported annotation payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateAnnotation(tt.payload)
			if len(errs) != tt.expectedCount {
				t.Fatalf("Expected %d errors, got %d: %v", tt.expectedCount, len(errs), errs)
			}
			if tt.contains != "" && !strings.Contains(strings.Join(errs, "; "), tt.contains) {
				t.Errorf("Expected errors to contain %q, got %v", tt.contains, errs)
			}
		})
	}
}
