package annotation

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which tab of the asset page a record belongs to.
type Kind string

const (
	KindPhoto        Kind = "photo"
	KindDocument     Kind = "document"
	KindWarranty     Kind = "warranty"
	KindMaintenance  Kind = "maintenance"
	KindEvent        Kind = "event"
	KindDepreciation Kind = "depreciation"
)

// Kinds lists every annotation kind in display order.
var Kinds = []Kind{KindPhoto, KindDocument, KindDepreciation, KindWarranty, KindMaintenance, KindEvent}

// segments maps the URL collection name to a kind.
var segments = map[string]Kind{
	"photos":       KindPhoto,
	"documents":    KindDocument,
	"warranties":   KindWarranty,
	"maintenance":  KindMaintenance,
	"events":       KindEvent,
	"depreciation": KindDepreciation,
}

// RoutePattern matches any collection segment accepted by ParseSegment.
const RoutePattern = "photos|documents|warranties|maintenance|events|depreciation"

// ParseSegment resolves a URL collection name such as "warranties".
func ParseSegment(segment string) (Kind, bool) {
	k, ok := segments[segment]
	return k, ok
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Annotation is one locally stored record attached to a backend asset.
// ID is generated on creation and never reused.
type Annotation struct {
	ID        uuid.UUID       `json:"id"`
	AssetID   int             `json:"assetId"`
	Kind      Kind            `json:"kind"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Photo struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type Document struct {
	FileName    string `json:"fileName"`
	Description string `json:"description"`
	FileType    string `json:"fileType"`
	UploadDate  string `json:"uploadDate"`
	UploadedBy  string `json:"uploadedBy"`
}

type Warranty struct {
	Type        string `json:"type"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
}

type Maintenance struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Cost        string `json:"cost"`
	Description string `json:"description"`
	PerformedBy string `json:"performedBy"`
}

type Event struct {
	Date        string `json:"date"`
	Event       string `json:"event"`
	Description string `json:"description"`
	PerformedBy string `json:"performedBy"`
}

// Depreciation is a manually entered schedule row. Amounts are kept as
// entered, including currency formatting.
type Depreciation struct {
	Period                  string `json:"period"`
	DepreciationAmount      string `json:"depreciationAmount"`
	AccumulatedDepreciation string `json:"accumulatedDepreciation"`
	BookValue               string `json:"bookValue"`
}

// NewPayload returns a pointer to the zero payload for kind, or nil.
func NewPayload(kind Kind) any {
	switch kind {
	case KindPhoto:
		return &Photo{}
	case KindDocument:
		return &Document{}
	case KindWarranty:
		return &Warranty{}
	case KindMaintenance:
		return &Maintenance{}
	case KindEvent:
		return &Event{}
	case KindDepreciation:
		return &Depreciation{}
	}
	return nil
}
