package notification

import (
	"asset-dashboard-api/internal/notification"
	"asset-dashboard-api/internal/service"
	"context"
	"fmt"
	"strconv"
)

// urgentDays is the remaining lifetime below which a warranty notice is critical.
const urgentDays = 7

// ServiceAdapter adapts the notification client to the service layer interface
type ServiceAdapter struct {
	client notification.Notifier
}

// NewServiceAdapter creates a new notification service adapter
func NewServiceAdapter(client notification.Notifier) *ServiceAdapter {
	return &ServiceAdapter{
		client: client,
	}
}

// SendWarrantyNotice sends a notice about a warranty that ends soon
func (a *ServiceAdapter) SendWarrantyNotice(ctx context.Context, notice service.WarrantyNotice) error {
	return a.client.Send(ctx, toNotice(notice))
}

func toNotice(notice service.WarrantyNotice) notification.Notice {
	level := notification.LevelWarning
	if notice.DaysRemaining <= urgentDays {
		level = notification.LevelCritical
	}

	provider := notice.Provider
	if notice.Type != "" {
		provider = fmt.Sprintf("%s (%s)", notice.Provider, notice.Type)
	}

	return notification.Notice{
		Level:   level,
		AssetID: notice.AssetID,
		Message: fmt.Sprintf("Warranty from %s for asset %d ends on %s (%d days remaining)",
			provider, notice.AssetID, notice.EndDate, notice.DaysRemaining),
		Metadata: map[string]string{
			"notification_type": "warranty_expiring",
			"annotation_id":     notice.AnnotationID.String(),
			"provider":          notice.Provider,
			"end_date":          notice.EndDate,
			"days_remaining":    strconv.Itoa(notice.DaysRemaining),
		},
	}
}
