package notification

import (
	"asset-dashboard-api/internal/notification"
	"asset-dashboard-api/internal/service"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	sent []notification.Notice
	err  error
}

func (r *recordingNotifier) Send(ctx context.Context, notice notification.Notice) error {
	r.sent = append(r.sent, notice)
	return r.err
}

func (r *recordingNotifier) IsHealthy(ctx context.Context) bool { return true }

func TestServiceAdapter_SendWarrantyNotice(t *testing.T) {
	id := uuid.MustParse("5b0c7f0e-3d4f-4a8e-9f0e-2b3c4d5e6f70")

	tests := []struct {
		name          string
		daysRemaining int
		expectedLevel notification.Level
	}{
		{"weeks away", 20, notification.LevelWarning},
		{"a week away", 7, notification.LevelCritical},
		{"today", 0, notification.LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &recordingNotifier{}
			adapter := NewServiceAdapter(client)

			err := adapter.SendWarrantyNotice(context.Background(), service.WarrantyNotice{
				AssetID:       42,
				AnnotationID:  id,
				Type:          "Parts",
				Provider:      "Acme",
				EndDate:       "2026-11-01",
				DaysRemaining: tt.daysRemaining,
			})
			require.NoError(t, err)
			require.Len(t, client.sent, 1)

			notice := client.sent[0]
			assert.Equal(t, tt.expectedLevel, notice.Level)
			assert.Equal(t, 42, notice.AssetID)
			assert.Contains(t, notice.Message, "Acme (Parts)")
			assert.Contains(t, notice.Message, "2026-11-01")
			assert.Equal(t, "warranty_expiring", notice.Metadata["notification_type"])
			assert.Equal(t, id.String(), notice.Metadata["annotation_id"])
			require.NoError(t, notice.Validate())
		})
	}
}

func TestServiceAdapter_PropagatesError(t *testing.T) {
	client := &recordingNotifier{err: errors.New("unreachable")}

	err := NewServiceAdapter(client).SendWarrantyNotice(context.Background(), service.WarrantyNotice{AssetID: 1, Provider: "Acme"})

	assert.EqualError(t, err, "unreachable")
}
