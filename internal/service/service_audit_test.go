package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/mock"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Record(t *testing.T) {
	tests := []struct {
		name        string
		details     map[string]any
		appendErr   error
		wantDetails string
	}{
		{
			name:        "details are stored as json",
			details:     map[string]any{"roomId": 7, "userId": 3},
			wantDetails: `{"roomId":7,"userId":3}`,
		},
		{
			name:    "no details",
			details: nil,
		},
		{
			name:    "unencodable details are dropped",
			details: map[string]any{"bad": math.Inf(1)},
		},
		{
			name:      "storage failure is swallowed",
			details:   map[string]any{"roomId": 7},
			appendErr: errors.New("db down"),
			// still attempted with the encoded details
			wantDetails: `{"roomId":7}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			logs := mock.NewMockAuditLogRepository(ctrl)
			svc := NewAuditService(logs, logger.Nop())

			logs.EXPECT().AppendLog(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry models.LogEntry) error {
					assert.Equal(t, "info", entry.Level)
					assert.Equal(t, models.EventRoomDeleted, entry.Event)
					if tt.wantDetails == "" {
						assert.Empty(t, entry.Details)
					} else {
						assert.JSONEq(t, tt.wantDetails, string(entry.Details))
					}
					return tt.appendErr
				})

			svc.Record(context.Background(), models.EventRoomDeleted, tt.details)
		})
	}
}
