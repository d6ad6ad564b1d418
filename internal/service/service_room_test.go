package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/mock"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomMocks struct {
	rooms       *mock.MockRoomRepository
	memberships *mock.MockMembershipRepository
	logs        *mock.MockAuditLogRepository
}

func newTestRoomSvc(t *testing.T) (RoomService, roomMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := roomMocks{
		rooms:       mock.NewMockRoomRepository(ctrl),
		memberships: mock.NewMockMembershipRepository(ctrl),
		logs:        mock.NewMockAuditLogRepository(ctrl),
	}
	audit := NewAuditService(m.logs, logger.Nop())
	return NewRoomService(m.rooms, m.memberships, audit, testAppConfig(), logger.Nop()), m
}

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

// expectAudit accepts one audit entry with the given event.
func expectAudit(t *testing.T, logs *mock.MockAuditLogRepository, event string) {
	t.Helper()
	logs.EXPECT().AppendLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.LogEntry) error {
			assert.Equal(t, event, entry.Event)
			return nil
		},
	)
}

// ── CreateRoom ───────────────────────────────────────────────────────────────

func TestRoomService_CreateRoom_WithPassword(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.rooms.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), "enc-key").DoAndReturn(
		func(_ context.Context, room models.Room, _ string) (models.Room, error) {
			require.NotNil(t, room.AdminID)
			assert.Equal(t, int64(1), *room.AdminID)
			assert.True(t, room.HasPassword)
			assert.NoError(t, utils.CheckPassword(room.PasswordHash, "pw1-secret"))
			room.RoomID = 10
			return room, nil
		},
	)
	expectAudit(t, m.logs, models.EventRoomCreated)

	room, err := svc.CreateRoom(context.Background(), 1, models.CreateRoomRequest{
		Name:             "private",
		Password:         "pw1-secret",
		IsPrivate:        true,
		EncryptedRoomKey: "enc-key",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), room.RoomID)
}

func TestRoomService_CreateRoom_InvalidName(t *testing.T) {
	svc, _ := newTestRoomSvc(t)

	_, err := svc.CreateRoom(context.Background(), 1, models.CreateRoomRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRoomService_CreateRoom_AuditFailureDoesNotFail(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.rooms.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), "").Return(models.Room{RoomID: 3}, nil)
	m.logs.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.CreateRoom(context.Background(), 1, models.CreateRoomRequest{Name: "open"})
	assert.NoError(t, err)
}

// ── GetRoom ──────────────────────────────────────────────────────────────────

func TestRoomService_GetRoom_HiddenRoomForOutsider(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(4)).Return(models.Room{RoomID: 4, IsVisible: false}, nil)
	m.memberships.EXPECT().IsMember(gomock.Any(), int64(4), int64(2)).Return(false, nil)

	_, err := svc.GetRoom(context.Background(), 2, 4)
	assert.ErrorIs(t, err, store.ErrRoomNotFound)
}

func TestRoomService_GetRoom_AdminlessAfterLeave(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(4)).Return(models.Room{RoomID: 4, IsVisible: true}, nil)

	room, err := svc.GetRoom(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Nil(t, room.AdminID)
}

// ── UpdateRoom ───────────────────────────────────────────────────────────────

func TestRoomService_UpdateRoom_ContentEditHasNoGuard(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.memberships.EXPECT().IsMember(gomock.Any(), int64(4), int64(2)).Return(true, nil)
	m.rooms.EXPECT().UpdateRoom(gomock.Any(), gomock.Any(), (*int64)(nil)).Return(models.Room{RoomID: 4, Name: "renamed"}, nil)

	room, err := svc.UpdateRoom(context.Background(), 2, models.RoomUpdate{RoomID: 4, Name: strPtr("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", room.Name)
}

func TestRoomService_UpdateRoom_SecurityEditIsGuarded(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.memberships.EXPECT().IsMember(gomock.Any(), int64(4), int64(2)).Return(true, nil)
	m.rooms.EXPECT().UpdateRoom(gomock.Any(), gomock.Any(), int64Ptr(2)).DoAndReturn(
		func(_ context.Context, update models.RoomUpdate, _ *int64) (models.Room, error) {
			require.NotNil(t, update.PasswordHash)
			assert.Empty(t, *update.PasswordHash, "an empty password clears the verifier")
			return models.Room{}, store.ErrAdminMismatch
		},
	)

	_, err := svc.UpdateRoom(context.Background(), 2, models.RoomUpdate{RoomID: 4, Password: strPtr(""), IsVisible: boolPtr(true)})
	assert.ErrorIs(t, err, store.ErrAdminMismatch)
}

func TestRoomService_UpdateRoom_NotMember(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.memberships.EXPECT().IsMember(gomock.Any(), int64(4), int64(2)).Return(false, nil)

	_, err := svc.UpdateRoom(context.Background(), 2, models.RoomUpdate{RoomID: 4, Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotRoomMember)
}

// ── Membership ───────────────────────────────────────────────────────────────

func TestRoomService_Join(t *testing.T) {
	tests := []struct {
		name        string
		room        models.Room
		added       bool
		wantErr     error
		wantAlready bool
	}{
		{name: "first join", room: models.Room{RoomID: 4}, added: true},
		{name: "second join is idempotent", room: models.Room{RoomID: 4}, added: false, wantAlready: true},
		{name: "private room", room: models.Room{RoomID: 4, IsPrivate: true}, wantErr: ErrRoomNotPublic},
		{name: "password room", room: models.Room{RoomID: 4, HasPassword: true}, wantErr: ErrRoomNotPublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestRoomSvc(t)
			m.rooms.EXPECT().GetRoom(gomock.Any(), int64(4)).Return(tt.room, nil)
			if tt.wantErr == nil {
				m.memberships.EXPECT().AddMember(gomock.Any(), int64(4), int64(2)).Return(tt.added, nil)
			}

			result, err := svc.Join(context.Background(), 2, 4)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlready, result.AlreadyInRoom)
			assert.Equal(t, int64(4), result.RoomID)
		})
	}
}

func TestRoomService_AddUser_AdminOnly(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(4)).Return(models.Room{RoomID: 4, AdminID: int64Ptr(1)}, nil)

	err := svc.AddUser(context.Background(), 2, 4, 3)
	assert.ErrorIs(t, err, ErrNotRoomAdmin)
}

func TestRoomService_AddUser_AlreadyMember(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(4)).Return(models.Room{RoomID: 4, AdminID: int64Ptr(1)}, nil)
	m.memberships.EXPECT().AddMember(gomock.Any(), int64(4), int64(3)).Return(false, nil)

	err := svc.AddUser(context.Background(), 1, 4, 3)
	assert.ErrorIs(t, err, ErrAlreadyInRoom)
}

func TestRoomService_RemoveUser(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(4)).Return(models.Room{RoomID: 4, AdminID: int64Ptr(1)}, nil)
	m.memberships.EXPECT().RemoveMember(gomock.Any(), int64(4), int64(3)).Return(false, nil)
	expectAudit(t, m.logs, models.EventMemberRemoved)

	require.NoError(t, svc.RemoveUser(context.Background(), 1, 4, 3))
}

func TestRoomService_Leave_NotMember(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.memberships.EXPECT().RemoveMember(gomock.Any(), int64(4), int64(3)).Return(false, store.ErrMembershipNotFound)

	err := svc.Leave(context.Background(), 3, 4)
	assert.ErrorIs(t, err, store.ErrMembershipNotFound)
}

// ── Admin ────────────────────────────────────────────────────────────────────

func TestRoomService_ClaimAdmin_SecondClaimFails(t *testing.T) {
	svc, m := newTestRoomSvc(t)
	ctx := context.Background()

	m.memberships.EXPECT().IsMember(gomock.Any(), int64(4), gomock.Any()).Return(true, nil).Times(2)
	gomock.InOrder(
		m.rooms.EXPECT().ClaimAdmin(gomock.Any(), int64(4), int64(2)).Return(nil),
		m.rooms.EXPECT().ClaimAdmin(gomock.Any(), int64(4), int64(3)).Return(store.ErrAdminAlreadySet),
	)
	expectAudit(t, m.logs, models.EventAdminClaimed)

	require.NoError(t, svc.ClaimAdmin(ctx, 2, 4))
	assert.ErrorIs(t, svc.ClaimAdmin(ctx, 3, 4), store.ErrAdminAlreadySet)
}

func TestRoomService_ClaimAdmin_NotMember(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.memberships.EXPECT().IsMember(gomock.Any(), int64(4), int64(2)).Return(false, nil)

	assert.ErrorIs(t, svc.ClaimAdmin(context.Background(), 2, 4), ErrNotRoomMember)
}

func TestRoomService_DeleteRoom_NotAdmin(t *testing.T) {
	svc, m := newTestRoomSvc(t)

	m.rooms.EXPECT().DeleteRoom(gomock.Any(), int64(4), int64(2)).Return(store.ErrAdminMismatch)

	assert.ErrorIs(t, svc.DeleteRoom(context.Background(), 2, 4), store.ErrAdminMismatch)
}
