package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/hub"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/go-chi/chi/v5"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake implements a service interface through per-test function fields.
// A call to a field that was not set panics, which fails the test.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	updateProfileFn func(ctx context.Context, userID int64, request models.ProfileUpdateRequest) (models.User, error)
	deleteAccountFn func(ctx context.Context, userID int64, password string) error
	getPublicKeyFn  func(ctx context.Context, userID int64) (models.PublicKeyResponse, error)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, request models.ProfileUpdateRequest) (models.User, error) {
	return m.updateProfileFn(ctx, userID, request)
}

func (m *mockUserService) DeleteAccount(ctx context.Context, userID int64, password string) error {
	return m.deleteAccountFn(ctx, userID, password)
}

func (m *mockUserService) GetPublicKey(ctx context.Context, userID int64) (models.PublicKeyResponse, error) {
	return m.getPublicKeyFn(ctx, userID)
}

type mockRoomService struct {
	createRoomFn       func(ctx context.Context, userID int64, request models.CreateRoomRequest) (models.Room, error)
	getRoomFn          func(ctx context.Context, userID, roomID int64) (models.Room, error)
	listVisibleRoomsFn func(ctx context.Context, userID int64) ([]models.Room, error)
	listMyRoomsFn      func(ctx context.Context, userID int64) ([]models.Room, error)
	updateRoomFn       func(ctx context.Context, userID int64, update models.RoomUpdate) (models.Room, error)
	deleteRoomFn       func(ctx context.Context, userID, roomID int64) error
	listMembersFn      func(ctx context.Context, userID, roomID int64) ([]models.RoomMember, error)
	addUserFn          func(ctx context.Context, adminID, roomID, userID int64) error
	removeUserFn       func(ctx context.Context, adminID, roomID, userID int64) error
	leaveFn            func(ctx context.Context, userID, roomID int64) error
	claimAdminFn       func(ctx context.Context, userID, roomID int64) error
	releaseAdminFn     func(ctx context.Context, userID, roomID int64) error
	joinFn             func(ctx context.Context, userID, roomID int64) (models.JoinResult, error)
}

func (m *mockRoomService) CreateRoom(ctx context.Context, userID int64, request models.CreateRoomRequest) (models.Room, error) {
	return m.createRoomFn(ctx, userID, request)
}

func (m *mockRoomService) GetRoom(ctx context.Context, userID, roomID int64) (models.Room, error) {
	return m.getRoomFn(ctx, userID, roomID)
}

func (m *mockRoomService) ListVisibleRooms(ctx context.Context, userID int64) ([]models.Room, error) {
	return m.listVisibleRoomsFn(ctx, userID)
}

func (m *mockRoomService) ListMyRooms(ctx context.Context, userID int64) ([]models.Room, error) {
	return m.listMyRoomsFn(ctx, userID)
}

func (m *mockRoomService) UpdateRoom(ctx context.Context, userID int64, update models.RoomUpdate) (models.Room, error) {
	return m.updateRoomFn(ctx, userID, update)
}

func (m *mockRoomService) DeleteRoom(ctx context.Context, userID, roomID int64) error {
	return m.deleteRoomFn(ctx, userID, roomID)
}

func (m *mockRoomService) ListMembers(ctx context.Context, userID, roomID int64) ([]models.RoomMember, error) {
	return m.listMembersFn(ctx, userID, roomID)
}

func (m *mockRoomService) AddUser(ctx context.Context, adminID, roomID, userID int64) error {
	return m.addUserFn(ctx, adminID, roomID, userID)
}

func (m *mockRoomService) RemoveUser(ctx context.Context, adminID, roomID, userID int64) error {
	return m.removeUserFn(ctx, adminID, roomID, userID)
}

func (m *mockRoomService) Leave(ctx context.Context, userID, roomID int64) error {
	return m.leaveFn(ctx, userID, roomID)
}

func (m *mockRoomService) ClaimAdmin(ctx context.Context, userID, roomID int64) error {
	return m.claimAdminFn(ctx, userID, roomID)
}

func (m *mockRoomService) ReleaseAdmin(ctx context.Context, userID, roomID int64) error {
	return m.releaseAdminFn(ctx, userID, roomID)
}

func (m *mockRoomService) Join(ctx context.Context, userID, roomID int64) (models.JoinResult, error) {
	return m.joinFn(ctx, userID, roomID)
}

type mockAccessRequestService struct {
	askForAccessFn          func(ctx context.Context, userID, roomID int64) (models.AccessRequest, error)
	requestJoinByPasswordFn func(ctx context.Context, userID, roomID int64) (models.AccessRequest, error)
	declarePasswordCheckFn  func(ctx context.Context, checkerID, roomID, userID int64) error
	resetPasswordCheckFn    func(ctx context.Context, memberID, roomID, userID int64) error
	sendEncryptedPasswordFn func(ctx context.Context, userID, roomID int64, encryptedPassword string) error
	rejectPasswordFn        func(ctx context.Context, memberID, roomID, userID int64) error
	sendRoomKeyFn           func(ctx context.Context, memberID, roomID int64, request models.SendRoomKeyRequest) error
	requestKeyAgainFn       func(ctx context.Context, userID, roomID int64) error
	respondToRequestFn      func(ctx context.Context, adminID, roomID, userID int64, request models.RespondRequest) error
	getMyRequestFn          func(ctx context.Context, userID, roomID int64) (models.AccessRequest, error)
	cancelMyRequestFn       func(ctx context.Context, userID, roomID int64) error
	listRoomRequestsFn      func(ctx context.Context, memberID, roomID int64) ([]models.AccessRequest, error)
	roomUsersStatusFn       func(ctx context.Context, memberID, roomID int64) ([]models.UserRoomStatus, error)
}

func (m *mockAccessRequestService) AskForAccess(ctx context.Context, userID, roomID int64) (models.AccessRequest, error) {
	return m.askForAccessFn(ctx, userID, roomID)
}

func (m *mockAccessRequestService) RequestJoinByPassword(ctx context.Context, userID, roomID int64) (models.AccessRequest, error) {
	return m.requestJoinByPasswordFn(ctx, userID, roomID)
}

func (m *mockAccessRequestService) DeclarePasswordCheck(ctx context.Context, checkerID, roomID, userID int64) error {
	return m.declarePasswordCheckFn(ctx, checkerID, roomID, userID)
}

func (m *mockAccessRequestService) ResetPasswordCheck(ctx context.Context, memberID, roomID, userID int64) error {
	return m.resetPasswordCheckFn(ctx, memberID, roomID, userID)
}

func (m *mockAccessRequestService) SendEncryptedPassword(ctx context.Context, userID, roomID int64, encryptedPassword string) error {
	return m.sendEncryptedPasswordFn(ctx, userID, roomID, encryptedPassword)
}

func (m *mockAccessRequestService) RejectPassword(ctx context.Context, memberID, roomID, userID int64) error {
	return m.rejectPasswordFn(ctx, memberID, roomID, userID)
}

func (m *mockAccessRequestService) SendRoomKey(ctx context.Context, memberID, roomID int64, request models.SendRoomKeyRequest) error {
	return m.sendRoomKeyFn(ctx, memberID, roomID, request)
}

func (m *mockAccessRequestService) RequestKeyAgain(ctx context.Context, userID, roomID int64) error {
	return m.requestKeyAgainFn(ctx, userID, roomID)
}

func (m *mockAccessRequestService) RespondToRequest(ctx context.Context, adminID, roomID, userID int64, request models.RespondRequest) error {
	return m.respondToRequestFn(ctx, adminID, roomID, userID, request)
}

func (m *mockAccessRequestService) GetMyRequest(ctx context.Context, userID, roomID int64) (models.AccessRequest, error) {
	return m.getMyRequestFn(ctx, userID, roomID)
}

func (m *mockAccessRequestService) CancelMyRequest(ctx context.Context, userID, roomID int64) error {
	return m.cancelMyRequestFn(ctx, userID, roomID)
}

func (m *mockAccessRequestService) ListRoomRequests(ctx context.Context, memberID, roomID int64) ([]models.AccessRequest, error) {
	return m.listRoomRequestsFn(ctx, memberID, roomID)
}

func (m *mockAccessRequestService) RoomUsersStatus(ctx context.Context, memberID, roomID int64) ([]models.UserRoomStatus, error) {
	return m.roomUsersStatusFn(ctx, memberID, roomID)
}

type mockMessageService struct {
	sendFn        func(ctx context.Context, userID int64, request models.SendMessagesRequest) (models.SendMessagesResponse, error)
	requestLastFn func(ctx context.Context, userID int64, request models.RoomMessagesRequest) ([]models.Message, error)
	ackLastFn     func(ctx context.Context, userID int64, request models.RoomMessagesRequest) error
	subscribeFn   func(ctx context.Context, userID, roomID int64) (*hub.Subscriber, error)
	unsubscribeFn func(subscriber *hub.Subscriber)
}

func (m *mockMessageService) Send(ctx context.Context, userID int64, request models.SendMessagesRequest) (models.SendMessagesResponse, error) {
	return m.sendFn(ctx, userID, request)
}

func (m *mockMessageService) RequestLast(ctx context.Context, userID int64, request models.RoomMessagesRequest) ([]models.Message, error) {
	return m.requestLastFn(ctx, userID, request)
}

func (m *mockMessageService) AckLast(ctx context.Context, userID int64, request models.RoomMessagesRequest) error {
	return m.ackLastFn(ctx, userID, request)
}

func (m *mockMessageService) Subscribe(ctx context.Context, userID, roomID int64) (*hub.Subscriber, error) {
	return m.subscribeFn(ctx, userID, roomID)
}

func (m *mockMessageService) Unsubscribe(subscriber *hub.Subscriber) {
	m.unsubscribeFn(subscriber)
}

type mockAppInfoService struct {
	version  string
	healthFn func(ctx context.Context) error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(ctx context.Context) error {
	if m.healthFn == nil {
		return nil
	}
	return m.healthFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{}
}

// newTestHandler builds a Handler around svcs, filling AppInfoService when
// the test did not provide one.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// authedRequest builds a request as the auth middleware would hand it over:
// userID in the context and chi URL params set.
func authedRequest(method, target, body string, userID int64, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = utils.WithUserID(ctx, userID)

	return req.WithContext(ctx)
}
