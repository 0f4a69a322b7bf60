package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	mockRepo "dcars/internal/mocks/repository"
	mockService "dcars/internal/mocks/service"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messagingServiceFixtures holds all test dependencies for messaging service tests.
type messagingServiceFixtures struct {
	service          *messagingService
	conversationRepo *mockRepo.MockConversationRepository
	vehicleRepo      *mockRepo.MockVehicleRepository
	profileRepo      *mockRepo.MockProfileRepository
	notifications    *mockUsecase.MockNotificationUsecase
	realtime         *mockService.MockRealtimeNotifier
	limiter          *mockService.MockRateLimiter
}

func createTestMessagingService(t *testing.T) messagingServiceFixtures {
	fx := messagingServiceFixtures{
		conversationRepo: mockRepo.NewMockConversationRepository(t),
		vehicleRepo:      mockRepo.NewMockVehicleRepository(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		notifications:    mockUsecase.NewMockNotificationUsecase(t),
		realtime:         mockService.NewMockRealtimeNotifier(t),
		limiter:          mockService.NewMockRateLimiter(t),
	}

	fx.service = NewMessagingService(MessagingServiceParams{
		ConversationRepo: fx.conversationRepo,
		VehicleRepo:      fx.vehicleRepo,
		ProfileRepo:      fx.profileRepo,
		Notifications:    fx.notifications,
		Realtime:         fx.realtime,
		Limiter:          fx.limiter,
		Config:           newTestConfig(),
		Logger:           discardLogger(),
	}).(*messagingService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

// expectDelivery sets up the fan-out that follows every stored message.
func (fx messagingServiceFixtures) expectDelivery(ctx context.Context, senderID, recipientID uuid.UUID) {
	fx.conversationRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(_ context.Context, m *entity.Message) {
			m.ID = uuid.New()
			m.CreatedAt = fixedNow
		}).
		Return(nil)
	fx.realtime.EXPECT().SendToUser(recipientID, service.RealtimeMessageCreated, mock.Anything).Return()
	fx.realtime.EXPECT().SendToUser(senderID, service.RealtimeMessageCreated, mock.Anything).Return()
	fx.notifications.EXPECT().
		Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.UserID == recipientID && in.Type == entity.NotificationTypeMessage
		})).
		Return(&entity.Notification{}, nil)
}

func TestMessagingService_StartConversation_New(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Title: "Audi A4", Status: entity.VehicleStatusActive}

	fx.limiter.EXPECT().Allow(buyerID.String()).Return(true)
	fx.vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	fx.conversationRepo.EXPECT().FindConversation(ctx, vehicle.ID, buyerID).Return(nil, repository.ErrConversationNotFound)
	fx.conversationRepo.EXPECT().
		CreateConversation(ctx, mock.MatchedBy(func(c *entity.Conversation) bool {
			return c.BuyerID == buyerID && c.SellerID == vehicle.SellerID && c.VehicleID == vehicle.ID
		})).
		Return(nil)
	fx.expectDelivery(ctx, buyerID, vehicle.SellerID)

	conversation, message, err := fx.service.StartConversation(ctx, buyerID, vehicle.ID, "  Is it available?  ")

	require.NoError(t, err)
	assert.Equal(t, vehicle.SellerID, conversation.SellerID)
	assert.Equal(t, "Is it available?", message.Body)
	require.NotNil(t, conversation.LastMessageAt)
	assert.Equal(t, fixedNow, *conversation.LastMessageAt)
}

func TestMessagingService_StartConversation_ReusesExisting(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Status: entity.VehicleStatusSold}
	existing := &entity.Conversation{ID: uuid.New(), VehicleID: vehicle.ID, BuyerID: buyerID, SellerID: vehicle.SellerID}

	fx.limiter.EXPECT().Allow(buyerID.String()).Return(true)
	fx.vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	fx.conversationRepo.EXPECT().FindConversation(ctx, vehicle.ID, buyerID).Return(existing, nil)
	fx.expectDelivery(ctx, buyerID, vehicle.SellerID)

	conversation, _, err := fx.service.StartConversation(ctx, buyerID, vehicle.ID, "Still have the papers?")

	require.NoError(t, err)
	assert.Equal(t, existing.ID, conversation.ID)
}

func TestMessagingService_StartConversation_LostRace(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	vehicle := &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Status: entity.VehicleStatusActive}
	existing := &entity.Conversation{ID: uuid.New(), VehicleID: vehicle.ID, BuyerID: buyerID, SellerID: vehicle.SellerID}

	fx.limiter.EXPECT().Allow(buyerID.String()).Return(true)
	fx.vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	fx.conversationRepo.EXPECT().FindConversation(ctx, vehicle.ID, buyerID).Return(nil, repository.ErrConversationNotFound).Once()
	fx.conversationRepo.EXPECT().CreateConversation(ctx, mock.Anything).Return(repository.ErrDuplicateConversation)
	fx.conversationRepo.EXPECT().FindConversation(ctx, vehicle.ID, buyerID).Return(existing, nil).Once()
	fx.expectDelivery(ctx, buyerID, vehicle.SellerID)

	conversation, _, err := fx.service.StartConversation(ctx, buyerID, vehicle.ID, "Hello")

	require.NoError(t, err)
	assert.Equal(t, existing.ID, conversation.ID)
}

func TestMessagingService_StartConversation_Errors(t *testing.T) {
	buyerID := uuid.New()

	tests := []struct {
		name    string
		vehicle *entity.Vehicle
		wantErr error
	}{
		{
			name:    "own listing",
			vehicle: &entity.Vehicle{ID: uuid.New(), SellerID: buyerID, Status: entity.VehicleStatusActive},
			wantErr: domainerrors.ErrCannotMessageSelf,
		},
		{
			name:    "inactive listing without conversation",
			vehicle: &entity.Vehicle{ID: uuid.New(), SellerID: uuid.New(), Status: entity.VehicleStatusDraft},
			wantErr: domainerrors.ErrVehicleNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMessagingService(t)

			ctx := context.Background()

			fx.limiter.EXPECT().Allow(buyerID.String()).Return(true)
			fx.vehicleRepo.EXPECT().FindVehicleByID(ctx, tt.vehicle.ID).Return(tt.vehicle, nil)
			if tt.vehicle.SellerID != buyerID {
				fx.conversationRepo.EXPECT().FindConversation(ctx, tt.vehicle.ID, buyerID).Return(nil, repository.ErrConversationNotFound)
			}

			_, _, err := fx.service.StartConversation(ctx, buyerID, tt.vehicle.ID, "Hi")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMessagingService_Send_BodyChecks(t *testing.T) {
	senderID := uuid.New()

	tests := []struct {
		name     string
		body     string
		allowed  bool
		checkErr func(t *testing.T, err error)
	}{
		{
			name: "empty body",
			body: "   ",
			checkErr: func(t *testing.T, err error) {
				requireAppError(t, err, domainerrors.ErrValidationFailed.ErrorCode())
			},
		},
		{
			name: "too long",
			body: strings.Repeat("é", 21),
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrMessageTooLong)
			},
		},
		{
			name:    "rate limited",
			body:    "hello",
			allowed: false,
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMessagingService(t)

			if tt.name == "rate limited" {
				fx.limiter.EXPECT().Allow(senderID.String()).Return(tt.allowed)
			}

			_, err := fx.service.Send(context.Background(), senderID, uuid.New(), tt.body)

			tt.checkErr(t, err)
		})
	}
}

func TestMessagingService_Send_NotParticipant(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	senderID := uuid.New()
	conversationID := uuid.New()

	fx.limiter.EXPECT().Allow(senderID.String()).Return(true)
	fx.conversationRepo.EXPECT().FindConversationByID(ctx, conversationID).Return(&entity.Conversation{
		ID:       conversationID,
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
	}, nil)

	_, err := fx.service.Send(ctx, senderID, conversationID, "hi")

	assert.ErrorIs(t, err, domainerrors.ErrNotConversationParticipant)
}

func TestMessagingService_Send_SellerReply(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	conversation := &entity.Conversation{ID: uuid.New(), VehicleID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New()}

	fx.limiter.EXPECT().Allow(conversation.SellerID.String()).Return(true)
	fx.conversationRepo.EXPECT().FindConversationByID(ctx, conversation.ID).Return(conversation, nil)
	fx.vehicleRepo.EXPECT().FindVehicleByID(ctx, conversation.VehicleID).Return(nil, repository.ErrVehicleNotFound)
	fx.expectDelivery(ctx, conversation.SellerID, conversation.BuyerID)

	message, err := fx.service.Send(ctx, conversation.SellerID, conversation.ID, "Yes, come by")

	require.NoError(t, err)
	assert.Equal(t, conversation.SellerID, message.SenderID)
}

func TestMessagingService_ListConversations(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	sellerID := uuid.New()
	conversation := &entity.Conversation{ID: uuid.New(), VehicleID: uuid.New(), BuyerID: userID, SellerID: sellerID}
	last := &entity.Message{ID: uuid.New(), Body: "See you"}

	fx.conversationRepo.EXPECT().
		ListConversations(ctx, userID, entity.PageRequest{Page: 1, PageSize: 20}).
		Return([]*entity.Conversation{conversation}, int64(1), nil)
	fx.conversationRepo.EXPECT().
		LastMessages(ctx, []uuid.UUID{conversation.ID}).
		Return(map[uuid.UUID]*entity.Message{conversation.ID: last}, nil)
	fx.conversationRepo.EXPECT().
		UnreadCounts(ctx, userID, []uuid.UUID{conversation.ID}).
		Return(map[uuid.UUID]int64{conversation.ID: 3}, nil)
	fx.vehicleRepo.EXPECT().
		FindVehiclesByIDs(ctx, []uuid.UUID{conversation.VehicleID}).
		Return([]*entity.Vehicle{{ID: conversation.VehicleID, Title: "BMW 320i"}}, nil)
	fx.profileRepo.EXPECT().
		FindProfilesByIDs(ctx, []uuid.UUID{sellerID}).
		Return([]*entity.Profile{{ID: sellerID, FullName: "Ada", DealerName: "Ada Motors"}}, nil)

	page, err := fx.service.ListConversations(ctx, userID, entity.PageRequest{})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	summary := page.Items[0]
	assert.Equal(t, "BMW 320i", summary.VehicleTitle)
	assert.Equal(t, sellerID, summary.CounterpartID)
	assert.Equal(t, "Ada Motors", summary.CounterpartName)
	assert.Equal(t, last, summary.LastMessage)
	assert.Equal(t, int64(3), summary.UnreadCount)
}

func TestMessagingService_ListConversations_Empty(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.conversationRepo.EXPECT().ListConversations(ctx, userID, mock.Anything).Return(nil, int64(0), nil)

	page, err := fx.service.ListConversations(ctx, userID, entity.PageRequest{})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestMessagingService_ListMessages_ClampsLimit(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversation := &entity.Conversation{ID: uuid.New(), BuyerID: userID, SellerID: uuid.New()}

	fx.conversationRepo.EXPECT().FindConversationByID(ctx, conversation.ID).Return(conversation, nil)
	fx.conversationRepo.EXPECT().ListMessages(ctx, conversation.ID, (*time.Time)(nil), maxMessagePageSize).Return([]*entity.Message{}, nil)

	_, err := fx.service.ListMessages(ctx, userID, conversation.ID, nil, 1000)

	require.NoError(t, err)
}

func TestMessagingService_MarkRead(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversation := &entity.Conversation{ID: uuid.New(), BuyerID: uuid.New(), SellerID: userID}

	fx.conversationRepo.EXPECT().FindConversationByID(ctx, conversation.ID).Return(conversation, nil)
	fx.conversationRepo.EXPECT().MarkRead(ctx, conversation.ID, userID, fixedNow).Return(int64(2), nil)
	fx.realtime.EXPECT().SendToUser(conversation.BuyerID, service.RealtimeMessagesRead, mock.Anything).Return()

	count, err := fx.service.MarkRead(ctx, userID, conversation.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMessagingService_MarkRead_NothingNew(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversation := &entity.Conversation{ID: uuid.New(), BuyerID: userID, SellerID: uuid.New()}

	fx.conversationRepo.EXPECT().FindConversationByID(ctx, conversation.ID).Return(conversation, nil)
	fx.conversationRepo.EXPECT().MarkRead(ctx, conversation.ID, userID, fixedNow).Return(int64(0), nil)

	count, err := fx.service.MarkRead(ctx, userID, conversation.ID)

	require.NoError(t, err)
	assert.Zero(t, count)
}
