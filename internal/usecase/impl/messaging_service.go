package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"dcars/config"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMessagePageSize = 50
	maxMessagePageSize     = 200
	notificationExcerpt    = 140
)

// messagingService implements buyer and seller chat.
type messagingService struct {
	conversationRepo repository.ConversationRepository
	vehicleRepo      repository.VehicleRepository
	profileRepo      repository.ProfileRepository
	notifications    usecase.NotificationUsecase
	realtime         service.RealtimeNotifier
	limiter          service.RateLimiter
	cfg              *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// MessagingServiceParams holds dependencies for MessagingService, injected by Fx.
type MessagingServiceParams struct {
	fx.In

	ConversationRepo repository.ConversationRepository
	VehicleRepo      repository.VehicleRepository
	ProfileRepo      repository.ProfileRepository
	Notifications    usecase.NotificationUsecase
	Realtime         service.RealtimeNotifier
	Limiter          service.RateLimiter
	Config           *config.Config
	Logger           *slog.Logger
}

// NewMessagingService is the constructor for messagingService.
func NewMessagingService(params MessagingServiceParams) usecase.MessagingUsecase {
	return &messagingService{
		conversationRepo: params.ConversationRepo,
		vehicleRepo:      params.VehicleRepo,
		profileRepo:      params.ProfileRepo,
		notifications:    params.Notifications,
		realtime:         params.Realtime,
		limiter:          params.Limiter,
		cfg:              params.Config,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// StartConversation opens a conversation about a listing with its seller and sends
// the first message. An existing conversation for the same listing and buyer is reused.
func (srv *messagingService) StartConversation(ctx context.Context, buyerID, vehicleID uuid.UUID, body string) (*entity.Conversation, *entity.Message, error) {
	text, err := srv.checkMessage(buyerID, body)
	if err != nil {
		return nil, nil, err
	}

	vehicle, err := srv.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, nil, mapVehicleError(err, "failed to find vehicle")
	}
	if vehicle.SellerID == buyerID {
		return nil, nil, errors.WithStack(domainerrors.ErrCannotMessageSelf)
	}

	conversation, err := srv.conversationRepo.FindConversation(ctx, vehicleID, buyerID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrConversationNotFound):
		if vehicle.Status != entity.VehicleStatusActive {
			return nil, nil, errors.Wrap(domainerrors.ErrVehicleNotAvailable, "listing is not active")
		}

		conversation, err = srv.createConversation(ctx, vehicle, buyerID)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, errors.Wrap(err, "failed to find conversation")
	}

	message, err := srv.deliver(ctx, conversation, buyerID, text, vehicle.Title)
	if err != nil {
		return nil, nil, err
	}

	return conversation, message, nil
}

func (srv *messagingService) createConversation(ctx context.Context, vehicle *entity.Vehicle, buyerID uuid.UUID) (*entity.Conversation, error) {
	conversation := &entity.Conversation{
		VehicleID: vehicle.ID,
		BuyerID:   buyerID,
		SellerID:  vehicle.SellerID,
	}

	err := srv.conversationRepo.CreateConversation(ctx, conversation)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, repository.ErrDuplicateConversation) {
		return nil, errors.Wrap(err, "failed to create conversation")
	}

	// Lost a race with a concurrent first message.
	existing, findErr := srv.conversationRepo.FindConversation(ctx, vehicle.ID, buyerID)
	if findErr != nil {
		return nil, errors.Wrap(findErr, "failed to find conversation")
	}

	return existing, nil
}

// Send posts a message to a conversation the sender takes part in.
func (srv *messagingService) Send(ctx context.Context, senderID, conversationID uuid.UUID, body string) (*entity.Message, error) {
	text, err := srv.checkMessage(senderID, body)
	if err != nil {
		return nil, err
	}

	conversation, err := srv.findParticipating(ctx, senderID, conversationID)
	if err != nil {
		return nil, err
	}

	title := ""
	if vehicle, err := srv.vehicleRepo.FindVehicleByID(ctx, conversation.VehicleID); err == nil {
		title = vehicle.Title
	}

	return srv.deliver(ctx, conversation, senderID, text, title)
}

// deliver persists the message and notifies the other participant.
func (srv *messagingService) deliver(ctx context.Context, conversation *entity.Conversation, senderID uuid.UUID, text, vehicleTitle string) (*entity.Message, error) {
	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       senderID,
		Body:           text,
	}
	if err := srv.conversationRepo.CreateMessage(ctx, message); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrConversationNotFound, "failed to create message")
		}

		return nil, errors.Wrap(err, "failed to create message")
	}

	lastAt := message.CreatedAt
	conversation.LastMessageAt = &lastAt

	recipientID := conversation.Counterpart(senderID)
	srv.realtime.SendToUser(recipientID, service.RealtimeMessageCreated, message)
	srv.realtime.SendToUser(senderID, service.RealtimeMessageCreated, message)

	title := "New message"
	if vehicleTitle != "" {
		title = fmt.Sprintf("New message about %s", vehicleTitle)
	}
	notifyQuietly(ctx, srv.notifications, srv.logger, &usecase.NotifyInput{
		UserID: recipientID,
		Type:   entity.NotificationTypeMessage,
		Title:  title,
		Body:   excerpt(text, notificationExcerpt),
		Data: map[string]string{
			"conversation_id": conversation.ID.String(),
			"vehicle_id":      conversation.VehicleID.String(),
			"message_id":      message.ID.String(),
		},
	})

	return message, nil
}

// ListConversations returns the user's conversations with their last message and unread count.
func (srv *messagingService) ListConversations(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.ConversationSummary], error) {
	page = clampPage(srv.cfg, page)

	conversations, total, err := srv.conversationRepo.ListConversations(ctx, userID, page)
	if err != nil {
		return entity.Page[*entity.ConversationSummary]{}, errors.Wrap(err, "failed to list conversations")
	}
	if len(conversations) == 0 {
		return entity.NewPage([]*entity.ConversationSummary{}, total, page), nil
	}

	conversationIDs := make([]uuid.UUID, 0, len(conversations))
	vehicleIDs := make([]uuid.UUID, 0, len(conversations))
	counterpartIDs := make([]uuid.UUID, 0, len(conversations))
	for _, conversation := range conversations {
		conversationIDs = append(conversationIDs, conversation.ID)
		vehicleIDs = append(vehicleIDs, conversation.VehicleID)
		counterpartIDs = append(counterpartIDs, conversation.Counterpart(userID))
	}

	lastMessages, err := srv.conversationRepo.LastMessages(ctx, conversationIDs)
	if err != nil {
		return entity.Page[*entity.ConversationSummary]{}, errors.Wrap(err, "failed to load last messages")
	}

	unread, err := srv.conversationRepo.UnreadCounts(ctx, userID, conversationIDs)
	if err != nil {
		return entity.Page[*entity.ConversationSummary]{}, errors.Wrap(err, "failed to count unread messages")
	}

	vehicles, err := srv.vehicleRepo.FindVehiclesByIDs(ctx, vehicleIDs)
	if err != nil {
		return entity.Page[*entity.ConversationSummary]{}, errors.Wrap(err, "failed to load vehicles")
	}
	titles := make(map[uuid.UUID]string, len(vehicles))
	for _, vehicle := range vehicles {
		titles[vehicle.ID] = vehicle.Title
	}

	profiles, err := srv.profileRepo.FindProfilesByIDs(ctx, counterpartIDs)
	if err != nil {
		return entity.Page[*entity.ConversationSummary]{}, errors.Wrap(err, "failed to load profiles")
	}
	names := make(map[uuid.UUID]string, len(profiles))
	for _, profile := range profiles {
		names[profile.ID] = profile.DisplayName()
	}

	summaries := make([]*entity.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		counterpartID := conversation.Counterpart(userID)
		summaries = append(summaries, &entity.ConversationSummary{
			Conversation:    *conversation,
			VehicleTitle:    titles[conversation.VehicleID],
			CounterpartID:   counterpartID,
			CounterpartName: names[counterpartID],
			LastMessage:     lastMessages[conversation.ID],
			UnreadCount:     unread[conversation.ID],
		})
	}

	return entity.NewPage(summaries, total, page), nil
}

// ListMessages returns messages older than before, newest first.
func (srv *messagingService) ListMessages(ctx context.Context, userID, conversationID uuid.UUID, before *time.Time, limit int) ([]*entity.Message, error) {
	if _, err := srv.findParticipating(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultMessagePageSize
	}
	if limit > maxMessagePageSize {
		limit = maxMessagePageSize
	}

	messages, err := srv.conversationRepo.ListMessages(ctx, conversationID, before, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// MarkRead marks the messages the user received in a conversation as read.
func (srv *messagingService) MarkRead(ctx context.Context, userID, conversationID uuid.UUID) (int64, error) {
	conversation, err := srv.findParticipating(ctx, userID, conversationID)
	if err != nil {
		return 0, err
	}

	now := srv.now()
	count, err := srv.conversationRepo.MarkRead(ctx, conversationID, userID, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark messages read")
	}

	if count > 0 {
		srv.realtime.SendToUser(conversation.Counterpart(userID), service.RealtimeMessagesRead, map[string]any{
			"conversation_id": conversationID,
			"reader_id":       userID,
			"read_at":         now,
		})
	}

	return count, nil
}

// UnreadCount returns the number of unread messages across the user's conversations.
func (srv *messagingService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.conversationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// checkMessage trims and validates a message body and applies the sender's rate limit.
func (srv *messagingService) checkMessage(senderID uuid.UUID, body string) (string, error) {
	text := strings.TrimSpace(body)
	if text == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("message body is required"), "empty message")
	}
	if utf8.RuneCountInString(text) > srv.cfg.Messaging.MaxLength {
		return "", errors.Wrapf(domainerrors.ErrMessageTooLong, "limit is %d characters", srv.cfg.Messaging.MaxLength)
	}

	if !srv.limiter.Allow(senderID.String()) {
		return "", errors.WithStack(domainerrors.ErrRateLimited)
	}

	return text, nil
}

func (srv *messagingService) findParticipating(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversationRepo.FindConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrConversationNotFound, "failed to find conversation")
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.WithStack(domainerrors.ErrNotConversationParticipant)
	}

	return conversation, nil
}
