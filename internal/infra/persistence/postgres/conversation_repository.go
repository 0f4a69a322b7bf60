package postgres

import (
	"context"
	"time"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// CreateConversation persists a new conversation.
func (repo *conversationRepository) CreateConversation(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == uuid.Nil {
		conversation.ID = uuid.New()
	}
	conversationM := fromConversationDomain(conversation)

	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateConversation
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVehicleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	conversation.CreatedAt = conversationM.CreatedAt
	conversation.UpdatedAt = conversationM.UpdatedAt

	return nil
}

// FindConversationByID retrieves a conversation by its ID.
func (repo *conversationRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindConversation retrieves the conversation of a buyer about a listing.
func (repo *conversationRepository) FindConversation(ctx context.Context, vehicleID, buyerID uuid.UUID) (*entity.Conversation, error) {
	return repo.findOne(ctx, "vehicle_id = ? AND buyer_id = ?", vehicleID, buyerID)
}

func (repo *conversationRepository) findOne(ctx context.Context, where string, args ...any) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where(where, args...).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return toConversationDomain(&conversationM), nil
}

// ListConversations returns one page of the user's conversations, most recently active first.
func (repo *conversationRepository) ListConversations(ctx context.Context, userID uuid.UUID, page entity.PageRequest) ([]*entity.Conversation, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count conversations")
	}

	var conversationModels []*model.ConversationModel
	if err := query.
		Order("COALESCE(last_message_at, created_at) DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&conversationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list conversations")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, total, nil
}

// CreateMessage persists a message and bumps the conversation's last activity.
func (repo *conversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}
	message.CreatedAt = messageM.CreatedAt

	if err := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", message.ConversationID).
		Update("last_message_at", messageM.CreatedAt).Error; err != nil {
		return errors.Wrap(err, "failed to bump conversation activity")
	}

	return nil
}

// ListMessages returns up to limit messages older than before, newest first.
func (repo *conversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, before *time.Time, limit int) ([]*entity.Message, error) {
	query := repo.db.WithContext(ctx).Where("conversation_id = ?", conversationID)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}

	var messageModels []*model.MessageModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// LastMessages returns the latest message of each conversation, keyed by conversation ID.
func (repo *conversationRepository) LastMessages(ctx context.Context, conversationIDs []uuid.UUID) (map[uuid.UUID]*entity.Message, error) {
	result := make(map[uuid.UUID]*entity.Message, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	var messageModels []*model.MessageModel
	if err := repo.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (conversation_id) * FROM messages
			WHERE conversation_id IN ?
			ORDER BY conversation_id, created_at DESC`, conversationIDs).
		Scan(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load last messages")
	}

	for _, messageM := range messageModels {
		result[messageM.ConversationID] = toMessageDomain(messageM)
	}

	return result, nil
}

type conversationCount struct {
	ConversationID uuid.UUID
	Count          int64
}

// UnreadCounts returns messages not sent by readerID and not yet read, keyed by conversation ID.
func (repo *conversationRepository) UnreadCounts(ctx context.Context, readerID uuid.UUID, conversationIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	result := make(map[uuid.UUID]int64, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	var rows []conversationCount
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Select("conversation_id, COUNT(*) AS count").
		Where("conversation_id IN ? AND sender_id <> ? AND read_at IS NULL", conversationIDs, readerID).
		Group("conversation_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}

	for _, row := range rows {
		result[row.ConversationID] = row.Count
	}

	return result, nil
}

// MarkRead marks the other participant's messages in a conversation as read.
func (repo *conversationRepository) MarkRead(ctx context.Context, conversationID, readerID uuid.UUID, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, readerID).
		Update("read_at", at)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark messages read")
	}

	return result.RowsAffected, nil
}

// CountUnread counts unread messages addressed to the user across all conversations.
func (repo *conversationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("(conversations.buyer_id = ? OR conversations.seller_id = ?)", userID, userID).
		Where("messages.sender_id <> ? AND messages.read_at IS NULL", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:            data.ID,
		VehicleID:     data.VehicleID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		LastMessageAt: data.LastMessageAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	return &model.ConversationModel{
		ID:            data.ID,
		VehicleID:     data.VehicleID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		LastMessageAt: data.LastMessageAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Body:           data.Body,
		ReadAt:         data.ReadAt,
		CreatedAt:      data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Body:           data.Body,
		ReadAt:         data.ReadAt,
		CreatedAt:      data.CreatedAt,
	}
}
