package handler

import (
	"time"

	"dcars/internal/delivery/api/response"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MessageHandler serves buyer and seller conversations.
type MessageHandler struct {
	messagingUC usecase.MessagingUsecase
}

// NewMessageHandler is the constructor for MessageHandler.
func NewMessageHandler(messagingUC usecase.MessagingUsecase) *MessageHandler {
	return &MessageHandler{messagingUC: messagingUC}
}

type startConversationRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" validate:"required"`
	Body      string    `json:"body" validate:"required"`
}

type sendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

type startConversationResponse struct {
	Conversation *entity.Conversation `json:"conversation"`
	Message      *entity.Message      `json:"message"`
}

// StartConversation contacts the seller of a listing.
func (h *MessageHandler) StartConversation(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req startConversationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	conversation, message, err := h.messagingUC.StartConversation(c.Request().Context(), profile.ID, req.VehicleID, req.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, startConversationResponse{Conversation: conversation, Message: message})
}

// ListConversations returns the caller's inbox.
func (h *MessageHandler) ListConversations(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.messagingUC.ListConversations(c.Request().Context(), profile.ID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// ListMessages pages backwards through a conversation with ?before= (RFC 3339) and ?limit=.
func (h *MessageHandler) ListMessages(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var before *time.Time
	if raw := c.QueryParam("before"); raw != "" {
		ts, parseErr := time.Parse(time.RFC3339Nano, raw)
		if parseErr != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("before must be an RFC 3339 timestamp"))
		}
		before = &ts
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	messages, err := h.messagingUC.ListMessages(c.Request().Context(), profile.ID, conversationID, before, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, messages)
}

// Send posts a message to a conversation.
func (h *MessageHandler) Send(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.messagingUC.Send(c.Request().Context(), profile.ID, conversationID, req.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, message)
}

// MarkRead marks the counterpart's messages read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	updated, err := h.messagingUC.MarkRead(c.Request().Context(), profile.ID, conversationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"updated": updated})
}

// UnreadCount returns how many messages the caller has not read.
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	count, err := h.messagingUC.UnreadCount(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"unread": count})
}
