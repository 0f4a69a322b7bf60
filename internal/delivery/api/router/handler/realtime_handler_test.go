package handler

import (
	"net/http"
	"testing"

	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeConnectionServer struct {
	served []uuid.UUID
}

func (f *fakeConnectionServer) Serve(w http.ResponseWriter, _ *http.Request, userID uuid.UUID) error {
	f.served = append(f.served, userID)
	w.WriteHeader(http.StatusSwitchingProtocols)

	return nil
}

func TestRealtimeHandler_Connect_HandsCallerToHub(t *testing.T) {
	hub := &fakeConnectionServer{}
	h := &RealtimeHandler{hub: hub}

	user := testProfile(entity.RoleBuyer)
	e := newTestEcho()
	e.GET("/realtime", h.Connect, asUser(user))

	rec := doRequest(e, http.MethodGet, "/realtime", "")

	assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)
	assert.Equal(t, []uuid.UUID{user.ID}, hub.served)
}

func TestRealtimeHandler_Connect_RequiresCaller(t *testing.T) {
	hub := &fakeConnectionServer{}
	h := &RealtimeHandler{hub: hub}

	e := newTestEcho()
	e.GET("/realtime", h.Connect)

	rec := doRequest(e, http.MethodGet, "/realtime", "")

	requireErrorCode(t, rec, http.StatusUnauthorized, domainerrors.ErrUnauthorized.ErrorCode())
	assert.Empty(t, hub.served)
}
