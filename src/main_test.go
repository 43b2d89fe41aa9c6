package main

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"padelbook/src/core/booking"
	"padelbook/src/core/bracket"
	"padelbook/src/db"
	"padelbook/src/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return setupRouter()
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusForError(booking.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, statusForError(bracket.ErrTournamentNotFound))
	assert.Equal(t, http.StatusNotFound, statusForError(bracket.ErrMatchNotFound))
	assert.Equal(t, http.StatusConflict, statusForError(booking.ErrConflict))
	assert.Equal(t, http.StatusUnprocessableEntity, statusForError(booking.ErrUnavailable))
	assert.Equal(t, http.StatusBadRequest, statusForError(booking.ErrInvalidArgument))
	assert.Equal(t, http.StatusBadRequest, statusForError(booking.ErrPromoExpired))
	assert.Equal(t, http.StatusBadRequest, statusForError(booking.ErrPromoExhausted))
	assert.Equal(t, http.StatusBadRequest, statusForError(bracket.ErrInvalidWinner))
	assert.Equal(t, http.StatusBadRequest, statusForError(bracket.ErrMatchDecided))
	assert.Equal(t, http.StatusBadRequest, statusForError(&booking.WindowExceededError{Tier: types.TIER_GUEST, LimitDays: 3}))
	assert.Equal(t, http.StatusInternalServerError, statusForError(bracket.ErrBracketCorrupted))
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	r := testRouter()
	body, _ := json.Marshal(types.CreateReservationRequestBody{
		CourtID: 1,
		UserID:  1,
		Date:    "2020-01-01",
		Slots:   []string{"10:00"},
	})
	w := performRequest(r, http.MethodPost, "/api/v1/bookings", string(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMidtransWebhookInvalidBody(t *testing.T) {
	r := testRouter()
	w := performRequest(r, http.MethodPost, "/api/v1/webhook/midtrans", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMidtransWebhookBadSignature(t *testing.T) {
	os.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")
	r := testRouter()
	body, _ := json.Marshal(types.MidtransNotification{
		OrderID:           "order-1",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "305000.00",
		SignatureKey:      "definitely-wrong",
	})
	w := performRequest(r, http.MethodPost, "/api/v1/webhook/midtrans", string(body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMidtransWebhookUnknownOrder(t *testing.T) {
	os.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")
	_, mock := db.GetMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	notification := types.MidtransNotification{
		OrderID:           "order-gone",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "305000.00",
	}
	sum := sha512.Sum512([]byte(notification.OrderID + notification.StatusCode + notification.GrossAmount + "test-server-key"))
	notification.SignatureKey = hex.EncodeToString(sum[:])

	body, err := json.Marshal(notification)
	require.NoError(t, err)

	r := testRouter()
	w := performRequest(r, http.MethodPost, "/api/v1/webhook/midtrans", string(body))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
