package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotelreserve/internal/database"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/middleware"
	"hotelreserve/internal/modules/auth"
	"hotelreserve/internal/modules/booking"
	"hotelreserve/internal/modules/catalog"
	"hotelreserve/internal/modules/payment"
	"hotelreserve/internal/modules/review"
	jwtsvc "hotelreserve/internal/pkg/jwt"
	"hotelreserve/internal/repository"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
}

type apiResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *testSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Review{},
	))

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(hotelRepo, roomRepo))
	bookingService := booking.NewService(bookingRepo, roomRepo)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, bookingService, nil))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, hotelRepo, bookingRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterGatewayRoutes(v1)

		protected := v1.Group("", middleware.Auth(j))
		{
			authHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
		}
	}

	return &testSuite{router: r, db: db, jwt: j}
}

func (s *testSuite) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) *apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return &resp
}

// registerCustomer registers a customer through the public endpoint and
// returns their bearer token.
func (s *testSuite) registerCustomer(t *testing.T, email string) string {
	w := s.request(t, "POST", "/api/v1/auth/register", map[string]interface{}{
		"email":    email,
		"password": "Password123!",
		"name":     "Test Customer",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	resp := parse(t, w)
	return resp.Data["token"].(string)
}

// newManager provisions a manager directly (no public endpoint for that role)
// and returns the user plus a token.
func (s *testSuite) newManager(t *testing.T, email string) (*domain.User, string) {
	m := &domain.User{Email: email, PasswordHash: "x", Name: "Manager", Role: domain.RoleManager}
	require.NoError(t, s.db.Create(m).Error)
	token, err := s.jwt.GenerateToken(m.ID, string(m.Role))
	require.NoError(t, err)
	return m, token
}

// newHotelWithRoom creates a hotel and one room through the API and returns
// both ids.
func (s *testSuite) newHotelWithRoom(t *testing.T, managerToken, price string) (int64, int64) {
	w := s.request(t, "POST", "/api/v1/hotels", map[string]interface{}{
		"name":     "Lakeside Palace",
		"location": "Pokhara",
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	hotel := parse(t, w).Data["hotel"].(map[string]interface{})
	hotelID := int64(hotel["id"].(float64))

	w = s.request(t, "POST", fmt.Sprintf("/api/v1/hotels/%d/rooms", hotelID), map[string]interface{}{
		"room_number":     101,
		"room_type":       "DOUBLE",
		"capacity":        2,
		"price_per_night": price,
	}, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	room := parse(t, w).Data["room"].(map[string]interface{})
	return hotelID, int64(room["id"].(float64))
}

func (s *testSuite) book(t *testing.T, token string, roomID int64, checkin, checkout string) (*httptest.ResponseRecorder, *apiResponse) {
	w := s.request(t, "POST", "/api/v1/bookings", map[string]interface{}{
		"room_id":          roomID,
		"checked_in_date":  checkin,
		"checked_out_date": checkout,
	}, token)
	return w, parse(t, w)
}

// Scenario A: price 100.00/night, 3-night stay prices to 300.00, PENDING.
func TestBookingPricing(t *testing.T) {
	suite := setupSuite(t)

	_, managerToken := suite.newManager(t, "manager@test.local")
	_, roomID := suite.newHotelWithRoom(t, managerToken, "100.00")
	customerToken := suite.registerCustomer(t, "alice@test.local")

	w, resp := suite.book(t, customerToken, roomID, "2026-01-10", "2026-01-13")
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	b := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, float64(3), b["nights"])
	assert.Equal(t, "300.00", b["total_amount"])
	assert.Equal(t, "PENDING", b["status"])
}

// Scenario B: overlapping date ranges on the same room conflict.
func TestOverlappingBookingRejected(t *testing.T) {
	suite := setupSuite(t)

	_, managerToken := suite.newManager(t, "manager@test.local")
	_, roomID := suite.newHotelWithRoom(t, managerToken, "100.00")
	aliceToken := suite.registerCustomer(t, "alice@test.local")
	bobToken := suite.registerCustomer(t, "bob@test.local")

	w, _ := suite.book(t, aliceToken, roomID, "2026-01-10", "2026-01-13")
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := suite.book(t, bobToken, roomID, "2026-01-12", "2026-01-15")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ROOM_UNAVAILABLE", resp.Error.Code)

	// Back-to-back is fine: checkout day is exclusive.
	w, _ = suite.book(t, bobToken, roomID, "2026-01-13", "2026-01-15")
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
}

// Scenario C: payment + success callback completes both records; the
// identical re-delivered callback is a no-op that still reports success.
func TestPaymentReconciliation(t *testing.T) {
	suite := setupSuite(t)

	_, managerToken := suite.newManager(t, "manager@test.local")
	_, roomID := suite.newHotelWithRoom(t, managerToken, "100.00")
	customerToken := suite.registerCustomer(t, "alice@test.local")

	_, resp := suite.book(t, customerToken, roomID, "2026-01-10", "2026-01-13")
	bookingID := resp.Data["booking"].(map[string]interface{})["id"].(string)

	w := suite.request(t, "POST", fmt.Sprintf("/api/v1/bookings/%s/payments", bookingID), map[string]interface{}{
		"method": "CARD",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	pay := parse(t, w).Data["payment"].(map[string]interface{})
	paymentID := pay["id"].(string)
	assert.Equal(t, "300.00", pay["amount"])
	assert.Equal(t, "PENDING", pay["status"])

	// A second payment for the same booking conflicts.
	w = suite.request(t, "POST", fmt.Sprintf("/api/v1/bookings/%s/payments", bookingID), map[string]interface{}{
		"method": "ESEWA",
	}, customerToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	callback := map[string]interface{}{
		"pid":    paymentID,
		"refId":  "TXN1",
		"amt":    "300.00",
		"status": "success",
	}
	w = suite.request(t, "POST", "/api/v1/gateway/callback", callback, "")
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	assert.JSONEq(t, `{"message": "Payment updated"}`, w.Body.String())

	var storedPayment domain.Payment
	require.NoError(t, suite.db.Where("id = ?", paymentID).First(&storedPayment).Error)
	assert.Equal(t, domain.PaymentCompleted, storedPayment.Status)
	require.NotNil(t, storedPayment.TransactionID)
	assert.Equal(t, "TXN1", *storedPayment.TransactionID)

	var storedBooking domain.Booking
	require.NoError(t, suite.db.Where("id = ?", bookingID).First(&storedBooking).Error)
	assert.Equal(t, domain.BookingCompleted, storedBooking.Status)

	// Identical re-delivery: accepted, nothing changes.
	w = suite.request(t, "POST", "/api/v1/gateway/callback", callback, "")
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, suite.db.Where("id = ?", paymentID).First(&storedPayment).Error)
	assert.Equal(t, domain.PaymentCompleted, storedPayment.Status)

	// A conflicting callback for the settled payment is rejected.
	w = suite.request(t, "POST", "/api/v1/gateway/callback", map[string]interface{}{
		"pid":    paymentID,
		"refId":  "TXN2",
		"status": "failed",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

// Scenario D: a callback for an unknown payment mutates nothing.
func TestCallbackUnknownPayment(t *testing.T) {
	suite := setupSuite(t)

	w := suite.request(t, "POST", "/api/v1/gateway/callback", map[string]interface{}{
		"pid":    "00000000-0000-0000-0000-000000000000",
		"refId":  "TXN1",
		"status": "success",
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Payment not found"}`, w.Body.String())
}

// Scenario E: cancellation is terminal and frees the room.
func TestCancellationFreesRoom(t *testing.T) {
	suite := setupSuite(t)

	_, managerToken := suite.newManager(t, "manager@test.local")
	_, roomID := suite.newHotelWithRoom(t, managerToken, "100.00")
	aliceToken := suite.registerCustomer(t, "alice@test.local")
	bobToken := suite.registerCustomer(t, "bob@test.local")

	_, resp := suite.book(t, aliceToken, roomID, "2026-01-10", "2026-01-13")
	bookingID := resp.Data["booking"].(map[string]interface{})["id"].(string)

	// Another customer may not cancel someone else's booking.
	w := suite.request(t, "PATCH", "/api/v1/bookings/"+bookingID, map[string]interface{}{
		"status": "CANCELLED",
	}, bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = suite.request(t, "PATCH", "/api/v1/bookings/"+bookingID, map[string]interface{}{
		"status": "CANCELLED",
	}, aliceToken)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	// Cancelling twice is an invalid transition.
	w = suite.request(t, "PATCH", "/api/v1/bookings/"+bookingID, map[string]interface{}{
		"status": "CANCELLED",
	}, aliceToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_TRANSITION", parse(t, w).Error.Code)

	// The cancelled booking no longer blocks the room.
	w, _ = suite.book(t, bobToken, roomID, "2026-01-10", "2026-01-13")
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
}

// Frozen pricing: a later rate change never touches an existing booking.
func TestTotalAmountFrozenAcrossRateChange(t *testing.T) {
	suite := setupSuite(t)

	_, managerToken := suite.newManager(t, "manager@test.local")
	_, roomID := suite.newHotelWithRoom(t, managerToken, "100.00")
	customerToken := suite.registerCustomer(t, "alice@test.local")

	_, resp := suite.book(t, customerToken, roomID, "2026-01-10", "2026-01-13")
	bookingID := resp.Data["booking"].(map[string]interface{})["id"].(string)

	w := suite.request(t, "PATCH", fmt.Sprintf("/api/v1/rooms/%d", roomID), map[string]interface{}{
		"price_per_night": "250.00",
	}, managerToken)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	w = suite.request(t, "GET", "/api/v1/bookings/"+bookingID, nil, customerToken)
	require.Equal(t, http.StatusOK, w.Code)
	b := parse(t, w).Data["booking"].(map[string]interface{})
	assert.Equal(t, "300.00", b["total_amount"])

	// New bookings pick up the new rate.
	_, resp = suite.book(t, customerToken, roomID, "2026-02-01", "2026-02-03")
	b = resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, "500.00", b["total_amount"])
}

// Reviews require a completed stay at the hotel.
func TestReviewRequiresCompletedStay(t *testing.T) {
	suite := setupSuite(t)

	_, managerToken := suite.newManager(t, "manager@test.local")
	hotelID, roomID := suite.newHotelWithRoom(t, managerToken, "100.00")
	customerToken := suite.registerCustomer(t, "alice@test.local")

	reviewBody := map[string]interface{}{"rating": 5, "comment": "Lovely stay"}

	w := suite.request(t, "POST", fmt.Sprintf("/api/v1/hotels/%d/reviews", hotelID), reviewBody, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Book, pay and reconcile so the stay completes.
	_, resp := suite.book(t, customerToken, roomID, "2026-01-10", "2026-01-12")
	bookingID := resp.Data["booking"].(map[string]interface{})["id"].(string)

	w = suite.request(t, "POST", fmt.Sprintf("/api/v1/bookings/%s/payments", bookingID), map[string]interface{}{
		"method": "KHALTI",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	paymentID := parse(t, w).Data["payment"].(map[string]interface{})["id"].(string)

	w = suite.request(t, "POST", "/api/v1/gateway/callback", map[string]interface{}{
		"pid":    paymentID,
		"refId":  "TXN9",
		"status": "success",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.request(t, "POST", fmt.Sprintf("/api/v1/hotels/%d/reviews", hotelID), reviewBody, customerToken)
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	w = suite.request(t, "GET", fmt.Sprintf("/api/v1/hotels/%d/reviews", hotelID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	reviews := parse(t, w).Data["reviews"].([]interface{})
	assert.Len(t, reviews, 1)
}

// Amount mismatch between callback and ledger is rejected before mutation.
func TestCallbackAmountMismatch(t *testing.T) {
	suite := setupSuite(t)

	_, managerToken := suite.newManager(t, "manager@test.local")
	_, roomID := suite.newHotelWithRoom(t, managerToken, "100.00")
	customerToken := suite.registerCustomer(t, "alice@test.local")

	_, resp := suite.book(t, customerToken, roomID, "2026-01-10", "2026-01-13")
	bookingID := resp.Data["booking"].(map[string]interface{})["id"].(string)

	w := suite.request(t, "POST", fmt.Sprintf("/api/v1/bookings/%s/payments", bookingID), map[string]interface{}{
		"method": "CARD",
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	paymentID := parse(t, w).Data["payment"].(map[string]interface{})["id"].(string)

	w = suite.request(t, "POST", "/api/v1/gateway/callback", map[string]interface{}{
		"pid":    paymentID,
		"refId":  "TXN1",
		"amt":    "50.00",
		"status": "success",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var storedPayment domain.Payment
	require.NoError(t, suite.db.Where("id = ?", paymentID).First(&storedPayment).Error)
	assert.Equal(t, domain.PaymentPending, storedPayment.Status)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
