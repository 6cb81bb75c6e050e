package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/authctx"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

var kolkata, _ = time.LoadLocation("Asia/Kolkata")

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, kolkata, logger.NewNop())
}

func TestGetBookingsByDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/by-date", r.URL.Path)
		assert.Equal(t, "2026-03-10", r.URL.Query().Get("date"))
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"bookings":[
			{"facilityName":"Main Turf","facilityType":"turf","date":"2026-03-10T00:00:00.000Z",
			 "timeSlots":["06:00 AM - 07:00 AM"],"additionalPlayers":2,"price":2600,"status":"Confirmed"},
			{"facilityName":"Pool","facilityType":"pool","date":"2026-03-10",
			 "timeSlots":["9:00 AM - 12:00 PM"],"personsCount":7,"price":2100.4,"status":"pending"}
		]}`))
	})

	ctx := authctx.WithToken(context.Background(), "Bearer abc")
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, kolkata)

	bookings, err := client.GetBookingsByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	turf := bookings[0]
	assert.Equal(t, domain.CategoryTurf, turf.FacilityType)
	assert.True(t, domain.SameDay(date, turf.Date))
	assert.Equal(t, 2, turf.AdditionalPlayers)
	assert.Equal(t, int64(2600), turf.Price)
	assert.True(t, turf.IsActive())

	pool := bookings[1]
	assert.Equal(t, 7, pool.AdditionalPlayers)
	assert.Equal(t, int64(2100), pool.Price)
}

func TestGetBookingsByDate_NoTokenNoHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"bookings":[]}`))
	})

	bookings, err := client.GetBookingsByDate(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestGetBookingsByDate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, `oops`, ErrInvalidResponse},
		{"broken json", http.StatusOK, `{"bookings":`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetBookingsByDate(context.Background(), time.Now())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings/create-order", r.URL.Path)

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"6:00 AM - 7:00 AM"}, req.TimeSlots)
		assert.Equal(t, int64(1200), req.BasePrice)
		assert.Equal(t, "SAVE10", req.DiscountCode)

		_, _ = w.Write([]byte(`{"razorpayOrderId":"order_1","amount":108000,"currency":"INR","keyId":"rzp_test"}`))
	})

	resp, err := client.CreateOrder(context.Background(), &CreateOrderRequest{
		FacilityName: "Main Turf",
		FacilityType: "turf",
		Date:         "2026-03-10",
		TimeSlots:    []string{"6:00 AM - 7:00 AM"},
		BasePrice:    1200,
		DiscountCode: "SAVE10",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_1", resp.RazorpayOrderID)
	assert.Equal(t, int64(108000), resp.Amount)
	assert.Equal(t, "rzp_test", resp.KeyID)
}

func TestCreateOrder_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Slot already booked"}`))
	})

	_, err := client.CreateOrder(context.Background(), &CreateOrderRequest{})
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Contains(t, err.Error(), "Slot already booked")
}

func TestCreateOrder_EmptyOrderID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":100}`))
	})

	_, err := client.CreateOrder(context.Background(), &CreateOrderRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestVerifyPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/verify-payment", r.URL.Path)

		var req VerifyPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.RazorpaySignature != "good" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Invalid signature"}`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"Payment verified","booking":{"id":"b1"}}`))
	})

	resp, err := client.VerifyPayment(context.Background(), &VerifyPaymentRequest{
		RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", RazorpaySignature: "good",
	})
	require.NoError(t, err)
	assert.Equal(t, "Payment verified", resp.Message)

	_, err = client.VerifyPayment(context.Background(), &VerifyPaymentRequest{
		RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", RazorpaySignature: "bad",
	})
	require.ErrorIs(t, err, ErrPaymentNotVerified)
	assert.Contains(t, err.Error(), "Invalid signature")
}
