package discountservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/pkg/authctx"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, logger.NewNop())
}

func TestValidate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/discount-codes/validate", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))

		var req ValidateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SAVE10", req.Code)
		assert.Equal(t, int64(2500), req.OrderAmount)

		_, _ = w.Write([]byte(`{"discountAmount":250,"finalAmount":2250,"orderAmount":2500,"message":"10% off"}`))
	})

	ctx := authctx.WithToken(context.Background(), "Bearer abc")
	res, err := client.Validate(ctx, &ValidateRequest{Code: "SAVE10", BasePrice: 2400, OrderAmount: 2500})
	require.NoError(t, err)

	assert.Equal(t, int64(250), res.DiscountAmount)
	assert.Equal(t, int64(2250), res.FinalAmount)
	assert.Equal(t, "10% off", res.Message)
}

func TestValidate_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Code expired"}`))
	})

	_, err := client.Validate(context.Background(), &ValidateRequest{Code: "OLD"})
	require.ErrorIs(t, err, ErrDiscountRejected)

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Code expired", rejected.Message)
}

func TestValidate_RejectedWithoutMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Validate(context.Background(), &ValidateRequest{Code: "NOPE"})

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, defaultRejection, rejected.Message)
}

func TestValidate_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Validate(context.Background(), &ValidateRequest{Code: "X"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.False(t, errors.Is(err, ErrDiscountRejected))
}
