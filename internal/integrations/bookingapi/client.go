package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/authctx"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего API бронирований (и платежного шлюза за ним)
type Client struct {
	baseURL    string
	httpClient *http.Client
	location   *time.Location
	log        Logger
}

// NewClient создает новый экземпляр клиента API бронирований
func NewClient(baseURL string, timeout time.Duration, location *time.Location, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		location: location,
		log:      log,
	}
}

// GetBookingsByDate получает все бронирования на дату
func (c *Client) GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.ExistingBooking, error) {
	endpoint := fmt.Sprintf("%s/api/bookings/by-date?date=%s",
		c.baseURL, url.QueryEscape(date.Format(domain.DateFormat)))

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, unexpectedStatus(resp)
	}

	var body BookingsByDateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]*domain.ExistingBooking, 0, len(body.Bookings))
	for _, b := range body.Bookings {
		result = append(result, c.toDomain(b))
	}

	c.log.Info("Fetched %d bookings for date=%s", len(result), date.Format(domain.DateFormat))
	return result, nil
}

// CreateOrder создает заказ в платежном шлюзе через бэкенд
func (c *Client) CreateOrder(ctx context.Context, order *CreateOrderRequest) (*CreateOrderResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/api/bookings/create-order", order)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", ErrSlotConflict, readError(resp))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrOrderRejected, readError(resp))
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, unexpectedStatus(resp)
	}

	var created CreateOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if created.RazorpayOrderID == "" {
		return nil, fmt.Errorf("%w: empty order id", ErrInvalidResponse)
	}

	return &created, nil
}

// VerifyPayment проверяет подпись платежа и подтверждает бронирование
func (c *Client) VerifyPayment(ctx context.Context, payment *VerifyPaymentRequest) (*VerifyPaymentResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/api/bookings/verify-payment", payment)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrPaymentNotVerified, readError(resp))
	case http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", ErrSlotConflict, readError(resp))
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, unexpectedStatus(resp)
	}

	var verified VerifyPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&verified); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &verified, nil
}

// do выполняет запрос, пробрасывая заголовок Authorization вызывающего
func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token, ok := authctx.Token(ctx); ok {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

func (c *Client) toDomain(b Booking) *domain.ExistingBooking {
	persons := 0
	switch {
	case b.AdditionalPlayers != nil:
		persons = *b.AdditionalPlayers
	case b.PersonsCount != nil:
		persons = *b.PersonsCount
	}

	booking := &domain.ExistingBooking{
		FacilityName:      b.FacilityName,
		FacilityType:      domain.Category(b.FacilityType),
		TimeSlots:         b.TimeSlots,
		AdditionalPlayers: persons,
		Price:             int64(math.Round(b.Price)),
		Status:            domain.BookingStatus(b.Status),
	}

	// Дата может прийти как "2006-01-02" или как ISO timestamp
	if len(b.Date) >= len(domain.DateFormat) {
		if date, err := domain.ParseDate(b.Date[:len(domain.DateFormat)], c.location); err == nil {
			booking.Date = date
		} else {
			c.log.Warn("Booking with unparsable date=%q ignored for date matching", b.Date)
		}
	}

	return booking
}

func readError(resp *http.Response) string {
	raw, _ := io.ReadAll(resp.Body)

	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.text() != "" {
		return e.text()
	}
	return string(raw)
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
