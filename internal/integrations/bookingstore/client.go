package bookingstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/retry"
)

// maxErrorBody сколько байт тела ошибки попадает в текст ошибки
const maxErrorBody = 512

// Client клиент REST хранилища бронирований
type Client struct {
	baseURL     string
	httpClient  *http.Client
	readRetries retry.Policy
	log         Logger
}

// NewClient создает новый экземпляр клиента хранилища.
// readRetries применяется только к GET запросам; запись никогда не повторяется.
func NewClient(baseURL string, timeout time.Duration, readRetries int, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		readRetries: retry.Policy{
			MaxRetries:    readRetries,
			InitialDelay:  200 * time.Millisecond,
			MaxDelay:      2 * time.Second,
			BackoffFactor: 2,
		},
		log: log,
	}
}

// ListAll получает все бронирования (GET /bookings)
func (c *Client) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return c.list(ctx, c.baseURL+"/bookings")
}

// ListByUser получает бронирования пользователя (GET /bookings?userId=)
func (c *Client) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	q := url.Values{}
	q.Set("userId", userID)
	return c.list(ctx, c.baseURL+"/bookings?"+q.Encode())
}

// Get получает одно бронирование (GET /bookings/{id})
func (c *Client) Get(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := c.read(ctx, c.bookingURL(id), &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create создает бронирование (POST /bookings) и возвращает запись с присвоенным id
func (c *Client) Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	booking.ID = ""

	resp, err := c.send(ctx, http.MethodPost, c.baseURL+"/bookings", booking)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var created domain.Booking
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("%w: created booking has no id", ErrInvalidResponse)
	}

	return &created, nil
}

// Update обновляет бронирование (PUT /bookings/{id}).
// Успех только при 2xx и status == "success" в теле.
func (c *Client) Update(ctx context.Context, booking domain.Booking) error {
	if booking.ID == "" {
		return fmt.Errorf("%w: booking id is required for update", ErrInternal)
	}

	payload := booking
	payload.ID = ""

	resp, err := c.send(ctx, http.MethodPut, c.bookingURL(booking.ID), payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	var result StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if result.Status != StatusSuccess {
		return fmt.Errorf("%w: status=%q message=%q", ErrRejected, result.Status, result.Message)
	}

	return nil
}

// Delete удаляет бронирование (DELETE /bookings/{id})
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.send(ctx, http.MethodDelete, c.bookingURL(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *Client) bookingURL(id string) string {
	return c.baseURL + "/bookings/" + url.PathEscape(id)
}

func (c *Client) list(ctx context.Context, u string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.read(ctx, u, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

// read выполняет GET и декодирует ответ; повторяет только при недоступности хранилища
func (c *Client) read(ctx context.Context, u string, out interface{}) error {
	attempt := 0
	return retry.Do(ctx, c.readRetries, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			c.log.Warn("bookingstore: retrying GET %s, attempt=%d", u, attempt)
		}

		resp, err := c.send(ctx, http.MethodGet, u, nil)
		if err != nil {
			return markPermanent(err)
		}
		defer resp.Body.Close()

		if err := checkStatus(resp); err != nil {
			return markPermanent(err)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return retry.Permanent(fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err))
		}
		return nil
	})
}

func (c *Client) send(ctx context.Context, method, u string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}

	return resp, nil
}

// checkStatus переводит код ответа в ошибку клиента
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	message := readErrorMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, message)
	default:
		return fmt.Errorf("%w: status code %d: %s", ErrRejected, resp.StatusCode, message)
	}
}

// readErrorMessage достает message из {status, message} или сырой текст
func readErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

	var parsed StatusResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(raw))
}

func markPermanent(err error) error {
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	return retry.Permanent(err)
}
