package rentalapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client клиент для работы с API бронирований автомобилей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVehicleBookings получает список бронирований автомобиля
func (c *Client) GetVehicleBookings(ctx context.Context, vehicleID int64) ([]Booking, error) {
	endpoint := fmt.Sprintf("%s/vehicles/%d/bookings", c.baseURL, vehicleID)

	var bookings []Booking
	if err := c.get(ctx, endpoint, &bookings); err != nil {
		return nil, err
	}

	c.log.Info("Fetched %d bookings for vehicle_id=%d", len(bookings), vehicleID)
	return bookings, nil
}

// CheckAvailability проверяет, свободен ли автомобиль на даты [pickupDate, returnDate]
func (c *Client) CheckAvailability(ctx context.Context, vehicleID int64, pickupDate, returnDate string) (*Availability, error) {
	query := url.Values{}
	query.Set("pickup_date", pickupDate)
	query.Set("return_date", returnDate)
	endpoint := fmt.Sprintf("%s/vehicles/%d/availability?%s", c.baseURL, vehicleID, query.Encode())

	var availability Availability
	if err := c.get(ctx, endpoint, &availability); err != nil {
		return nil, err
	}

	return &availability, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, readError(resp.Body))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrVehicleNotFound, readError(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readError достаёт поле error из тела ответа, иначе возвращает тело как есть
func readError(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(raw))
}
