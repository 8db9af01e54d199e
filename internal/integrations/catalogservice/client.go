package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CatalogService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetLocation получает локацию по ID
func (c *Client) GetLocation(ctx context.Context, locationID int64) (*Location, error) {
	url := fmt.Sprintf("%s/internal/locations/%d", c.baseURL, locationID)

	var location Location
	if err := c.getJSON(ctx, url, &location, ErrLocationNotFound); err != nil {
		return nil, err
	}

	return &location, nil
}

// GetCabin получает кабину по ID
func (c *Client) GetCabin(ctx context.Context, cabinID int64) (*Cabin, error) {
	url := fmt.Sprintf("%s/internal/cabins/%d", c.baseURL, cabinID)

	var cabin Cabin
	if err := c.getJSON(ctx, url, &cabin, ErrCabinNotFound); err != nil {
		return nil, err
	}

	return &cabin, nil
}

// GetLocationCabins получает список кабин локации
func (c *Client) GetLocationCabins(ctx context.Context, locationID int64) ([]Cabin, error) {
	url := fmt.Sprintf("%s/internal/locations/%d/cabins", c.baseURL, locationID)

	var cabins []Cabin
	if err := c.getJSON(ctx, url, &cabins, ErrLocationNotFound); err != nil {
		return nil, err
	}

	c.log.Debug("Fetched %d cabins for location_id=%d", len(cabins), locationID)
	return cabins, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ в target.
// notFoundErr возвращается при статусе 404.
func (c *Client) getJSON(ctx context.Context, url string, target interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
