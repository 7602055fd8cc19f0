package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/identity"
)

var (
	// ErrTimeout — клиентский дедлайн истёк, запрос отменён.
	ErrTimeout = errors.New("assistant request timed out")

	// ErrUnreachable — транспортная ошибка, ответ так и не был получен.
	ErrUnreachable = errors.New("assistant is unreachable")
)

// DefaultReply возвращается, когда в ответе не нашлось ни одного
// известного поля.
const DefaultReply = "Assistant reply received."

type ChatClient interface {
	SendMessage(ctx context.Context, message string, user *identity.User) (string, error)
}

type webhookClient struct {
	url        string
	timeout    time.Duration
	retryCount int
	retryDelay time.Duration
	client     *http.Client
	logger     zerolog.Logger
}

type chatPayload struct {
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	UserRole  string `json:"userRole"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	Timestamp string `json:"timestamp"`
}

func NewWebhookClient(url string, timeout time.Duration, retryCount int, retryDelay time.Duration, logger zerolog.Logger) ChatClient {
	return &webhookClient{
		url:        url,
		timeout:    timeout,
		retryCount: retryCount,
		retryDelay: retryDelay,
		client:     &http.Client{},
		logger:     logger,
	}
}

// SendMessage доставляет сообщение во внешний webhook и нормализует ответ.
// Повторы только при транспортных ошибках: после полученного ответа
// сообщение не отправляется заново. Весь цикл ограничен клиентским
// дедлайном.
func (c *webhookClient) SendMessage(ctx context.Context, message string, user *identity.User) (string, error) {
	payload := chatPayload{
		Message:   message,
		UserID:    user.ID,
		UserRole:  user.Role.String(),
		UserEmail: user.Email,
		UserName:  user.DisplayName(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var lastErr error

	for i := 0; i <= c.retryCount; i++ {
		if i > 0 {
			c.logger.Warn().Int("attempt", i).Msg("Retrying assistant webhook call")
			select {
			case <-ctx.Done():
				return "", c.deadlineError(ctx, lastErr)
			case <-time.After(c.retryDelay * time.Duration(i)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return "", c.deadlineError(ctx, err)
			}
			lastErr = err
			continue
		}

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			if ctx.Err() != nil {
				return "", c.deadlineError(ctx, err)
			}
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, string(raw))
		}

		return normalizeReply(resp.Header.Get("Content-Type"), raw), nil
	}

	if ctx.Err() != nil {
		return "", c.deadlineError(ctx, lastErr)
	}

	return "", fmt.Errorf("%w: %v", ErrUnreachable, lastErr)
}

func (c *webhookClient) deadlineError(ctx context.Context, cause error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	if cause != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, cause)
	}
	return ctx.Err()
}

// normalizeReply сводит разнородные формы ответа webhook к одному тексту.
// Порядок разбора фиксирован: массив с полем output у первого элемента,
// объект с output/response/message, голая JSON-строка, иначе DefaultReply.
// Не-JSON тела принимаются как есть.
func normalizeReply(contentType string, body []byte) string {
	if !strings.Contains(contentType, "application/json") {
		return string(body)
	}

	var value interface{}
	if err := json.Unmarshal(body, &value); err != nil {
		return DefaultReply
	}

	switch v := value.(type) {
	case []interface{}:
		if len(v) > 0 {
			if obj, ok := v[0].(map[string]interface{}); ok {
				if text, ok := obj["output"].(string); ok {
					return text
				}
			}
		}
		return DefaultReply
	case map[string]interface{}:
		for _, key := range []string{"output", "response", "message"} {
			if text, ok := v[key].(string); ok {
				return text
			}
		}
		return DefaultReply
	case string:
		return v
	default:
		return DefaultReply
	}
}
