package invoiceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"invoicer/internal/entities"
)

// maxErrorBody ограничивает диагностическое тело неуспешного ответа.
const maxErrorBody = 4 << 10

// Gateway клиент внешнего рендер-сервиса счетов. Один запрос на счёт,
// таймаут на запрос, без ретраев: неуспех отдаётся звонящему как
// *DispatchError.
type Gateway struct {
	client  client
	url     string
	timeout time.Duration
}

func New(client client, url string, timeout time.Duration) *Gateway {
	return &Gateway{
		client:  client,
		url:     url,
		timeout: timeout,
	}
}

// Render отправляет счёт и возвращает бинарный PDF.
func (g *Gateway) Render(ctx context.Context, invoice entities.Invoice) ([]byte, error) {
	body, err := json.Marshal(toContract(invoice))
	if err != nil {
		return nil, fmt.Errorf("gateway invoiceapi, marshal invoice %s: %w", invoice.Number, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gateway invoiceapi, build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		GatewayRequestsTotal.WithLabelValues("transport_error").Inc()
		GatewayRequestDuration.WithLabelValues("transport_error").Observe(time.Since(start).Seconds())

		// таймаут и обрыв соединения — тоже неуспех отправки
		return nil, &DispatchError{Body: err.Error()}
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	GatewayRequestsTotal.WithLabelValues(status).Inc()
	GatewayRequestDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		diagnostic, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &DispatchError{
			Status: resp.StatusCode,
			Body:   string(diagnostic),
		}
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway invoiceapi, read pdf for %s: %w", invoice.Number, err)
	}

	return pdf, nil
}
