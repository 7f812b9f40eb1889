package orderlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
	"github.com/shopdiginow/storefront/pkg/retry"
)

// initialStatus is the fixed status value stamped onto every new row.
const initialStatus = "Pending"

var _ port.OrderLogger = (*SheetLogger)(nil)

// SheetLogger mirrors orders to a spreadsheet webhook, one GET request
// per cart item so each item lands in its own row. The whole operation
// is best-effort: every failure is swallowed and only diagnosed via
// logs.
type SheetLogger struct {
	client  *http.Client
	url     string
	retries int
}

type Opt func(*SheetLogger)

func ClientOpt(c *http.Client) Opt {
	return func(l *SheetLogger) { l.client = c }
}

func RetriesOpt(n int) Opt {
	return func(l *SheetLogger) { l.retries = n }
}

func New(webhookURL string, opts ...Opt) SheetLogger {
	l := SheetLogger{
		client:  &http.Client{Timeout: 15 * time.Second},
		url:     webhookURL,
		retries: 2,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// LogOrder issues all per-item requests concurrently and returns when
// they settle. No ordering or atomicity is guaranteed across items.
func (l SheetLogger) LogOrder(ctx context.Context, o domain.Order) {
	const op = "SheetLogger.LogOrder"
	log := slog.With("op", op, "orderID", o.ID)

	if l.url == "" {
		log.Warn("webhook url is not configured, order not mirrored")
		return
	}

	var wg sync.WaitGroup
	for i, item := range o.Items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.logItem(ctx, log, o, item, i)
		}()
	}
	wg.Wait()

	log.Info("order mirrored to spreadsheet", "items", len(o.Items))
}

func (l SheetLogger) logItem(ctx context.Context, log *slog.Logger, o domain.Order, item domain.CartItem, idx int) {
	rowID := o.ID
	if len(o.Items) > 1 {
		rowID = fmt.Sprintf("%s-%d", o.ID, idx+1)
	}

	params := url.Values{}
	params.Set("order_id", rowID)
	params.Set("customer_name", o.Customer.FullName())
	params.Set("customer_email", o.Customer.Email)
	params.Set("customer_phone", o.Customer.Phone)
	params.Set("product_name", fmt.Sprintf("%s (%s) - %s", item.Name, item.Provider, item.Duration))
	params.Set("product_quantity", fmt.Sprintf("%d", item.Quantity))
	params.Set("total_amount", fmt.Sprintf("%.2f %s", float64(item.LineTotal()), item.Price.Currency))
	params.Set("payment_method", o.Payment.Label())
	params.Set("order_date", o.PlacedAt.UTC().Format(time.RFC3339))
	params.Set("status", initialStatus)

	reqURL := l.url + "?" + params.Encode()

	cfg := retry.Config{
		MaxAttempts: l.retries,
		Backoff:     retry.LinearBackoff(250 * time.Millisecond),
	}
	err := retry.Do(ctx, cfg, func() error {
		return l.get(ctx, reqURL)
	})
	if err != nil {
		log.Warn("failed to mirror order item", "row", rowID, "err", err)
		return
	}

	log.Debug("order item mirrored", "row", rowID)
}

func (l SheetLogger) get(ctx context.Context, reqURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
