package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/opheliasgarden/nursery-backend/internal/preorder"
	pkgerrors "github.com/opheliasgarden/nursery-backend/pkg/errors"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
	"github.com/opheliasgarden/nursery-backend/pkg/pricing"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.resend.com"

// Resend delivers pre-order notifications to the shop owner through the
// Resend transactional email API.
type Resend struct {
	apiKey  string
	from    string
	to      string
	baseURL string
	client  *http.Client
	logg    *logger.Logger
}

var _ preorder.Notifier = (*Resend)(nil)

// ResendParams wires the Resend adapter.
type ResendParams struct {
	APIKey  string
	From    string
	To      string
	Timeout time.Duration

	// BaseURL and Client override the live endpoint, for tests.
	BaseURL string
	Client  *http.Client
	Logger  *logger.Logger
}

// NewResend wires the Resend email adapter.
func NewResend(params ResendParams) (*Resend, error) {
	if params.APIKey == "" || params.From == "" || params.To == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "resend credentials required")
	}
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Resend{
		apiKey:  params.APIKey,
		from:    params.From,
		to:      params.To,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logg:    params.Logger,
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendOrderNotification emails the order summary to the shop owner, with the
// customer's address as reply-to so the owner can answer directly.
func (r *Resend) SendOrderNotification(ctx context.Context, order preorder.PreOrder) error {
	payload := sendRequest{
		From:    r.from,
		To:      []string{r.to},
		ReplyTo: order.Customer.Email,
		Subject: fmt.Sprintf("New pre-order from %s", order.Customer.Name),
		HTML:    renderOrderHTML(order),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending resend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if r.logg != nil {
		ctx = r.logg.WithField(ctx, "customer_email", order.Customer.Email)
		r.logg.Info(ctx, "preorder.notification.sent")
	}
	return nil
}

func renderOrderHTML(order preorder.PreOrder) string {
	var b strings.Builder
	b.WriteString("<h2>New Pre-Order</h2>")
	b.WriteString("<p><strong>Name:</strong> " + html.EscapeString(order.Customer.Name) + "<br>")
	b.WriteString("<strong>Email:</strong> " + html.EscapeString(order.Customer.Email) + "<br>")
	b.WriteString("<strong>Phone:</strong> " + html.EscapeString(order.Customer.Phone) + "</p>")
	if order.Customer.Notes != "" {
		b.WriteString("<p><strong>Notes:</strong> " + html.EscapeString(order.Customer.Notes) + "</p>")
	}

	b.WriteString("<table border=\"1\" cellpadding=\"6\" cellspacing=\"0\">")
	b.WriteString("<tr><th>Variety</th><th>SKU</th><th>Qty</th><th>Price</th><th>Line Total</th></tr>")
	for _, item := range order.Items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		b.WriteString("<tr>")
		b.WriteString("<td>" + html.EscapeString(item.Name) + "</td>")
		b.WriteString("<td>" + html.EscapeString(item.SKU) + "</td>")
		b.WriteString(fmt.Sprintf("<td>%d</td>", item.Quantity))
		b.WriteString("<td>" + pricing.FormatPrice(item.Price) + "</td>")
		b.WriteString("<td>" + pricing.FormatPrice(lineTotal) + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")

	b.WriteString("<p><strong>Total: " + pricing.FormatPrice(order.Total) + "</strong></p>")
	b.WriteString("<p>Submitted " + order.SubmittedAt.Format(time.RFC1123) + "</p>")
	return b.String()
}
