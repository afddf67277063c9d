package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// ResendNotifier implements the adapter.Notifier interface using Resend.
type ResendNotifier struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	baseURL   string
}

// NewResendNotifier creates a new Resend-backed notifier. baseURL points the
// email footer link at the inventory app; empty disables the link.
func NewResendNotifier(apiKey, fromName, fromEmail, baseURL string) *ResendNotifier {
	return &ResendNotifier{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		baseURL:   baseURL,
	}
}

// Notify sends the expiry alert as one email per user. A failed send does not
// stop dispatch to the remaining users; all failures are joined and returned.
func (n *ResendNotifier) Notify(ctx context.Context, alert adapter.ExpiryAlert, users []*entity.User) error {
	var errs []error
	for _, params := range alertRequests(n.fromName, n.fromEmail, n.baseURL, alert, users) {
		if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
			code := domainerror.ErrCodeTemporaryDispatchFailure
			message := "temporary notification failure"
			if isPermanentError(err) {
				code = domainerror.ErrCodePermanentDispatchFailure
				message = "permanent notification failure"
			}
			errs = append(errs, domainerror.NewNotificationError(code, message, err))
		}
	}
	return errors.Join(errs...)
}

// alertRequests builds one send request per user so no recipient sees the
// other managers' addresses.
func alertRequests(fromName, fromEmail, baseURL string, alert adapter.ExpiryAlert, users []*entity.User) []*resend.SendEmailRequest {
	from := fmt.Sprintf("%s <%s>", fromName, fromEmail)
	subject := alertSubject(alert)
	html := alertHTML(alert, baseURL)
	text := alertText(alert)

	requests := make([]*resend.SendEmailRequest, 0, len(users))
	for _, u := range users {
		requests = append(requests, &resend.SendEmailRequest{
			From:    from,
			To:      []string{u.Email},
			Subject: subject,
			Html:    html,
			Text:    text,
		})
	}
	return requests
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent errors include: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error)
// Temporary errors include: 429 (Rate Limit), 5xx (Server Errors)
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// MockNotifier is a mock implementation for testing.
type MockNotifier struct {
	Alerts      []adapter.ExpiryAlert
	Recipients  [][]string
	ShouldFail  bool
	FailError   error
	IsPermanent bool
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		Alerts: make([]adapter.ExpiryAlert, 0),
	}
}

// Notify implements the adapter.Notifier interface for testing.
func (m *MockNotifier) Notify(ctx context.Context, alert adapter.ExpiryAlert, users []*entity.User) error {
	if m.ShouldFail {
		code := domainerror.ErrCodeTemporaryDispatchFailure
		if m.IsPermanent {
			code = domainerror.ErrCodePermanentDispatchFailure
		}
		return domainerror.NewNotificationError(code, "mock notification failure", m.FailError)
	}

	emails := make([]string, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
	}

	m.Alerts = append(m.Alerts, alert)
	m.Recipients = append(m.Recipients, emails)
	return nil
}

// SetFailure configures the mock to fail with the given error.
func (m *MockNotifier) SetFailure(err error, permanent bool) {
	m.ShouldFail = true
	m.FailError = err
	m.IsPermanent = permanent
}

// Reset clears all recorded alerts and failure configuration.
func (m *MockNotifier) Reset() {
	m.Alerts = make([]adapter.ExpiryAlert, 0)
	m.Recipients = nil
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.Notifier = (*ResendNotifier)(nil)
	_ adapter.Notifier = (*MockNotifier)(nil)
)
