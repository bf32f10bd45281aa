// AngelaMos | 2026
// mailer_test.go

package mailer

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/tierhub/internal/config"
	"github.com/carterperez-dev/tierhub/internal/observability"
)

func TestDisabledRejectsEverything(t *testing.T) {
	err := Disabled{}.Send(context.Background(), "bob@ex.com", "Reset", "body")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestSMTPMailerCountsFailures(t *testing.T) {
	metrics := observability.NewMetrics()
	m, err := NewSMTPMailer(config.MailConfig{
		Host: "127.0.0.1",
		Port: 1,
		From: "noreply@tierhub.test",
	}, metrics)
	require.NoError(t, err)

	err = m.Send(context.Background(), "bob@ex.com", "Reset", "body")
	require.Error(t, err)

	assert.Equal(t, 1.0, emailsSent(t, metrics, "failed"))
	assert.Zero(t, emailsSent(t, metrics, "sent"))
}

func TestSMTPMailerRejectsBadRecipient(t *testing.T) {
	m, err := NewSMTPMailer(config.MailConfig{
		Host: "127.0.0.1",
		Port: 1,
		From: "noreply@tierhub.test",
	}, nil)
	require.NoError(t, err)

	err = m.Send(context.Background(), "not an address", "Reset", "body")
	assert.ErrorContains(t, err, "set recipient")
}

func TestHasMXLookupFailure(t *testing.T) {
	checker := &MXChecker{Resolver: &net.Resolver{
		PreferGo: true,
		Dial: func(context.Context, string, string) (net.Conn, error) {
			return nil, errors.New("dns unreachable")
		},
	}}

	ok, err := checker.HasMX(context.Background(), "ex.com")
	assert.Error(t, err)
	assert.False(t, ok)
}

func emailsSent(t *testing.T, m *observability.Metrics, result string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, fam := range families {
		if fam.GetName() != "tierhub_mail_emails_total" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "result" && label.GetValue() == result {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
