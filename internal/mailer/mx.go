// AngelaMos | 2026
// mx.go

package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

const mxLookupTimeout = 5 * time.Second

// MXChecker reports whether a domain publishes mail exchangers.
type MXChecker struct {
	Resolver *net.Resolver
}

func NewMXChecker() *MXChecker {
	return &MXChecker{Resolver: net.DefaultResolver}
}

func (c *MXChecker) HasMX(ctx context.Context, domain string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, mxLookupTimeout)
	defer cancel()

	records, err := c.Resolver.LookupMX(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, nil
		}
		return false, fmt.Errorf("lookup mx for %s: %w", domain, err)
	}

	return len(records) > 0, nil
}
