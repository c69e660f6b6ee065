// Package hosting models the publishing step of the concierge workflow.
// The stub deployer stands where a real hosting/DNS integration would go;
// it performs no upload and no DNS change, only a delayed synthetic result.
package hosting

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type SiteBundle struct {
	HTML string
	CSS  string
	JS   string
}

type DeployResult struct {
	Success        bool
	URL            string
	SSLEnabled     bool
	DeploymentTime string
}

type Deployer interface {
	Deploy(ctx context.Context, domain string, bundle SiteBundle) (DeployResult, error)
}

type StubDeployer struct {
	delay  time.Duration
	logger *zap.Logger
}

func NewStubDeployer(delay time.Duration, logger *zap.Logger) *StubDeployer {
	return &StubDeployer{delay: delay, logger: logger}
}

// Deploy waits the configured artificial delay, then reports success with
// an https URL on the target domain. Cancellation is the only failure mode.
func (d *StubDeployer) Deploy(ctx context.Context, domain string, bundle SiteBundle) (DeployResult, error) {
	d.logger.Info("simulating deployment",
		zap.String("domain", domain),
		zap.Int("htmlBytes", len(bundle.HTML)),
		zap.Duration("delay", d.delay))

	select {
	case <-time.After(d.delay):
	case <-ctx.Done():
		return DeployResult{}, ctx.Err()
	}

	return DeployResult{
		Success:        true,
		URL:            "https://" + domain,
		SSLEnabled:     true,
		DeploymentTime: d.delay.String(),
	}, nil
}
