package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chems34/IA-webgen/internal/infrastructure/registrar"
)

const maxAlternatives = 3

// AvailabilityChecker is satisfied by the registrar client. Checks never
// error; a dead upstream reports the domain as available.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, domain string) registrar.CheckResult
}

// Suggester proposes alternative domains when the preferred one is taken.
// Every suggestion is re-verified against the checker before it is offered.
type Suggester struct {
	checker AvailabilityChecker
	now     func() time.Time
}

func NewSuggester(checker AvailabilityChecker) *Suggester {
	return &Suggester{checker: checker, now: time.Now}
}

// Suggest returns up to three verified-available variants of the taken
// domain, derived from its base label and the business name. The original
// domain is never among them.
func (s *Suggester) Suggest(ctx context.Context, domain string, businessName string) []string {
	original := strings.ToLower(domain)
	base := original
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}

	candidates := []string{
		base + ".fr",
		base + ".net",
		base + ".org",
	}
	if business := cleanLabel(businessName); business != "" && business != base {
		candidates = append(candidates, business+".com", business+".fr")
	}
	candidates = append(candidates,
		base+"-pro.com",
		fmt.Sprintf("%s%d.com", base, s.now().Year()),
		"mon-"+base+".com",
	)

	var alternatives []string
	seen := map[string]bool{original: true}
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		if s.checker.CheckAvailability(ctx, candidate).Available {
			alternatives = append(alternatives, candidate)
			if len(alternatives) == maxAlternatives {
				break
			}
		}
	}

	return alternatives
}

// cleanLabel reduces a business name to a DNS-usable label.
func cleanLabel(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
