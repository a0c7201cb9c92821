package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/stripe/stripe-go/v82/client"

	"github.com/tenantops/tenant-admin-api/internal/config"
	"github.com/tenantops/tenant-admin-api/internal/repository"
	"github.com/tenantops/tenant-admin-api/pkg/logger"
)

const stripeConfigSettingKey = "stripe_config"

// ConfigResolver yields a Stripe config or reports the source as absent
// with a nil config and nil error.
type ConfigResolver func(ctx context.Context) (*config.StripeConfig, error)

// BillingService resolves billing credentials through an ordered resolver
// chain (env JSON blob, discrete env vars, settings store) and proxies
// subscription and invoice lookups. When mock mode is enabled the lookups
// bypass the SDK and hit the alternate base URL directly.
type BillingService struct {
	repo       repository.Repository
	httpClient *http.Client
	logger     *logger.Logger
	resolvers  []ConfigResolver
}

func NewBillingService(repo repository.Repository, logger *logger.Logger) *BillingService {
	s := &BillingService{
		repo:       repo,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
	s.resolvers = []ConfigResolver{
		func(context.Context) (*config.StripeConfig, error) {
			cfg, ok := config.StripeConfigFromEnvJSON()
			if !ok {
				return nil, nil
			}
			return cfg, nil
		},
		func(context.Context) (*config.StripeConfig, error) {
			cfg, ok := config.StripeConfigFromEnvVars()
			if !ok {
				return nil, nil
			}
			return cfg, nil
		},
		s.resolveFromStore,
	}
	return s
}

// SetHTTPClient overrides the client used for mock-mode lookups.
func (s *BillingService) SetHTTPClient(httpClient *http.Client) {
	s.httpClient = httpClient
}

// ResolveConfig walks the resolver chain; the first source that yields a
// config wins.
func (s *BillingService) ResolveConfig(ctx context.Context) (*config.StripeConfig, error) {
	for _, resolve := range s.resolvers {
		cfg, err := resolve(ctx)
		if err != nil {
			s.logger.Warnf("stripe config source failed: %v", err)
			continue
		}
		if cfg != nil {
			return cfg, nil
		}
	}
	return nil, ErrStripeNotConfigured
}

func (s *BillingService) resolveFromStore(ctx context.Context) (*config.StripeConfig, error) {
	setting, err := s.repo.Settings().GetByKey(ctx, stripeConfigSettingKey)
	if err != nil {
		return nil, err
	}

	var cfg config.StripeConfig
	if err := json.Unmarshal(setting.SettingValue, &cfg); err != nil {
		return nil, fmt.Errorf("invalid stripe config in settings store: %w", err)
	}
	return &cfg, nil
}

func (s *BillingService) RetrieveSubscription(ctx context.Context, subscriptionID string) (json.RawMessage, error) {
	if subscriptionID == "" {
		return nil, NewValidationError("subscription id is required")
	}

	cfg, err := s.ResolveConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: secret key is empty", ErrStripeNotConfigured)
	}

	if base, ok := config.StripeMockBaseURL(); ok {
		return s.mockGet(ctx, cfg, base+"/v1/subscriptions/"+url.PathEscape(subscriptionID))
	}

	sub, err := s.stripeClient(cfg).Subscriptions.Get(subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscription: %w", err)
	}
	return json.Marshal(sub)
}

func (s *BillingService) RetrieveInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	if invoiceID == "" {
		return nil, NewValidationError("invoice id is required")
	}

	cfg, err := s.ResolveConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: secret key is empty", ErrStripeNotConfigured)
	}

	if base, ok := config.StripeMockBaseURL(); ok {
		return s.mockGet(ctx, cfg, base+"/v1/invoices/"+url.PathEscape(invoiceID))
	}

	inv, err := s.stripeClient(cfg).Invoices.Get(invoiceID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoice: %w", err)
	}
	return json.Marshal(inv)
}

func (s *BillingService) stripeClient(cfg *config.StripeConfig) *client.API {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return api
}

func (s *BillingService) mockGet(ctx context.Context, cfg *config.StripeConfig, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.SecretKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mock billing API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mock billing API returned %d: %s", resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}
