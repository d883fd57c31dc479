package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forcekit/hubkit/internal/config"
	"github.com/forcekit/hubkit/internal/domain"
	"github.com/forcekit/hubkit/internal/ports"
)

// Connected app the external CLI falls back to when an auth record has
// no client id of its own.
const defaultConnectedAppID = "PlatformCLI"

const (
	jwtKeyFileName  = "jwtKey"
	authURLFileName = "tmpUrl"
	credFileMode    = 0o600
)

var ErrTransferIncomplete = errors.New("auth transfer did not yield usable credentials")

// Service drives hub authentication for a test harness run: resolve a
// strategy from the startup config, transfer credentials out of an
// existing local auth record when only a username is known, and hand
// the result to the external CLI.
type Service struct {
	cfg     *config.Config
	cli     ports.OrgCLI
	env     ports.Environ
	records ports.AuthRecordStore
	journal ports.TransferJournal
	clock   ports.Clock
}

func NewService(cfg *config.Config, cli ports.OrgCLI, env ports.Environ, records ports.AuthRecordStore, journal ports.TransferJournal, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		cfg:     cfg,
		cli:     cli,
		env:     env,
		records: records,
		journal: journal,
		clock:   clock,
	}
}

// Strategy resolves the current auth strategy from the config snapshot.
func (s *Service) Strategy() domain.AuthStrategy {
	return domain.ResolveStrategy(s.cfg.Credentials())
}

// EnsureHubAuth runs the full flow: resolve the strategy, convert a
// reuse strategy into JWT or auth-URL credentials via transfer, then
// authorize the hub. The returned strategy is the terminal one.
func (s *Service) EnsureHubAuth(ctx context.Context, dir string) (domain.AuthStrategy, error) {
	strategy := s.Strategy()

	if strategy == domain.StrategyReuse {
		if err := s.TransferExistingAuth(ctx); err != nil {
			return strategy, err
		}

		strategy = s.Strategy()
		if strategy == domain.StrategyReuse {
			return strategy, ErrTransferIncomplete
		}
	}

	if err := s.Authorize(ctx, dir); err != nil {
		return strategy, err
	}

	return strategy, nil
}

// Authorize writes the credential file for the resolved strategy into
// dir and invokes the external CLI. Reuse and none are no-ops here;
// reuse is expected to have been transferred away first.
func (s *Service) Authorize(ctx context.Context, dir string) error {
	switch s.Strategy() {
	case domain.StrategyJWT:
		return s.authorizeJWT(ctx, dir)
	case domain.StrategyAuthURL:
		return s.authorizeAuthURL(ctx, dir)
	default:
		return nil
	}
}

func (s *Service) authorizeJWT(ctx context.Context, dir string) error {
	key, err := domain.FormatJWTKey(s.cfg.JWTKey)
	if err != nil {
		return err
	}

	keyFile := filepath.Join(dir, jwtKeyFileName)
	if err := os.WriteFile(keyFile, []byte(key), credFileMode); err != nil {
		return fmt.Errorf("write jwt key file: %w", err)
	}

	if err := s.cli.AuthorizeJWT(ctx, ports.JWTGrant{
		ClientID:    s.cfg.JWTClientID,
		Username:    s.cfg.HubUsername,
		KeyFile:     keyFile,
		InstanceURL: s.cfg.HubInstance,
	}); err != nil {
		return fmt.Errorf("authorize hub via jwt: %w", err)
	}

	return nil
}

func (s *Service) authorizeAuthURL(ctx context.Context, dir string) error {
	urlFile := filepath.Join(dir, authURLFileName)
	if err := os.WriteFile(urlFile, []byte(s.cfg.AuthURL), credFileMode); err != nil {
		return fmt.Errorf("write auth url file: %w", err)
	}

	if err := s.cli.StoreAuthURL(ctx, urlFile); err != nil {
		return fmt.Errorf("authorize hub via auth url: %w", err)
	}

	return nil
}

// TransferExistingAuth converts the auth record of an already
// authenticated hub into harness credentials. A private-key record
// republishes the JWT triple; a refresh-token record asks the external
// CLI for the org's auth URL. Both the config snapshot and the process
// environment are updated so sibling processes observe the same state.
func (s *Service) TransferExistingAuth(ctx context.Context) error {
	if s.Strategy() != domain.StrategyReuse {
		return nil
	}

	record, err := s.records.Read(ctx, s.cfg.HubUsername)
	if err != nil {
		return err
	}

	switch {
	case record.PrivateKey != "":
		return s.transferJWT(ctx, record)
	case record.RefreshToken != "":
		return s.transferAuthURL(ctx)
	default:
		return fmt.Errorf("auth file for %q: %w", s.cfg.HubUsername, domain.ErrInvalidAuthFile)
	}
}

func (s *Service) transferJWT(ctx context.Context, record domain.AuthFile) error {
	key, err := s.records.ReadPrivateKey(ctx, record.PrivateKey)
	if err != nil {
		return err
	}

	clientID := record.ClientID
	if clientID == "" {
		clientID = defaultConnectedAppID
	}

	if err := s.publish(config.EnvJWTKey, key, &s.cfg.JWTKey); err != nil {
		return err
	}
	if err := s.publish(config.EnvJWTClientID, clientID, &s.cfg.JWTClientID); err != nil {
		return err
	}
	if record.InstanceURL != "" {
		if err := s.publish(config.EnvHubInstance, record.InstanceURL, &s.cfg.HubInstance); err != nil {
			return err
		}
	}

	return s.recordTransfer(ctx, domain.StrategyJWT)
}

func (s *Service) transferAuthURL(ctx context.Context) error {
	display, err := s.cli.DisplayOrg(ctx, s.cfg.HubUsername)
	if err != nil {
		return fmt.Errorf("display org for %q: %w", s.cfg.HubUsername, err)
	}

	authURL := display.Result.SfdxAuthURL
	if authURL == "" {
		return fmt.Errorf("org display for %q: %w", s.cfg.HubUsername, domain.ErrEmptyAuthURL)
	}

	if err := s.publish(config.EnvAuthURL, authURL, &s.cfg.AuthURL); err != nil {
		return err
	}

	return s.recordTransfer(ctx, domain.StrategyAuthURL)
}

func (s *Service) publish(envKey, value string, field *string) error {
	if err := s.env.Set(envKey, value); err != nil {
		return fmt.Errorf("publish %s: %w", envKey, err)
	}
	*field = value
	return nil
}

func (s *Service) recordTransfer(ctx context.Context, method domain.AuthStrategy) error {
	if s.journal == nil {
		return nil
	}

	err := s.journal.Record(ctx, domain.TransferRecord{
		Username:   s.cfg.HubUsername,
		Method:     method,
		CapturedAt: s.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("record transfer: %w", err)
	}

	return nil
}

// Report is the status view input: the resolved strategy plus which
// credentials are present, never their values.
type Report struct {
	Strategy     domain.AuthStrategy
	HubUsername  string
	Instance     string
	HasJWTKey    bool
	HasAuthURL   bool
	LastTransfer *domain.TransferRecord
}

func (s *Service) Report(ctx context.Context) (Report, error) {
	report := Report{
		Strategy:    s.Strategy(),
		HubUsername: s.cfg.HubUsername,
		Instance:    s.cfg.HubInstance,
		HasJWTKey:   s.cfg.JWTKey != "",
		HasAuthURL:  s.cfg.AuthURL != "",
	}

	if s.journal == nil || s.cfg.HubUsername == "" {
		return report, nil
	}

	record, ok, err := s.journal.Last(ctx, s.cfg.HubUsername)
	if err != nil {
		return Report{}, fmt.Errorf("read transfer journal: %w", err)
	}
	if ok {
		report.LastTransfer = &record
	}

	return report, nil
}
