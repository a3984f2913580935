package aicore

import (
	"context"
	"errors"
	"log/slog"

	"pullSecretPublisher/internal/auth"
	"pullSecretPublisher/internal/dockerconfig"
	"pullSecretPublisher/internal/models"
)

// PublisherConfig carries everything one publish run needs. Each run starts
// from a fresh config and holds no state afterwards.
type PublisherConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string

	APIURL        string
	ResourceGroup string // defaults to "default"

	RegistryServer   string // defaults to "docker.io"
	RegistryUsername string
	RegistryPassword string
	SecretName       string
}

// Publisher registers a docker registry pull secret with the AI Core admin
// API: fetch a token, build the payload, create, and on conflict update.
type Publisher struct {
	Tokens auth.TokenFetcher
	API    SecretAPI
}

// NewPublisher wires a Publisher from the endpoints in cfg.
func NewPublisher(cfg PublisherConfig) *Publisher {
	return &Publisher{
		Tokens: auth.NewTokenClient(cfg.TokenURL, cfg.ClientID, cfg.ClientSecret),
		API:    NewClient(cfg.APIURL, cfg.ResourceGroup),
	}
}

// Publish runs the linear publish sequence. The only automatic retry is the
// single create-to-update fallback on a conflict; every other failure
// terminates the run.
func (p *Publisher) Publish(ctx context.Context, cfg PublisherConfig) (models.PublishResult, error) {
	server := cfg.RegistryServer
	if server == "" {
		server = dockerconfig.DefaultServer
	}
	cred := models.Credential{Username: cfg.RegistryUsername, Secret: cfg.RegistryPassword}

	// Reject bad input before any network call.
	if err := dockerconfig.Validate(server, cred, cfg.SecretName); err != nil {
		return models.PublishResult{}, err
	}

	token, err := p.Tokens.Fetch(ctx)
	if err != nil {
		return models.PublishResult{}, err
	}
	if !token.ExpiresAt.IsZero() {
		slog.Debug("acquired access token", "expires_at", token.ExpiresAt)
	}

	payload, err := dockerconfig.Build(server, cred, cfg.SecretName)
	if err != nil {
		return models.PublishResult{}, err
	}

	err = p.API.CreateDockerRegistrySecret(ctx, token.Raw, payload)
	if err == nil {
		return models.PublishResult{Outcome: models.OutcomeCreated, SecretName: payload.Name}, nil
	}
	if !errors.Is(err, ErrConflict) {
		return models.PublishResult{}, err
	}

	// Secret already exists: exactly one update with the identical payload.
	slog.Info("secret already exists, updating", "secret", payload.Name)
	if err := p.API.UpdateDockerRegistrySecret(ctx, token.Raw, payload); err != nil {
		return models.PublishResult{}, err
	}
	return models.PublishResult{Outcome: models.OutcomeUpdated, SecretName: payload.Name}, nil
}
