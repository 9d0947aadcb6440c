package app

import (
	"net/http"

	"go.uber.org/zap"

	"solarenroll/internal/api"
	"solarenroll/internal/domain"
	"solarenroll/internal/services/address"
	"solarenroll/internal/services/enrollment"
	"solarenroll/internal/wizard"
)

// Wire bundles the client and services for the CLI.
type Wire struct {
	Config     Config
	API        domain.EnrollmentAPI
	Address    *address.Service
	Enrollment *enrollment.Service
	HTTP       *http.Client
	Log        *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// The configured timeout is enforced on the client.
	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout, err := cfg.API.TimeoutDuration()
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	client := api.New(cfg.API.BaseURL, httpClient, log.Named("api"))
	w := NewWireWithAPI(cfg, client, log)
	w.HTTP = httpClient
	return w, nil
}

// NewWireWithAPI builds the services around an existing client.
func NewWireWithAPI(cfg Config, client domain.EnrollmentAPI, log *zap.Logger) *Wire {
	if log == nil {
		log = zap.NewNop()
	}
	return &Wire{
		Config:     cfg,
		API:        client,
		Address:    address.New(client, log.Named("address")),
		Enrollment: enrollment.New(client, log.Named("enrollment")),
		HTTP:       cfg.HTTP,
		Log:        log,
	}
}

// NewWizard starts a fresh wizard session with the configured options.
func (w *Wire) NewWizard() *wizard.Wizard {
	return wizard.New(wizard.Options{RequireEmail: w.Config.Wizard.RequireEmail})
}
