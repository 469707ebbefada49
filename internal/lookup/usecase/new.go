package usecase

import (
	"fmt"
	"strings"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/lookup/repository"
	"erp-lookup/internal/model"
	pkgLog "erp-lookup/pkg/log"
)

// Config configures the registry of entity orchestrators.
type Config struct {
	Entities []lookup.EntityConfig

	// Defaults applied to entities that leave the field unset.
	DefaultLimit int
	MaxLimit     int
	MaxItems     int

	Options    Options
	Authorizer lookup.Authorizer
}

type implUseCase struct {
	l          pkgLog.Logger
	order      []string
	entities   map[string]*Orchestrator[model.LookupItem]
	authorizer lookup.Authorizer
	meta       *lookup.MetaView
}

// New builds one orchestrator per configured entity on top of transport.
func New(cfg Config, transport repository.Transport[model.LookupItem], l pkgLog.Logger) (*implUseCase, error) {
	authorizer := cfg.Authorizer
	if authorizer == nil {
		authorizer = lookup.PermissionAuthorizer
	}

	uc := &implUseCase{
		l:          l,
		entities:   make(map[string]*Orchestrator[model.LookupItem], len(cfg.Entities)),
		authorizer: authorizer,
		meta:       lookup.NewMetaView(l),
	}

	for _, e := range cfg.Entities {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("%w: empty name", lookup.ErrInvalidEntity)
		}
		if _, exists := uc.entities[e.Name]; exists {
			return nil, fmt.Errorf("%w: %s", lookup.ErrDuplicateEntity, e.Name)
		}
		if e.Collection == "" {
			e.Collection = "/lookups/" + e.Name
		}
		if e.DefaultLimit == 0 {
			e.DefaultLimit = cfg.DefaultLimit
		}
		if e.MaxLimit == 0 {
			e.MaxLimit = cfg.MaxLimit
		}
		if e.MaxItems == 0 {
			e.MaxItems = cfg.MaxItems
		}

		opts := cfg.Options
		opts.MaxItems = e.MaxItems

		uc.entities[e.Name] = NewOrchestrator[model.LookupItem](e, transport, opts, l)
		uc.order = append(uc.order, e.Name)
	}

	return uc, nil
}
