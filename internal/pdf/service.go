package pdf

import (
	"log/slog"

	"github.com/formlay/pdf-form-server/internal/forms"
)

// Service renders filled documents by wiring the resolver and compositor
// together behind one call.
type Service struct {
	resolver   *Resolver
	compositor *Compositor
	logger     *slog.Logger
}

// NewService creates a render service over a form config source and the
// data directory holding template assets.
func NewService(source ConfigSource, dataDir string, logger *slog.Logger) *Service {
	return &Service{
		resolver:   NewResolver(source, dataDir, logger),
		compositor: NewCompositor(logger),
		logger:     logger,
	}
}

// Resolver exposes the service's resolver for callers that only need
// configuration or template lookup.
func (s *Service) Resolver() *Resolver {
	return s.resolver
}

// Render resolves the form's configuration and template and composes the
// filled document.
func (s *Service) Render(key string, data forms.DataMapping) ([]byte, error) {
	cfg, err := s.resolver.ResolveForm(key)
	if err != nil {
		return nil, err
	}

	template, err := s.resolver.ResolveTemplate(cfg)
	if err != nil {
		return nil, err
	}

	out, err := s.compositor.Compose(template, cfg.FieldsConfig, data)
	if err != nil {
		return nil, err
	}
	s.logger.Info("rendered document", "key", key, "bytes", len(out))
	return out, nil
}
