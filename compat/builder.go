package compat

import (
	"fmt"

	"github.com/lixenwraith/funnel"
)

// Builder creates gnet and fasthttp adapters sharing one funnel Logger.
// It can use an existing *funnel.Logger or assemble one from a *funnel.Config.
type Builder struct {
	logger *funnel.Logger
	cfg    *funnel.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *funnel.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("funnel/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// This is used only if an existing logger is NOT provided via WithLogger.
// If neither is used, the shared logger is used.
func (b *Builder) WithConfig(cfg *funnel.Config) *Builder {
	b.cfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*funnel.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	if b.cfg == nil {
		return funnel.Shared(), nil
	}

	l, err := funnel.NewBuilder().Config(b.cfg).Build()
	if err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying logger, creating it if needed
func (b *Builder) GetLogger() (*funnel.Logger, error) {
	return b.getLogger()
}
