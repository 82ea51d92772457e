// Package engine is the top-level driver: it wires the schema validator,
// the profile check registry, the dataset service, and the message
// catalog into a single Validate call and returns the accumulated results.
package engine

import (
	"context"
	"fmt"

	jsonv2 "github.com/go-json-experiment/json"
	"rivaas.dev/logging"

	"github.com/rdapval/conformance/internal/dataset"
	"github.com/rdapval/conformance/internal/exception/parser"
	"github.com/rdapval/conformance/internal/httpcontext"
	"github.com/rdapval/conformance/internal/profile"
	"github.com/rdapval/conformance/internal/profile/checks"
	"github.com/rdapval/conformance/internal/rdapcfg"
	"github.com/rdapval/conformance/internal/result"
	"github.com/rdapval/conformance/internal/schema"
	"github.com/rdapval/conformance/internal/schemavalidator"
)

// Engine validates one RDAP document at a time against a fixed root schema
// and a fixed profile check registry.
type Engine struct {
	root     *schema.Schema
	tree     *schema.Tree
	datasets *dataset.Service
	catalog  *result.Catalog
	runner   *profile.Runner
	logger   *logging.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger overrides the engine's logger. Without it, New falls back to
// a console logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRunner overrides the default profile check registry, chiefly for
// tests that want a narrower set of checks.
func WithRunner(r *profile.Runner) Option {
	return func(e *Engine) { e.runner = r }
}

// New builds an Engine over rootSchema. It loads the bundled dataset
// fixtures and message catalog eagerly, so a constructed Engine is always
// ready to validate: no half-initialized engine is ever returned.
func New(rootSchema *schema.Schema, opts ...Option) (*Engine, error) {
	if rootSchema == nil {
		return nil, ErrNilSchema
	}

	datasets, err := dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}

	catalog, err := result.NewCatalog("en")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	e := &Engine{
		root:     rootSchema,
		tree:     schema.BuildTree(rootSchema),
		datasets: datasets,
		catalog:  catalog,
		runner:   defaultRunner(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.MustNew(logging.WithConsoleHandler())
	}
	return e, nil
}

func defaultRunner() *profile.Runner {
	return profile.NewRunner(
		checks.HandleFormat{Code: -10523},
		checks.CORSHeader{},
		checks.QueryURILabelConsistency{Code: -10715},
		checks.IPAddressFormat{Code: -10814},
	)
}

// Validate runs the full pipeline for one RDAP document: schema validation
// (with fallback exception parsing on failure), then every profile check
// gated on cfg's query type. ctx bounds the call for a caller orchestrating
// many validations concurrently; the core loop itself never selects on it
// mid-document.
func (e *Engine) Validate(ctx context.Context, documentText []byte, cfg *rdapcfg.Config, exchange *httpcontext.Exchange) *result.Accumulator {
	acc := result.NewAccumulator()

	validator := &schemavalidator.Validator{
		Schema:  e.root,
		Tree:    e.tree,
		Acc:     acc,
		Catalog: e.catalog,
		Parsers: parser.Default(),
		Logger:  e.logger,
	}
	validator.Validate(documentText)

	var doc any
	if err := jsonv2.Unmarshal(documentText, &doc); err != nil {
		// Malformed JSON already produced a duplicateKeys/structureInvalid
		// result above; there is no parsed document for profile checks to
		// consult.
		return acc
	}

	if err := ctx.Err(); err != nil {
		e.logger.Info("engine: validation context cancelled before profile checks", "error", err)
		return acc
	}

	e.runner.Run(&profile.CheckContext{
		Document:    doc,
		Accumulator: acc,
		Config:      cfg,
		Datasets:    e.datasets,
		Exchange:    exchange,
		Catalog:     e.catalog,
	})

	return acc
}
