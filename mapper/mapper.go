// Package mapper implements the entity-to-triple mapping engine. It turns
// catalog entities into CPSV-AP / DCAT-AP-NO triples in a shared rdf.Graph:
// one rdf:type triple per entity, literal triples for populated attributes,
// and relation triples linking to recursively described related entities.
//
// Identifier resolution happens once per entity per mapping call. Entities
// with an explicit identifier keep it verbatim; unidentified entities get
// a skolem URI from the configured minter, which is never written back
// onto the entity. Two independent calls may therefore mint different
// URIs for the same unidentified entity — callers needing stable output
// assign identifiers explicitly.
package mapper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/katalogdata/servicetordf/catalog"
	"github.com/katalogdata/servicetordf/rdf"
	"github.com/katalogdata/servicetordf/skolem"
	"github.com/katalogdata/servicetordf/vocabulary/cpsv"
)

// Mapper maps catalog entities into RDF graphs. It holds no per-call
// state and is safe to reuse; mapping into separate graphs from separate
// goroutines is safe as long as each graph is confined to one call.
type Mapper struct {
	minter  skolem.Minter
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger for mapping diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mapper) {
		m.logger = l
	}
}

// WithMetrics attaches prometheus metrics to the mapper.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Mapper) {
		m.metrics = metrics
	}
}

// New creates a Mapper using the given minter for unidentified entities.
// A nil minter falls back to a LocalMinter with the default base URI.
func New(minter skolem.Minter, opts ...Option) *Mapper {
	if minter == nil {
		minter = skolem.NewLocalMinter("")
	}
	m := &Mapper{
		minter: minter,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewGraph returns an empty graph with the profile's namespace prefixes
// bound, ready to be passed to the Map operations.
func NewGraph() *rdf.Graph {
	g := rdf.NewGraph()
	for prefix, ns := range cpsv.Prefixes() {
		g.Bind(prefix, ns)
	}
	return g
}

// session carries the per-call state: the target graph, the subject URI
// resolved for each entity (stable for the whole call, shared references
// included), and the set of entities already described (the cycle guard).
type session struct {
	mapper    *Mapper
	graph     *rdf.Graph
	resolved  map[any]rdf.IRI
	described map[any]struct{}
}

func (m *Mapper) newSession(g *rdf.Graph) *session {
	return &session{
		mapper:    m,
		graph:     g,
		resolved:  make(map[any]rdf.IRI),
		described: make(map[any]struct{}),
	}
}

// resolve returns the subject URI for an entity, minting one when the
// caller supplied none. The result is cached for the rest of the call so
// every triple describing the entity shares one subject.
func (s *session) resolve(ctx context.Context, entity any, kind cpsv.Kind, explicit string) (rdf.IRI, error) {
	if subject, ok := s.resolved[entity]; ok {
		return subject, nil
	}

	var subject rdf.IRI
	if explicit != "" {
		if err := validateURI(explicit); err != nil {
			return "", fmt.Errorf("%s identifier: %w", kind, err)
		}
		subject = rdf.IRI(explicit)
	} else {
		minted, err := s.mapper.minter.Mint(ctx, string(kind))
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrMintFailed, kind, err)
		}
		if err := validateURI(minted); err != nil {
			return "", fmt.Errorf("%w: minter returned %q", ErrMintFailed, minted)
		}
		subject = rdf.IRI(minted)
		s.mapper.metrics.identifierMinted()
		s.mapper.logger.Debug("minted subject URI",
			slog.String("kind", string(kind)),
			slog.String("uri", minted))
	}

	s.resolved[entity] = subject
	return subject, nil
}

// begin resolves the subject and reports whether the entity still needs
// describing. Entities are marked described before their attributes are
// walked so cyclic relations terminate.
func (s *session) begin(ctx context.Context, entity any, kind cpsv.Kind, explicit string) (rdf.IRI, bool, error) {
	subject, err := s.resolve(ctx, entity, kind, explicit)
	if err != nil {
		return "", false, err
	}
	if _, done := s.described[entity]; done {
		return subject, false, nil
	}
	s.described[entity] = struct{}{}

	s.add(subject, cpsv.RdfType, rdf.IRI(cpsv.ClassIRI(kind)))
	s.mapper.metrics.entityMapped(string(kind))
	return subject, true, nil
}

// add appends a triple, counting it only when the graph actually grew.
func (s *session) add(subject rdf.IRI, predicate string, object rdf.Object) {
	before := s.graph.Len()
	s.graph.Add(rdf.Triple{Subject: subject, Predicate: rdf.IRI(predicate), Object: object})
	if s.graph.Len() > before {
		s.mapper.metrics.tripleEmitted()
	}
}

// validateURI checks that s parses as an absolute URI.
func validateURI(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidURI, s, err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("%w: %q is not absolute", ErrInvalidURI, s)
	}
	return nil
}

// MapService describes a service and everything it references into g and
// returns the service's subject URI.
func (m *Mapper) MapService(ctx context.Context, svc *catalog.Service, g *rdf.Graph) (string, error) {
	if svc == nil {
		return "", fmt.Errorf("%w: service", ErrNilEntity)
	}
	subject, err := m.newSession(g).describeService(ctx, svc)
	return string(subject), err
}

// MapPublicOrganization describes an organization into g.
func (m *Mapper) MapPublicOrganization(ctx context.Context, org *catalog.PublicOrganization, g *rdf.Graph) (string, error) {
	if org == nil {
		return "", fmt.Errorf("%w: public organization", ErrNilEntity)
	}
	subject, err := m.newSession(g).describeOrganization(ctx, org)
	return string(subject), err
}

// MapLegalResource describes a legal resource and its related resources
// into g.
func (m *Mapper) MapLegalResource(ctx context.Context, lr *catalog.LegalResource, g *rdf.Graph) (string, error) {
	if lr == nil {
		return "", fmt.Errorf("%w: legal resource", ErrNilEntity)
	}
	subject, err := m.newSession(g).describeLegalResource(ctx, lr)
	return string(subject), err
}

// MapRule describes a rule and the legal resources it implements into g.
func (m *Mapper) MapRule(ctx context.Context, rule *catalog.Rule, g *rdf.Graph) (string, error) {
	if rule == nil {
		return "", fmt.Errorf("%w: rule", ErrNilEntity)
	}
	subject, err := m.newSession(g).describeRule(ctx, rule)
	return string(subject), err
}

// MapEvidence describes evidence into g.
func (m *Mapper) MapEvidence(ctx context.Context, ev *catalog.Evidence, g *rdf.Graph) (string, error) {
	if ev == nil {
		return "", fmt.Errorf("%w: evidence", ErrNilEntity)
	}
	subject, err := m.newSession(g).describeEvidence(ctx, ev)
	return string(subject), err
}

// MapEvent describes an event into g.
func (m *Mapper) MapEvent(ctx context.Context, ev *catalog.Event, g *rdf.Graph) (string, error) {
	if ev == nil {
		return "", fmt.Errorf("%w: event", ErrNilEntity)
	}
	subject, err := m.newSession(g).describeEvent(ctx, ev)
	return string(subject), err
}

// MapCriterionRequirement describes a criterion requirement into g.
func (m *Mapper) MapCriterionRequirement(ctx context.Context, cr *catalog.CriterionRequirement, g *rdf.Graph) (string, error) {
	if cr == nil {
		return "", fmt.Errorf("%w: criterion requirement", ErrNilEntity)
	}
	subject, err := m.newSession(g).describeCriterionRequirement(ctx, cr)
	return string(subject), err
}

// MapCatalog describes the catalog, its dcat:service links, and every
// listed service transitively into g. One session spans the whole call,
// so a service or organization referenced from several places resolves to
// one subject and is described once.
func (m *Mapper) MapCatalog(ctx context.Context, cat *catalog.Catalog, g *rdf.Graph) (string, error) {
	if cat == nil {
		return "", fmt.Errorf("%w: catalog", ErrNilEntity)
	}
	subject, err := m.newSession(g).describeCatalog(ctx, cat)
	return string(subject), err
}

// MapServices maps a bare top-level collection of services into g within
// a single session.
func (m *Mapper) MapServices(ctx context.Context, services []*catalog.Service, g *rdf.Graph) error {
	s := m.newSession(g)
	for _, svc := range services {
		if svc == nil {
			continue
		}
		if _, err := s.describeService(ctx, svc); err != nil {
			return err
		}
	}
	return nil
}
