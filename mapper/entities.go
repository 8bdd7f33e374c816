package mapper

import (
	"context"

	"github.com/katalogdata/servicetordf/catalog"
	"github.com/katalogdata/servicetordf/rdf"
	"github.com/katalogdata/servicetordf/vocabulary/cpsv"
)

// Per-kind mappers. Each follows the same shape: begin (resolve subject,
// emit the rdf:type triple, guard against re-describing), emit literal
// attributes, then recursively describe related entities and link them.
// Step order is free — every step produces independent triples.

func (s *session) describeService(ctx context.Context, svc *catalog.Service) (rdf.IRI, error) {
	subject, fresh, err := s.begin(ctx, svc, cpsv.KindService, svc.Identifier)
	if err != nil || !fresh {
		return subject, err
	}

	s.emitLangMap(subject, cpsv.DctTitle, svc.Title)
	s.emitLangMap(subject, cpsv.DctDescription, svc.Description)
	s.emitLiteral(subject, cpsv.DctIdentifier, svc.DctIdentifier)
	s.emitLiterals(subject, cpsv.DcatKeyword, svc.Keywords)
	s.emitTypedLiteral(subject, cpsv.CvProcessingTime, svc.ProcessingTime, cpsv.XsdDuration)

	for _, org := range svc.CompetentAuthorities {
		if org == nil {
			continue
		}
		related, err := s.describeOrganization(ctx, org)
		if err != nil {
			return "", err
		}
		s.add(subject, cpsv.CvHasCompetentAuthority, related)
	}

	for _, rule := range svc.Follows {
		if rule == nil {
			continue
		}
		related, err := s.describeRule(ctx, rule)
		if err != nil {
			return "", err
		}
		s.add(subject, cpsv.CpsvFollows, related)
	}

	for _, lr := range svc.LegalResources {
		if lr == nil {
			continue
		}
		related, err := s.describeLegalResource(ctx, lr)
		if err != nil {
			return "", err
		}
		s.add(subject, cpsv.CvHasLegalResource, related)
	}

	for _, ev := range svc.HasInput {
		if ev == nil {
			continue
		}
		related, err := s.describeEvidence(ctx, ev)
		if err != nil {
			return "", err
		}
		s.add(subject, cpsv.CpsvHasInput, related)
	}

	for _, ev := range svc.GroupedBy {
		if ev == nil {
			continue
		}
		related, err := s.describeEvent(ctx, ev)
		if err != nil {
			return "", err
		}
		s.add(subject, cpsv.CvIsGroupedBy, related)
	}

	return subject, nil
}

func (s *session) describeOrganization(ctx context.Context, org *catalog.PublicOrganization) (rdf.IRI, error) {
	subject, fresh, err := s.begin(ctx, org, cpsv.KindPublicOrganization, org.Identifier)
	if err != nil || !fresh {
		return subject, err
	}

	s.emitLangMap(subject, cpsv.DctTitle, org.Title)
	s.emitLangMap(subject, cpsv.SkosPrefLabel, org.PrefLabel)
	s.emitLiteral(subject, cpsv.DctIdentifier, org.DctIdentifier)
	if err := s.emitURI(subject, cpsv.DctSpatial, org.SpatialCoverage); err != nil {
		return "", err
	}

	return subject, nil
}

func (s *session) describeLegalResource(ctx context.Context, lr *catalog.LegalResource) (rdf.IRI, error) {
	subject, fresh, err := s.begin(ctx, lr, cpsv.KindLegalResource, lr.Identifier)
	if err != nil || !fresh {
		return subject, err
	}

	s.emitLiteral(subject, cpsv.DctIdentifier, lr.DctIdentifier)
	s.emitLangMap(subject, cpsv.DctDescription, lr.Description)
	if err := s.emitURIs(subject, cpsv.RdfsSeeAlso, lr.References); err != nil {
		return "", err
	}

	for _, rt := range lr.Types {
		if rt == nil || rt.Identifier == "" {
			continue
		}
		if err := s.emitURI(subject, cpsv.DctType, rt.Identifier); err != nil {
			return "", err
		}
	}

	// Related legal resources may form cycles; begin's described set
	// terminates the walk.
	for _, related := range lr.Related {
		if related == nil {
			continue
		}
		relSubject, err := s.describeLegalResource(ctx, related)
		if err != nil {
			return "", err
		}
		s.add(subject, cpsv.DctRelation, relSubject)
	}

	return subject, nil
}

func (s *session) describeRule(ctx context.Context, rule *catalog.Rule) (rdf.IRI, error) {
	subject, fresh, err := s.begin(ctx, rule, cpsv.KindRule, rule.Identifier)
	if err != nil || !fresh {
		return subject, err
	}

	s.emitLiteral(subject, cpsv.DctIdentifier, rule.DctIdentifier)
	s.emitLangMap(subject, cpsv.DctTitle, rule.Title)
	s.emitLangMap(subject, cpsv.DctDescription, rule.Description)
	if err := s.emitURIs(subject, cpsv.DctLanguage, rule.Languages); err != nil {
		return "", err
	}
	if err := s.emitURIs(subject, cpsv.DctType, rule.Types); err != nil {
		return "", err
	}

	for _, lr := range rule.Implements {
		if lr == nil {
			continue
		}
		related, err := s.describeLegalResource(ctx, lr)
		if err != nil {
			return "", err
		}
		s.add(subject, cpsv.CpsvImplements, related)
	}

	return subject, nil
}

func (s *session) describeEvidence(ctx context.Context, ev *catalog.Evidence) (rdf.IRI, error) {
	subject, fresh, err := s.begin(ctx, ev, cpsv.KindEvidence, ev.Identifier)
	if err != nil || !fresh {
		return subject, err
	}

	s.emitLiteral(subject, cpsv.DctIdentifier, ev.DctIdentifier)
	s.emitLangMap(subject, cpsv.DctTitle, ev.Name)
	s.emitLangMap(subject, cpsv.DctDescription, ev.Description)
	if err := s.emitURI(subject, cpsv.DctType, ev.Type); err != nil {
		return "", err
	}
	if err := s.emitURIs(subject, cpsv.FoafPage, ev.RelatedDocumentation); err != nil {
		return "", err
	}
	if err := s.emitURIs(subject, cpsv.DctLanguage, ev.Languages); err != nil {
		return "", err
	}

	return subject, nil
}

func (s *session) describeEvent(ctx context.Context, ev *catalog.Event) (rdf.IRI, error) {
	subject, fresh, err := s.begin(ctx, ev, cpsv.KindEvent, ev.Identifier)
	if err != nil || !fresh {
		return subject, err
	}

	s.emitLiteral(subject, cpsv.DctIdentifier, ev.DctIdentifier)
	s.emitLangMap(subject, cpsv.DctTitle, ev.Name)
	s.emitLangMap(subject, cpsv.DctDescription, ev.Description)
	if err := s.emitURI(subject, cpsv.DctType, ev.Type); err != nil {
		return "", err
	}
	if err := s.emitURIs(subject, cpsv.DctRelation, ev.RelatedService); err != nil {
		return "", err
	}

	return subject, nil
}

func (s *session) describeCriterionRequirement(ctx context.Context, cr *catalog.CriterionRequirement) (rdf.IRI, error) {
	subject, fresh, err := s.begin(ctx, cr, cpsv.KindCriterionRequirement, cr.Identifier)
	if err != nil || !fresh {
		return subject, err
	}

	s.emitLangMap(subject, cpsv.DctTitle, cr.Title)
	s.emitTypedLiteral(subject, cpsv.DctIdentifier, cr.DctIdentifier, cpsv.XsdAnyURI)
	if err := s.emitURIs(subject, cpsv.DctType, cr.Types); err != nil {
		return "", err
	}

	return subject, nil
}

func (s *session) describeCatalog(ctx context.Context, cat *catalog.Catalog) (rdf.IRI, error) {
	subject, fresh, err := s.begin(ctx, cat, cpsv.KindCatalog, cat.Identifier)
	if err != nil || !fresh {
		return subject, err
	}

	s.emitLangMap(subject, cpsv.DctTitle, cat.Title)
	if err := s.emitURI(subject, cpsv.DctPublisher, cat.Publisher); err != nil {
		return "", err
	}

	for _, svc := range cat.Services {
		if svc == nil {
			continue
		}
		related, err := s.describeService(ctx, svc)
		if err != nil {
			return "", err
		}
		s.add(subject, cpsv.DcatService, related)
	}

	return subject, nil
}
