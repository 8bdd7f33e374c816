package cpsv

// Kind discriminates the entity types the mapper knows how to describe.
type Kind string

// Kind constants name each mappable entity type. The string value is also
// the type hint passed to the identifier minter, so minted URIs come out
// namespaced per kind.
const (
	// KindService is the public-service entity kind.
	KindService Kind = "public-service"
	// KindPublicOrganization is the competent-organization entity kind.
	KindPublicOrganization Kind = "public-organization"
	// KindLegalResource is the legal-resource entity kind.
	KindLegalResource Kind = "legal-resource"
	// KindRule is the rule entity kind.
	KindRule Kind = "rule"
	// KindEvidence is the evidence entity kind.
	KindEvidence Kind = "evidence"
	// KindEvent is the event entity kind.
	KindEvent Kind = "event"
	// KindCriterionRequirement is the criterion-requirement entity kind.
	KindCriterionRequirement Kind = "criterion-requirement"
	// KindCatalog is the containing-catalog entity kind.
	KindCatalog Kind = "catalog"
)

// classMap maps each entity kind to its vocabulary class IRI.
var classMap = map[Kind]string{
	KindService:              ClassPublicService,
	KindPublicOrganization:   ClassPublicOrganization,
	KindLegalResource:        ClassLegalResource,
	KindRule:                 ClassRule,
	KindEvidence:             ClassEvidence,
	KindEvent:                ClassEvent,
	KindCriterionRequirement: ClassCriterionRequirement,
	KindCatalog:              ClassCatalog,
}

// ClassIRI returns the class IRI for a kind, or "" for an unknown kind.
func ClassIRI(k Kind) string {
	return classMap[k]
}

// Prefixes returns the prefix → namespace table serializers bind when
// writing the graph. The returned map is a copy.
func Prefixes() map[string]string {
	return map[string]string{
		"rdf":  RDFNamespace,
		"rdfs": RDFSNamespace,
		"xsd":  XSDNamespace,
		"dct":  DCTNamespace,
		"dcat": DCATNamespace,
		"cpsv": CPSVNamespace,
		"cv":   CVNamespace,
		"eli":  ELINamespace,
		"skos": SKOSNamespace,
		"foaf": FOAFNamespace,
	}
}
