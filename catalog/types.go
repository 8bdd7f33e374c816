// Package catalog defines the public-service-catalog entity model that is
// mapped to RDF. Entities are plain mutable value-holders: the caller
// constructs them, populates attributes, attaches them into a containing
// collection, and the mapper consumes them read-only.
//
// Absence is modeled by zero values — a nil map, nil slice, or empty
// string means "attribute not set" and yields no triples. An entity's
// Identifier may be left empty; the mapper then mints a skolem URI for it
// (and does not write the minted URI back).
package catalog

// Service represents a public service (cpsv:PublicService).
type Service struct {
	// Identifier is the URI identifying the service. Optional; minted
	// when empty.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`

	// Title is the service name, keyed by language code.
	Title map[string]string `yaml:"title,omitempty" json:"title,omitempty"`

	// Description is a free-text account, keyed by language code.
	Description map[string]string `yaml:"description,omitempty" json:"description,omitempty"`

	// DctIdentifier is a formal identifier distinct from the URI.
	DctIdentifier string `yaml:"dct_identifier,omitempty" json:"dct_identifier,omitempty"`

	// Keywords tag the service; duplicates collapse in the graph.
	Keywords []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`

	// ProcessingTime is the estimated execution time as an ISO 8601
	// duration (e.g. "P1D").
	ProcessingTime string `yaml:"processing_time,omitempty" json:"processing_time,omitempty"`

	// CompetentAuthorities lists the organizations responsible for the
	// service.
	CompetentAuthorities []*PublicOrganization `yaml:"competent_authorities,omitempty" json:"competent_authorities,omitempty"`

	// Follows lists the rules under which the service is offered.
	Follows []*Rule `yaml:"follows,omitempty" json:"follows,omitempty"`

	// LegalResources lists legal resources the service relates to.
	LegalResources []*LegalResource `yaml:"legal_resources,omitempty" json:"legal_resources,omitempty"`

	// HasInput lists evidence the service requires.
	HasInput []*Evidence `yaml:"has_input,omitempty" json:"has_input,omitempty"`

	// GroupedBy lists events the service is grouped by.
	GroupedBy []*Event `yaml:"grouped_by,omitempty" json:"grouped_by,omitempty"`
}

// PublicOrganization represents a competent organization
// (cv:PublicOrganization).
type PublicOrganization struct {
	// Identifier is the URI identifying the organization.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`

	// Title is the organization name, keyed by language code.
	Title map[string]string `yaml:"title,omitempty" json:"title,omitempty"`

	// PrefLabel is the preferred label, keyed by language code.
	PrefLabel map[string]string `yaml:"pref_label,omitempty" json:"pref_label,omitempty"`

	// DctIdentifier is a formal identifier such as an organization number.
	DctIdentifier string `yaml:"dct_identifier,omitempty" json:"dct_identifier,omitempty"`

	// SpatialCoverage is the URI of the geographic area the organization
	// covers.
	SpatialCoverage string `yaml:"spatial_coverage,omitempty" json:"spatial_coverage,omitempty"`
}

// LegalResource represents a legal resource (eli:LegalResource).
type LegalResource struct {
	// Identifier is the URI identifying the resource. Optional.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`

	// DctIdentifier is a formal identifier for the resource.
	DctIdentifier string `yaml:"dct_identifier,omitempty" json:"dct_identifier,omitempty"`

	// Description is a free-text account, keyed by language code.
	Description map[string]string `yaml:"description,omitempty" json:"description,omitempty"`

	// Types links to resource-type concepts.
	Types []*ResourceType `yaml:"types,omitempty" json:"types,omitempty"`

	// References lists URIs of resources with additional information.
	References []string `yaml:"references,omitempty" json:"references,omitempty"`

	// Related lists related legal resources. Cycles are permitted.
	Related []*LegalResource `yaml:"related,omitempty" json:"related,omitempty"`
}

// ResourceType identifies a legal-resource type concept.
type ResourceType struct {
	// Identifier is the URI of the type concept.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`
}

// Rule represents a rule a service operates under (cpsv:Rule).
type Rule struct {
	// Identifier is the URI identifying the rule. Optional.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`

	// DctIdentifier is a formal identifier for the rule.
	DctIdentifier string `yaml:"dct_identifier,omitempty" json:"dct_identifier,omitempty"`

	// Title is the rule name, keyed by language code.
	Title map[string]string `yaml:"title,omitempty" json:"title,omitempty"`

	// Description is a free-text account, keyed by language code.
	Description map[string]string `yaml:"description,omitempty" json:"description,omitempty"`

	// Implements lists legal resources the rule is defined under.
	Implements []*LegalResource `yaml:"implements,omitempty" json:"implements,omitempty"`

	// Languages lists URIs of languages the rule is available in.
	Languages []string `yaml:"languages,omitempty" json:"languages,omitempty"`

	// Types links to concepts describing the kind of rule.
	Types []string `yaml:"types,omitempty" json:"types,omitempty"`
}

// Evidence represents documentation a service requires as input
// (cpsv:Evidence).
type Evidence struct {
	// Identifier is the URI identifying the evidence. Optional.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`

	// DctIdentifier is a formal identifier for the evidence.
	DctIdentifier string `yaml:"dct_identifier,omitempty" json:"dct_identifier,omitempty"`

	// Name is the official name, keyed by language code.
	Name map[string]string `yaml:"name,omitempty" json:"name,omitempty"`

	// Description is a free-text account, keyed by language code.
	Description map[string]string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type is the URI of an evidence-type concept.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`

	// RelatedDocumentation lists URIs of supporting documentation.
	RelatedDocumentation []string `yaml:"related_documentation,omitempty" json:"related_documentation,omitempty"`

	// Languages lists URIs of languages the evidence must be provided in.
	Languages []string `yaml:"languages,omitempty" json:"languages,omitempty"`
}

// Event represents a life or business event (cpsv:Event).
type Event struct {
	// Identifier is the URI identifying the event. Optional.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`

	// DctIdentifier is a formal identifier for the event.
	DctIdentifier string `yaml:"dct_identifier,omitempty" json:"dct_identifier,omitempty"`

	// Name is the official name, keyed by language code.
	Name map[string]string `yaml:"name,omitempty" json:"name,omitempty"`

	// Description is a free-text account, keyed by language code.
	Description map[string]string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type is the URI of an event-type concept.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`

	// RelatedService lists URIs of services related to the event.
	RelatedService []string `yaml:"related_service,omitempty" json:"related_service,omitempty"`
}

// CriterionRequirement represents a criterion for evaluating whether an
// applicant qualifies for a service (cv:CriterionRequirement).
type CriterionRequirement struct {
	// Identifier is the URI identifying the criterion. Optional.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`

	// DctIdentifier is a formal identifier; serialized typed as
	// xsd:anyURI.
	DctIdentifier string `yaml:"dct_identifier,omitempty" json:"dct_identifier,omitempty"`

	// Title is the criterion name, keyed by language code.
	Title map[string]string `yaml:"title,omitempty" json:"title,omitempty"`

	// Types links to concepts describing kinds of criterion requirements.
	Types []string `yaml:"types,omitempty" json:"types,omitempty"`
}

// Catalog is the top-level collection of services (dcat:Catalog).
type Catalog struct {
	// Identifier is the URI identifying the catalog. Optional.
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`

	// Title is the catalog name, keyed by language code.
	Title map[string]string `yaml:"title,omitempty" json:"title,omitempty"`

	// Publisher is the URI of the publishing organization.
	Publisher string `yaml:"publisher,omitempty" json:"publisher,omitempty"`

	// Services lists the services the catalog contains.
	Services []*Service `yaml:"services,omitempty" json:"services,omitempty"`
}
