package cpsv

// Namespace IRIs for the vocabularies the profile draws from.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// DCTNamespace is the Dublin Core terms namespace.
	DCTNamespace = "http://purl.org/dc/terms/"

	// DCATNamespace is the W3C Data Catalog vocabulary namespace.
	DCATNamespace = "http://www.w3.org/ns/dcat#"

	// CPSVNamespace is the Core Public Service Vocabulary namespace.
	CPSVNamespace = "http://purl.org/vocab/cpsv#"

	// CVNamespace is the EU core vocabulary namespace ("m8g").
	CVNamespace = "http://data.europa.eu/m8g/"

	// ELINamespace is the European Legislation Identifier ontology namespace.
	ELINamespace = "http://data.europa.eu/eli/ontology#"

	// SKOSNamespace is the Simple Knowledge Organization System namespace.
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"

	// FOAFNamespace is the Friend of a Friend namespace.
	FOAFNamespace = "http://xmlns.com/foaf/0.1/"
)

// RdfType is the rdf:type property.
const RdfType = RDFNamespace + "type"

// Class IRIs for the entity types described by the profile.
const (
	// ClassPublicService is a public service (cpsv:PublicService).
	ClassPublicService = CPSVNamespace + "PublicService"

	// ClassPublicOrganization is a competent organization
	// (cv:PublicOrganization).
	ClassPublicOrganization = CVNamespace + "PublicOrganization"

	// ClassLegalResource is a legal resource (eli:LegalResource).
	ClassLegalResource = ELINamespace + "LegalResource"

	// ClassRule is a rule under which a service is offered (cpsv:Rule).
	ClassRule = CPSVNamespace + "Rule"

	// ClassEvidence is documentation required as service input
	// (cpsv:Evidence).
	ClassEvidence = CPSVNamespace + "Evidence"

	// ClassEvent is a life or business event grouping services (cpsv:Event).
	ClassEvent = CPSVNamespace + "Event"

	// ClassCriterionRequirement is a criterion for evaluating applicants
	// (cv:CriterionRequirement).
	ClassCriterionRequirement = CVNamespace + "CriterionRequirement"

	// ClassCatalog is the containing catalog (dcat:Catalog).
	ClassCatalog = DCATNamespace + "Catalog"
)

// Dublin Core property IRIs.
const (
	// DctTitle is the name given to an entity, language-tagged.
	DctTitle = DCTNamespace + "title"

	// DctDescription is a free-text account of an entity, language-tagged.
	DctDescription = DCTNamespace + "description"

	// DctIdentifier is a formal identifier distinct from the subject URI.
	DctIdentifier = DCTNamespace + "identifier"

	// DctType links an entity to a concept describing its type.
	DctType = DCTNamespace + "type"

	// DctLanguage links to a language an entity is available in.
	DctLanguage = DCTNamespace + "language"

	// DctRelation links to a related resource.
	DctRelation = DCTNamespace + "relation"

	// DctSpatial is the geographic area an organization covers.
	DctSpatial = DCTNamespace + "spatial"

	// DctPublisher links a catalog to the organization publishing it.
	DctPublisher = DCTNamespace + "publisher"
)

// DCAT property IRIs.
const (
	// DcatKeyword is a keyword or tag describing a service.
	DcatKeyword = DCATNamespace + "keyword"

	// DcatService links a catalog to a service it lists.
	DcatService = DCATNamespace + "service"
)

// CPSV and EU core vocabulary property IRIs.
const (
	// CvHasCompetentAuthority links a service to the responsible
	// organization.
	CvHasCompetentAuthority = CVNamespace + "hasCompetentAuthority"

	// CvHasLegalResource links a service to a legal resource it relates to.
	CvHasLegalResource = CVNamespace + "hasLegalResource"

	// CvProcessingTime is the estimated processing duration of a service.
	CvProcessingTime = CVNamespace + "processingTime"

	// CvIsGroupedBy links a service to an event it is grouped by.
	CvIsGroupedBy = CVNamespace + "isGroupedBy"

	// CpsvFollows links a service to a rule it operates under.
	CpsvFollows = CPSVNamespace + "follows"

	// CpsvImplements links a rule to the legal resource it implements.
	CpsvImplements = CPSVNamespace + "implements"

	// CpsvHasInput links a service to evidence it requires.
	CpsvHasInput = CPSVNamespace + "hasInput"
)

// Miscellaneous property IRIs.
const (
	// RdfsSeeAlso links to a resource providing additional information.
	RdfsSeeAlso = RDFSNamespace + "seeAlso"

	// SkosPrefLabel is the preferred label of an organization,
	// language-tagged.
	SkosPrefLabel = SKOSNamespace + "prefLabel"

	// FoafPage links evidence to related documentation pages.
	FoafPage = FOAFNamespace + "page"
)

// XSD datatype IRIs used for typed literals.
const (
	// XsdDuration types processing-time literals (ISO 8601 durations).
	XsdDuration = XSDNamespace + "duration"

	// XsdAnyURI types formal identifiers that are themselves URIs.
	XsdAnyURI = XSDNamespace + "anyURI"
)
