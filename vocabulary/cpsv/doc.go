// Package cpsv provides the CPSV-AP / DCAT-AP-NO vocabulary used when
// mapping public-service-catalog entities to RDF.
//
// The package holds three things:
//   - Namespace constants for the vocabularies the profile draws from
//     (Dublin Core terms, DCAT, CPSV, the EU core vocabulary namespace,
//     ELI, SKOS, FOAF).
//   - Class and property IRI constants. These must match the published
//     CPSV-AP / DCAT-AP-NO IRIs exactly; any deviation is a compatibility
//     break for consumers harvesting the output.
//   - The Kind enumeration with its kind → class-IRI mapping, which is the
//     type discriminator the mapper dispatches on.
//
// All tables are fixed at compile time and never mutated at runtime.
//
// References:
//   - CPSV-AP: https://joinup.ec.europa.eu/collection/semic/solution/core-public-service-vocabulary-application-profile
//   - DCAT-AP-NO: https://data.norge.no/specification/dcat-ap-no/
package cpsv
