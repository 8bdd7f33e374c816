package mapper

import (
	"github.com/katalogdata/servicetordf/rdf"
)

// Literal encoding helpers. The shared policy: absence is silent. A nil
// or empty map, empty slice, or empty string emits nothing — never an
// empty-string literal.

// emitLangMap emits one language-tagged literal per map entry.
func (s *session) emitLangMap(subject rdf.IRI, predicate string, values map[string]string) {
	for lang, text := range values {
		s.add(subject, predicate, rdf.NewLangLiteral(text, lang))
	}
}

// emitLiteral emits a single plain literal when value is set.
func (s *session) emitLiteral(subject rdf.IRI, predicate, value string) {
	if value == "" {
		return
	}
	s.add(subject, predicate, rdf.NewLiteral(value))
}

// emitTypedLiteral emits a single datatyped literal when value is set.
func (s *session) emitTypedLiteral(subject rdf.IRI, predicate, value, datatype string) {
	if value == "" {
		return
	}
	s.add(subject, predicate, rdf.NewTypedLiteral(value, datatype))
}

// emitLiterals emits one plain literal per set member. Order carries no
// meaning; duplicate members collapse in the graph.
func (s *session) emitLiterals(subject rdf.IRI, predicate string, values []string) {
	for _, v := range values {
		s.emitLiteral(subject, predicate, v)
	}
}

// emitURI emits a single IRI-object triple when value is set. A value
// that is not an absolute URI is a contract violation.
func (s *session) emitURI(subject rdf.IRI, predicate, value string) error {
	if value == "" {
		return nil
	}
	if err := validateURI(value); err != nil {
		return err
	}
	s.add(subject, predicate, rdf.IRI(value))
	return nil
}

// emitURIs emits one IRI-object triple per set member.
func (s *session) emitURIs(subject rdf.IRI, predicate string, values []string) error {
	for _, v := range values {
		if err := s.emitURI(subject, predicate, v); err != nil {
			return err
		}
	}
	return nil
}
