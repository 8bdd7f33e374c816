// Package rdf provides the triple-set graph container and its concrete
// serializations (Turtle, N-Triples, JSON-LD). The graph is append-only:
// triples are never removed or rewritten once added, and adding the same
// triple twice is a no-op, which is what makes repeated references to an
// already-described entity collapse naturally.
//
// Blank nodes are intentionally absent from the term model. Entities
// without a caller-supplied identifier get skolem URIs instead, so graph
// equality is plain set equality.
package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// Object is an RDF triple object: either an IRI reference or a Literal.
type Object interface {
	// Term renders the object in N-Triples term syntax.
	Term() string

	isObject()
}

// IRI is an absolute IRI reference.
type IRI string

// Term renders the IRI in N-Triples syntax.
func (i IRI) Term() string { return "<" + string(i) + ">" }

func (IRI) isObject() {}

// Literal is a typed or language-tagged literal value.
// Lang and Datatype are mutually exclusive; both empty means a plain
// (xsd:string) literal.
type Literal struct {
	Value    string
	Lang     string
	Datatype string
}

// Term renders the literal in N-Triples syntax.
func (l Literal) Term() string {
	s := `"` + escapeString(l.Value) + `"`
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.Datatype != "":
		return s + "^^<" + l.Datatype + ">"
	default:
		return s
	}
}

func (Literal) isObject() {}

// NewLiteral returns a plain literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// NewLangLiteral returns a language-tagged literal.
func NewLangLiteral(value, lang string) Literal {
	return Literal{Value: value, Lang: lang}
}

// NewTypedLiteral returns a literal typed with the given datatype IRI.
func NewTypedLiteral(value, datatype string) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// Triple is a single (subject, predicate, object) statement.
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Object
}

// String renders the triple as an N-Triples statement without the
// terminating dot.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s", t.Subject.Term(), t.Predicate.Term(), t.Object.Term())
}

// Graph is a mutable set of triples with bound namespace prefixes.
// It is not safe for concurrent mutation; map independent collections
// into separate graphs instead.
type Graph struct {
	triples  map[Triple]struct{}
	order    []Triple
	prefixes map[string]string
}

// NewGraph returns an empty graph with no prefixes bound.
func NewGraph() *Graph {
	return &Graph{
		triples:  make(map[Triple]struct{}),
		prefixes: make(map[string]string),
	}
}

// Bind associates a prefix with a namespace for serialization output.
// Binding an already-bound prefix replaces it.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Add inserts a triple. Duplicate triples are ignored (set semantics).
func (g *Graph) Add(t Triple) {
	if _, ok := g.triples[t]; ok {
		return
	}
	g.triples[t] = struct{}{}
	g.order = append(g.order, t)
}

// Has reports whether the graph contains the triple.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the triples sorted by subject, predicate, then object.
// The sort gives serializers and tests a deterministic view even though
// the graph itself carries no order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.order))
	copy(out, g.order)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		if out[i].Predicate != out[j].Predicate {
			return out[i].Predicate < out[j].Predicate
		}
		return out[i].Object.Term() < out[j].Object.Term()
	})
	return out
}

// Subjects returns the distinct subject IRIs in sorted order.
func (g *Graph) Subjects() []IRI {
	seen := make(map[IRI]struct{})
	for t := range g.triples {
		seen[t.Subject] = struct{}{}
	}
	out := make([]IRI, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether both graphs contain exactly the same triple set.
// Prefix bindings do not participate in equality.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	for t := range g.triples {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// escapeString escapes special characters per the N-Triples grammar.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// unescapeString reverses escapeString.
func unescapeString(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
