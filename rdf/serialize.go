package rdf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format specifies a concrete RDF serialization syntax.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

const rdfTypeIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Serialize renders the graph in the requested format.
func (g *Graph) Serialize(format Format) ([]byte, error) {
	switch format {
	case FormatTurtle:
		return g.toTurtle(), nil
	case FormatNTriples:
		return g.toNTriples(), nil
	case FormatJSONLD:
		return g.toJSONLD()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// toTurtle serializes to Turtle, grouping triples by subject. Terms are
// written as full IRIs; the prefix declarations exist for readers and for
// tools that re-serialize with compact names.
func (g *Graph) toTurtle() []byte {
	var sb strings.Builder

	prefixes := make([]string, 0, len(g.prefixes))
	for p := range g.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p, g.prefixes[p])
	}
	if len(prefixes) > 0 {
		sb.WriteString("\n")
	}

	bySubject := g.triplesBySubject()
	for _, subject := range g.Subjects() {
		triples := bySubject[subject]
		fmt.Fprintf(&sb, "%s\n", subject.Term())
		for i, t := range triples {
			pred := t.Predicate.Term()
			if string(t.Predicate) == rdfTypeIRI {
				pred = "a"
			}
			fmt.Fprintf(&sb, "    %s %s", pred, t.Object.Term())
			if i < len(triples)-1 {
				sb.WriteString(" ;\n")
			} else {
				sb.WriteString(" .\n")
			}
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String())
}

// triplesBySubject groups the sorted triple view by subject, with each
// subject's rdf:type triples first.
func (g *Graph) triplesBySubject() map[IRI][]Triple {
	out := make(map[IRI][]Triple)
	for _, t := range g.Triples() {
		out[t.Subject] = append(out[t.Subject], t)
	}
	for s, triples := range out {
		sort.SliceStable(triples, func(i, j int) bool {
			ti := string(triples[i].Predicate) == rdfTypeIRI
			tj := string(triples[j].Predicate) == rdfTypeIRI
			return ti && !tj
		})
		out[s] = triples
	}
	return out
}

// toNTriples serializes to N-Triples, one statement per line.
func (g *Graph) toNTriples() []byte {
	var sb strings.Builder
	for _, t := range g.Triples() {
		sb.WriteString(t.String())
		sb.WriteString(" .\n")
	}
	return []byte(sb.String())
}

// jsonldNode is the JSON-LD node object shape used by toJSONLD.
type jsonldNode struct {
	ID         string           `json:"@id"`
	Types      []string         `json:"@type,omitempty"`
	Properties map[string][]any `json:"-"`
}

// MarshalJSON flattens Properties next to @id/@type.
func (n jsonldNode) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Properties)+2)
	m["@id"] = n.ID
	if len(n.Types) > 0 {
		m["@type"] = n.Types
	}
	for k, v := range n.Properties {
		m[k] = v
	}
	return json.Marshal(m)
}

// toJSONLD serializes to expanded JSON-LD with a prefix context.
func (g *Graph) toJSONLD() ([]byte, error) {
	nodes := make(map[IRI]*jsonldNode)
	for _, t := range g.Triples() {
		node, ok := nodes[t.Subject]
		if !ok {
			node = &jsonldNode{
				ID:         string(t.Subject),
				Properties: make(map[string][]any),
			}
			nodes[t.Subject] = node
		}

		if string(t.Predicate) == rdfTypeIRI {
			if iri, ok := t.Object.(IRI); ok {
				node.Types = append(node.Types, string(iri))
				continue
			}
		}

		node.Properties[string(t.Predicate)] = append(
			node.Properties[string(t.Predicate)], jsonldObject(t.Object))
	}

	graph := make([]*jsonldNode, 0, len(nodes))
	for _, s := range g.Subjects() {
		graph = append(graph, nodes[s])
	}

	doc := map[string]any{"@graph": graph}
	if len(g.prefixes) > 0 {
		doc["@context"] = g.prefixes
	}
	return json.MarshalIndent(doc, "", "  ")
}

// jsonldObject renders a triple object as a JSON-LD value object.
func jsonldObject(o Object) any {
	switch v := o.(type) {
	case IRI:
		return map[string]any{"@id": string(v)}
	case Literal:
		switch {
		case v.Lang != "":
			return map[string]any{"@value": v.Value, "@language": v.Lang}
		case v.Datatype != "":
			return map[string]any{"@value": v.Value, "@type": v.Datatype}
		default:
			return v.Value
		}
	default:
		return fmt.Sprintf("%v", o)
	}
}
