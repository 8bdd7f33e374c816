package rdf

import (
	"encoding/json"
	"strings"
	"testing"
)

func testGraph() *Graph {
	g := NewGraph()
	g.Bind("dct", "http://purl.org/dc/terms/")
	g.Bind("cpsv", "http://purl.org/vocab/cpsv#")

	s := IRI("http://example.com/services/1")
	g.Add(Triple{s, IRI(rdfTypeIRI), IRI("http://purl.org/vocab/cpsv#PublicService")})
	g.Add(Triple{s, "http://purl.org/dc/terms/title", NewLangLiteral("incomeAPI", "en")})
	g.Add(Triple{s, "http://purl.org/dc/terms/title", NewLangLiteral("inntektsAPI", "nb")})
	g.Add(Triple{s, "http://data.europa.eu/m8g/processingTime",
		NewTypedLiteral("P1D", "http://www.w3.org/2001/XMLSchema#duration")})
	g.Add(Triple{s, "http://data.europa.eu/m8g/hasCompetentAuthority",
		IRI("http://example.com/organizations/1")})
	g.Add(Triple{"http://example.com/organizations/1", IRI(rdfTypeIRI),
		IRI("http://data.europa.eu/m8g/PublicOrganization")})
	return g
}

func TestSerializeTurtle(t *testing.T) {
	out, err := testGraph().Serialize(FormatTurtle)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	ttl := string(out)

	if !strings.Contains(ttl, "@prefix dct: <http://purl.org/dc/terms/> .") {
		t.Error("Turtle output should declare bound prefixes")
	}
	if !strings.Contains(ttl, "a <http://purl.org/vocab/cpsv#PublicService>") {
		t.Error("rdf:type should be written as 'a'")
	}
	if !strings.Contains(ttl, `"incomeAPI"@en`) {
		t.Error("language-tagged literal missing")
	}
	if !strings.Contains(ttl, `"P1D"^^<http://www.w3.org/2001/XMLSchema#duration>`) {
		t.Error("typed literal missing")
	}
}

func TestSerializeNTriples(t *testing.T) {
	out, err := testGraph().Serialize(FormatNTriples)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != testGraph().Len() {
		t.Errorf("expected %d lines, got %d", testGraph().Len(), len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, " .") {
			t.Errorf("N-Triples line should end with ' .': %s", line)
		}
		if !strings.HasPrefix(line, "<") {
			t.Errorf("N-Triples line should start with an IRI: %s", line)
		}
	}
}

func TestSerializeJSONLD(t *testing.T) {
	out, err := testGraph().Serialize(FormatJSONLD)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("JSON-LD output is not valid JSON: %v", err)
	}
	graph, ok := doc["@graph"].([]any)
	if !ok {
		t.Fatal("JSON-LD output should contain a @graph array")
	}
	if len(graph) != 2 {
		t.Errorf("expected 2 node objects, got %d", len(graph))
	}
	if _, ok := doc["@context"]; !ok {
		t.Error("JSON-LD output should carry the prefix context")
	}
}

func TestSerializeUnsupportedFormat(t *testing.T) {
	if _, err := testGraph().Serialize(Format("rdfxml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestTurtleRoundTrip(t *testing.T) {
	g := testGraph()
	out, err := g.Serialize(FormatTurtle)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	parsed, err := Parse(out, FormatTurtle)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !g.Equal(parsed) {
		t.Errorf("turtle round trip not isomorphic:\noriginal %d triples, parsed %d", g.Len(), parsed.Len())
	}
}

func TestNTriplesRoundTrip(t *testing.T) {
	g := testGraph()
	out, err := g.Serialize(FormatNTriples)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	parsed, err := Parse(out, FormatNTriples)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !g.Equal(parsed) {
		t.Error("ntriples round trip not isomorphic")
	}
}

func TestRoundTripEscapedLiteral(t *testing.T) {
	g := NewGraph()
	g.Add(Triple{
		Subject:   "http://ex.org/s",
		Predicate: "http://purl.org/dc/terms/description",
		Object:    NewLangLiteral("line one\nline \"two\"\twith\\slash", "en"),
	})

	for _, format := range []Format{FormatTurtle, FormatNTriples} {
		out, err := g.Serialize(format)
		if err != nil {
			t.Fatalf("%s: Serialize failed: %v", format, err)
		}
		parsed, err := Parse(out, format)
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", format, err)
		}
		if !g.Equal(parsed) {
			t.Errorf("%s: escaped literal did not round trip", format)
		}
	}
}

func TestParsePrefixedNames(t *testing.T) {
	input := `@prefix dct: <http://purl.org/dc/terms/> .
<http://ex.org/s> dct:title "hello"@en .
`
	g, err := Parse([]byte(input), FormatTurtle)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Triple{
		Subject:   "http://ex.org/s",
		Predicate: "http://purl.org/dc/terms/title",
		Object:    NewLangLiteral("hello", "en"),
	}
	if !g.Has(want) {
		t.Error("prefixed predicate name should resolve against declared prefix")
	}
}

func TestParseUndeclaredPrefix(t *testing.T) {
	if _, err := Parse([]byte(`<http://ex.org/s> dct:title "x" .`), FormatTurtle); err == nil {
		t.Error("expected error for undeclared prefix")
	}
}
