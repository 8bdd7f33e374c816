package rdf

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse reads a serialized graph back into a triple set. Turtle and
// N-Triples are supported; the parser covers the constructs this package's
// own serializers emit (prefix declarations, the "a" keyword, full and
// prefixed IRI terms, language-tagged and datatyped literals, semicolon
// predicate lists) so serialize∘parse is identity on the triple set.
func Parse(data []byte, format Format) (*Graph, error) {
	switch format {
	case FormatTurtle, FormatNTriples:
		return parseTurtle(string(data))
	default:
		return nil, fmt.Errorf("unsupported parse format: %s", format)
	}
}

// token kinds produced by the lexer.
type tokenKind int

const (
	tokIRI tokenKind = iota
	tokLiteral
	tokPrefixedName
	tokA
	tokSemicolon
	tokDot
	tokPrefixDirective
	tokEOF
)

type token struct {
	kind tokenKind
	// text is the IRI body, prefixed name, or directive keyword.
	text string
	// lit carries literal details when kind == tokLiteral.
	lit Literal
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	if l.pos >= len(l.input) {
		return token{kind: tokEOF}, nil
	}

	switch c := l.input[l.pos]; {
	case c == '<':
		end := strings.IndexByte(l.input[l.pos:], '>')
		if end < 0 {
			return token{}, fmt.Errorf("unterminated IRI at offset %d", l.pos)
		}
		iri := l.input[l.pos+1 : l.pos+end]
		l.pos += end + 1
		return token{kind: tokIRI, text: iri}, nil

	case c == '"':
		return l.lexLiteral()

	case c == ';':
		l.pos++
		return token{kind: tokSemicolon}, nil

	case c == '.':
		l.pos++
		return token{kind: tokDot}, nil

	case c == '@':
		word := l.readWord()
		if word == "@prefix" {
			return token{kind: tokPrefixDirective, text: word}, nil
		}
		return token{}, fmt.Errorf("unsupported directive %q", word)

	default:
		word := l.readWord()
		if word == "" {
			return token{}, fmt.Errorf("unexpected character %q at offset %d", c, l.pos)
		}
		if word == "a" {
			return token{kind: tokA}, nil
		}
		return token{kind: tokPrefixedName, text: word}, nil
	}
}

// lexLiteral reads a quoted literal with optional @lang or ^^<datatype>.
func (l *lexer) lexLiteral() (token, error) {
	// l.input[l.pos] == '"'
	i := l.pos + 1
	for i < len(l.input) {
		if l.input[i] == '\\' {
			i += 2
			continue
		}
		if l.input[i] == '"' {
			break
		}
		i++
	}
	if i >= len(l.input) {
		return token{}, fmt.Errorf("unterminated literal at offset %d", l.pos)
	}

	lit := Literal{Value: unescapeString(l.input[l.pos+1 : i])}
	l.pos = i + 1

	if l.pos < len(l.input) && l.input[l.pos] == '@' {
		l.pos++
		start := l.pos
		for l.pos < len(l.input) && (isAlnum(l.input[l.pos]) || l.input[l.pos] == '-') {
			l.pos++
		}
		lit.Lang = l.input[start:l.pos]
	} else if strings.HasPrefix(l.input[l.pos:], "^^") {
		l.pos += 2
		if l.pos >= len(l.input) || l.input[l.pos] != '<' {
			return token{}, fmt.Errorf("expected datatype IRI at offset %d", l.pos)
		}
		end := strings.IndexByte(l.input[l.pos:], '>')
		if end < 0 {
			return token{}, fmt.Errorf("unterminated datatype IRI at offset %d", l.pos)
		}
		lit.Datatype = l.input[l.pos+1 : l.pos+end]
		l.pos += end + 1
	}

	return token{kind: tokLiteral, lit: lit}, nil
}

func (l *lexer) readWord() string {
	start := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if unicode.IsSpace(rune(c)) || c == ';' || c == '<' || c == '"' {
			break
		}
		// A dot ends a word only when it terminates the statement.
		if c == '.' && (l.pos+1 >= len(l.input) || unicode.IsSpace(rune(l.input[l.pos+1]))) {
			break
		}
		l.pos++
	}
	return l.input[start:l.pos]
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if unicode.IsSpace(rune(c)) {
			l.pos++
			continue
		}
		if c == '#' {
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
			continue
		}
		return
	}
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// parseTurtle drives the lexer over statements and prefix directives.
func parseTurtle(input string) (*Graph, error) {
	g := NewGraph()
	lex := &lexer{input: input}

	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}

		switch tok.kind {
		case tokEOF:
			return g, nil

		case tokPrefixDirective:
			if err := parsePrefix(lex, g); err != nil {
				return nil, err
			}

		case tokIRI, tokPrefixedName:
			subject, err := resolveIRI(tok, g)
			if err != nil {
				return nil, err
			}
			if err := parsePredicateList(lex, g, subject); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("unexpected token at statement start")
		}
	}
}

// parsePrefix consumes `pfx: <iri> .` after an @prefix directive.
func parsePrefix(lex *lexer, g *Graph) error {
	name, err := lex.next()
	if err != nil {
		return err
	}
	if name.kind != tokPrefixedName || !strings.HasSuffix(name.text, ":") {
		return fmt.Errorf("malformed @prefix declaration")
	}
	iri, err := lex.next()
	if err != nil {
		return err
	}
	if iri.kind != tokIRI {
		return fmt.Errorf("expected namespace IRI in @prefix declaration")
	}
	dot, err := lex.next()
	if err != nil {
		return err
	}
	if dot.kind != tokDot {
		return fmt.Errorf("expected '.' after @prefix declaration")
	}
	g.Bind(strings.TrimSuffix(name.text, ":"), iri.text)
	return nil
}

// parsePredicateList consumes `pred obj (; pred obj)* .` for one subject.
func parsePredicateList(lex *lexer, g *Graph, subject IRI) error {
	for {
		predTok, err := lex.next()
		if err != nil {
			return err
		}

		var predicate IRI
		switch predTok.kind {
		case tokA:
			predicate = IRI(rdfTypeIRI)
		case tokIRI, tokPrefixedName:
			predicate, err = resolveIRI(predTok, g)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("expected predicate for subject %s", subject)
		}

		objTok, err := lex.next()
		if err != nil {
			return err
		}
		var object Object
		switch objTok.kind {
		case tokIRI, tokPrefixedName:
			iri, err := resolveIRI(objTok, g)
			if err != nil {
				return err
			}
			object = iri
		case tokLiteral:
			object = objTok.lit
		default:
			return fmt.Errorf("expected object for subject %s", subject)
		}

		g.Add(Triple{Subject: subject, Predicate: predicate, Object: object})

		sep, err := lex.next()
		if err != nil {
			return err
		}
		switch sep.kind {
		case tokSemicolon:
			continue
		case tokDot:
			return nil
		default:
			return fmt.Errorf("expected ';' or '.' after object for subject %s", subject)
		}
	}
}

// resolveIRI turns an IRI or prefixed-name token into an absolute IRI.
func resolveIRI(tok token, g *Graph) (IRI, error) {
	if tok.kind == tokIRI {
		return IRI(tok.text), nil
	}
	idx := strings.IndexByte(tok.text, ':')
	if idx < 0 {
		return "", fmt.Errorf("malformed prefixed name %q", tok.text)
	}
	ns, ok := g.prefixes[tok.text[:idx]]
	if !ok {
		return "", fmt.Errorf("undeclared prefix in %q", tok.text)
	}
	return IRI(ns + tok.text[idx+1:]), nil
}
