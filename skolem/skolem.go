// Package skolem provides identifier minting for entities that lack a
// caller-supplied URI. Minted URIs stand in for blank nodes so the output
// graph stays dereferenceable and set-comparable.
//
// Two minters are provided: LocalMinter generates UUID-based skolem URIs
// in-process, and HTTPMinter delegates to a remote minting service. Both
// satisfy the Minter interface the mapper consumes.
package skolem

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURI is the base used by LocalMinter when none is supplied.
const DefaultBaseURI = "http://example.com"

// skolemPath is the well-known path segment for skolem URIs.
const skolemPath = "/.well-known/skolem"

// Minter hands out globally unique URIs for entities without an explicit
// identifier. Mint is synchronous; implementations must not retry
// internally, a failure is surfaced to the caller as-is.
type Minter interface {
	// Mint returns a fresh absolute URI. typeHint, when non-empty, names
	// the entity kind so minted URIs can be namespaced per type.
	Mint(ctx context.Context, typeHint string) (string, error)
}

// LocalMinter mints skolem URIs in-process from random UUIDs.
// Two calls never return the same URI.
type LocalMinter struct {
	base string
}

// NewLocalMinter returns a LocalMinter rooted at baseURI.
// An empty baseURI falls back to DefaultBaseURI.
func NewLocalMinter(baseURI string) *LocalMinter {
	if baseURI == "" {
		baseURI = DefaultBaseURI
	}
	return &LocalMinter{base: strings.TrimSuffix(baseURI, "/")}
}

// Mint returns <base>/.well-known/skolem[/<typeHint>]/<uuid>.
func (m *LocalMinter) Mint(_ context.Context, typeHint string) (string, error) {
	var sb strings.Builder
	sb.WriteString(m.base)
	sb.WriteString(skolemPath)
	if typeHint != "" {
		sb.WriteString("/")
		sb.WriteString(typeHint)
	}
	sb.WriteString("/")
	sb.WriteString(uuid.NewString())
	return sb.String(), nil
}
