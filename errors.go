package keggx

import (
	"github.com/iamjli/keggx/graph"
	"github.com/iamjli/keggx/kegg"
	"github.com/iamjli/keggx/kgml"
)

// The error taxonomy is defined where each error is produced; the root
// package re-exports the sentinels so callers can match with errors.Is
// against a single surface.
var (
	// ErrMalformedDocument: required pathway or entry structure missing.
	// Fatal; the build is aborted, never retried.
	ErrMalformedDocument = kgml.ErrMalformedDocument

	// ErrAttributeType: a numeric KGML attribute could not be coerced.
	ErrAttributeType = kgml.ErrAttributeType

	// ErrUnresolvedReference: an edge or group references an entry id
	// absent from the node table. Fatal, since consumers require
	// referential integrity.
	ErrUnresolvedReference = graph.ErrUnresolvedReference

	// ErrPathwayNotFound: the KEGG REST service has no pathway for the
	// requested identifier.
	ErrPathwayNotFound = kegg.ErrPathwayNotFound
)
