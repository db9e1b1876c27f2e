// Package provider defines the contract between the document pipeline and
// the pluggable video providers.
//
// A Provider turns one annotated block into embed HTML plus the resource
// flags that block needs, and later renders the document-level resources
// (script/style fragments) from the flags merged across every block. The
// package also owns the shared block-body parser and the Registry that
// maps source identifiers (e.g. "youtube") to implementations.
package provider
