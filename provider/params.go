package provider

import (
	"errors"
	"strings"
)

// ErrEmptyBlock reports a block body with zero non-blank lines. Callers
// treat it as "leave the original content untouched", never as fatal.
var ErrEmptyBlock = errors.New("empty block")

// Params holds the key=value parameters of one block. Values are looked up
// by key; serialization walks keys in first-occurrence order so rendered
// output is a deterministic function of the block text.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set stores a value. A repeated key overwrites the value but keeps the
// position of its first occurrence.
func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (p *Params) Len() int {
	return len(p.keys)
}

// Each calls fn for every key/value pair in first-occurrence order.
func (p *Params) Each(fn func(key, value string)) {
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}

// ParseBlock splits a raw block body into a video identifier and its
// parameters.
//
// Lines are trimmed and blank lines are discarded entirely, wherever they
// appear. The first remaining line is the video identifier and is never
// parsed as key=value, even if it contains '='. Every later line is split
// on the first '='; a line without '=' is silently dropped. A repeated key
// keeps the last value. A body with zero non-blank lines returns
// ErrEmptyBlock.
func ParseBlock(content string) (string, *Params, error) {
	var id string
	params := NewParams()
	seenID := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !seenID {
			id = line
			seenID = true
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		params.Set(key, value)
	}

	if !seenID {
		return "", nil, ErrEmptyBlock
	}
	return id, params, nil
}
