// Package hclcfg loads the CLI's attach configuration from an HCL file of
// provider blocks:
//
//	provider "youtube" {
//	  mode            = "embedlite"
//	  use_default_css = true
//	}
//
// Attribute values are evaluated as literals and converted to plain Go
// values, producing the raw option maps the attach boundary expects.
// Validation of the option values themselves stays with the providers.
package hclcfg

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/halostatue/mdex-video-embed/internal/ctxlog"
)

var configSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "provider", LabelNames: []string{"name"}},
	},
}

// Load parses the configuration file at path and returns raw per-provider
// option maps. Provider names unknown to the registry are passed through
// unchanged; the attach boundary ignores them.
func Load(ctx context.Context, path string) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading attach configuration.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, diags)
	}

	content, diags := file.Body.Content(configSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid configuration structure in %s: %w", path, diags)
	}

	providers := make(map[string]any)
	for _, block := range content.Blocks {
		name := block.Labels[0]

		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid provider %q block: %w", name, diags)
		}

		opts := make(map[string]any, len(attrs))
		for attrName, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("evaluating option %q for provider %q: %w", attrName, name, diags)
			}
			goVal, err := ctyToGo(val)
			if err != nil {
				return nil, fmt.Errorf("option %q for provider %q: %w", attrName, name, err)
			}
			opts[attrName] = goVal
		}

		providers[name] = opts
		logger.Debug("Loaded provider configuration.", "provider", name, "options", len(opts))
	}

	return providers, nil
}

// ctyToGo converts an evaluated cty value into the plain Go value the
// provider contract consumes.
func ctyToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return int(i), nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var out []any
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			goVal, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, goVal)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			goVal, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out[key.AsString()] = goVal
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}
