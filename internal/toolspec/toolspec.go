package toolspec

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

//go:embed tools.hcl
var embeddedTools []byte

const embeddedFilename = "tools.hcl"

// Tool is a single entry of the table.
type Tool struct {
	Name        string
	Description string
	Prefix      string
}

// Table maps tool identifiers to their Tool entry.
type Table struct {
	tools map[string]Tool
}

// Lookup returns the tool registered under name. Matching is exact.
func (t *Table) Lookup(name string) (Tool, bool) {
	tool, ok := t.tools[name]
	return tool, ok
}

// Names returns the known tool identifiers in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.tools))
	for name := range t.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tools in the table.
func (t *Table) Len() int {
	return len(t.tools)
}

// toolBlock is the HCL shape of a `tool "<name>" { ... }` block.
type toolBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Prefix      hcl.Expression `hcl:"prefix"`
}

type fileRoot struct {
	Tools  []*toolBlock `hcl:"tool,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// Load decodes the embedded tool table.
func Load() (*Table, error) {
	return parse(embeddedTools, embeddedFilename)
}

// Default returns the embedded table, decoded once. The table is compiled
// in, so a decode failure is a programmer error and panics.
var Default = sync.OnceValue(func() *Table {
	table, err := Load()
	if err != nil {
		panic(fmt.Errorf("embedded tool table is invalid: %w", err))
	}
	return table
})

// prefixFunctions are the functions available inside a prefix expression.
var prefixFunctions = map[string]function.Function{
	"substr": stdlib.SubstrFunc,
	"upper":  stdlib.UpperFunc,
	"lower":  stdlib.LowerFunc,
}

func parse(src []byte, filename string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tool table %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode tool table %s: %w", filename, diags)
	}

	table := &Table{tools: make(map[string]Tool, len(root.Tools))}
	for _, block := range root.Tools {
		if _, exists := table.tools[block.Name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"tool\" block",
				Detail:   fmt.Sprintf("Tool %q is declared more than once.", block.Name),
				Subject:  block.Prefix.Range().Ptr(),
			})
			continue
		}

		prefix, prefixDiags := evalPrefix(block)
		diags = append(diags, prefixDiags...)
		if prefixDiags.HasErrors() {
			continue
		}

		table.tools[block.Name] = Tool{
			Name:        block.Name,
			Description: block.Description,
			Prefix:      prefix,
		}
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid tool table %s: %w", filename, diags)
	}

	return table, nil
}

// evalPrefix evaluates a block's prefix expression with `tool` bound to the
// block label.
func evalPrefix(block *toolBlock) (string, hcl.Diagnostics) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"tool": cty.StringVal(block.Name),
		},
		Functions: prefixFunctions,
	}

	val, diags := block.Prefix.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil || val.IsNull() || !val.IsKnown() {
		detail := "The prefix must evaluate to a string."
		if err != nil {
			detail = fmt.Sprintf("The prefix must evaluate to a string: %s.", err)
		}
		return "", append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid tool prefix",
			Detail:   detail,
			Subject:  block.Prefix.Range().Ptr(),
		})
	}

	return val.AsString(), diags
}
