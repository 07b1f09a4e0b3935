package exprvm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadVars sets variables in r from a YAML document whose top level is a
// mapping of names to values. Entries are applied in document order with
// Registry.Set. Integers, floats, and booleans become Int, Float, and Boolean
// values. Strings are evaluated as expressions against r, so they can refer
// to functions and to variables defined earlier in the document.
//
//	rate: 0.25
//	periods: 12
//	compound: true
//	factor: pow(1 + rate, periods)
func LoadVars(r *Registry, data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing variables: %w", err)
	}
	if doc.Kind == 0 || doc.Kind == yaml.DocumentNode && len(doc.Content) == 0 {
		// Empty document.
		return nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return fmt.Errorf("parsing variables: expected a single document")
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variables must be a mapping of names to values", m.Line)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode || !isName(k.Value) {
			return fmt.Errorf("line %d: invalid variable name %q", k.Line, k.Value)
		}
		val, err := scalarValue(r, v)
		if err != nil {
			return fmt.Errorf("line %d: variable %s: %w", v.Line, k.Value, err)
		}
		r.Set(k.Value, val)
	}
	return nil
}

// scalarValue converts a YAML value node to a Value.
func scalarValue(r *Registry, n *yaml.Node) (Value, error) {
	if n.Kind != yaml.ScalarNode {
		return Value{}, fmt.Errorf("value must be a number, boolean, or expression")
	}
	switch n.ShortTag() {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!str":
		return Evaluate(n.Value, r)
	default:
		return Value{}, fmt.Errorf("unsupported value %q", n.Value)
	}
}

// isName reports whether s is valid as a variable name in expressions.
func isName(s string) bool {
	if s == "" || !isIdentStart(s[0]) || s == "true" || s == "false" {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}
