package jsondoc

import (
	"fmt"

	"github.com/axfmt/jsondoc/debug"
	"github.com/axfmt/jsondoc/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Match rules are expr programs evaluated against one node at a time.
// The environment exposes:
//
//	kind   - "Leaf", "Object" or "Array"
//	text   - leaf payload text ("" for null and non-leaves)
//	value  - leaf value as a plain Go value (nil for non-leaves)
//	key    - object key under which the node sits ("" at the root)
//	index  - array position of the node (-1 outside arrays)
//	size   - element count for arrays, key count for objects
//	fields - object keys in ascending order
//
// The names size and fields stay clear of expr's len and keys builtins,
// which shadow same-named environment entries.
//
// Match evaluates the rule against the document root only.
func Match(d Doc, rule string) (bool, error) {
	prg, err := expr.Compile(rule, expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("bad match rule %q: %w", rule, err)
	}
	return runRule(prg, rule, d, "", -1)
}

// Filter walks the document tree and returns every node, as a document
// sharing its slot, for which the rule evaluates to true.
func Filter(d Doc, rule string) ([]Doc, error) {
	prg, err := expr.Compile(rule, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad match rule %q: %w", rule, err)
	}
	var res []Doc
	err = walk(d, "", -1, func(key string, index int, at Doc) error {
		ok, err := runRule(prg, rule, at, key, index)
		if err != nil {
			return err
		}
		if ok {
			res = append(res, at)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func runRule(prg *vm.Program, rule string, d Doc, key string, index int) (bool, error) {
	env := matchEnv(d, key, index)
	if debug.Match() {
		debug.Logf("match env %v on %s\n", env, d.String())
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("match rule %q evaluated to %T, not bool", rule, out)
	}
	return b, nil
}

func matchEnv(d Doc, key string, index int) map[string]any {
	n := d.root.Node()
	env := map[string]any{
		"kind":   "",
		"text":   "",
		"value":  nil,
		"key":    key,
		"index":  index,
		"size":   0,
		"fields": []string(nil),
	}
	if n == nil {
		return env
	}
	env["kind"] = n.Kind.String()
	switch n.Kind {
	case ir.LeafKind:
		if text, ok := n.Value(); ok {
			env["text"] = text
		}
		env["value"] = nodeToAny(n)
	case ir.ObjectKind:
		env["size"] = len(n.Fields)
		env["fields"] = d.Keys()
	case ir.ArrayKind:
		env["size"] = n.Len()
	}
	return env
}

func walk(d Doc, key string, index int, f func(key string, index int, at Doc) error) error {
	if err := f(key, index, d); err != nil {
		return err
	}
	n := d.root.Node()
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ir.ObjectKind:
		for i, k := range n.Fields {
			if err := walk(Doc{root: n.Values[i]}, k, -1, f); err != nil {
				return err
			}
		}
	case ir.ArrayKind:
		for i := range n.Values {
			if err := walk(Doc{root: n.Values[i]}, "", i, f); err != nil {
				return err
			}
		}
	}
	return nil
}
