package jsondoc

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/axfmt/jsondoc/ir"
)

// ToAny converts a document to plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Raw leaf text converts to
// int64 when it parses as an integer, else float64, else string.
func ToAny(d Doc) any {
	return nodeToAny(d.root.Node())
}

func nodeToAny(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ir.ObjectKind:
		res := make(map[string]any, len(n.Fields))
		for i, key := range n.Fields {
			res[key] = nodeToAny(n.Values[i].Node())
		}
		return res
	case ir.ArrayKind:
		res := make([]any, len(n.Values))
		for i := range n.Values {
			res[i] = nodeToAny(n.Values[i].Node())
		}
		return res
	case ir.LeafKind:
		text, ok := n.Value()
		if !ok {
			return nil
		}
		switch n.Format {
		case ir.Boolean:
			i, err := strconv.Atoi(text)
			return err == nil && i != 0
		case ir.Raw:
			if i, err := strconv.ParseInt(text, 10, 64); err == nil {
				return i
			}
			if f, err := strconv.ParseFloat(text, 64); err == nil {
				return f
			}
			return text
		default:
			return text
		}
	}
	return nil
}

// FromAny builds a document from plain Go values. Map keys come out in
// ascending order regardless of iteration order.
func FromAny(v any) (Doc, error) {
	n, err := anyToNode(v)
	if err != nil {
		return Doc{}, err
	}
	return Doc{root: ir.NewHandle(n)}, nil
}

func anyToNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case Doc:
		return x.root.Node().Clone(), nil
	case []any:
		arr := ir.NewArray()
		for _, item := range x {
			n, err := anyToNode(item)
			if err != nil {
				return nil, err
			}
			arr.Append(ir.NewHandle(n))
		}
		return arr, nil
	case map[string]any:
		obj := ir.NewObject()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n, err := anyToNode(x[k])
			if err != nil {
				return nil, err
			}
			obj.Put(k, ir.NewHandle(n))
		}
		return obj, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}
