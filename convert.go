package jsondoc

import (
	"strconv"

	"github.com/axfmt/jsondoc/ir"
)

// Scalar constrains typed extraction and slice construction.
type Scalar interface {
	int | int32 | int64 | float32 | float64 | string
}

// To extracts a typed value from a leaf document. ok is false when the
// document is not a leaf, the leaf is null, or the payload does not parse
// as T. To[string] returns the stored text verbatim regardless of the
// leaf's render format, so a boolean leaf yields its internal encoding
// ("1"/"0"), not "true"/"false".
func To[T Scalar](d Doc) (T, bool) {
	var res T
	leaf, ok := d.root.AsLeaf()
	if !ok {
		return res, false
	}
	text, ok := leaf.Value()
	if !ok {
		return res, false
	}
	switch p := any(&res).(type) {
	case *string:
		*p = text
	case *int:
		i, ok := parseInt(text)
		if !ok {
			return res, false
		}
		*p = int(i)
	case *int32:
		i, ok := parseInt(text)
		if !ok {
			return res, false
		}
		*p = int32(i)
	case *int64:
		i, ok := parseInt(text)
		if !ok {
			return res, false
		}
		*p = i
	case *float32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return res, false
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return res, false
		}
		*p = f
	}
	return res, true
}

// parseInt accepts integer text, falling back to truncating a float form
// so that integer extraction from a decimal-pointed leaf still succeeds.
func parseInt(text string) (int64, bool) {
	i, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// AsVector extracts a typed slice from an array document, silently
// skipping elements that do not convert. ok is false only when the
// document is not an array.
func AsVector[T Scalar](d Doc) ([]T, bool) {
	arr, ok := d.root.AsArray()
	if !ok {
		return nil, false
	}
	res := make([]T, 0, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		h, ok := arr.At(i)
		if !ok {
			continue
		}
		if v, ok := To[T](Doc{root: h}); ok {
			res = append(res, v)
		}
	}
	return res, true
}

// Slice builds an array document of scalar leaves.
func Slice[T Scalar](items []T) Doc {
	return Doc{root: ir.NewHandle(sliceNode(items))}
}

// SetSlice replaces the document's value with an array of scalar leaves.
func SetSlice[T Scalar](d Doc, items []T) Doc {
	return d.reset(sliceNode(items))
}

func sliceNode[T Scalar](items []T) *ir.Node {
	arr := ir.NewArray()
	for _, item := range items {
		arr.Append(ir.NewHandle(leafOf(item)))
	}
	return arr
}

func leafOf[T Scalar](v T) *ir.Node {
	switch x := any(v).(type) {
	case string:
		return ir.FromString(x)
	case int:
		return ir.FromInt(int64(x))
	case int32:
		return ir.FromInt(int64(x))
	case int64:
		return ir.FromInt(x)
	case float32:
		return ir.FromFloat(float64(x))
	case float64:
		return ir.FromFloat(x)
	}
	return ir.Null()
}
