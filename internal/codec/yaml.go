package codec

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

// DecodeYAML parses a YAML document into a value. A stream of several
// documents collects into a list, an empty input decodes to nothing.
func DecodeYAML(data []byte, sp span.Span) (value.Value, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	w := &yamlWalker{sp: sp, anchors: make(map[string]value.Value)}

	docs := make([]value.Value, 0, len(file.Docs))
	for _, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}
		v, err := w.node(doc.Body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}

	switch len(docs) {
	case 0:
		return value.Nothing{Span: sp}, nil
	case 1:
		return docs[0], nil
	default:
		return value.List{Items: docs, Span: sp}, nil
	}
}

// yamlWalker converts parsed AST nodes, resolving anchors as it goes.
type yamlWalker struct {
	sp      span.Span
	anchors map[string]value.Value
}

func (w *yamlWalker) node(n ast.Node) (value.Value, error) {
	switch n := n.(type) {
	case *ast.NullNode:
		return value.Nothing{Span: w.sp}, nil
	case *ast.BoolNode:
		return value.Bool{Val: n.Value, Span: w.sp}, nil
	case *ast.IntegerNode:
		if n.Value == nil {
			return nil, fmt.Errorf("%w: integer node without a value", ErrDecode)
		}
		return value.FromInterface(n.Value, w.sp)
	case *ast.FloatNode:
		return value.Float{Val: n.Value, Span: w.sp}, nil
	case *ast.InfinityNode:
		return value.Float{Val: n.Value, Span: w.sp}, nil
	case *ast.NanNode:
		return value.Float{Val: math.NaN(), Span: w.sp}, nil
	case *ast.StringNode:
		return value.String{Val: n.Value, Span: w.sp}, nil
	case *ast.LiteralNode:
		return value.String{Val: n.Value.Value, Span: w.sp}, nil
	case *ast.SequenceNode:
		items := make([]value.Value, 0, len(n.Values))
		for i, elem := range n.Values {
			v, err := w.node(elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			items = append(items, v)
		}
		return value.List{Items: items, Span: w.sp}, nil
	case *ast.MappingNode:
		return w.record(n.Values)
	case *ast.MappingValueNode:
		return w.record([]*ast.MappingValueNode{n})
	case *ast.AnchorNode:
		name, ok := n.Name.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: anchor name must be a string, got %T", ErrDecode, n.Name)
		}
		v, err := w.node(n.Value)
		if err != nil {
			return nil, err
		}
		w.anchors[name.Value] = v
		return v, nil
	case *ast.AliasNode:
		name, ok := n.Value.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: alias name must be a string, got %T", ErrDecode, n.Value)
		}
		v, ok := w.anchors[name.Value]
		if !ok {
			return nil, fmt.Errorf("%w: unknown anchor %q", ErrDecode, name.Value)
		}
		return value.Clone(v), nil
	default:
		return nil, fmt.Errorf("%w: unsupported YAML node %T", ErrDecode, n)
	}
}

func (w *yamlWalker) record(pairs []*ast.MappingValueNode) (value.Value, error) {
	rec := value.Record{Span: w.sp}
	for _, pair := range pairs {
		key, ok := pair.Key.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: record key must be a string, got %T", ErrDecode, pair.Key)
		}
		v, err := w.node(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key.Value, err)
		}
		rec.Set(key.Value, v)
	}
	return rec, nil
}

// EncodeYAML renders a value as a YAML document. Record fields keep
// their order, durations flatten to nanoseconds and file sizes to
// bytes so the output stays machine readable.
func EncodeYAML(v value.Value) ([]byte, error) {
	out, err := yaml.Marshal(yamlShape(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return out, nil
}

func yamlShape(v value.Value) any {
	switch v := v.(type) {
	case value.Bool:
		return v.Val
	case value.Int:
		return v.Val
	case value.Float:
		return v.Val
	case value.String:
		return v.Val
	case value.Binary:
		return v.Val
	case value.Record:
		out := make(yaml.MapSlice, 0, len(v.Fields))
		for _, f := range v.Fields {
			out = append(out, yaml.MapItem{Key: f.Name, Value: yamlShape(f.Value)})
		}
		return out
	case value.List:
		out := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			out = append(out, yamlShape(item))
		}
		return out
	case value.Duration:
		return int64(v.Val)
	case value.Filesize:
		return v.Val
	case value.Date:
		return v.Val
	default:
		return nil
	}
}
