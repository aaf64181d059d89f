package grammar

import (
	"fmt"

	"github.com/leapstack-labs/sqlgram/pkg/token"
)

// Node kinds used in structural descriptions.
const (
	KindKeyword     = "keyword"
	KindSymbol      = "symbol"
	KindRegex       = "regex"
	KindToken       = "token"
	KindKeywordOf   = "keyword_of"
	KindSequence    = "sequence"
	KindOneOf       = "one_of"
	KindAnyNumberOf = "any_number_of"
	KindBracketed   = "bracketed"
	KindDelimited   = "delimited"
	KindRef         = "ref"
	KindOptional    = "optional"
)

// NodeSpec is the structural description of a grammar node. A tree of
// NodeSpecs round-trips through Describe and Build: the rebuilt grammar
// matches exactly the same token streams as the original. The struct is
// tagged for YAML, which is also the format the describe CLI command
// emits.
type NodeSpec struct {
	Kind          string      `yaml:"kind"`
	Value         string      `yaml:"value,omitempty"`
	Pattern       string      `yaml:"pattern,omitempty"`
	TokenClass    string      `yaml:"token,omitempty"`
	Set           string      `yaml:"set,omitempty"`
	Trim          string      `yaml:"trim,omitempty"`
	Name          string      `yaml:"name,omitempty"`
	Optional      bool        `yaml:"optional,omitempty"`
	Start         string      `yaml:"start,omitempty"`
	End           string      `yaml:"end,omitempty"`
	AllowTrailing bool        `yaml:"allow_trailing,omitempty"`
	Delimiter     *NodeSpec   `yaml:"delimiter,omitempty"`
	Exclude       *NodeSpec   `yaml:"exclude,omitempty"`
	Children      []*NodeSpec `yaml:"children,omitempty"`
}

// Describe returns the structural description of a grammar tree.
func Describe(n Node) (*NodeSpec, error) {
	switch n := n.(type) {
	case *KeywordMatcher:
		return &NodeSpec{Kind: KindKeyword, Value: n.Value}, nil
	case *SymbolMatcher:
		return &NodeSpec{Kind: KindSymbol, Value: n.Value}, nil
	case *RegexMatcher:
		return &NodeSpec{Kind: KindRegex, Pattern: n.Pattern, Trim: n.TrimChars}, nil
	case *TypedMatcher:
		return &NodeSpec{Kind: KindToken, TokenClass: n.TokenType.String(), Trim: n.TrimChars}, nil
	case *SetMatcher:
		return &NodeSpec{Kind: KindKeywordOf, Set: n.Set}, nil
	case *Optional:
		inner, err := Describe(n.Inner)
		if err != nil {
			return nil, err
		}
		return &NodeSpec{Kind: KindOptional, Children: []*NodeSpec{inner}}, nil
	case *Sequence:
		children, err := describeAll(n.Children)
		if err != nil {
			return nil, err
		}
		return &NodeSpec{Kind: KindSequence, Children: children}, nil
	case *Choice:
		children, err := describeAll(n.Alternatives)
		if err != nil {
			return nil, err
		}
		return &NodeSpec{Kind: KindOneOf, Children: children}, nil
	case *Repeat:
		children, err := describeAll(n.Children)
		if err != nil {
			return nil, err
		}
		return &NodeSpec{Kind: KindAnyNumberOf, Children: children}, nil
	case *Brackets:
		children, err := describeAll(n.Children)
		if err != nil {
			return nil, err
		}
		return &NodeSpec{Kind: KindBracketed, Start: n.Start, End: n.End, Children: children}, nil
	case *DelimitedList:
		children, err := describeAll(n.Children)
		if err != nil {
			return nil, err
		}
		delim, err := Describe(n.Delimiter)
		if err != nil {
			return nil, err
		}
		return &NodeSpec{Kind: KindDelimited, Delimiter: delim, AllowTrailing: n.Trailing, Children: children}, nil
	case *Reference:
		spec := &NodeSpec{Kind: KindRef, Name: n.Name, Optional: n.Opt}
		if n.ExcludeNode != nil {
			exclude, err := Describe(n.ExcludeNode)
			if err != nil {
				return nil, err
			}
			spec.Exclude = exclude
		}
		return spec, nil
	default:
		return nil, fmt.Errorf("cannot describe grammar node of type %T", n)
	}
}

func describeAll(nodes []Node) ([]*NodeSpec, error) {
	specs := make([]*NodeSpec, len(nodes))
	for i, n := range nodes {
		spec, err := Describe(n)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	return specs, nil
}

// Build reconstructs a grammar tree from its structural description.
func Build(spec *NodeSpec) (Node, error) {
	switch spec.Kind {
	case KindKeyword:
		return Keyword(spec.Value), nil
	case KindSymbol:
		return Sym(spec.Value), nil
	case KindRegex:
		m := Regex(spec.Pattern)
		if spec.Trim != "" {
			m.Trim(spec.Trim)
		}
		return m, nil
	case KindToken:
		t, ok := token.TypeFromName(spec.TokenClass)
		if !ok {
			return nil, fmt.Errorf("unknown token class %q", spec.TokenClass)
		}
		m := Typed(t)
		if spec.Trim != "" {
			m.Trim(spec.Trim)
		}
		return m, nil
	case KindKeywordOf:
		return KeywordOf(spec.Set), nil
	case KindOptional:
		if len(spec.Children) != 1 {
			return nil, fmt.Errorf("optional node needs exactly one child, got %d", len(spec.Children))
		}
		inner, err := Build(spec.Children[0])
		if err != nil {
			return nil, err
		}
		return Opt(inner), nil
	case KindSequence:
		children, err := buildAll(spec.Children)
		if err != nil {
			return nil, err
		}
		return Seq(children...), nil
	case KindOneOf:
		children, err := buildAll(spec.Children)
		if err != nil {
			return nil, err
		}
		return OneOf(children...), nil
	case KindAnyNumberOf:
		children, err := buildAll(spec.Children)
		if err != nil {
			return nil, err
		}
		return AnyNumberOf(children...), nil
	case KindBracketed:
		children, err := buildAll(spec.Children)
		if err != nil {
			return nil, err
		}
		b := Bracketed(children...)
		if spec.Start != "" {
			b.WithBrackets(spec.Start, spec.End)
		}
		return b, nil
	case KindDelimited:
		children, err := buildAll(spec.Children)
		if err != nil {
			return nil, err
		}
		d := Delimited(children...)
		if spec.Delimiter != nil {
			delim, err := Build(spec.Delimiter)
			if err != nil {
				return nil, err
			}
			d.WithDelimiter(delim)
		}
		if spec.AllowTrailing {
			d.AllowTrailing()
		}
		return d, nil
	case KindRef:
		r := Ref(spec.Name)
		if spec.Optional {
			r.Optional()
		}
		if spec.Exclude != nil {
			exclude, err := Build(spec.Exclude)
			if err != nil {
				return nil, err
			}
			r.Exclude(exclude)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown grammar node kind %q", spec.Kind)
	}
}

func buildAll(specs []*NodeSpec) ([]Node, error) {
	nodes := make([]Node, len(specs))
	for i, spec := range specs {
		n, err := Build(spec)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}
