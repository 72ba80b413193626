package ast

import (
	"fmt"
	"strings"
)

// FormatOption is the reserved option key holding a comma-separated
// formatter chain.
const FormatOption = "format"

// Node is a template AST node. The set of implementations is closed:
// *Literal, *TemplateRef and *Conditional.
type Node interface {
	// Pos returns the location at which the node starts.
	Pos() Location
	// Enclosing returns the conditional containing the node, or nil.
	Enclosing() *Conditional
	String() string
	node()
}

// Literal is raw text emitted verbatim.
type Literal struct {
	Value    string
	Parent   *Conditional
	Location Location

	// trimmed is set once Clean has examined the literal.
	trimmed bool
}

// Pos implements Node.
func (l *Literal) Pos() Location { return l.Location }

// Enclosing implements Node.
func (l *Literal) Enclosing() *Conditional { return l.Parent }

// String returns the quoted literal text.
func (l *Literal) String() string { return fmt.Sprintf("%q", l.Value) }

func (*Literal) node() {}

// Option is a single key/value option of a TemplateRef.
type Option struct {
	Key   string
	Value string
}

// Options is an ordered list of options with unique keys.
type Options []Option

// Get returns the value of the option with the given key.
func (o Options) Get(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing key in place, or appends a new option.
func (o *Options) Set(key, value string) {
	for i := range *o {
		if (*o)[i].Key == key {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, Option{Key: key, Value: value})
}

// TemplateRef is a property substitution such as $name;format="upper"$.
type TemplateRef struct {
	Name     string
	Options  Options
	Parent   *Conditional
	Location Location
}

// Pos implements Node.
func (t *TemplateRef) Pos() Location { return t.Location }

// Enclosing implements Node.
func (t *TemplateRef) Enclosing() *Conditional { return t.Parent }

// Format returns the raw formatter chain, or "" when none was given.
func (t *TemplateRef) Format() string {
	v, _ := t.Options.Get(FormatOption)
	return v
}

// String returns the reference in template syntax.
func (t *TemplateRef) String() string {
	if len(t.Options) == 0 {
		return "$" + t.Name + "$"
	}
	parts := make([]string, len(t.Options))
	for i, opt := range t.Options {
		parts[i] = fmt.Sprintf("%s=%q", opt.Key, opt.Value)
	}
	return "$" + t.Name + ";" + strings.Join(parts, ",") + "$"
}

func (*TemplateRef) node() {}

// Conditional is an if block. Else-if alternatives are themselves
// conditionals whose Parent is the root if of the chain; only their Then
// branch is used.
type Conditional struct {
	Property string
	Helper   string
	Then     *Sequence
	ElseIf   []*Conditional
	Else     *Sequence
	Parent   *Conditional
	Location Location
}

// NewConditional creates a conditional with empty branches.
func NewConditional(property, helper string, parent *Conditional, loc Location) *Conditional {
	return &Conditional{
		Property: property,
		Helper:   helper,
		Then:     NewSequence(),
		Else:     NewSequence(),
		Parent:   parent,
		Location: loc,
	}
}

// Pos implements Node.
func (c *Conditional) Pos() Location { return c.Location }

// Enclosing implements Node.
func (c *Conditional) Enclosing() *Conditional { return c.Parent }

// Expression returns the condition as written, e.g. "name.truthy".
func (c *Conditional) Expression() string {
	return c.Property + "." + c.Helper
}

// String returns a compact dump of the conditional and all its branches.
func (c *Conditional) String() string {
	var sb strings.Builder
	sb.WriteString("if(" + c.Expression() + ")" + c.Then.String())
	for _, alt := range c.ElseIf {
		sb.WriteString(" elseif(" + alt.Expression() + ")" + alt.Then.String())
	}
	if c.Else.Len() > 0 {
		sb.WriteString(" else" + c.Else.String())
	}
	return sb.String()
}

func (*Conditional) node() {}
