package ast

// Visitor is called for every node reached by Walk.
type Visitor interface {
	VisitLiteral(*Literal) error
	VisitTemplateRef(*TemplateRef) error
	VisitConditional(*Conditional) error
}

// Walk traverses the sequence depth-first in source order and calls the
// visitor for each node. Branches of a conditional are visited in the order
// then, else-if alternatives, else. It returns the first error encountered.
func Walk(seq *Sequence, visitor Visitor) error {
	for _, n := range seq.Nodes() {
		if err := walkNode(n, visitor); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(n Node, visitor Visitor) error {
	switch node := n.(type) {
	case *Literal:
		return visitor.VisitLiteral(node)
	case *TemplateRef:
		return visitor.VisitTemplateRef(node)
	case *Conditional:
		if err := visitor.VisitConditional(node); err != nil {
			return err
		}
		if err := Walk(node.Then, visitor); err != nil {
			return err
		}
		for _, alt := range node.ElseIf {
			if err := walkNode(alt, visitor); err != nil {
				return err
			}
		}
		return Walk(node.Else, visitor)
	}
	return nil
}

// References returns the property names referenced by substitutions and
// conditions in the sequence, in order of first appearance.
func References(seq *Sequence) []string {
	c := &refCollector{seen: make(map[string]bool)}
	_ = Walk(seq, c)
	return c.names
}

type refCollector struct {
	names []string
	seen  map[string]bool
}

func (c *refCollector) add(name string) {
	if !c.seen[name] {
		c.seen[name] = true
		c.names = append(c.names, name)
	}
}

func (c *refCollector) VisitLiteral(*Literal) error { return nil }

func (c *refCollector) VisitTemplateRef(t *TemplateRef) error {
	c.add(t.Name)
	return nil
}

func (c *refCollector) VisitConditional(cond *Conditional) error {
	c.add(cond.Property)
	return nil
}
