package ast

import "strings"

// Sequence is an ordered list of nodes.
type Sequence struct {
	nodes []Node
}

// NewSequence creates a sequence holding the given nodes.
func NewSequence(nodes ...Node) *Sequence {
	return &Sequence{nodes: nodes}
}

// Append adds a node to the end of the sequence.
func (s *Sequence) Append(n Node) {
	s.nodes = append(s.nodes, n)
}

// Len returns the number of nodes.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Nodes returns the nodes of the sequence. The slice must not be modified.
func (s *Sequence) Nodes() []Node {
	if s == nil {
		return nil
	}
	return s.nodes
}

// At returns the node at index i.
func (s *Sequence) At(i int) Node {
	return s.nodes[i]
}

// IsPureLiteral returns true if the sequence contains only literals.
func (s *Sequence) IsPureLiteral() bool {
	for _, n := range s.Nodes() {
		if _, ok := n.(*Literal); !ok {
			return false
		}
	}
	return true
}

// String returns a compact dump of the sequence, e.g. ["a", $b$].
func (s *Sequence) String() string {
	parts := make([]string, 0, s.Len())
	for _, n := range s.Nodes() {
		parts = append(parts, n.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Clean removes the line break that directly follows a block keyword.
//
// One leading "\n" or "\r\n" is stripped from the first literal of every
// then, else-if and else branch, and from every literal that directly follows
// a conditional. Literals emptied by the strip are dropped. Each literal is
// examined at most once, so Clean is idempotent.
func (s *Sequence) Clean() {
	if s == nil {
		return
	}
	for i, n := range s.nodes {
		switch node := n.(type) {
		case *Conditional:
			node.clean()
		case *Literal:
			if i > 0 {
				if _, ok := s.nodes[i-1].(*Conditional); ok {
					node.trimLeadingBreak()
				}
			}
		}
	}
	s.dropEmptied()
}

func (c *Conditional) clean() {
	c.Then.trimFirst()
	c.Then.Clean()
	for _, alt := range c.ElseIf {
		alt.clean()
	}
	c.Else.trimFirst()
	c.Else.Clean()
}

func (s *Sequence) trimFirst() {
	if s.Len() == 0 {
		return
	}
	if lit, ok := s.nodes[0].(*Literal); ok {
		lit.trimLeadingBreak()
	}
}

func (s *Sequence) dropEmptied() {
	kept := s.nodes[:0]
	for _, n := range s.nodes {
		if lit, ok := n.(*Literal); ok && lit.trimmed && lit.Value == "" {
			continue
		}
		kept = append(kept, n)
	}
	clear(s.nodes[len(kept):])
	s.nodes = kept
}

func (l *Literal) trimLeadingBreak() {
	if l.trimmed {
		return
	}
	l.trimmed = true
	switch {
	case strings.HasPrefix(l.Value, "\r\n"):
		l.Value = l.Value[2:]
	case strings.HasPrefix(l.Value, "\n"):
		l.Value = l.Value[1:]
	}
}
