package ast

// VisitDirection indicates whether a call to Visit enters or exits a node.
type VisitDirection int

const (
	VisitEnter VisitDirection = iota
	VisitExit
)

// Visitor defines the method to implement to observe a Walk. A node's
// children can be skipped by returning a nil Visitor from Visit.
type Visitor interface {
	Visit(n Node, dir VisitDirection) (w Visitor)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(n Node, dir VisitDirection) Visitor

func (f VisitorFunc) Visit(n Node, dir VisitDirection) Visitor { return f(n, dir) }

// Walk visits n and its descendants with v. It calls v.Visit(n, VisitEnter)
// before descending into n's children, and v.Visit(n, VisitExit) after.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n, VisitEnter); v == nil {
		return
	}
	n.Walk(v)
	v.Visit(n, VisitExit)
}
