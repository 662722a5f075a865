package employee

// Node is one employee in an immutable reporting tree. Nodes are built once
// and never mutated; expand/collapse state lives in ExpandSet.
type Node struct {
	employee Employee
	children []*Node
}

// NewNode builds a node, copying the children slice
func NewNode(e Employee, children ...*Node) *Node {
	kids := make([]*Node, len(children))
	copy(kids, children)
	return &Node{employee: e, children: kids}
}

func (n *Node) Employee() Employee { return n.employee }

func (n *Node) ID() int64 { return n.employee.ID }

// Children returns a copy of the direct subordinates
func (n *Node) Children() []*Node {
	kids := make([]*Node, len(n.children))
	copy(kids, n.children)
	return kids
}

func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// size counts the node and all of its descendants
func (n *Node) size() int {
	total := 1
	for _, c := range n.children {
		total += c.size()
	}
	return total
}

// Marker is the glyph a tree row shows next to a name
type Marker string

const (
	MarkerLeaf      Marker = "•"
	MarkerCollapsed Marker = "▶"
	MarkerExpanded  Marker = "▼"
)

// Row is one visible line of a rendered tree
type Row struct {
	ID       int64
	Name     string
	Email    string
	Depth    int
	Marker   Marker
	Expanded bool
}

// ExpandSet tracks which nodes a viewer has opened. It is keyed by node id and
// independent of the tree it is applied to. The zero value is ready to use.
type ExpandSet struct {
	open map[int64]bool
}

// Toggle flips a node between expanded and collapsed and returns the new state
func (s *ExpandSet) Toggle(id int64) bool {
	if s.open == nil {
		s.open = make(map[int64]bool)
	}
	s.open[id] = !s.open[id]
	if !s.open[id] {
		delete(s.open, id)
	}
	return s.open[id]
}

// IsExpanded reports whether a node is open
func (s *ExpandSet) IsExpanded(id int64) bool {
	return s.open[id]
}

// Visible flattens the forest into the rows a viewer currently sees:
// children of collapsed nodes are hidden.
func (s *ExpandSet) Visible(roots []*Node) []Row {
	var rows []Row
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			expanded := s.IsExpanded(n.ID())
			marker := MarkerLeaf
			if n.HasChildren() {
				marker = MarkerCollapsed
				if expanded {
					marker = MarkerExpanded
				}
			}
			rows = append(rows, Row{
				ID:       n.ID(),
				Name:     n.employee.Name,
				Email:    n.employee.Email,
				Depth:    depth,
				Marker:   marker,
				Expanded: expanded && n.HasChildren(),
			})
			if expanded {
				walk(n.children, depth+1)
			}
		}
	}
	walk(roots, 0)
	return rows
}
