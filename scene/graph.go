package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Graph is an arena of scene nodes addressed by stable indices
// Tree mutation is an index rewrite, nodes are never reallocated
type Graph struct {
	nodes  []Node
	byName map[string]NodeID
}

func NewGraph() *Graph {
	return &Graph{
		nodes:  make([]Node, 0, 32),
		byName: make(map[string]NodeID),
	}
}

// Add appends a node under parent and returns its index
// Pass InvalidNode for a root-level node
func (g *Graph) Add(parent NodeID, n Node) NodeID {
	if n.LocalRotation.Len() == 0 {
		n.LocalRotation = mgl64.QuatIdent()
	}
	n.Parent = parent
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	if parent != InvalidNode && g.valid(parent) {
		g.nodes[parent].Children = append(g.nodes[parent].Children, id)
	}
	if n.Name != "" {
		g.byName[n.Name] = id
	}
	return id
}

// Node returns a pointer into the arena, nil for out-of-range indices
func (g *Graph) Node(id NodeID) *Node {
	if !g.valid(id) {
		return nil
	}
	return &g.nodes[id]
}

// Find looks a node up by its unique name
func (g *Graph) Find(name string) (NodeID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// FindRole returns the first node carrying the given role
func (g *Graph) FindRole(role Role) (NodeID, bool) {
	for i := range g.nodes {
		if g.nodes[i].Role == role {
			return NodeID(i), true
		}
	}
	return InvalidNode, false
}

// Reparent detaches id from its current parent and attaches it under newParent
// The node's local transform is kept as-is, callers reset it explicitly
func (g *Graph) Reparent(id, newParent NodeID) {
	if !g.valid(id) || id == newParent {
		return
	}
	old := g.nodes[id].Parent
	if old != InvalidNode && g.valid(old) {
		children := g.nodes[old].Children
		for i, c := range children {
			if c == id {
				g.nodes[old].Children = append(children[:i], children[i+1:]...)
				break
			}
		}
	}
	g.nodes[id].Parent = newParent
	if newParent != InvalidNode && g.valid(newParent) {
		g.nodes[newParent].Children = append(g.nodes[newParent].Children, id)
	}
}

// SetLocal overwrites a node's local transform
func (g *Graph) SetLocal(id NodeID, pos mgl64.Vec3, rot mgl64.Quat) {
	if !g.valid(id) {
		return
	}
	g.nodes[id].LocalPosition = pos
	g.nodes[id].LocalRotation = rot
}

// WorldTransform composes local transforms from id up to the root
func (g *Graph) WorldTransform(id NodeID) (mgl64.Vec3, mgl64.Quat) {
	if !g.valid(id) {
		return mgl64.Vec3{}, mgl64.QuatIdent()
	}
	n := &g.nodes[id]
	pos, rot := n.LocalPosition, n.LocalRotation
	for p := n.Parent; p != InvalidNode && g.valid(p); {
		parent := &g.nodes[p]
		pos = parent.LocalPosition.Add(parent.LocalRotation.Rotate(pos))
		rot = parent.LocalRotation.Mul(rot)
		p = parent.Parent
	}
	return pos, rot
}

// Ancestors calls fn for id and each ancestor in turn, stopping early when fn
// returns false
func (g *Graph) Ancestors(id NodeID, fn func(NodeID, *Node) bool) {
	for cur := id; cur != InvalidNode && g.valid(cur); cur = g.nodes[cur].Parent {
		if !fn(cur, &g.nodes[cur]) {
			return
		}
	}
}

// ResolveZone walks upward from id until a RoleZone node is found
// Handles zones whose collidable geometry is nested below the logical container
// Returns false when the parent chain is exhausted, malformed scenes are tolerated
func (g *Graph) ResolveZone(id NodeID) (NodeID, bool) {
	zone := InvalidNode
	g.Ancestors(id, func(cur NodeID, n *Node) bool {
		if n.Role == RoleZone {
			zone = cur
			return false
		}
		return true
	})
	return zone, zone != InvalidNode
}

// Len returns the number of nodes in the arena
func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}
