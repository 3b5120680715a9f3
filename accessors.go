package trlevel

import "fmt"

// Room returns room i, or false if there is no such room.
func (l *Level) Room(i int) (*Room, bool) {
	if i < 0 || i >= len(l.Rooms) {
		return nil, false
	}
	return &l.Rooms[i], true
}

// Mesh returns the mesh for mesh pointer i, or nil.
func (l *Level) Mesh(i int) *Mesh {
	if i < 0 || i >= len(l.Meshes) {
		return nil
	}
	return l.Meshes[i]
}

// ModelMeshes returns the meshes of a model in mesh tree order.
func (l *Level) ModelMeshes(m *Model) []*Mesh {
	start, end := int(m.StartingMesh), int(m.StartingMesh)+int(m.NumMeshes)
	if end > len(l.Meshes) || start == end {
		return nil
	}
	return l.Meshes[start:end]
}

// SectorBox returns the navigation box under a sector, if it has one.
func (l *Level) SectorBox(s *Sector) (*Box, bool) {
	b, ok := l.format.boxIndex(s.BoxIndex)
	if !ok || b >= len(l.Boxes) {
		return nil, false
	}
	return &l.Boxes[b], true
}

// AnimatedTextureGroups splits the animated texture word list into its
// groups of object texture indices. The list starts with the number of
// groups and each group with its length minus one.
func (l *Level) AnimatedTextureGroups() ([][]uint16, error) {
	words := l.AnimatedTextures
	if len(words) == 0 {
		return nil, nil
	}
	numGroups := int(words[0])
	groups := make([][]uint16, 0, min(numGroups, len(words)))
	i := 1
	for g := 0; g < numGroups; g++ {
		if i >= len(words) {
			return nil, fmt.Errorf("animated texture group %d: %w", g, ErrOutOfBounds)
		}
		n := int(words[i]) + 1
		i++
		if i+n > len(words) {
			return nil, fmt.Errorf("animated texture group %d needs %d of %d words: %w", g, n, len(words)-i, ErrOutOfBounds)
		}
		groups = append(groups, words[i:i+n:i+n])
		i += n
	}
	return groups, nil
}

// MeshTreeNode places one mesh of a model relative to its parent.
type MeshTreeNode struct {
	Mesh   int // index into MeshPointers
	Parent int // index into the node list, -1 for the root
	Offset Vector32
}

const (
	meshTreePop  = 1
	meshTreePush = 2
)

// ModelTree builds the mesh hierarchy of a model. Each mesh tree entry after
// the root holds flags and an offset; the pop flag makes the parent the
// last pushed mesh and the push flag saves the parent for later.
func (l *Level) ModelTree(m *Model) ([]MeshTreeNode, error) {
	n := int(m.NumMeshes)
	if n == 0 {
		return nil, nil
	}
	if int(m.StartingMesh)+n > len(l.MeshPointers) {
		return nil, fmt.Errorf("model %d meshes %d+%d: %w", m.ID, m.StartingMesh, n, ErrOutOfBounds)
	}
	if int(m.MeshTree)+4*(n-1) > len(l.MeshTrees) {
		return nil, fmt.Errorf("model %d mesh tree %d: %w", m.ID, m.MeshTree, ErrOutOfBounds)
	}

	nodes := make([]MeshTreeNode, n)
	nodes[0] = MeshTreeNode{Mesh: int(m.StartingMesh), Parent: -1}
	var stack []int
	parent := 0
	for k := 1; k < n; k++ {
		t := l.MeshTrees[int(m.MeshTree)+4*(k-1):]
		if t[0]&meshTreePop != 0 && len(stack) > 0 {
			parent = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		if t[0]&meshTreePush != 0 {
			stack = append(stack, parent)
		}
		nodes[k] = MeshTreeNode{
			Mesh:   int(m.StartingMesh) + k,
			Parent: parent,
			Offset: Vector32{X: t[1], Y: t[2], Z: t[3]},
		}
		parent = k
	}
	return nodes, nil
}

// FirstFrameBounds returns the bounding box at the start of an animation's
// first frame.
func (l *Level) FirstFrameBounds(a *Animation) (BoundingBox, error) {
	start := int(a.FrameOffset / 2)
	if start+6 > len(l.Frames) {
		return BoundingBox{}, fmt.Errorf("frame offset %#x: %w", a.FrameOffset, ErrOutOfBounds)
	}
	f := l.Frames[start : start+6]
	return BoundingBox{
		MinX: int16(f[0]), MaxX: int16(f[1]),
		MinY: int16(f[2]), MaxY: int16(f[3]),
		MinZ: int16(f[4]), MaxZ: int16(f[5]),
	}, nil
}
