package trlevel

import (
	"fmt"
	"io"
)

// PrintModelTree prints a model's mesh hierarchy, one mesh per line,
// children indented under their parent.
func PrintModelTree(w io.Writer, nodes []MeshTreeNode) {
	children := make([][]int, len(nodes))
	var roots []int
	for i, n := range nodes {
		if n.Parent < 0 || n.Parent >= len(nodes) {
			roots = append(roots, i)
			continue
		}
		children[n.Parent] = append(children[n.Parent], i)
	}

	var printRecursive func(int, string)
	printRecursive = func(i int, prefix string) {
		n := nodes[i]
		fmt.Fprintf(w, "%s- mesh %d offset (%d, %d, %d)\n", prefix, n.Mesh, n.Offset.X, n.Offset.Y, n.Offset.Z)
		for _, c := range children[i] {
			printRecursive(c, prefix+"   ")
		}
	}

	for _, r := range roots {
		printRecursive(r, "")
	}
}
