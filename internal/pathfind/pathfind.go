// Package pathfind finds minimum-hop paths over an unweighted route graph.
package pathfind

// Graph exposes adjacency for the search. The boolean is false when the
// graph has no node with the given id.
type Graph interface {
	Neighbors(id int) ([]int, bool)
}

// Edge is one hop of a path: the node reached and the node it was reached from.
type Edge struct {
	ID       int
	ParentID int
}

// Path lists edges from the destination back to the source.
type Path []Edge

// Empty reports whether no connecting path was found.
func (p Path) Empty() bool {
	return len(p) == 0
}

// Hops returns the number of edges in the path.
func (p Path) Hops() int {
	return len(p)
}

// Stops returns the node ids visited from source to destination.
func (p Path) Stops() []int {
	if len(p) == 0 {
		return nil
	}
	stops := make([]int, 0, len(p)+1)
	stops = append(stops, p[len(p)-1].ParentID)
	for i := len(p) - 1; i >= 0; i-- {
		stops = append(stops, p[i].ID)
	}
	return stops
}

// FindPath runs a breadth-first search from sourceID and returns the first
// path found to destinationID, which has the minimum hop count. It returns
// an empty path when the source is unknown, the destination is unreachable,
// or both ids are equal.
func FindPath(g Graph, sourceID, destinationID int) Path {
	if sourceID == destinationID {
		return nil
	}
	if _, ok := g.Neighbors(sourceID); !ok {
		return nil
	}

	parent := map[int]int{sourceID: sourceID}
	queue := []int{sourceID}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		neighbors, _ := g.Neighbors(node)
		for _, next := range neighbors {
			if _, seen := parent[next]; seen {
				continue
			}
			// Dangling ids from an inconsistent dataset are skipped.
			if _, known := g.Neighbors(next); !known {
				continue
			}
			parent[next] = node
			if next == destinationID {
				return walkBack(parent, sourceID, destinationID)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

func walkBack(parent map[int]int, sourceID, destinationID int) Path {
	var path Path
	for current := destinationID; current != sourceID; {
		prev := parent[current]
		path = append(path, Edge{ID: current, ParentID: prev})
		current = prev
	}
	return path
}
