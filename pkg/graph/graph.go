package graph

import (
	"errors"
	"sort"
)

// ErrNotFound is returned when a queried character has no edges in the graph.
var ErrNotFound = errors.New("character not found in graph")

// Record is one row of the co-appearance table.
type Record struct {
	CharacterA     string
	CharacterB     string
	ScenesTogether int
}

// Connection ranks a character by its number of distinct co-characters.
type Connection struct {
	Character   string `json:"character"`
	Connections int    `json:"connections"`
}

// Pair is an undirected character pair with its shared scene count.
// CharacterA sorts before CharacterB, so each pair has one canonical spelling.
type Pair struct {
	CharacterA     string `json:"character_1"`
	CharacterB     string `json:"character_2"`
	ScenesTogether int    `json:"scenes_together"`
}

// Stats aggregates a single character's co-appearance data.
type Stats struct {
	TotalScenes         int    `json:"total_scenes"`
	TopCoCharacter      string `json:"top_co_character"`
	TopCoScenes         int    `json:"top_co_scenes"`
	UniqueCoAppearances int    `json:"unique_co_appearances"`
	Family              string `json:"family"`
}

// Graph is a weighted undirected character interaction graph. It is immutable
// after Build, so concurrent reads are safe without locking.
type Graph struct {
	adjacency map[string]map[string]int
}

// Build constructs a graph from the co-appearance records, keeping only pairs
// with at least minScenes shared scenes. A pair appearing more than once keeps
// the last seen weight. Characters that never meet the threshold are absent,
// so the graph contains no isolated nodes.
func Build(records []Record, minScenes int) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]int),
	}

	for _, r := range records {
		if r.ScenesTogether < minScenes {
			continue
		}
		g.setEdge(r.CharacterA, r.CharacterB, r.ScenesTogether)
	}

	return g
}

func (g *Graph) setEdge(a, b string, weight int) {
	if g.adjacency[a] == nil {
		g.adjacency[a] = make(map[string]int)
	}
	if g.adjacency[b] == nil {
		g.adjacency[b] = make(map[string]int)
	}
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight
}

// Characters returns all node names sorted alphabetically.
func (g *Graph) Characters() []string {
	names := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasCharacter reports whether the character is a node in the graph.
func (g *Graph) HasCharacter(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// NodeCount returns the number of characters in the graph.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, neighbors := range g.adjacency {
		total += len(neighbors)
	}
	return total / 2
}

// TopConnected returns up to n characters ranked by degree, the count of
// distinct co-characters. Degree ties break alphabetically. A non-positive n
// yields an empty list.
func (g *Graph) TopConnected(n int) []Connection {
	if n <= 0 {
		return []Connection{}
	}

	ranked := make([]Connection, 0, len(g.adjacency))
	for _, name := range g.Characters() {
		ranked = append(ranked, Connection{
			Character:   name,
			Connections: len(g.adjacency[name]),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Connections > ranked[j].Connections
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// TopPairs returns up to n edges ranked by shared scene count, each undirected
// pair reported once with its endpoints in alphabetical order. Weight ties
// break lexicographically on the pair.
func (g *Graph) TopPairs(n int) []Pair {
	if n <= 0 {
		return []Pair{}
	}

	pairs := make([]Pair, 0, g.EdgeCount())
	for _, name := range g.Characters() {
		for _, neighbor := range g.neighbors(name) {
			if name >= neighbor {
				continue
			}
			pairs = append(pairs, Pair{
				CharacterA:     name,
				CharacterB:     neighbor,
				ScenesTogether: g.adjacency[name][neighbor],
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].ScenesTogether > pairs[j].ScenesTogether
	})

	if n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}

// ShortestPath returns the unweighted shortest path from source to target,
// both endpoints included. Edge weights only decide which edges exist, not
// the path cost. It returns ErrNotFound when either character is not a node,
// and a nil path with a nil error when the two lie in different components.
// Neighbors are visited alphabetically, so the returned path is deterministic.
func (g *Graph) ShortestPath(source, target string) ([]string, error) {
	if !g.HasCharacter(source) || !g.HasCharacter(target) {
		return nil, ErrNotFound
	}
	if source == target {
		return []string{source}, nil
	}

	previous := map[string]string{source: ""}
	queue := []string{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range g.neighbors(current) {
			if _, seen := previous[neighbor]; seen {
				continue
			}
			previous[neighbor] = current

			if neighbor == target {
				return tracePath(previous, target), nil
			}
			queue = append(queue, neighbor)
		}
	}

	return nil, nil
}

func tracePath(previous map[string]string, target string) []string {
	var path []string
	for at := target; at != ""; at = previous[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// CharacterStats returns aggregate statistics for a single character. The top
// co-character is the neighbor sharing the most scenes, ties broken
// alphabetically. It returns ErrNotFound when the character has no edges in
// the graph, since the top co-character is undefined without neighbors.
func (g *Graph) CharacterStats(name string) (Stats, error) {
	neighbors := g.adjacency[name]
	if len(neighbors) == 0 {
		return Stats{}, ErrNotFound
	}

	stats := Stats{
		UniqueCoAppearances: len(neighbors),
		Family:              FamilyOf(name),
	}

	for _, neighbor := range g.neighbors(name) {
		weight := neighbors[neighbor]
		stats.TotalScenes += weight
		if weight > stats.TopCoScenes {
			stats.TopCoCharacter = neighbor
			stats.TopCoScenes = weight
		}
	}

	return stats, nil
}

func (g *Graph) neighbors(name string) []string {
	names := make([]string, 0, len(g.adjacency[name]))
	for neighbor := range g.adjacency[name] {
		names = append(names, neighbor)
	}
	sort.Strings(names)
	return names
}
