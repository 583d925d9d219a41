package graph

import (
	"errors"
	"reflect"
	"testing"
)

func sampleRecords() []Record {
	return []Record{
		{CharacterA: "A", CharacterB: "B", ScenesTogether: 60},
		{CharacterA: "B", CharacterB: "C", ScenesTogether: 5},
		{CharacterA: "A", CharacterB: "C", ScenesTogether: 40},
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		records    []Record
		minScenes  int
		wantNodes  []string
		wantEdges  int
		wantWeight map[[2]string]int
	}{
		{
			name:      "empty input yields empty graph",
			records:   nil,
			minScenes: 1,
			wantNodes: []string{},
			wantEdges: 0,
		},
		{
			name:      "threshold filters weak edges and their isolated endpoints",
			records:   sampleRecords(),
			minScenes: 50,
			wantNodes: []string{"A", "B"},
			wantEdges: 1,
			wantWeight: map[[2]string]int{
				{"A", "B"}: 60,
			},
		},
		{
			name:      "threshold one keeps everything",
			records:   sampleRecords(),
			minScenes: 1,
			wantNodes: []string{"A", "B", "C"},
			wantEdges: 3,
		},
		{
			name: "duplicate pair keeps last weight without accumulating",
			records: []Record{
				{CharacterA: "A", CharacterB: "B", ScenesTogether: 60},
				{CharacterA: "B", CharacterB: "A", ScenesTogether: 70},
			},
			minScenes: 1,
			wantNodes: []string{"A", "B"},
			wantEdges: 1,
			wantWeight: map[[2]string]int{
				{"A", "B"}: 70,
			},
		},
		{
			name: "zero weight record dropped at threshold one",
			records: []Record{
				{CharacterA: "A", CharacterB: "B", ScenesTogether: 0},
			},
			minScenes: 1,
			wantNodes: []string{},
			wantEdges: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.records, tt.minScenes)
			if got := g.Characters(); !reflect.DeepEqual(got, tt.wantNodes) {
				t.Fatalf("unexpected nodes: got %v, want %v", got, tt.wantNodes)
			}
			if got := g.EdgeCount(); got != tt.wantEdges {
				t.Fatalf("unexpected edge count: got %d, want %d", got, tt.wantEdges)
			}
			for pair, want := range tt.wantWeight {
				if got := g.adjacency[pair[0]][pair[1]]; got != want {
					t.Fatalf("unexpected weight for %v: got %d, want %d", pair, got, want)
				}
			}
		})
	}
}

func TestBuildMonotonicShrinkage(t *testing.T) {
	records := sampleRecords()
	previous := Build(records, 1).EdgeCount()
	for _, minScenes := range []int{10, 30, 50, 100} {
		current := Build(records, minScenes).EdgeCount()
		if current > previous {
			t.Fatalf("edge count grew from %d to %d at threshold %d", previous, current, minScenes)
		}
		previous = current
	}
}

func TestTopConnected(t *testing.T) {
	g := Build(sampleRecords(), 1)

	tests := []struct {
		name string
		n    int
		want []Connection
	}{
		{
			name: "degree ties break alphabetically",
			n:    3,
			want: []Connection{
				{Character: "A", Connections: 2},
				{Character: "B", Connections: 2},
				{Character: "C", Connections: 2},
			},
		},
		{
			name: "n truncates",
			n:    1,
			want: []Connection{
				{Character: "A", Connections: 2},
			},
		},
		{
			name: "n beyond node count returns all",
			n:    10,
			want: []Connection{
				{Character: "A", Connections: 2},
				{Character: "B", Connections: 2},
				{Character: "C", Connections: 2},
			},
		},
		{
			name: "non-positive n returns empty",
			n:    0,
			want: []Connection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.TopConnected(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected ranking: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopConnectedSortsByDegree(t *testing.T) {
	records := []Record{
		{CharacterA: "Hub", CharacterB: "X", ScenesTogether: 1},
		{CharacterA: "Hub", CharacterB: "Y", ScenesTogether: 1},
		{CharacterA: "Hub", CharacterB: "Z", ScenesTogether: 1},
		{CharacterA: "X", CharacterB: "Y", ScenesTogether: 1},
	}
	g := Build(records, 1)

	got := g.TopConnected(4)
	degrees := make([]int, len(got))
	for i, entry := range got {
		degrees[i] = entry.Connections
	}
	want := []int{3, 2, 2, 1}
	if !reflect.DeepEqual(degrees, want) {
		t.Fatalf("unexpected degree order: got %v, want %v", degrees, want)
	}
	if got[0].Character != "Hub" {
		t.Fatalf("expected Hub first, got %q", got[0].Character)
	}
}

func TestTopPairs(t *testing.T) {
	g := Build(sampleRecords(), 1)

	tests := []struct {
		name string
		n    int
		want []Pair
	}{
		{
			name: "sorted by weight descending",
			n:    3,
			want: []Pair{
				{CharacterA: "A", CharacterB: "B", ScenesTogether: 60},
				{CharacterA: "A", CharacterB: "C", ScenesTogether: 40},
				{CharacterA: "B", CharacterB: "C", ScenesTogether: 5},
			},
		},
		{
			name: "strongest pair only",
			n:    1,
			want: []Pair{
				{CharacterA: "A", CharacterB: "B", ScenesTogether: 60},
			},
		},
		{
			name: "n beyond edge count returns all",
			n:    10,
			want: []Pair{
				{CharacterA: "A", CharacterB: "B", ScenesTogether: 60},
				{CharacterA: "A", CharacterB: "C", ScenesTogether: 40},
				{CharacterA: "B", CharacterB: "C", ScenesTogether: 5},
			},
		},
		{
			name: "non-positive n returns empty",
			n:    -1,
			want: []Pair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.TopPairs(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected pairs: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopPairsWeightTiesBreakLexicographically(t *testing.T) {
	records := []Record{
		{CharacterA: "C", CharacterB: "D", ScenesTogether: 10},
		{CharacterA: "B", CharacterB: "A", ScenesTogether: 10},
	}
	g := Build(records, 1)

	want := []Pair{
		{CharacterA: "A", CharacterB: "B", ScenesTogether: 10},
		{CharacterA: "C", CharacterB: "D", ScenesTogether: 10},
	}
	if got := g.TopPairs(2); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tie order: got %v, want %v", got, want)
	}
}

func TestShortestPath(t *testing.T) {
	// A-B and A-C survive, D-E is a separate component.
	records := []Record{
		{CharacterA: "A", CharacterB: "B", ScenesTogether: 60},
		{CharacterA: "A", CharacterB: "C", ScenesTogether: 50},
		{CharacterA: "D", CharacterB: "E", ScenesTogether: 50},
	}
	g := Build(records, 50)

	tests := []struct {
		name    string
		source  string
		target  string
		want    []string
		wantErr error
	}{
		{
			name:   "same node returns single element path",
			source: "A",
			target: "A",
			want:   []string{"A"},
		},
		{
			name:   "direct edge",
			source: "A",
			target: "B",
			want:   []string{"A", "B"},
		},
		{
			name:   "two hops through shared neighbor",
			source: "B",
			target: "C",
			want:   []string{"B", "A", "C"},
		},
		{
			name:   "disconnected components return no path without error",
			source: "A",
			target: "D",
			want:   nil,
		},
		{
			name:    "unknown source",
			source:  "Nobody",
			target:  "A",
			wantErr: ErrNotFound,
		},
		{
			name:    "unknown target",
			source:  "A",
			target:  "Nobody",
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.ShortestPath(tt.source, tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected path: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShortestPathSymmetricExistence(t *testing.T) {
	g := Build(sampleRecords(), 50)

	forward, err := g.ShortestPath("A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backward, err := g.ShortestPath("B", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (forward == nil) != (backward == nil) {
		t.Fatalf("path existence not symmetric: forward %v, backward %v", forward, backward)
	}
	if len(forward) != len(backward) {
		t.Fatalf("path lengths differ: forward %v, backward %v", forward, backward)
	}
}

func TestShortestPathPicksMinimumHops(t *testing.T) {
	// A-B-D and the direct A-D edge both reach D; BFS must take the
	// single-hop route regardless of weights.
	records := []Record{
		{CharacterA: "A", CharacterB: "B", ScenesTogether: 100},
		{CharacterA: "B", CharacterB: "D", ScenesTogether: 100},
		{CharacterA: "A", CharacterB: "D", ScenesTogether: 1},
	}
	g := Build(records, 1)

	got, err := g.ShortestPath("A", "D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected path: got %v, want %v", got, want)
	}
}

func TestCharacterStats(t *testing.T) {
	records := []Record{
		{CharacterA: "Jay", CharacterB: "Gloria", ScenesTogether: 80},
		{CharacterA: "Jay", CharacterB: "Claire", ScenesTogether: 55},
		{CharacterA: "Claire", CharacterB: "Phil", ScenesTogether: 90},
	}
	g := Build(records, 1)

	tests := []struct {
		name      string
		character string
		want      Stats
		wantErr   error
	}{
		{
			name:      "sums weights and finds top co-character",
			character: "Jay",
			want: Stats{
				TotalScenes:         135,
				TopCoCharacter:      "Gloria",
				TopCoScenes:         80,
				UniqueCoAppearances: 2,
				Family:              "Pritchett",
			},
		},
		{
			name:      "single neighbor",
			character: "Phil",
			want: Stats{
				TotalScenes:         90,
				TopCoCharacter:      "Claire",
				TopCoScenes:         90,
				UniqueCoAppearances: 1,
				Family:              "Dunphy",
			},
		},
		{
			name:      "absent character",
			character: "Nobody",
			wantErr:   ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.CharacterStats(tt.character)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected stats: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCharacterStatsTopCoCharacterTieBreaksAlphabetically(t *testing.T) {
	records := []Record{
		{CharacterA: "Luke", CharacterB: "Manny", ScenesTogether: 30},
		{CharacterA: "Luke", CharacterB: "Alex", ScenesTogether: 30},
	}
	g := Build(records, 1)

	got, err := g.CharacterStats("Luke")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TopCoCharacter != "Alex" {
		t.Fatalf("unexpected top co-character: got %q, want %q", got.TopCoCharacter, "Alex")
	}
}

func TestCharacterStatsIsolatedAfterThreshold(t *testing.T) {
	g := Build(sampleRecords(), 50)

	// C only had sub-threshold edges, so it is not a node at all.
	if _, err := g.CharacterStats("C"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
