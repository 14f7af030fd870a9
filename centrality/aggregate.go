package centrality

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/evcent/comms"
	"github.com/katalvlaran/evcent/graph"
	"github.com/katalvlaran/evcent/partition"
)

// Aggregate gathers every rank's renumber map and centrality
// sub-vector to rank 0, concatenates them in rank order, and sorts the
// pair by original vertex id. Partitions are ordered by rank, not by
// id, so the sort is what makes results comparable across runs with
// different partition counts.
//
// Rank 0 returns the canonical (ids, scores) pair; every other rank
// returns (nil, nil).
func Aggregate[V graph.ID, W graph.Weight](
	ctx context.Context,
	c *comms.Comms,
	p *partition.Partition[V, W],
	local []W,
) ([]V, []W, error) {
	if len(local) != p.Renumber.Count() {
		return nil, nil, fmt.Errorf("%w: got %d, owned range has %d", ErrLocalLength, len(local), p.Renumber.Count())
	}
	idParts, err := comms.Gatherv(ctx, c, p.Renumber.Originals())
	if err != nil {
		return nil, nil, err
	}
	scoreParts, err := comms.Gatherv(ctx, c, local)
	if err != nil {
		return nil, nil, err
	}
	if c.Rank() != 0 {
		return nil, nil, nil
	}

	ids := make([]V, 0, p.NumVertices)
	scores := make([]W, 0, p.NumVertices)
	for r := range idParts {
		ids = append(ids, idParts[r]...)
		scores = append(scores, scoreParts[r]...)
	}
	SortByID(ids, scores)
	return ids, scores, nil
}

// SortByID sorts the (ids, scores) pair in place by ascending original
// vertex id, keeping the pairing intact. Idempotent: sorting a sorted
// pair is a no-op.
func SortByID[V graph.ID, W graph.Weight](ids []V, scores []W) {
	sort.Sort(&byID[V, W]{ids: ids, scores: scores})
}

// byID adapts the paired slices to sort.Interface.
type byID[V graph.ID, W graph.Weight] struct {
	ids    []V
	scores []W
}

func (s *byID[V, W]) Len() int           { return len(s.ids) }
func (s *byID[V, W]) Less(i, j int) bool { return s.ids[i] < s.ids[j] }
func (s *byID[V, W]) Swap(i, j int) {
	s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
