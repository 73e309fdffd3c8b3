package projection

import (
	"strconv"

	"github.com/c360studio/pepgraph/graph"
)

// AuthorContributions builds the bipartite author/proposal graph, one
// authored edge per authorship relation. Each author node carries its
// contribution count for sizing and ranking in the rendered view. Authors
// are ordered lexically, proposals by ascending id.
func AuthorContributions(ug *graph.UnifiedGraph) View {
	b := newBuilder("author-contributions")

	for _, name := range ug.Authors() {
		ids := ug.AuthorProposals(name)
		authorID := "author/" + name
		b.addNode(Node{
			ID:    authorID,
			Label: name,
			Kind:  KindAuthor,
			Attrs: map[string]string{
				"contributions": strconv.Itoa(len(ids)),
			},
		})
		for _, id := range ids {
			if n, ok := ug.Node(id); ok {
				b.addNode(proposalNode(n))
			}
			b.addEdge(authorID, proposalViewID(id), EdgeAuthored)
		}
	}

	return b.view
}
