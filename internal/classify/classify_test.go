package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/owl"
)

// fakeCompleter records the prompt and replies with a canned response.
type fakeCompleter struct {
	response string
	err      error
	system   string
	user     string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string, _ int) (string, error) {
	f.system = system
	f.user = user
	return f.response, f.err
}

func testSnapshot() *graph.Snapshot {
	mk := func(suffix, label string) *owl.OWLClass {
		c := owl.NewOWLClass(graph.BaseIRI + suffix)
		c.Label = label
		return c
	}
	return graph.NewSnapshot(&owl.Document{
		Classes: []*owl.OWLClass{
			mk("A", "Tax Law"),
			mk("B", "Contract Law"),
			mk("C", "Tort Law"),
		},
	})
}

func TestClassify(t *testing.T) {
	snapshot := testSnapshot()
	completer := &fakeCompleter{
		response: `["` + graph.BaseIRI + `A", "` + graph.BaseIRI + `B"]`,
	}
	classifier := New(completer, snapshot)

	results, err := classifier.Classify(context.Background(), "A dispute over unpaid taxes.", snapshot.Classes(), 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Tax Law", results[0].Class.Label)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "Contract Law", results[1].Class.Label)
	assert.Equal(t, 2, results[1].Rank)

	// the prompt lists the candidates and the document
	assert.Contains(t, completer.user, "Tax Law")
	assert.Contains(t, completer.user, "A dispute over unpaid taxes.")
	assert.Contains(t, completer.system, "JSON array")
}

func TestClassifyNormalizesIRIs(t *testing.T) {
	snapshot := testSnapshot()
	completer := &fakeCompleter{response: `["soli:A"]`}
	classifier := New(completer, snapshot)

	results, err := classifier.Classify(context.Background(), "text", snapshot.Classes(), 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tax Law", results[0].Class.Label)
}

func TestClassifyDropsUnknownIRIs(t *testing.T) {
	snapshot := testSnapshot()
	completer := &fakeCompleter{
		response: `["` + graph.BaseIRI + `Invented", "` + graph.BaseIRI + `C"]`,
	}
	classifier := New(completer, snapshot)

	results, err := classifier.Classify(context.Background(), "text", snapshot.Classes(), 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tort Law", results[0].Class.Label)
	assert.Equal(t, 1, results[0].Rank)
}

func TestClassifyLimit(t *testing.T) {
	snapshot := testSnapshot()
	completer := &fakeCompleter{
		response: `["` + graph.BaseIRI + `A", "` + graph.BaseIRI + `B", "` + graph.BaseIRI + `C"]`,
	}
	classifier := New(completer, snapshot)

	results, err := classifier.Classify(context.Background(), "text", snapshot.Classes(), 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestClassifyToleratesProse(t *testing.T) {
	snapshot := testSnapshot()
	completer := &fakeCompleter{
		response: "Here are the matches:\n```json\n[\"" + graph.BaseIRI + "A\"]\n```\n",
	}
	classifier := New(completer, snapshot)

	results, err := classifier.Classify(context.Background(), "text", snapshot.Classes(), 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestClassifyEmptySelection(t *testing.T) {
	snapshot := testSnapshot()
	classifier := New(&fakeCompleter{response: "[]"}, snapshot)

	results, err := classifier.Classify(context.Background(), "text", snapshot.Classes(), 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClassifyMalformedResponse(t *testing.T) {
	snapshot := testSnapshot()
	classifier := New(&fakeCompleter{response: "no idea"}, snapshot)

	_, err := classifier.Classify(context.Background(), "text", snapshot.Classes(), 5)
	assert.Error(t, err)
}

func TestClassifyNoCandidates(t *testing.T) {
	snapshot := testSnapshot()
	classifier := New(&fakeCompleter{response: "[]"}, snapshot)

	results, err := classifier.Classify(context.Background(), "text", nil, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
