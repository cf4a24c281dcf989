package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/query"
	"github.com/gcbaptista/search-server/internal/tokenizer"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/store"
)

type testDoc struct {
	id      int
	text    string
	status  model.DocumentStatus
	ratings []int
}

// buildCorpus indexes docs the same way the indexing service does.
func buildCorpus(t *testing.T, stopWords *tokenizer.StopWords, docs []testDoc) (*index.InvertedIndex, *store.DocumentStore) {
	t.Helper()
	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()
	for _, doc := range docs {
		words := stopWords.Filter(tokenizer.Tokenize(doc.text))
		invIndex.AddDocument(doc.id, words)
		require.True(t, docStore.Add(doc.id, model.DocumentData{
			Rating: model.ComputeAverageRating(doc.ratings),
			Status: doc.status,
		}))
	}
	return invIndex, docStore
}

func mustParse(t *testing.T, raw string, stopWords *tokenizer.StopWords) query.Query {
	t.Helper()
	q, err := query.Parse(raw, stopWords)
	require.NoError(t, err)
	return q
}

func TestTFIDFCalculator(t *testing.T) {
	invIndex, docStore := buildCorpus(t, nil, []testDoc{
		{id: 0, text: "white cat fashionable collar", status: model.DocumentStatusActual},
		{id: 1, text: "fluffy cat fluffy tail", status: model.DocumentStatusActual},
		{id: 2, text: "groomed dog expressive eyes", status: model.DocumentStatusActual},
	})
	calc := NewTFIDFCalculator(invIndex, docStore)

	assert.InDelta(t, math.Log(3.0/2.0), calc.CalculateIDF("cat"), 1e-12)
	assert.InDelta(t, math.Log(3.0), calc.CalculateIDF("dog"), 1e-12)
	assert.Equal(t, 0.0, calc.CalculateIDF("parrot"))

	assert.InDelta(t, 0.5*math.Log(3.0), calc.CalculateTFIDF("fluffy", 1), 1e-12)
	assert.Equal(t, 0.0, calc.CalculateTFIDF("fluffy", 0))
}

func TestRanker_RelevanceValues(t *testing.T) {
	stopWords, err := tokenizer.NewStopWordsFromText("and in on")
	require.NoError(t, err)
	invIndex, docStore := buildCorpus(t, stopWords, []testDoc{
		{id: 0, text: "white cat and fashionable collar", status: model.DocumentStatusActual, ratings: []int{8, -3}},
		{id: 1, text: "fluffy cat fluffy tail", status: model.DocumentStatusActual, ratings: []int{7, 2, 7}},
		{id: 2, text: "groomed dog expressive eyes", status: model.DocumentStatusActual, ratings: []int{5, -12, 2, 1}},
		{id: 3, text: "groomed starling evgeny", status: model.DocumentStatusBanned, ratings: []int{9}},
	})
	ranker := NewRanker(invIndex, docStore, 5, 1e-6)

	results := ranker.Rank(mustParse(t, "fluffy groomed cat", stopWords), nil)
	require.Len(t, results, 4)

	// fluffy: tf 0.5 in doc 1, idf ln(4); cat: tf 0.25 in doc 0 & 1, idf ln(2)
	assert.Equal(t, 1, results[0].ID)
	assert.InDelta(t, 0.5*math.Log(4)+0.25*math.Log(2), results[0].Relevance, 1e-9)
	assert.Equal(t, 5, results[0].Rating)

	// groomed: tf 1/3 in doc 3, 0.25 in doc 2, idf ln(2)
	assert.Equal(t, 3, results[1].ID)
	assert.InDelta(t, math.Log(2)/3, results[1].Relevance, 1e-9)

	// doc 0 (cat 0.25*ln2) ties doc 2 (groomed 0.25*ln2); rating 2 beats -1
	assert.Equal(t, 0, results[2].ID)
	assert.Equal(t, 2, results[3].ID)
	assert.InDelta(t, results[2].Relevance, results[3].Relevance, 1e-6)
	assert.Equal(t, 2, results[2].Rating)
	assert.Equal(t, -1, results[3].Rating)
}

func TestRanker_MinusWordVeto(t *testing.T) {
	invIndex, docStore := buildCorpus(t, nil, []testDoc{
		{id: 1, text: "cat cat cat dog", status: model.DocumentStatusActual},
		{id: 2, text: "cat bird", status: model.DocumentStatusActual},
		{id: 3, text: "bird", status: model.DocumentStatusActual},
	})
	ranker := NewRanker(invIndex, docStore, 5, 1e-6)

	results := ranker.Rank(mustParse(t, "cat -dog", nil), nil)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].ID)

	t.Run("veto ignores predicate", func(t *testing.T) {
		onlyDocTwo := func(id int, _ model.DocumentStatus, _ int) bool { return id == 2 }
		results := ranker.Rank(mustParse(t, "cat -bird", nil), onlyDocTwo)
		assert.Empty(t, results)
	})

	t.Run("word both required and excluded", func(t *testing.T) {
		results := ranker.Rank(mustParse(t, "cat -cat", nil), nil)
		assert.Empty(t, results)
	})

	t.Run("unindexed minus word is harmless", func(t *testing.T) {
		results := ranker.Rank(mustParse(t, "cat -parrot", nil), nil)
		assert.Len(t, results, 2)
	})
}

func TestRanker_Predicate(t *testing.T) {
	invIndex, docStore := buildCorpus(t, nil, []testDoc{
		{id: 1, text: "cat", status: model.DocumentStatusActual, ratings: []int{1}},
		{id: 2, text: "cat", status: model.DocumentStatusBanned, ratings: []int{2}},
		{id: 3, text: "cat", status: model.DocumentStatusActual, ratings: []int{3}},
		{id: 4, text: "dog", status: model.DocumentStatusActual, ratings: []int{4}},
	})
	ranker := NewRanker(invIndex, docStore, 5, 1e-6)
	q := mustParse(t, "cat", nil)

	banned := ranker.Rank(q, model.StatusPredicate(model.DocumentStatusBanned))
	require.Len(t, banned, 1)
	assert.Equal(t, 2, banned[0].ID)

	even := ranker.Rank(q, func(id int, _ model.DocumentStatus, _ int) bool { return id%2 == 0 })
	require.Len(t, even, 1)
	assert.Equal(t, 2, even[0].ID)

	all := ranker.Rank(q, nil)
	require.Len(t, all, 3)
	// equal relevance, so rating decides
	assert.Equal(t, []int{3, 2, 1}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestRanker_TopKCutoff(t *testing.T) {
	docs := make([]testDoc, 0, 8)
	for id := 0; id < 8; id++ {
		docs = append(docs, testDoc{id: id, text: "cat", status: model.DocumentStatusActual, ratings: []int{id}})
	}
	docs = append(docs, testDoc{id: 100, text: "dog", status: model.DocumentStatusActual})
	invIndex, docStore := buildCorpus(t, nil, docs)
	ranker := NewRanker(invIndex, docStore, 5, 1e-6)

	results := ranker.Rank(mustParse(t, "cat", nil), nil)
	require.Len(t, results, 5)
	for i, want := range []int{7, 6, 5, 4, 3} {
		assert.Equal(t, want, results[i].ID)
	}

	all := ranker.FindAllDocuments(mustParse(t, "cat", nil), nil)
	assert.Len(t, all, 8)
}

func TestRanker_Deterministic(t *testing.T) {
	invIndex, docStore := buildCorpus(t, nil, []testDoc{
		{id: 5, text: "cat", status: model.DocumentStatusActual},
		{id: 3, text: "cat", status: model.DocumentStatusActual},
		{id: 9, text: "cat", status: model.DocumentStatusActual},
		{id: 1, text: "cat dog", status: model.DocumentStatusActual},
	})
	ranker := NewRanker(invIndex, docStore, 5, 1e-6)
	q := mustParse(t, "cat dog", nil)

	first := ranker.Rank(q, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ranker.Rank(q, nil))
	}
	// fully tied documents keep ascending ID order
	assert.Equal(t, []int{1, 3, 5, 9}, []int{first[0].ID, first[1].ID, first[2].ID, first[3].ID})
}

func TestSortDocuments(t *testing.T) {
	docs := []model.Document{
		{ID: 1, Relevance: 0.5, Rating: 1},
		{ID: 2, Relevance: 0.5 + 5e-7, Rating: 9},
		{ID: 3, Relevance: 0.9, Rating: -4},
		{ID: 4, Relevance: 0.1, Rating: 100},
	}
	SortDocuments(docs, 1e-6)

	assert.Equal(t, []int{3, 2, 1, 4}, []int{docs[0].ID, docs[1].ID, docs[2].ID, docs[3].ID})
}
