package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/search-server/config"
	internalErrors "github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/tokenizer"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/store"
)

func newTestSettings() *config.ServerSettings {
	settings := &config.ServerSettings{Name: "test_index"}
	settings.ApplyDefaults()
	return settings
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	stopWords, err := tokenizer.NewStopWordsFromText("и в на")
	require.NoError(t, err)
	invIndex, docStore := buildCorpus(t, stopWords, []testDoc{
		{id: 1, text: "пушистый кот пушистый хвост", status: model.DocumentStatusActual, ratings: []int{7, 2, 7}},
		{id: 2, text: "пушистый пёс и модный ошейник", status: model.DocumentStatusActual, ratings: []int{1, 2}},
		{id: 3, text: "ухоженный скворец евгений", status: model.DocumentStatusBanned, ratings: []int{9}},
	})
	service, err := NewService(invIndex, docStore, stopWords, newTestSettings())
	require.NoError(t, err)
	return service
}

func TestNewService(t *testing.T) {
	settings := newTestSettings()

	_, err := NewService(nil, store.NewDocumentStore(), nil, settings)
	assert.Error(t, err)

	_, err = NewService(index.NewInvertedIndex(), nil, nil, settings)
	assert.Error(t, err)

	_, err = NewService(index.NewInvertedIndex(), store.NewDocumentStore(), nil, nil)
	assert.Error(t, err)

	_, err = NewService(index.NewInvertedIndex(), store.NewDocumentStore(), nil, settings)
	assert.NoError(t, err)
}

func TestService_FindTopDocuments(t *testing.T) {
	service := newTestService(t)

	actual := model.StatusPredicate(model.DocumentStatusActual)
	results, err := service.FindTopDocuments("пушистый -пёс", actual)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, 5, results[0].Rating)

	results, err = service.FindTopDocuments("скворец", actual)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = service.FindTopDocuments("скворец", model.StatusPredicate(model.DocumentStatusBanned))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].ID)

	_, err = service.FindTopDocuments("--пушистый", actual)
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)
}

func TestService_MatchDocument(t *testing.T) {
	service := newTestService(t)

	t.Run("plus words in ascending order", func(t *testing.T) {
		words, status, err := service.MatchDocument("хвост пушистый кот ошейник", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"кот", "пушистый", "хвост"}, words)
		assert.Equal(t, model.DocumentStatusActual, status)
	})

	t.Run("minus word clears the list", func(t *testing.T) {
		words, status, err := service.MatchDocument("пушистый -пёс", 2)
		require.NoError(t, err)
		assert.NotNil(t, words)
		assert.Empty(t, words)
		assert.Equal(t, model.DocumentStatusActual, status)
	})

	t.Run("minus word absent from document", func(t *testing.T) {
		words, _, err := service.MatchDocument("пушистый -пёс", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"пушистый"}, words)
	})

	t.Run("status of banned document", func(t *testing.T) {
		words, status, err := service.MatchDocument("скворец", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"скворец"}, words)
		assert.Equal(t, model.DocumentStatusBanned, status)
	})

	t.Run("stop words never match", func(t *testing.T) {
		words, _, err := service.MatchDocument("и пёс", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"пёс"}, words)
	})

	t.Run("unknown document", func(t *testing.T) {
		_, _, err := service.MatchDocument("пушистый", 99)
		assert.ErrorIs(t, err, internalErrors.ErrOutOfRange)
	})

	t.Run("malformed query", func(t *testing.T) {
		_, _, err := service.MatchDocument("пушистый -", 1)
		assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)
	})
}
