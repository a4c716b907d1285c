package repositories

import (
	"context"
	"testing"

	"github.com/questscholar/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcardRepository_CreateAssignsIncrementingIDs(t *testing.T) {
	repo := NewFlashcardRepository()
	ctx := context.Background()

	first := &models.SavedFlashcard{Question: "Q1", Answer: "A1"}
	second := &models.SavedFlashcard{Question: "Q2", Answer: "A2"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	cards, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, *first, cards[0])
	assert.Equal(t, *second, cards[1])
}

func TestFlashcardRepository_DeleteByID(t *testing.T) {
	repo := NewFlashcardRepository()
	ctx := context.Background()

	card := &models.SavedFlashcard{Question: "Q", Answer: "A"}
	require.NoError(t, repo.Create(ctx, card))

	require.NoError(t, repo.DeleteByID(ctx, card.ID))

	cards, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)

	// Deleting an absent id is an error
	assert.Error(t, repo.DeleteByID(ctx, card.ID))
}

func TestFlashcardRepository_IDsNotReused(t *testing.T) {
	repo := NewFlashcardRepository()
	ctx := context.Background()

	first := &models.SavedFlashcard{Question: "Q1", Answer: "A1"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.DeleteByID(ctx, first.ID))

	second := &models.SavedFlashcard{Question: "Q2", Answer: "A2"}
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, 2, second.ID)
}

func TestFlashcardRepository_GetAllReturnsCopy(t *testing.T) {
	repo := NewFlashcardRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.SavedFlashcard{Question: "Q", Answer: "A"}))

	cards, err := repo.GetAll(ctx)
	require.NoError(t, err)
	cards[0].Question = "mutated"

	fresh, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Q", fresh[0].Question)
}
