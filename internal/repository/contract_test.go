package repository_test

import (
	"context"
	"testing"

	"vehicles-api/internal/domain"
	"vehicles-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises behaviour every Repository implementation must share.
func runContract(t *testing.T, newRepo func(t *testing.T) repository.Repository) {
	t.Run("create assigns increasing ids", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Create(ctx, &domain.Vehicle{Year: 2006, Make: "Chevy", Model: "Sonic"})
		require.NoError(t, err)
		second, err := repo.Create(ctx, &domain.Vehicle{Year: 2006, Make: "Ford", Model: "Fiesta"})
		require.NoError(t, err)

		assert.Positive(t, first.ID)
		assert.Greater(t, second.ID, first.ID)
		assert.Equal(t, "Fiesta", second.Model)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, _ := repo.Create(ctx, &domain.Vehicle{Year: 2006, Make: "Chevy", Model: "Sonic"})
		second, _ := repo.Create(ctx, &domain.Vehicle{Year: 2008, Make: "Chevy", Model: "Cruze"})
		require.NoError(t, repo.Delete(ctx, second.ID))

		third, err := repo.Create(ctx, &domain.Vehicle{Year: 2016, Make: "Chevy", Model: "Impala"})
		require.NoError(t, err)
		assert.Greater(t, third.ID, second.ID)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("find by id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, _ := repo.Create(ctx, &domain.Vehicle{Year: 2009, Make: "Nissan", Model: "Sentra"})

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)

		_, err = repo.FindByID(ctx, created.ID+100)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, _ := repo.Create(ctx, &domain.Vehicle{Year: 2006, Make: "Chevy", Model: "Sonic"})

		updated, err := repo.Update(ctx, &domain.Vehicle{ID: created.ID, Year: 2007, Make: "Chevy", Model: "Bogus"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 2007, found.Year)
		assert.Equal(t, "Bogus", found.Model)
	})

	t.Run("update unchanged values succeeds", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, _ := repo.Create(ctx, &domain.Vehicle{Year: 2006, Make: "Chevy", Model: "Sonic"})

		_, err := repo.Update(ctx, created)
		assert.NoError(t, err)
	})

	t.Run("update missing", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Update(context.Background(), &domain.Vehicle{ID: 42, Year: 2006, Make: "Chevy", Model: "Sonic"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete removes permanently", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, _ := repo.Create(ctx, &domain.Vehicle{Year: 2006, Make: "Chevy", Model: "Sonic"})

		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err := repo.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrNotFound)

		all, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("list applies predicate in id order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, v := range []*domain.Vehicle{
			{Year: 2006, Make: "Chevy", Model: "Sonic"},
			{Year: 2006, Make: "Ford", Model: "Fiesta"},
			{Year: 2008, Make: "Chevy", Model: "Cruze"},
			{Year: 2016, Make: "Chevy", Model: "Impala"},
		} {
			_, err := repo.Create(ctx, v)
			require.NoError(t, err)
		}

		all, err := repo.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, all, 4)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}

		chevys, err := repo.List(ctx, domain.Filters{
			Make:    domain.Some("CHEVY"),
			MaxYear: domain.Some(2010),
		}.Predicate())
		require.NoError(t, err)

		var models []string
		for _, v := range chevys {
			models = append(models, v.Model)
		}
		assert.Equal(t, []string{"Sonic", "Cruze"}, models)
	})

	t.Run("list empty repository", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.List(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}
