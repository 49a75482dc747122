package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateCatInput
		wantErr bool
	}{
		{
			name:  "valid payload",
			input: CreateCatInput{Name: "Milo", Age: 3, Breed: "tabby"},
		},
		{
			name:  "empty name is within bounds",
			input: CreateCatInput{Name: "", Age: 1, Breed: "stray"},
		},
		{
			name:  "four character name is the upper bound",
			input: CreateCatInput{Name: "Luna", Age: 2, Breed: "siamese"},
		},
		{
			name:    "five character name exceeds bound",
			input:   CreateCatInput{Name: "Simba", Age: 2, Breed: "maine coon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCatRepo{}
			notifier := &fakeNotifier{}
			svc := NewCatService(repo, notifier)

			cat, err := svc.Create(context.Background(), tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				// A rejected payload must cause no side effects at all.
				assert.Equal(t, 0, repo.inserts)
				assert.Equal(t, 0, notifier.count())
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, cat.ID)
			assert.Equal(t, tt.input.Name, cat.Name)
			assert.Equal(t, tt.input.Age, cat.Age)
			assert.Equal(t, tt.input.Breed, cat.Breed)

			// Exactly one broadcast, after the persist.
			require.Equal(t, 1, notifier.count())
			assert.Equal(t, EventCatCreated, notifier.events[0])
			assert.Equal(t, cat, notifier.last)
		})
	}
}

func TestCatService_CreatePersistFailureNeverNotifies(t *testing.T) {
	repo := &fakeCatRepo{failInsert: domain.PersistenceError(errors.New("connection reset"))}
	notifier := &fakeNotifier{}
	svc := NewCatService(repo, notifier)

	_, err := svc.Create(context.Background(), CreateCatInput{Name: "Milo", Age: 3, Breed: "tabby"})

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, 0, notifier.count(), "a failed persist must never trigger a broadcast")
}

func TestCatService_CreateThenListContainsCatOnce(t *testing.T) {
	repo := &fakeCatRepo{}
	svc := NewCatService(repo, &fakeNotifier{})
	ctx := context.Background()

	cat, err := svc.Create(ctx, CreateCatInput{Name: "Milo", Age: 3, Breed: "tabby"})
	require.NoError(t, err)

	cats, err := svc.List(ctx)
	require.NoError(t, err)

	found := 0
	for _, c := range cats {
		if c.ID == cat.ID {
			found++
		}
	}
	assert.Equal(t, 1, found, "inserted cat should appear exactly once")
}

func TestCatService_Get(t *testing.T) {
	repo := &fakeCatRepo{}
	svc := NewCatService(repo, &fakeNotifier{})
	ctx := context.Background()

	cat, err := svc.Create(ctx, CreateCatInput{Name: "Milo", Age: 3, Breed: "tabby"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, got.ID)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
