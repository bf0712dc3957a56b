package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
	"adwatch/internal/core/port/mocks"
)

func TestAddBusinessTrimsAndCreates(t *testing.T) {
	repo := mocks.NewMockBusinessRepository(t)
	repo.EXPECT().
		Create(mock.Anything, &domain.Business{Name: "Coffee", PageID: "12345"}).
		Run(func(_ context.Context, b *domain.Business) { b.ID = 4 }).
		Return(nil)

	b, err := NewBusinessService(repo, discard).AddBusiness(context.Background(), " Coffee ", "12345\n")
	require.NoError(t, err)
	assert.Equal(t, domain.Business{ID: 4, Name: "Coffee", PageID: "12345"}, b)
}

func TestAddBusinessDuplicate(t *testing.T) {
	repo := mocks.NewMockBusinessRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Business")).Return(port.ErrBusinessExists)

	_, err := NewBusinessService(repo, discard).AddBusiness(context.Background(), "Coffee", "12345")
	require.ErrorIs(t, err, port.ErrBusinessExists)
}

func TestDeleteBusiness(t *testing.T) {
	repo := mocks.NewMockBusinessRepository(t)
	repo.EXPECT().DeleteByPageID(mock.Anything, "12345").Return(domain.Business{ID: 4, PageID: "12345"}, nil)
	repo.EXPECT().DeleteByPageID(mock.Anything, "missing").Return(domain.Business{}, port.ErrNotFound)

	svc := NewBusinessService(repo, discard)
	b, err := svc.DeleteBusiness(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, int64(4), b.ID)

	_, err = svc.DeleteBusiness(context.Background(), "missing")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestListBusinesses(t *testing.T) {
	repo := mocks.NewMockBusinessRepository(t)
	want := []domain.Business{{ID: 1, Name: "a", PageID: "1"}, {ID: 2, Name: "b", PageID: "2"}}
	repo.EXPECT().List(mock.Anything).Return(want, nil)

	got, err := NewBusinessService(repo, discard).ListBusinesses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
