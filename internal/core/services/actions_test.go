package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

func newTestActionService(opened, copied *[]string, failWith error) *ResultActionService {
	return &ResultActionService{
		openURL: func(url string) error {
			*opened = append(*opened, url)
			return failWith
		},
		copyToClip: func(text string) error {
			*copied = append(*copied, text)
			return failWith
		},
	}
}

func TestResultActionService_OpenStorePage(t *testing.T) {
	var opened, copied []string
	service := newTestActionService(&opened, &copied, nil)

	err := service.OpenStorePage(context.Background(), &domain.TitleRecord{ID: 620})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://store.steampowered.com/app/620"}, opened)
	assert.Empty(t, copied)
}

func TestResultActionService_CopyStoreURL(t *testing.T) {
	var opened, copied []string
	service := newTestActionService(&opened, &copied, nil)

	err := service.CopyStoreURL(context.Background(), &domain.TitleRecord{ID: 620})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://store.steampowered.com/app/620"}, copied)
	assert.Empty(t, opened)
}

func TestResultActionService_Errors(t *testing.T) {
	var opened, copied []string
	boom := errors.New("no display")
	service := newTestActionService(&opened, &copied, boom)
	title := &domain.TitleRecord{ID: 1}

	assert.ErrorIs(t, service.OpenStorePage(context.Background(), title), boom)
	assert.ErrorIs(t, service.CopyStoreURL(context.Background(), title), boom)
}

func TestResultActionService_NilTitle(t *testing.T) {
	service := NewResultActionService()

	assert.ErrorIs(t, service.OpenStorePage(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.CopyStoreURL(context.Background(), nil), domain.ErrInvalidInput)
}
