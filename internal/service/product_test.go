package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

func sampleInput() ProductInput {
	return ProductInput{
		Title:       "Levitating Plant Pot",
		Description: "Magnetic levitation planter",
		Price:       3450,
		Images:      []string{"https://img.example.com/pot.jpg"},
		CategoryID:  "cat-1",
		AffiliateLinks: []AffiliateLinkInput{
			{Store: "amazon", URL: "https://amazon.com/dp/X", Price: 3299},
		},
		Rating: 4.5,
	}
}

func TestProductService_Create(t *testing.T) {
	repo := new(mockProductRepository)
	producer := new(mockProducer)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID != "" &&
			p.Title == "Levitating Plant Pot" &&
			len(p.AffiliateLinks) == 1 &&
			p.AffiliateLinks[0].Store == domain.StoreAmazon &&
			p.AffiliateLinks[0].ID != ""
	})).Return(nil)
	producer.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc := NewProductService(repo, newTestPublisher(producer), nil, newTestLogger())

	product, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, int64(3450), product.Price)
	assert.False(t, product.CreatedAt.IsZero())
	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestProductService_Create_UnknownStore(t *testing.T) {
	svc := NewProductService(new(mockProductRepository), newTestPublisher(new(mockProducer)), nil, newTestLogger())

	in := sampleInput()
	in.AffiliateLinks[0].Store = "ebay"

	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestProductService_Create_PublishFailureDoesNotFail(t *testing.T) {
	repo := new(mockProductRepository)
	producer := new(mockProducer)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := NewProductService(repo, newTestPublisher(producer), nil, newTestLogger())

	_, err := svc.Create(context.Background(), sampleInput())
	assert.NoError(t, err)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := new(mockProductRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NotFound("product", "missing"))

	svc := NewProductService(repo, newTestPublisher(new(mockProducer)), nil, newTestLogger())

	_, err := svc.Update(context.Background(), "missing", sampleInput())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductService_Delete(t *testing.T) {
	repo := new(mockProductRepository)
	producer := new(mockProducer)

	repo.On("GetByID", mock.Anything, "p1").Return(&domain.Product{ID: "p1", CategoryID: "cat-1"}, nil)
	repo.On("Delete", mock.Anything, "p1").Return(nil)
	producer.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc := NewProductService(repo, newTestPublisher(producer), nil, newTestLogger())

	require.NoError(t, svc.Delete(context.Background(), "p1"))
	repo.AssertExpectations(t)
}
