package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookswap/services"
)

func TestReviewAdd(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	reader := createUser(t, db, "reader", "reader@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewReviewService(db)
	review, err := service.Add("reader@example.com", book.ID, 4, "well worth it")
	require.NoError(t, err)
	assert.Equal(t, reader.ID, review.UserID)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewAddValidation(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "reader", "reader@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewReviewService(db)

	tests := []struct {
		name   string
		rating int
	}{
		{name: "評分太低", rating: 0},
		{name: "評分太高", rating: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Add("reader@example.com", book.ID, tt.rating, "")
			assert.ErrorIs(t, err, services.ErrInvalid)
		})
	}

	_, err := service.Add("reader@example.com", 9999, 3, "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = service.Add("nobody@example.com", book.ID, 3, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReviewListForBook(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "reader1", "reader1@example.com")
	createUser(t, db, "reader2", "reader2@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewReviewService(db)
	_, err := service.Add("reader1@example.com", book.ID, 5, "")
	require.NoError(t, err)
	_, err = service.Add("reader2@example.com", book.ID, 3, "")
	require.NoError(t, err)

	reviews, err := service.ListForBook(book.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	// 評論者資訊一併帶出
	assert.NotEmpty(t, reviews[0].User.Username)
}

func TestReviewListByUser(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "reader", "reader@example.com")
	book1 := createBook(t, db, seller.ID, "Clean Code", 20)
	book2 := createBook(t, db, seller.ID, "Refactoring", 30)

	service := services.NewReviewService(db)
	_, err := service.Add("reader@example.com", book1.ID, 5, "")
	require.NoError(t, err)
	_, err = service.Add("reader@example.com", book2.ID, 4, "")
	require.NoError(t, err)

	reviews, err := service.ListByUser("reader@example.com")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	reviews, err = service.ListByUser("seller@example.com")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
