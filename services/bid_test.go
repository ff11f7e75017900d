package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookswap/models"
	"bookswap/services"
)

func TestBidPlace(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "bidder", "bidder@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBidService(db)
	bid, err := service.Place("bidder@example.com", book.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusActive, bid.Status)
	assert.Equal(t, 15.0, bid.Amount)
}

func TestBidPlaceValidation(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "bidder", "bidder@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBidService(db)

	// 金額必須為正數
	_, err := service.Place("bidder@example.com", book.ID, 0)
	assert.ErrorIs(t, err, services.ErrInvalid)

	// 不得對自己的書出價
	_, err = service.Place("seller@example.com", book.ID, 15)
	assert.ErrorIs(t, err, services.ErrConflict)

	// 書籍不存在
	_, err = service.Place("bidder@example.com", 9999, 15)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// 出價者不存在
	_, err = service.Place("nobody@example.com", book.ID, 15)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBidPlaceDuplicateActive(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "bidder", "bidder@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBidService(db)
	_, err := service.Place("bidder@example.com", book.ID, 15)
	require.NoError(t, err)

	// 同一本書同時只能有一筆 ACTIVE 出價
	_, err = service.Place("bidder@example.com", book.ID, 18)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestBidAccept(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "bidder1", "bidder1@example.com")
	createUser(t, db, "bidder2", "bidder2@example.com")
	createUser(t, db, "bidder3", "bidder3@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBidService(db)
	bid1, err := service.Place("bidder1@example.com", book.ID, 15)
	require.NoError(t, err)
	_, err = service.Place("bidder2@example.com", book.ID, 18)
	require.NoError(t, err)
	_, err = service.Place("bidder3@example.com", book.ID, 12)
	require.NoError(t, err)

	accepted, err := service.Accept(bid1.ID, "seller@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusAccepted, accepted.Status)

	// 書籍轉為 SOLD
	var updatedBook models.Book
	require.NoError(t, db.First(&updatedBook, book.ID).Error)
	assert.Equal(t, models.BookStatusSold, updatedBook.Status)

	// 其餘 ACTIVE 出價全數轉為 REJECTED
	var statuses []string
	require.NoError(t, db.Model(&models.Bid{}).
		Where("book_id = ? AND id <> ?", book.ID, bid1.ID).
		Pluck("status", &statuses).Error)
	require.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.Equal(t, models.BidStatusRejected, status)
	}
}

func TestBidAcceptAuthorization(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "bidder", "bidder@example.com")
	createUser(t, db, "other", "other@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBidService(db)
	bid, err := service.Place("bidder@example.com", book.ID, 15)
	require.NoError(t, err)

	// 只有賣家本人可以接受出價
	_, err = service.Accept(bid.ID, "other@example.com")
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = service.Accept(9999, "seller@example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBidAcceptNonActive(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "bidder", "bidder@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBidService(db)
	bid, err := service.Place("bidder@example.com", book.ID, 15)
	require.NoError(t, err)

	_, err = service.Accept(bid.ID, "seller@example.com")
	require.NoError(t, err)

	// 已接受的出價不得重複接受
	_, err = service.Accept(bid.ID, "seller@example.com")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestBidListForBookOrdering(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	createUser(t, db, "bidder1", "bidder1@example.com")
	createUser(t, db, "bidder2", "bidder2@example.com")
	createUser(t, db, "bidder3", "bidder3@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBidService(db)
	_, err := service.Place("bidder1@example.com", book.ID, 12)
	require.NoError(t, err)
	_, err = service.Place("bidder2@example.com", book.ID, 18)
	require.NoError(t, err)
	_, err = service.Place("bidder3@example.com", book.ID, 15)
	require.NoError(t, err)

	bids, err := service.ListForBook(book.ID)
	require.NoError(t, err)
	require.Len(t, bids, 3)

	// 金額由高到低
	assert.Equal(t, 18.0, bids[0].Amount)
	assert.Equal(t, 15.0, bids[1].Amount)
	assert.Equal(t, 12.0, bids[2].Amount)
	// 出價者資訊一併帶出
	assert.Equal(t, "bidder2", bids[0].Bidder.Username)

	_, err = service.ListForBook(9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
