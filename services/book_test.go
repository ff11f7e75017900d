package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookswap/models"
	"bookswap/services"
)

func TestBookCreate(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	service := services.NewBookService(db)

	book, err := service.Create(seller.ID, services.BookInput{
		Title:     "The Go Programming Language",
		Author:    "Donovan & Kernighan",
		Price:     35.5,
		Condition: models.ConditionLikeNew,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookStatusAvailable, book.Status)
	// 未指定刊登方式時預設為直購
	assert.Equal(t, models.ListingTypeSale, book.ListingType)
}

func TestBookCreateValidation(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	service := services.NewBookService(db)

	tests := []struct {
		name  string
		input services.BookInput
	}{
		{
			name:  "缺少書名",
			input: services.BookInput{Author: "A", Condition: models.ConditionGood},
		},
		{
			name:  "負數價格",
			input: services.BookInput{Title: "T", Author: "A", Price: -1, Condition: models.ConditionGood},
		},
		{
			name:  "未知的書況",
			input: services.BookInput{Title: "T", Author: "A", Condition: "BURNT"},
		},
		{
			name:  "未知的刊登方式",
			input: services.BookInput{Title: "T", Author: "A", Condition: models.ConditionGood, ListingType: "RENTAL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(seller.ID, tt.input)
			assert.ErrorIs(t, err, services.ErrInvalid)
		})
	}
}

func TestBookListAvailable(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	service := services.NewBookService(db)

	createBook(t, db, seller.ID, "Clean Code", 20)
	sold := createBook(t, db, seller.ID, "Refactoring", 30)
	require.NoError(t, db.Model(&models.Book{}).Where("id = ?", sold.ID).
		Update("status", models.BookStatusSold).Error)

	books, err := service.ListAvailable("")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Clean Code", books[0].Title)
	// 賣家資訊一併帶出
	assert.Equal(t, "seller", books[0].Seller.Username)
}

func TestBookListAvailableSearch(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	service := services.NewBookService(db)

	createBook(t, db, seller.ID, "The Pragmatic Programmer", 25)
	createBook(t, db, seller.ID, "Clean Architecture", 30)

	books, err := service.ListAvailable("Pragmatic")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Pragmatic Programmer", books[0].Title)
}

func TestBookGet(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBookService(db)
	got, err := service.Get(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clean Code", got.Title)
	assert.Equal(t, seller.ID, got.Seller.ID)

	_, err = service.Get(9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBookDeleteAuthorization(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	other := createUser(t, db, "other", "other@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	service := services.NewBookService(db)

	// 其他使用者不得刪除
	_, err := service.Delete(book.ID, other)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// 賣家本人可以刪除
	_, err = service.Delete(book.ID, seller)
	assert.NoError(t, err)

	// 再刪一次回報不存在
	_, err = service.Delete(book.ID, seller)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBookDeleteByAdmin(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	admin := createUser(t, db, "admin", "admin@example.com")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", admin.ID).
		Update("role", models.RoleAdmin).Error)
	admin.Role = models.RoleAdmin
	book := createBook(t, db, seller.ID, "Clean Code", 20)

	_, err := services.NewBookService(db).Delete(book.ID, admin)
	assert.NoError(t, err)
}

func TestBookDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	buyer := createUser(t, db, "buyer", "buyer@example.com")
	book := createBook(t, db, seller.ID, "Clean Code", 20)
	offered := createBook(t, db, buyer.ID, "Refactoring", 30)

	_, err := services.NewBidService(db).Place("buyer@example.com", book.ID, 15)
	require.NoError(t, err)
	_, err = services.NewReviewService(db).Add("buyer@example.com", book.ID, 5, "great")
	require.NoError(t, err)
	_, err = services.NewWishlistService(db).Add("buyer@example.com", book.ID)
	require.NoError(t, err)
	_, err = services.NewExchangeService(db).Create("buyer@example.com", book.ID, offered.ID, "")
	require.NoError(t, err)

	image, err := services.NewBookService(db).Delete(book.ID, seller)
	require.NoError(t, err)
	assert.Empty(t, image)

	// 相依資料列全數清除，不留孤兒外鍵
	var count int64
	require.NoError(t, db.Model(&models.Bid{}).Where("book_id = ?", book.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Review{}).Where("book_id = ?", book.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Wishlist{}).Where("book_id = ?", book.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.ExchangeRequest{}).
		Where("requested_book_id = ? OR offered_book_id = ?", book.ID, book.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookDeleteReturnsImage(t *testing.T) {
	db := newTestDB(t)
	seller := createUser(t, db, "seller", "seller@example.com")
	service := services.NewBookService(db)

	book, err := service.Create(seller.ID, services.BookInput{
		Title:     "Clean Code",
		Author:    "Robert C. Martin",
		Condition: models.ConditionGood,
		Image:     "cover.jpeg",
	})
	require.NoError(t, err)

	image, err := service.Delete(book.ID, seller)
	require.NoError(t, err)
	assert.Equal(t, "cover.jpeg", image)
}
