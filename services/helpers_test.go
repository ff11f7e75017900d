package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookswap/models"
	"bookswap/services"
)

// newTestDB 建立測試專用的 in-memory 資料庫
// 以測試名稱區隔資料庫，避免平行測試互相干擾
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Bid{},
		&models.Transaction{},
		&models.ExchangeRequest{},
		&models.Review{},
		&models.Wishlist{},
		&models.Event{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user, err := services.NewUserService(db).Register(username, email, "password123", "")
	require.NoError(t, err)
	return user
}

func createBook(t *testing.T, db *gorm.DB, sellerID uint, title string, price float64) *models.Book {
	t.Helper()
	book, err := services.NewBookService(db).Create(sellerID, services.BookInput{
		Title:     title,
		Author:    "Some Author",
		Price:     price,
		Condition: models.ConditionGood,
	})
	require.NoError(t, err)
	return book
}
