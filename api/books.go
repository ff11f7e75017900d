package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"bookswap/models"
	"bookswap/services"
)

// bookResponse 是書籍刊登的對外表示，賣家只帶出公開欄位
type bookResponse struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	Price       float64      `json:"price"`
	Condition   string       `json:"condition"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	ISBN        string       `json:"isbn"`
	Status      string       `json:"status"`
	ListingType string       `json:"listingType"`
	Seller      userResponse `json:"seller"`
}

func newBookResponse(book *models.Book) bookResponse {
	return bookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Price:       book.Price,
		Condition:   book.Condition,
		Description: book.Description,
		Image:       book.Image,
		ISBN:        book.ISBN,
		Status:      book.Status,
		ListingType: book.ListingType,
		Seller:      newUserResponse(&book.Seller),
	}
}

// ListBooks 列出所有可購買的書籍，支援 ?search= 書名模糊查詢
// (GET /api/books)
func (impl *ServerImpl) ListBooks(c *gin.Context) {
	const op = "ListBooks"
	books, err := impl.books.ListAvailable(c.Query("search"))
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(books, func(book models.Book, _ int) bookResponse {
		return newBookResponse(&book)
	}))
}

// GetBook 取得單一書籍的詳細資訊
// (GET /api/books/:id)
func (impl *ServerImpl) GetBook(c *gin.Context) {
	const op = "GetBook"
	bookID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	book, err := impl.books.Get(bookID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newBookResponse(book))
}

// CreateBook 以目前使用者為賣家建立書籍刊登
// (POST /api/books)
func (impl *ServerImpl) CreateBook(c *gin.Context) {
	const op = "CreateBook"
	claims := currentClaims(c)

	price, err := strconv.ParseFloat(c.DefaultPostForm("price", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	input := services.BookInput{
		Title:     c.PostForm("title"),
		Author:    c.PostForm("author"),
		Price:     price,
		Condition: c.PostForm("condition"),
		// 描述可能含有使用者輸入的 HTML，先消毒再儲存
		Description: impl.htmlChecker.Sanitize(c.PostForm("description")),
		ISBN:        c.PostForm("isbn"),
		ListingType: c.PostForm("listingType"),
	}
	if fileHeader, err := c.FormFile("image"); err == nil {
		ref, err := impl.saveUpload(c.Request.Context(), fileHeader)
		if err != nil {
			respondError(c, op, err)
			return
		}
		input.Image = ref
	}

	book, err := impl.books.Create(claims.UserID, input)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

// ListMyBooks 列出目前使用者的所有刊登
// (GET /api/my-books)
func (impl *ServerImpl) ListMyBooks(c *gin.Context) {
	const op = "ListMyBooks"
	claims := currentClaims(c)
	books, err := impl.books.ListBySeller(claims.UserID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// DeleteBook 刪除書籍刊登，僅限賣家本人或管理員
// 相依的出價、評論、收藏與交換請求會一併刪除
// (DELETE /api/books/:id)
func (impl *ServerImpl) DeleteBook(c *gin.Context) {
	const op = "DeleteBook"
	claims := currentClaims(c)
	bookID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	caller, err := impl.users.FindByEmail(claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	image, err := impl.books.Delete(bookID, caller)
	if err != nil {
		respondError(c, op, err)
		return
	}
	if image != "" {
		// 附帶的圖片檔案移除失敗不影響刪除結果
		if err := impl.store.Remove(c.Request.Context(), image); err != nil {
			slog.Warn("Fail to remove book image", slog.String("op", op), slog.Any("error", err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// parseUintParam 解析路徑參數內的正整數 ID，失敗時直接回應 400
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}
