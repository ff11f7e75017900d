package api

import (
	"context"
	"fmt"

	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"bookswap/adapters/storage"
	"bookswap/models"
	"bookswap/services"
)

// ServerImpl 聚合所有領域服務與儲存後端
// 每個請求都是獨立的 goroutine，伺服器本身不跨請求保存任何可變狀態
type ServerImpl struct {
	db          *gorm.DB
	store       storage.Store
	htmlChecker *bluemonday.Policy

	users        *services.UserService
	books        *services.BookService
	bids         *services.BidService
	transactions *services.TransactionService
	exchanges    *services.ExchangeService
	reviews      *services.ReviewService
	wishlists    *services.WishlistService
	events       *services.EventService

	config ServerConfig
}

func NewServer(config ServerConfig) (*ServerImpl, error) {
	const op = "NewServer"

	// 初始化資料庫連線
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s", config.DB.User, config.DB.Password, config.DB.Host, config.DB.Port, config.DB.Database, config.DB.Schema)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: config.DB.Schema + ".",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database, err=%w", op, err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Bid{},
		&models.Transaction{},
		&models.ExchangeRequest{},
		&models.Review{},
		&models.Wishlist{},
		&models.Event{},
	); err != nil {
		return nil, fmt.Errorf("[%s] Fail to migrate schema, err=%w", op, err)
	}

	// 初始化儲存後端
	store, err := newStore(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create storage backend, err=%w", op, err)
	}

	return newServerWithDB(db, store, config), nil
}

// newServerWithDB 以現成的資料庫連線組裝伺服器，測試也走這條路
func newServerWithDB(db *gorm.DB, store storage.Store, config ServerConfig) *ServerImpl {
	return &ServerImpl{
		db:           db,
		store:        store,
		htmlChecker:  bluemonday.UGCPolicy(),
		users:        services.NewUserService(db),
		books:        services.NewBookService(db),
		bids:         services.NewBidService(db),
		transactions: services.NewTransactionService(db),
		exchanges:    services.NewExchangeService(db),
		reviews:      services.NewReviewService(db),
		wishlists:    services.NewWishlistService(db),
		events:       services.NewEventService(db),
		config:       config,
	}
}

func newStore(config StorageConfig) (storage.Store, error) {
	const op = "newStore"
	switch config.Backend {
	case "", "local":
		return storage.NewLocalStore(config.UploadDir)
	case "s3":
		s3Cfg, err := awsCfg.LoadDefaultConfig(
			context.Background(),
			awsCfg.WithBaseEndpoint(config.S3.Endpoint),
			awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.S3.AccessKeyID, config.S3.SecretAccessKey, "")),
			awsCfg.WithRegion("auto"),
		)
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to load AWS config, err=%w", op, err)
		}
		return storage.NewS3Store(s3.NewFromConfig(s3Cfg), config.S3.Bucket, config.S3.PublicBaseURL)
	default:
		return nil, fmt.Errorf("[%s] Unknown storage backend: %s", op, config.Backend)
	}
}
