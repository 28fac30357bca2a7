package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emilythestrangee/news-api/backend/internal/config"
)

// Schema creates the tables. Constraint names are spelled out because the
// store classifies violations by them.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS topics (
        slug VARCHAR(50) CONSTRAINT topics_pkey PRIMARY KEY,
        description VARCHAR(200) NOT NULL,
        img_url VARCHAR(1000)
    )`,
	`CREATE TABLE IF NOT EXISTS users (
        username VARCHAR(20) CONSTRAINT users_pkey PRIMARY KEY,
        name VARCHAR(50) NOT NULL,
        avatar_url VARCHAR(1000)
    )`,
	`CREATE TABLE IF NOT EXISTS articles (
        article_id SERIAL CONSTRAINT articles_pkey PRIMARY KEY,
        title VARCHAR(200) NOT NULL,
        topic VARCHAR(50) NOT NULL CONSTRAINT articles_topic_fkey REFERENCES topics(slug),
        author VARCHAR(20) NOT NULL CONSTRAINT articles_author_fkey REFERENCES users(username),
        body TEXT NOT NULL,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
        votes INT DEFAULT 0,
        article_img_url VARCHAR(1000)
    )`,
	`CREATE TABLE IF NOT EXISTS comments (
        comment_id SERIAL CONSTRAINT comments_pkey PRIMARY KEY,
        article_id INT NOT NULL CONSTRAINT comments_article_id_fkey REFERENCES articles(article_id),
        body TEXT NOT NULL,
        votes INT DEFAULT 0,
        author VARCHAR(20) NOT NULL CONSTRAINT comments_author_fkey REFERENCES users(username),
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE INDEX IF NOT EXISTS comments_article_id_idx ON comments (article_id)`,
	`CREATE INDEX IF NOT EXISTS articles_topic_idx ON articles (topic)`,
}

// Service owns the gorm handle for the lifetime of the process.
type Service interface {
	// Health pings the pool and reports its status and connection counts.
	Health(ctx context.Context) map[string]string

	// Migrate creates any missing tables and indexes.
	Migrate(ctx context.Context) error

	Close() error
	GetDB() *gorm.DB
}

type service struct {
	db   *gorm.DB
	name string
}

// New opens the connection pool described by cfg and pings it.
func New(cfg config.Database) (Service, error) {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	return &service{db: db, name: cfg.Name}, nil
}

// Wrap adopts an already opened gorm handle, e.g. one built over sqlmock.
func Wrap(db *gorm.DB) Service {
	return &service{db: db}
}

func (s *service) GetDB() *gorm.DB {
	return s.db
}

func (s *service) Migrate(ctx context.Context) error {
	for _, stmt := range Schema {
		if err := s.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	log.Println("✅ Database tables created/verified")
	return nil
}

const healthTimeout = 10 * time.Second

func (s *service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		log.Printf("❌ Database health check failed: %v", err)
		return map[string]string{"status": "down"}
	}

	pool := sqlDB.Stats()
	return map[string]string{
		"status":           "up",
		"open_connections": strconv.Itoa(pool.OpenConnections),
		"in_use":           strconv.Itoa(pool.InUse),
		"idle":             strconv.Itoa(pool.Idle),
		"wait_count":       strconv.FormatInt(pool.WaitCount, 10),
	}
}

func (s *service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	log.Printf("Disconnected from database: %s", s.name)
	return sqlDB.Close()
}

func parseLogLevel(level string) (logger.LogLevel, error) {
	switch level {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "", "warn":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	}
	return 0, fmt.Errorf("unknown database log level %q", level)
}
