package service

import (
	"testing"

	"go-store-api/internal/model"
	"go-store-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newUserService(t *testing.T) (UserService, repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepo(newTestDB(t))
	return NewUserService(repo), repo
}

func newProductService(t *testing.T) ProductService {
	t.Helper()
	return NewProductService(repository.NewProductRepo(newTestDB(t)))
}
