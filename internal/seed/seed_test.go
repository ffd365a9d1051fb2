package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "seed-test-secret"
	cfg.Security.PasswordPolicy.MinLength = 6
	cfg.Bootstrap.AdminUsername = "admin"
	cfg.Bootstrap.AdminEmail = "admin@example.com"
	cfg.Bootstrap.AdminPassword = "admin-pass-1"
	return NewSeeder(cfg, db), db
}

func TestRunIsIdempotent(t *testing.T) {
	seeder, db := newSeeder(t)

	first, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, first.AdminCreated)
	assert.Equal(t, 3, first.CategoriesCreated)
	assert.Equal(t, 5, first.ProductsCreated)

	second, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, second.AdminCreated)
	assert.Zero(t, second.CategoriesCreated)
	assert.Zero(t, second.ProductsCreated)

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Equal(t, int64(5), products)

	var headphones models.Product
	require.NoError(t, db.Where("name = ?", "Wireless Headphones").First(&headphones).Error)
	assert.Equal(t, "2549.15", headphones.SellingPrice.String())
}

func TestCreateAdmin(t *testing.T) {
	seeder, _ := newSeeder(t)

	user, err := seeder.CreateAdmin("ops", "ops@example.com", "ops-pass-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	_, err = seeder.CreateAdmin("ops2", "ops@example.com", "ops-pass-1")
	assert.Error(t, err)
}
