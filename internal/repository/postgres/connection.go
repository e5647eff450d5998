package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stf-adrian/start-from-scratch/internal/domain"
	"github.com/stf-adrian/start-from-scratch/internal/repository"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables. The unique indexes on users.email and
	// users.username are what make concurrent duplicate registrations safe;
	// the application-level uniqueness check is only a friendlier first pass.
	err = db.AutoMigrate(
		&domain.User{},
		&domain.LoginRecord{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		LoginRecord: NewLoginRecordRepository(db),
	}
}
