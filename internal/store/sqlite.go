package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MusikPolice/ofxcat-sub001/internal/logging"
	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

// SQLiteAdapter persists the description index as two relational tables,
// Category(id, name unique) and DescriptionCategory(id, description,
// category_id). Categories are find-or-create and never deleted by normal
// operation; every multi-statement write runs inside one transaction.
type SQLiteAdapter struct {
	db     *gorm.DB
	logger logging.Logger
}

// NewSQLiteAdapter opens (or creates) the sqlite database at path and ensures
// the schema exists. Connection or migration failure is a durability failure
// and refuses initialization. The returned adapter holds the process's single
// live connection.
func NewSQLiteAdapter(path string, logger logging.Logger) (*SQLiteAdapter, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening categorization database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.DescriptionCategory{}); err != nil {
		return nil, fmt.Errorf("migrating categorization schema: %w", err)
	}

	return &SQLiteAdapter{db: db, logger: logger}, nil
}

// Load implements categorizer.Adapter. Unreadable rows are skipped with a
// warning rather than failing the whole load.
func (a *SQLiteAdapter) Load() (map[string]string, error) {
	var rows []models.DescriptionCategory
	if err := a.db.Joins("Category").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading description categories: %w", err)
	}

	index := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.Description == "" || row.Category.Name == "" {
			a.logger.Warn("skipping malformed description category row",
				logging.Field{Key: "id", Value: row.ID})
			continue
		}
		index[row.Description] = row.Category.Name
	}
	a.logger.Debug("loaded categorization database",
		logging.Field{Key: "associations", Value: len(index)})
	return index, nil
}

// Save implements categorizer.Adapter. The full index is rewritten in a single
// transaction: categories are found or created by name, prior associations are
// replaced, and any failure rolls the whole write back leaving prior state
// intact.
func (a *SQLiteAdapter) Save(index map[string]string) error {
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.DescriptionCategory{}).Error; err != nil {
			return fmt.Errorf("clearing description categories: %w", err)
		}
		for description, categoryName := range index {
			var category models.Category
			if err := tx.Where(models.Category{Name: categoryName}).
				FirstOrCreate(&category).Error; err != nil {
				return fmt.Errorf("finding or creating category %q: %w", categoryName, err)
			}
			row := models.DescriptionCategory{
				Description: description,
				CategoryID:  category.ID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("inserting association for %q: %w", description, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Debug("saved categorization database",
		logging.Field{Key: "associations", Value: len(index)})
	return nil
}

// Close releases the underlying database connection.
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
