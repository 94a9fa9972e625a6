// Package datastore persists classification records so repeated runs over
// the same camera archive accumulate into a queryable history.
package datastore

import (
	"github.com/nbluto/wolfvue-go/internal/conf"
	"github.com/nbluto/wolfvue-go/internal/errors"
	"github.com/nbluto/wolfvue-go/internal/observation"
	"gorm.io/gorm"
)

// Interface abstracts the underlying database implementation.
type Interface interface {
	Open() error
	Save(record *observation.Record) error
	GetAll() ([]observation.Record, error)
	GetByRun(runID string) ([]observation.Record, error)
	CategorySummary() ([]CategoryCount, error)
	Close() error
}

// CategoryCount is one row of the verdict-category summary query.
type CategoryCount struct {
	Category string
	Count    int
}

// DataStore implements Interface on a GORM database handle.
type DataStore struct {
	DB *gorm.DB
}

// New returns the store selected by the settings, or nil when no database
// output is enabled.
func New(settings *conf.Settings) Interface {
	if settings.Output.SQLite.Enabled {
		return &SQLiteStore{Settings: settings}
	}
	return nil
}

// Save inserts one classification record.
func (ds *DataStore) Save(record *observation.Record) error {
	if ds.DB == nil {
		return errNotOpen()
	}
	if err := ds.DB.Create(record).Error; err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatastore).
			Context("operation", "save").
			Build()
	}
	return nil
}

// GetAll returns every stored record, oldest first.
func (ds *DataStore) GetAll() ([]observation.Record, error) {
	if ds.DB == nil {
		return nil, errNotOpen()
	}
	var records []observation.Record
	if err := ds.DB.Order("id ASC").Find(&records).Error; err != nil {
		return nil, errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatastore).
			Context("operation", "get_all").
			Build()
	}
	return records, nil
}

// GetByRun returns the records of a single analysis run, oldest first.
func (ds *DataStore) GetByRun(runID string) ([]observation.Record, error) {
	if ds.DB == nil {
		return nil, errNotOpen()
	}
	var records []observation.Record
	if err := ds.DB.Where("run_id = ?", runID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatastore).
			Context("operation", "get_by_run").
			Context("run_id", runID).
			Build()
	}
	return records, nil
}

// CategorySummary counts stored records per verdict category, highest first.
func (ds *DataStore) CategorySummary() ([]CategoryCount, error) {
	if ds.DB == nil {
		return nil, errNotOpen()
	}
	var counts []CategoryCount
	err := ds.DB.Model(&observation.Record{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Order("count DESC, category ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatastore).
			Context("operation", "category_summary").
			Build()
	}
	return counts, nil
}

func errNotOpen() error {
	return errors.Newf("database connection is not initialized").
		Component("datastore").
		Category(errors.CategoryDatastore).
		Build()
}

// performAutoMigration creates or updates the record schema.
func performAutoMigration(db *gorm.DB) error {
	if err := db.AutoMigrate(&observation.Record{}); err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatastore).
			Context("operation", "auto_migrate").
			Build()
	}
	return nil
}
