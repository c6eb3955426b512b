package persistence

import (
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ItemLibrary is the storage row for one serialized item library.
type ItemLibrary struct {
	Key     string `gorm:"primary_key"`
	Payload string `gorm:"type:text"`
}

// TableName sets the table name for ItemLibrary
func (ItemLibrary) TableName() string {
	return "item_libraries"
}

// GormStore persists item libraries in SQLite through gorm.
type GormStore struct {
	db *gorm.DB
}

// OpenGormStore opens (or creates) the SQLite database at dbPath and ensures
// the library table exists.
func OpenGormStore(dbPath string) (*GormStore, error) {
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&ItemLibrary{}).Error; err != nil {
		db.Close()
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Load fetches a library payload by key. A missing row is reported as absent,
// not as an error.
func (s *GormStore) Load(key string) ([]byte, bool, error) {
	var lib ItemLibrary
	err := s.db.Where("key = ?", key).First(&lib).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(lib.Payload), true, nil
}

// Save upserts a library payload under key.
func (s *GormStore) Save(key string, payload []byte) error {
	lib := ItemLibrary{Key: key, Payload: string(payload)}
	var existing ItemLibrary
	err := s.db.Where("key = ?", key).First(&existing).Error
	if gorm.IsRecordNotFoundError(err) {
		return s.db.Create(&lib).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&ItemLibrary{}).Where("key = ?", key).Update("payload", lib.Payload).Error
}

// Close closes the underlying database connection.
func (s *GormStore) Close() error {
	return s.db.Close()
}
