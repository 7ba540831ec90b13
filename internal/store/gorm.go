package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JSONMap is a custom type for handling attribute maps in JSONB
type JSONMap map[string]any

// Value implements the driver.Valuer interface. The value is bound as text,
// not bytes, so sqlite's json_extract sees JSON rather than a blob.
func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan implements the sql.Scanner interface
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

type documentRow struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	Collection string    `gorm:"size:64;not null;index"`
	Data       JSONMap   `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

// GormClient is the production document store over a relational database.
// Attributes live in a single JSONB column so the collection schema stays
// loose; attribute access in queries branches on dialect because sqlite (used
// in tests) spells JSON extraction differently than postgres.
type GormClient struct {
	db *gorm.DB
}

var _ Client = (*GormClient)(nil)

// NewGormClient creates a document store over db.
func NewGormClient(db *gorm.DB) *GormClient {
	return &GormClient{db: db}
}

// Migrate creates the documents table.
func (c *GormClient) Migrate() error {
	return c.db.AutoMigrate(&documentRow{})
}

func (c *GormClient) CreateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error) {
	if id == "" {
		id = uuid.NewString()
	}
	row := documentRow{
		ID:         id,
		Collection: collection,
		Data:       cloneData(data),
	}
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create document in %s: %w", collection, err)
	}
	return rowToDocument(&row), nil
}

func (c *GormClient) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	var row documentRow
	err := c.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFound(fmt.Sprintf("document %s not found in %s", id, collection))
		}
		return nil, fmt.Errorf("get document %s from %s: %w", id, collection, err)
	}
	return rowToDocument(&row), nil
}

func (c *GormClient) UpdateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error) {
	var row documentRow
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ? AND id = ?", collection, id).First(&row).Error; err != nil {
			return err
		}
		if row.Data == nil {
			row.Data = JSONMap{}
		}
		for k, v := range data {
			row.Data[k] = v
		}
		return tx.Save(&row).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFound(fmt.Sprintf("document %s not found in %s", id, collection))
		}
		return nil, fmt.Errorf("update document %s in %s: %w", id, collection, err)
	}
	return rowToDocument(&row), nil
}

func (c *GormClient) DeleteDocument(ctx context.Context, collection, id string) error {
	// First check the document exists so a missing ID surfaces as 404
	var row documentRow
	if err := c.db.WithContext(ctx).Where("collection = ? AND id = ?", collection, id).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return NotFound(fmt.Sprintf("document %s not found in %s", id, collection))
		}
		return fmt.Errorf("delete document %s from %s: %w", id, collection, err)
	}
	if err := c.db.WithContext(ctx).Delete(&documentRow{}, "collection = ? AND id = ?", collection, id).Error; err != nil {
		return fmt.Errorf("delete document %s from %s: %w", id, collection, err)
	}
	return nil
}

func (c *GormClient) ListDocuments(ctx context.Context, collection string, opts ListOptions) ([]*Document, error) {
	query := c.db.WithContext(ctx).Model(&documentRow{}).Where("collection = ?", collection)

	for _, f := range opts.Filters {
		query = c.applyFilter(query, f)
	}
	for _, s := range opts.Sort {
		query = c.applySort(query, s)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var rows []documentRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list documents in %s: %w", collection, err)
	}

	docs := make([]*Document, len(rows))
	for i := range rows {
		docs[i] = rowToDocument(&rows[i])
	}
	return docs, nil
}

func (c *GormClient) attrSQL(attribute string) (string, any) {
	if c.db.Dialector.Name() == "postgres" {
		return "data->>?", attribute
	}
	return "json_extract(data, ?)", "$." + attribute
}

func (c *GormClient) applyFilter(query *gorm.DB, f Filter) *gorm.DB {
	expr, arg := c.attrSQL(f.Attribute)
	switch f.Op {
	case OpContains:
		if f.FoldCase {
			like := "%" + strings.ToLower(f.Value) + "%"
			return query.Where("LOWER("+expr+") LIKE ?", arg, like)
		}
		// sqlite LIKE folds ASCII case, so a case-sensitive match needs instr
		if c.db.Dialector.Name() == "postgres" {
			return query.Where(expr+" LIKE ?", arg, "%"+f.Value+"%")
		}
		return query.Where("instr("+expr+", ?) > 0", arg, f.Value)
	default:
		if f.FoldCase {
			return query.Where("LOWER("+expr+") = ?", arg, strings.ToLower(f.Value))
		}
		return query.Where(expr+" = ?", arg, f.Value)
	}
}

func (c *GormClient) applySort(query *gorm.DB, s Sort) *gorm.DB {
	if s.Attribute == CreatedAtField {
		if s.Descending {
			return query.Order("created_at DESC")
		}
		return query.Order("created_at ASC")
	}
	expr, arg := c.attrSQL(s.Attribute)
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	return query.Clauses(clause.OrderBy{
		Expression: clause.Expr{SQL: "LOWER(" + expr + ") " + dir, Vars: []interface{}{arg}},
	})
}

func rowToDocument(row *documentRow) *Document {
	return &Document{
		ID:         row.ID,
		Collection: row.Collection,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
		Data:       cloneData(row.Data),
	}
}

func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
