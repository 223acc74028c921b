// Package export renders ticket collections into CSV extracts using a
// configurable column catalog.
package export

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/helpdesk-dashboard/internal/derive"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// Column describes one extractable field: its stable key, the header label,
// and how to render a ticket's value for it.
type Column struct {
	Key   string
	Label string
	Value func(t *domain.Ticket) string
}

// Catalog is the ordered set of columns available for extraction.
type Catalog struct {
	columns []Column
	byKey   map[string]Column
}

var kst = time.FixedZone("KST", 9*60*60)

func defaultColumns() []Column {
	return []Column{
		{Key: "id", Label: "ID", Value: func(t *domain.Ticket) string {
			return strconv.FormatInt(t.ID, 10)
		}},
		{Key: "title", Label: "제목", Value: func(t *domain.Ticket) string {
			return t.Title
		}},
		{Key: "status", Label: "상태", Value: func(t *domain.Ticket) string {
			return string(derive.ClassifyStatus(t.Status))
		}},
		{Key: "priority", Label: "우선순위", Value: func(t *domain.Ticket) string {
			return derive.PriorityLabel(t.Priority)
		}},
		{Key: "work_type", Label: "업무유형", Value: func(t *domain.Ticket) string {
			return derive.WorkTypeLabel(t.WorkType)
		}},
		{Key: "category_id", Label: "카테고리", Value: func(t *domain.Ticket) string {
			if t.CategoryID == nil {
				return ""
			}
			return strconv.FormatInt(*t.CategoryID, 10)
		}},
		{Key: "project", Label: "프로젝트", Value: func(t *domain.Ticket) string {
			return t.ProjectName
		}},
		{Key: "requester", Label: "요청자", Value: func(t *domain.Ticket) string {
			return t.RequesterName()
		}},
		{Key: "assignee", Label: "담당자", Value: func(t *domain.Ticket) string {
			return t.AssigneeName()
		}},
		{Key: "created_at", Label: "생성일", Value: func(t *domain.Ticket) string {
			return formatKST(t.CreatedAt.Time)
		}},
		{Key: "updated_at", Label: "수정일", Value: func(t *domain.Ticket) string {
			return formatKST(t.EffectiveUpdatedAt())
		}},
	}
}

// NewCatalog builds the default column catalog.
func NewCatalog() *Catalog {
	return newCatalog(defaultColumns())
}

func newCatalog(columns []Column) *Catalog {
	byKey := make(map[string]Column, len(columns))
	for _, col := range columns {
		byKey[col.Key] = col
	}
	return &Catalog{columns: columns, byKey: byKey}
}

type catalogFile struct {
	Columns []struct {
		Key   string `yaml:"key"`
		Label string `yaml:"label"`
	} `yaml:"columns"`
}

// LoadCatalog builds the catalog, optionally reordered and relabeled by a
// YAML file. An empty path yields the defaults; unknown keys in the file are
// skipped.
func LoadCatalog(path string) (*Catalog, error) {
	base := NewCatalog()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read column catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse column catalog: %w", err)
	}
	if len(file.Columns) == 0 {
		return base, nil
	}
	columns := make([]Column, 0, len(file.Columns))
	for _, entry := range file.Columns {
		col, ok := base.byKey[entry.Key]
		if !ok {
			continue
		}
		if entry.Label != "" {
			col.Label = entry.Label
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return base, nil
	}
	return newCatalog(columns), nil
}

// Columns returns the catalog order.
func (c *Catalog) Columns() []Column {
	return c.columns
}

// Keys returns the catalog's column keys in order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.columns))
	for i, col := range c.columns {
		keys[i] = col.Key
	}
	return keys
}

// Select resolves the requested keys, in order, skipping unknown ones. An
// empty selection yields the full catalog.
func (c *Catalog) Select(keys []string) []Column {
	if len(keys) == 0 {
		return c.columns
	}
	out := make([]Column, 0, len(keys))
	for _, key := range keys {
		if col, ok := c.byKey[key]; ok {
			out = append(out, col)
		}
	}
	return out
}

// FieldValue extracts the rendered value of one field, the accessor the
// extract filter rules run against. Unknown fields render empty.
func (c *Catalog) FieldValue(t *domain.Ticket, field string) string {
	col, ok := c.byKey[field]
	if !ok {
		return ""
	}
	return col.Value(t)
}

func formatKST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kst).Format("2006-01-02 15:04")
}
