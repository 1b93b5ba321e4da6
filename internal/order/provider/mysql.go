package provider

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"kintacos/internal/dto"
)

// orderColumns is the fixed column set mirroring the order document, id
// excluded. Column names double as document keys.
var orderColumns = []string{
	"firstName",
	"lastName",
	"phone",
	"whatsapp",
	"orderDescription",
	"deliveryOption",
	"address",
	"city",
	"commune",
	"additionalInfo",
	"status",
	"createdAt",
}

// MySQLProvider maps the document contract onto a single `orders` table.
// Ids are uuid strings assigned here, since MySQL has no store-generated
// string key.
type MySQLProvider struct {
	db *sql.DB
}

func NewMySQLProvider(db *sql.DB) *MySQLProvider {
	return &MySQLProvider{db: db}
}

func (p *MySQLProvider) Create(ctx context.Context, doc map[string]any) (map[string]any, error) {
	id := uuid.New().String()

	args := make([]any, 0, len(orderColumns)+1)
	args = append(args, id)
	for _, col := range orderColumns {
		args = append(args, stringField(doc, col))
	}

	query := fmt.Sprintf(
		"INSERT INTO orders (id, %s) VALUES (?%s)",
		strings.Join(orderColumns, ", "),
		strings.Repeat(", ?", len(orderColumns)),
	)

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("inserting order row: %w", err)
	}

	stored := cloneDoc(doc)
	stored["id"] = id
	return stored, nil
}

func (p *MySQLProvider) FindByID(ctx context.Context, id string) (map[string]any, error) {
	query := fmt.Sprintf("SELECT %s FROM orders WHERE id = ?", strings.Join(orderColumns, ", "))

	values := make([]string, len(orderColumns))
	dest := make([]any, len(orderColumns))
	for i := range values {
		dest[i] = &values[i]
	}

	err := p.db.QueryRowContext(ctx, query, id).Scan(dest...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying order row: %w", err)
	}

	return rowToDoc(id, values), nil
}

func (p *MySQLProvider) FindAll(ctx context.Context, filters dto.ListFilters) ([]map[string]any, error) {
	query := fmt.Sprintf("SELECT id, %s FROM orders", strings.Join(orderColumns, ", "))

	var clauses []string
	var args []any
	if filters.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filters.Status)
	}
	if filters.DeliveryOption != "" {
		clauses = append(clauses, "deliveryOption = ?")
		args = append(args, filters.DeliveryOption)
	}
	if filters.StartDate != "" {
		clauses = append(clauses, "createdAt >= ?")
		args = append(args, filters.StartDate)
	}
	if filters.EndDate != "" {
		clauses = append(clauses, "createdAt <= ?")
		args = append(args, filters.EndDate)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY createdAt DESC"

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying order rows: %w", err)
	}
	defer rows.Close()

	var results []map[string]any
	for rows.Next() {
		var id string
		values := make([]string, len(orderColumns))
		dest := make([]any, 0, len(orderColumns)+1)
		dest = append(dest, &id)
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		results = append(results, rowToDoc(id, values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return results, nil
}

func (p *MySQLProvider) Update(ctx context.Context, id string, doc map[string]any) error {
	var sets []string
	var args []any
	for _, col := range orderColumns {
		if v, ok := doc[col]; ok {
			sets = append(sets, col+" = ?")
			args = append(args, fmt.Sprintf("%v", v))
		}
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = ?", strings.Join(sets, ", "))
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating order row: %w", err)
	}
	return nil
}

func (p *MySQLProvider) Delete(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting order row: %w", err)
	}
	return nil
}

func rowToDoc(id string, values []string) map[string]any {
	doc := make(map[string]any, len(orderColumns)+1)
	doc["id"] = id
	for i, col := range orderColumns {
		doc[col] = values[i]
	}
	return doc
}

func stringField(doc map[string]any, key string) string {
	if v, ok := doc[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
