package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/afontana/shopfloor/internal/domain"
)

// orderLineColumns is the canonical SELECT column list for order_lines.
const orderLineColumns = `id, group_id, client, product, material, structure,
		pieces, glass_units, required_min, requested_delivery, start_date,
		estimated_delivery, created_at, updated_at`

// SQLiteOrderLineRepo implements OrderLineRepo using a SQLite database.
type SQLiteOrderLineRepo struct {
	db *sql.DB
}

// NewSQLiteOrderLineRepo creates a new SQLiteOrderLineRepo.
func NewSQLiteOrderLineRepo(db *sql.DB) *SQLiteOrderLineRepo {
	return &SQLiteOrderLineRepo{db: db}
}

func (r *SQLiteOrderLineRepo) Create(ctx context.Context, l *domain.OrderLine) error {
	query := `INSERT INTO order_lines (id, group_id, client, product, material, structure,
		pieces, glass_units, required_min, requested_delivery, start_date,
		estimated_delivery, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.GroupID,
		l.Client,
		l.Product,
		string(l.Material),
		string(l.Structure),
		l.Pieces,
		l.GlassUnits,
		l.RequiredMin,
		nullableTimeToString(l.RequestedDelivery, dateLayout),
		l.StartDate.Format(dateLayout),
		nullableTimeToString(l.EstimatedDelivery, dateLayout),
		l.CreatedAt.Format(time.RFC3339),
		l.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting order line: %w", err)
	}
	return nil
}

func (r *SQLiteOrderLineRepo) GetByID(ctx context.Context, id int64) (*domain.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM order_lines WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanOrderLine(row)
}

func (r *SQLiteOrderLineRepo) ListAll(ctx context.Context) ([]*domain.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM order_lines ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing order lines: %w", err)
	}
	defer rows.Close()
	return scanOrderLines(rows)
}

func (r *SQLiteOrderLineRepo) ListByGroup(ctx context.Context, groupID int64) ([]*domain.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM order_lines WHERE group_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing order lines by group: %w", err)
	}
	defer rows.Close()
	return scanOrderLines(rows)
}

func (r *SQLiteOrderLineRepo) Update(ctx context.Context, l *domain.OrderLine) error {
	query := `UPDATE order_lines SET group_id = ?, client = ?, product = ?, material = ?,
		structure = ?, pieces = ?, glass_units = ?, required_min = ?,
		requested_delivery = ?, start_date = ?, estimated_delivery = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		l.GroupID,
		l.Client,
		l.Product,
		string(l.Material),
		string(l.Structure),
		l.Pieces,
		l.GlassUnits,
		l.RequiredMin,
		nullableTimeToString(l.RequestedDelivery, dateLayout),
		l.StartDate.Format(dateLayout),
		nullableTimeToString(l.EstimatedDelivery, dateLayout),
		l.UpdatedAt.Format(time.RFC3339),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order line: %w", err)
	}
	return nil
}

func (r *SQLiteOrderLineRepo) UpdateGroupStartDate(ctx context.Context, groupID int64, start time.Time) error {
	query := `UPDATE order_lines SET start_date = ?, updated_at = ? WHERE group_id = ?`
	_, err := r.db.ExecContext(ctx, query, start.Format(dateLayout), nowUTC(), groupID)
	if err != nil {
		return fmt.Errorf("updating group %d start date: %w", groupID, err)
	}
	return nil
}

func (r *SQLiteOrderLineRepo) UpdateEstimatedDelivery(ctx context.Context, groupID int64, estimated time.Time) error {
	query := `UPDATE order_lines SET estimated_delivery = ?, updated_at = ? WHERE group_id = ?`
	_, err := r.db.ExecContext(ctx, query, estimated.Format(dateLayout), nowUTC(), groupID)
	if err != nil {
		return fmt.Errorf("updating group %d estimated delivery: %w", groupID, err)
	}
	return nil
}

func (r *SQLiteOrderLineRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM order_lines WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order line: %w", err)
	}
	return nil
}

func (r *SQLiteOrderLineRepo) DeleteGroup(ctx context.Context, groupID int64) error {
	query := `DELETE FROM order_lines WHERE group_id = ?`
	_, err := r.db.ExecContext(ctx, query, groupID)
	if err != nil {
		return fmt.Errorf("deleting group %d: %w", groupID, err)
	}
	return nil
}

func (r *SQLiteOrderLineRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM order_lines`)
	if err != nil {
		return 0, fmt.Errorf("clearing order lines: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing order lines: %w", err)
	}
	return removed, nil
}

// scanOrderLine scans a single order line from a *sql.Row.
func scanOrderLine(row *sql.Row) (*domain.OrderLine, error) {
	var l domain.OrderLine
	var materialStr, structureStr string
	var requestedStr, estimatedStr sql.NullString
	var startStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&l.ID, &l.GroupID, &l.Client, &l.Product, &materialStr, &structureStr,
		&l.Pieces, &l.GlassUnits, &l.RequiredMin, &requestedStr, &startStr,
		&estimatedStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order line: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning order line: %w", err)
	}
	return populateOrderLine(&l, materialStr, structureStr, requestedStr, estimatedStr, startStr, createdAtStr, updatedAtStr)
}

// scanOrderLines scans multiple order lines from *sql.Rows.
func scanOrderLines(rows *sql.Rows) ([]*domain.OrderLine, error) {
	var lines []*domain.OrderLine
	for rows.Next() {
		var l domain.OrderLine
		var materialStr, structureStr string
		var requestedStr, estimatedStr sql.NullString
		var startStr, createdAtStr, updatedAtStr string

		err := rows.Scan(
			&l.ID, &l.GroupID, &l.Client, &l.Product, &materialStr, &structureStr,
			&l.Pieces, &l.GlassUnits, &l.RequiredMin, &requestedStr, &startStr,
			&estimatedStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order line row: %w", err)
		}
		line, err := populateOrderLine(&l, materialStr, structureStr, requestedStr, estimatedStr, startStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order lines: %w", err)
	}
	return lines, nil
}

// populateOrderLine fills in parsed fields on an OrderLine after scanning raw values.
func populateOrderLine(
	l *domain.OrderLine,
	materialStr, structureStr string,
	requestedStr, estimatedStr sql.NullString,
	startStr, createdAtStr, updatedAtStr string,
) (*domain.OrderLine, error) {
	l.Material = domain.Material(materialStr)
	l.Structure = domain.StructureType(structureStr)
	l.RequestedDelivery = parseNullableTime(requestedStr, dateLayout)
	l.EstimatedDelivery = parseNullableTime(estimatedStr, dateLayout)

	var parseErr error
	l.StartDate, parseErr = time.Parse(dateLayout, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	l.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	l.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return l, nil
}
