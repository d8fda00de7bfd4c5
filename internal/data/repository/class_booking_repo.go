package repository

import (
	"context"
	"fmt"
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClassBookingRepository interface {
	Create(ctx context.Context, booking *entity.ClassBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassBooking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ClassBooking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SalesSince(ctx context.Context, since time.Time) ([]*entity.ClassSales, error)
}

type classBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassBookingRepository(db database.PgxIface, log *zap.Logger) ClassBookingRepository {
	return &classBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "class_booking")),
	}
}

func (r *classBookingRepository) Create(ctx context.Context, booking *entity.ClassBooking) error {
	query := `
		INSERT INTO class_bookings (id, user_id, class_id, amount_pence, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ClassID,
		booking.AmountPence,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create class booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("class_id", booking.ClassID.String()),
		)
		return fmt.Errorf("create class booking: %w", err)
	}

	return nil
}

func (r *classBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassBooking, error) {
	query := `
		SELECT id, user_id, class_id, amount_pence, created_at
		FROM class_bookings
		WHERE id = $1
	`

	var booking entity.ClassBooking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ClassID,
		&booking.AmountPence,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find class booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find class booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *classBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ClassBooking, error) {
	query := `
		SELECT id, user_id, class_id, amount_pence, created_at
		FROM class_bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get class bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find class bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.ClassBooking
	for rows.Next() {
		var booking entity.ClassBooking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ClassID,
			&booking.AmountPence,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan class booking row", zap.Error(err))
			return nil, fmt.Errorf("scan class booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate class bookings rows: %w", err)
	}

	return bookings, nil
}

func (r *classBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM class_bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting class bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count class bookings for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *classBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM class_bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete class booking",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete class booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class booking %s not found", id.String())
	}

	return nil
}

// SalesSince aggregates bookings and revenue per class over a window.
func (r *classBookingRepository) SalesSince(ctx context.Context, since time.Time) ([]*entity.ClassSales, error) {
	query := `
		SELECT c.id, c.name, COUNT(b.id), COALESCE(SUM(b.amount_pence), 0)
		FROM classes c
		LEFT JOIN class_bookings b ON b.class_id = c.id AND b.created_at >= $1
		GROUP BY c.id, c.name
		ORDER BY c.name ASC
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		r.log.Error("Failed to aggregate class sales", zap.Error(err))
		return nil, fmt.Errorf("aggregate class sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.ClassSales
	for rows.Next() {
		var row entity.ClassSales
		if err := rows.Scan(&row.ClassID, &row.ClassName, &row.Bookings, &row.RevenuePence); err != nil {
			r.log.Error("Failed to scan class sales row", zap.Error(err))
			return nil, fmt.Errorf("scan class sales row: %w", err)
		}
		sales = append(sales, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate class sales rows: %w", err)
	}

	return sales, nil
}
