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

type FacilityBookingRepository interface {
	Create(ctx context.Context, booking *entity.FacilityBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FacilityBooking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.FacilityBooking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CountOverlapping(ctx context.Context, facilityID uuid.UUID, date time.Time, startMinutes, endMinutes int) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UsageSince(ctx context.Context, since time.Time) ([]*entity.FacilityUsage, error)
	TotalRevenueSince(ctx context.Context, since time.Time) (int64, error)
}

type facilityBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFacilityBookingRepository(db database.PgxIface, log *zap.Logger) FacilityBookingRepository {
	return &facilityBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "facility_booking")),
	}
}

func (r *facilityBookingRepository) Create(ctx context.Context, booking *entity.FacilityBooking) error {
	query := `
		INSERT INTO facility_bookings (id, user_id, facility_id, activity,
		                               booking_date, start_minutes, end_minutes,
		                               amount_pence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.FacilityID,
		booking.Activity,
		booking.BookingDate,
		booking.StartMinutes,
		booking.EndMinutes,
		booking.AmountPence,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create facility booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("facility_id", booking.FacilityID.String()),
		)
		return fmt.Errorf("create facility booking: %w", err)
	}

	return nil
}

func (r *facilityBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FacilityBooking, error) {
	query := `
		SELECT id, user_id, facility_id, activity, booking_date,
		       start_minutes, end_minutes, amount_pence, created_at
		FROM facility_bookings
		WHERE id = $1
	`

	var booking entity.FacilityBooking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.FacilityID,
		&booking.Activity,
		&booking.BookingDate,
		&booking.StartMinutes,
		&booking.EndMinutes,
		&booking.AmountPence,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find facility booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find facility booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *facilityBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.FacilityBooking, error) {
	query := `
		SELECT id, user_id, facility_id, activity, booking_date,
		       start_minutes, end_minutes, amount_pence, created_at
		FROM facility_bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC, start_minutes DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get facility bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find facility bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.FacilityBooking
	for rows.Next() {
		var booking entity.FacilityBooking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.FacilityID,
			&booking.Activity,
			&booking.BookingDate,
			&booking.StartMinutes,
			&booking.EndMinutes,
			&booking.AmountPence,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan facility booking row", zap.Error(err))
			return nil, fmt.Errorf("scan facility booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate facility bookings rows: %w", err)
	}

	return bookings, nil
}

func (r *facilityBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM facility_bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting facility bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count facility bookings for user %s: %w", userID.String(), err)
	}

	return count, nil
}

// CountOverlapping counts bookings at a facility whose slot intersects the
// half-open interval [startMinutes, endMinutes) on the given date.
func (r *facilityBookingRepository) CountOverlapping(ctx context.Context, facilityID uuid.UUID, date time.Time, startMinutes, endMinutes int) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM facility_bookings
		WHERE facility_id = $1
		  AND booking_date = $2
		  AND start_minutes < $4
		  AND end_minutes > $3
	`

	var count int64
	err := r.db.QueryRow(ctx, query, facilityID, date, startMinutes, endMinutes).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting overlapping bookings",
			zap.Error(err),
			zap.String("facility_id", facilityID.String()),
		)
		return 0, fmt.Errorf("count overlapping bookings for facility %s: %w", facilityID.String(), err)
	}

	return count, nil
}

func (r *facilityBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM facility_bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete facility booking",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete facility booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("facility booking %s not found", id.String())
	}

	return nil
}

// UsageSince aggregates bookings and revenue per facility and activity over
// a window. Facilities with no bookings in the window still get one row.
func (r *facilityBookingRepository) UsageSince(ctx context.Context, since time.Time) ([]*entity.FacilityUsage, error) {
	query := `
		SELECT f.id, f.name, COALESCE(b.activity, ''), COUNT(b.id), COALESCE(SUM(b.amount_pence), 0)
		FROM facilities f
		LEFT JOIN facility_bookings b ON b.facility_id = f.id AND b.created_at >= $1
		GROUP BY f.id, f.name, b.activity
		ORDER BY f.name ASC, b.activity ASC
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		r.log.Error("Failed to aggregate facility usage", zap.Error(err))
		return nil, fmt.Errorf("aggregate facility usage: %w", err)
	}
	defer rows.Close()

	var usage []*entity.FacilityUsage
	for rows.Next() {
		var row entity.FacilityUsage
		if err := rows.Scan(&row.FacilityID, &row.FacilityName, &row.Activity, &row.Bookings, &row.RevenuePence); err != nil {
			r.log.Error("Failed to scan facility usage row", zap.Error(err))
			return nil, fmt.Errorf("scan facility usage row: %w", err)
		}
		usage = append(usage, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate facility usage rows: %w", err)
	}

	return usage, nil
}

// TotalRevenueSince sums facility booking revenue over a window.
func (r *facilityBookingRepository) TotalRevenueSince(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount_pence), 0)
		FROM facility_bookings
		WHERE created_at >= $1
	`

	var total int64
	err := r.db.QueryRow(ctx, query, since).Scan(&total)
	if err != nil {
		r.log.Error("Database error summing facility revenue", zap.Error(err))
		return 0, fmt.Errorf("sum facility revenue: %w", err)
	}

	return total, nil
}
