package repository

import (
	"context"
	"fmt"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Class, error)
	FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Class, error)
	CountAll(ctx context.Context) (int64, error)
	CountBookings(ctx context.Context, classID uuid.UUID) (int64, error)
	Update(ctx context.Context, class *entity.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

func (r *classRepository) Create(ctx context.Context, class *entity.Class) error {
	query := `
		INSERT INTO classes (id, name, description, class_date, start_minutes,
		                     end_minutes, capacity, price_pence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		class.ID,
		class.Name,
		class.Description,
		class.ClassDate,
		class.StartMinutes,
		class.EndMinutes,
		class.Capacity,
		class.PricePence,
		class.CreatedAt,
		class.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create class",
			zap.Error(err),
			zap.String("name", class.Name),
		)
		return fmt.Errorf("create class %s: %w", class.Name, err)
	}

	return nil
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	query := `
		SELECT id, name, description, class_date, start_minutes, end_minutes,
		       capacity, price_pence, created_at, updated_at
		FROM classes
		WHERE id = $1
	`

	var class entity.Class
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.Description,
		&class.ClassDate,
		&class.StartMinutes,
		&class.EndMinutes,
		&class.Capacity,
		&class.PricePence,
		&class.CreatedAt,
		&class.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find class by ID",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return nil, fmt.Errorf("find class by ID %s: %w", id.String(), err)
	}

	return &class, nil
}

func (r *classRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Class, error) {
	query := `
		SELECT id, name, description, class_date, start_minutes, end_minutes,
		       capacity, price_pence, created_at, updated_at
		FROM classes
		ORDER BY class_date ASC, start_minutes ASC
		LIMIT $1 OFFSET $2
	`

	return r.queryClasses(ctx, query, limit, offset)
}

// FindUpcoming lists classes whose date has not yet passed.
func (r *classRepository) FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Class, error) {
	query := `
		SELECT id, name, description, class_date, start_minutes, end_minutes,
		       capacity, price_pence, created_at, updated_at
		FROM classes
		WHERE class_date >= CURRENT_DATE
		ORDER BY class_date ASC, start_minutes ASC
		LIMIT $1 OFFSET $2
	`

	return r.queryClasses(ctx, query, limit, offset)
}

func (r *classRepository) queryClasses(ctx context.Context, query string, limit, offset int) ([]*entity.Class, error) {
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get classes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find classes: %w", err)
	}
	defer rows.Close()

	var classes []*entity.Class
	for rows.Next() {
		var class entity.Class
		err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.Description,
			&class.ClassDate,
			&class.StartMinutes,
			&class.EndMinutes,
			&class.Capacity,
			&class.PricePence,
			&class.CreatedAt,
			&class.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan class row", zap.Error(err))
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate classes rows: %w", err)
	}

	return classes, nil
}

func (r *classRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM classes`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting classes", zap.Error(err))
		return 0, fmt.Errorf("count all classes: %w", err)
	}

	return count, nil
}

// CountBookings returns the number of places already taken in a class.
func (r *classRepository) CountBookings(ctx context.Context, classID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM class_bookings WHERE class_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, classID).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting class bookings",
			zap.Error(err),
			zap.String("class_id", classID.String()),
		)
		return 0, fmt.Errorf("count bookings for class %s: %w", classID.String(), err)
	}

	return count, nil
}

func (r *classRepository) Update(ctx context.Context, class *entity.Class) error {
	query := `
		UPDATE classes
		SET name = $2, description = $3, class_date = $4, start_minutes = $5,
		    end_minutes = $6, capacity = $7, price_pence = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		class.ID,
		class.Name,
		class.Description,
		class.ClassDate,
		class.StartMinutes,
		class.EndMinutes,
		class.Capacity,
		class.PricePence,
		class.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update class",
			zap.Error(err),
			zap.String("class_id", class.ID.String()),
		)
		return fmt.Errorf("update class %s: %w", class.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class %s not found", class.ID.String())
	}

	return nil
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM classes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete class",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete class %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class %s not found", id.String())
	}

	r.log.Info("Class deleted", zap.String("id", id.String()))
	return nil
}
