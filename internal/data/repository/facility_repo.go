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

type FacilityRepository interface {
	Create(ctx context.Context, facility *entity.Facility) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Facility, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, facility *entity.Facility) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type facilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFacilityRepository(db database.PgxIface, log *zap.Logger) FacilityRepository {
	return &facilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "facility")),
	}
}

func (r *facilityRepository) Create(ctx context.Context, facility *entity.Facility) error {
	query := `
		INSERT INTO facilities (id, name, description, capacity, open_minutes,
		                        close_minutes, session_minutes, activities,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		facility.ID,
		facility.Name,
		facility.Description,
		facility.Capacity,
		facility.OpenMinutes,
		facility.CloseMinutes,
		facility.SessionMinutes,
		facility.Activities,
		facility.CreatedAt,
		facility.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create facility",
			zap.Error(err),
			zap.String("name", facility.Name),
		)
		return fmt.Errorf("create facility %s: %w", facility.Name, err)
	}

	return nil
}

func (r *facilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	query := `
		SELECT id, name, description, capacity, open_minutes, close_minutes,
		       session_minutes, activities, created_at, updated_at
		FROM facilities
		WHERE id = $1
	`

	var facility entity.Facility
	err := r.db.QueryRow(ctx, query, id).Scan(
		&facility.ID,
		&facility.Name,
		&facility.Description,
		&facility.Capacity,
		&facility.OpenMinutes,
		&facility.CloseMinutes,
		&facility.SessionMinutes,
		&facility.Activities,
		&facility.CreatedAt,
		&facility.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find facility by ID",
			zap.Error(err),
			zap.String("facility_id", id.String()),
		)
		return nil, fmt.Errorf("find facility by ID %s: %w", id.String(), err)
	}

	return &facility, nil
}

func (r *facilityRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Facility, error) {
	query := `
		SELECT id, name, description, capacity, open_minutes, close_minutes,
		       session_minutes, activities, created_at, updated_at
		FROM facilities
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get facilities",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all facilities: %w", err)
	}
	defer rows.Close()

	var facilities []*entity.Facility
	for rows.Next() {
		var facility entity.Facility
		err := rows.Scan(
			&facility.ID,
			&facility.Name,
			&facility.Description,
			&facility.Capacity,
			&facility.OpenMinutes,
			&facility.CloseMinutes,
			&facility.SessionMinutes,
			&facility.Activities,
			&facility.CreatedAt,
			&facility.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan facility row", zap.Error(err))
			return nil, fmt.Errorf("scan facility row: %w", err)
		}
		facilities = append(facilities, &facility)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate facilities rows: %w", err)
	}

	return facilities, nil
}

func (r *facilityRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM facilities`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting facilities", zap.Error(err))
		return 0, fmt.Errorf("count all facilities: %w", err)
	}

	return count, nil
}

func (r *facilityRepository) Update(ctx context.Context, facility *entity.Facility) error {
	query := `
		UPDATE facilities
		SET name = $2, description = $3, capacity = $4, open_minutes = $5,
		    close_minutes = $6, session_minutes = $7, activities = $8,
		    updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		facility.ID,
		facility.Name,
		facility.Description,
		facility.Capacity,
		facility.OpenMinutes,
		facility.CloseMinutes,
		facility.SessionMinutes,
		facility.Activities,
		facility.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update facility",
			zap.Error(err),
			zap.String("facility_id", facility.ID.String()),
		)
		return fmt.Errorf("update facility %s: %w", facility.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("facility %s not found", facility.ID.String())
	}

	return nil
}

func (r *facilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM facilities WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete facility",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete facility %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("facility %s not found", id.String())
	}

	r.log.Info("Facility deleted", zap.String("id", id.String()))
	return nil
}
