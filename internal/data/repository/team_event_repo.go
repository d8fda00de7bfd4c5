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

type TeamEventRepository interface {
	Create(ctx context.Context, event *entity.TeamEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamEvent, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.TeamEvent, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, event *entity.TeamEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type teamEventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTeamEventRepository(db database.PgxIface, log *zap.Logger) TeamEventRepository {
	return &teamEventRepository{
		db:  db,
		log: log.With(zap.String("repository", "team_event")),
	}
}

func (r *teamEventRepository) Create(ctx context.Context, event *entity.TeamEvent) error {
	query := `
		INSERT INTO team_events (id, name, description, day, start_minutes,
		                         end_minutes, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.Day,
		event.StartMinutes,
		event.EndMinutes,
		event.Capacity,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create team event",
			zap.Error(err),
			zap.String("name", event.Name),
		)
		return fmt.Errorf("create team event %s: %w", event.Name, err)
	}

	return nil
}

func (r *teamEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamEvent, error) {
	query := `
		SELECT id, name, description, day, start_minutes, end_minutes,
		       capacity, created_at, updated_at
		FROM team_events
		WHERE id = $1
	`

	var event entity.TeamEvent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Day,
		&event.StartMinutes,
		&event.EndMinutes,
		&event.Capacity,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find team event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find team event by ID %s: %w", id.String(), err)
	}

	return &event, nil
}

// FindAll lists the weekly slots in schedule order, Monday first.
func (r *teamEventRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.TeamEvent, error) {
	query := `
		SELECT id, name, description, day, start_minutes, end_minutes,
		       capacity, created_at, updated_at
		FROM team_events
		ORDER BY array_position(ARRAY['monday', 'tuesday', 'wednesday', 'thursday',
		                              'friday', 'saturday', 'sunday'], day) ASC,
		         start_minutes ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get team events",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all team events: %w", err)
	}
	defer rows.Close()

	var events []*entity.TeamEvent
	for rows.Next() {
		var event entity.TeamEvent
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.Day,
			&event.StartMinutes,
			&event.EndMinutes,
			&event.Capacity,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan team event row", zap.Error(err))
			return nil, fmt.Errorf("scan team event row: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate team events rows: %w", err)
	}

	return events, nil
}

func (r *teamEventRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM team_events`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting team events", zap.Error(err))
		return 0, fmt.Errorf("count all team events: %w", err)
	}

	return count, nil
}

func (r *teamEventRepository) Update(ctx context.Context, event *entity.TeamEvent) error {
	query := `
		UPDATE team_events
		SET name = $2, description = $3, day = $4, start_minutes = $5,
		    end_minutes = $6, capacity = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.Day,
		event.StartMinutes,
		event.EndMinutes,
		event.Capacity,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update team event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return fmt.Errorf("update team event %s: %w", event.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("team event %s not found", event.ID.String())
	}

	return nil
}

func (r *teamEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM team_events WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete team event",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete team event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("team event %s not found", id.String())
	}

	r.log.Info("Team event deleted", zap.String("id", id.String()))
	return nil
}
