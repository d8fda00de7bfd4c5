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

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.MembershipPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error)
	FindAll(ctx context.Context) ([]*entity.MembershipPlan, error)
	Update(ctx context.Context, plan *entity.MembershipPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type planRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlanRepository(db database.PgxIface, log *zap.Logger) PlanRepository {
	return &planRepository{
		db:  db,
		log: log.With(zap.String("repository", "plan")),
	}
}

func (r *planRepository) Create(ctx context.Context, plan *entity.MembershipPlan) error {
	query := `
		INSERT INTO membership_plans (id, name, description, months, price_pence,
		                              created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		plan.ID,
		plan.Name,
		plan.Description,
		plan.Months,
		plan.PricePence,
		plan.CreatedAt,
		plan.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create membership plan",
			zap.Error(err),
			zap.String("name", plan.Name),
		)
		return fmt.Errorf("create membership plan %s: %w", plan.Name, err)
	}

	return nil
}

func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error) {
	query := `
		SELECT id, name, description, months, price_pence, created_at, updated_at
		FROM membership_plans
		WHERE id = $1
	`

	var plan entity.MembershipPlan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.Months,
		&plan.PricePence,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find membership plan by ID",
			zap.Error(err),
			zap.String("plan_id", id.String()),
		)
		return nil, fmt.Errorf("find membership plan by ID %s: %w", id.String(), err)
	}

	return &plan, nil
}

func (r *planRepository) FindAll(ctx context.Context) ([]*entity.MembershipPlan, error) {
	query := `
		SELECT id, name, description, months, price_pence, created_at, updated_at
		FROM membership_plans
		ORDER BY price_pence ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get membership plans", zap.Error(err))
		return nil, fmt.Errorf("find all membership plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.MembershipPlan
	for rows.Next() {
		var plan entity.MembershipPlan
		err := rows.Scan(
			&plan.ID,
			&plan.Name,
			&plan.Description,
			&plan.Months,
			&plan.PricePence,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan membership plan row", zap.Error(err))
			return nil, fmt.Errorf("scan membership plan row: %w", err)
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate membership plans rows: %w", err)
	}

	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, plan *entity.MembershipPlan) error {
	query := `
		UPDATE membership_plans
		SET name = $2, description = $3, months = $4, price_pence = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		plan.ID,
		plan.Name,
		plan.Description,
		plan.Months,
		plan.PricePence,
		plan.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update membership plan",
			zap.Error(err),
			zap.String("plan_id", plan.ID.String()),
		)
		return fmt.Errorf("update membership plan %s: %w", plan.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership plan %s not found", plan.ID.String())
	}

	return nil
}

func (r *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM membership_plans WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete membership plan",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete membership plan %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership plan %s not found", id.String())
	}

	r.log.Info("Membership plan deleted", zap.String("id", id.String()))
	return nil
}
