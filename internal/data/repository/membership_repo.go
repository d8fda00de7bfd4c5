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

type ActiveMembershipRepository interface {
	Create(ctx context.Context, membership *entity.ActiveMembership) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ActiveMembership, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ActiveMembership, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	CountByPlan(ctx context.Context) ([]*entity.PlanCount, error)
	RevenueSince(ctx context.Context, since time.Time) (int64, error)
}

type activeMembershipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActiveMembershipRepository(db database.PgxIface, log *zap.Logger) ActiveMembershipRepository {
	return &activeMembershipRepository{
		db:  db,
		log: log.With(zap.String("repository", "active_membership")),
	}
}

func (r *activeMembershipRepository) Create(ctx context.Context, membership *entity.ActiveMembership) error {
	query := `
		INSERT INTO active_memberships (id, user_id, plan_id, amount_pence,
		                                member_since, member_till, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		membership.ID,
		membership.UserID,
		membership.PlanID,
		membership.AmountPence,
		membership.MemberSince,
		membership.MemberTill,
		membership.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create active membership",
			zap.Error(err),
			zap.String("user_id", membership.UserID.String()),
		)
		return fmt.Errorf("create active membership for user %s: %w", membership.UserID.String(), err)
	}

	return nil
}

func (r *activeMembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ActiveMembership, error) {
	query := `
		SELECT id, user_id, plan_id, amount_pence, member_since, member_till, created_at
		FROM active_memberships
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

func (r *activeMembershipRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ActiveMembership, error) {
	query := `
		SELECT id, user_id, plan_id, amount_pence, member_since, member_till, created_at
		FROM active_memberships
		WHERE user_id = $1
	`

	return r.scanOne(ctx, query, userID)
}

func (r *activeMembershipRepository) scanOne(ctx context.Context, query string, arg any) (*entity.ActiveMembership, error) {
	var membership entity.ActiveMembership
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&membership.ID,
		&membership.UserID,
		&membership.PlanID,
		&membership.AmountPence,
		&membership.MemberSince,
		&membership.MemberTill,
		&membership.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active membership", zap.Error(err))
		return nil, fmt.Errorf("find active membership: %w", err)
	}

	return &membership, nil
}

func (r *activeMembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM active_memberships WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete active membership",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete active membership %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("active membership %s not found", id.String())
	}

	return nil
}

func (r *activeMembershipRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM active_memberships WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete active membership by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete active membership for user %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("no active membership for user %s", userID.String())
	}

	return nil
}

// CountByPlan returns the number of current members per plan.
func (r *activeMembershipRepository) CountByPlan(ctx context.Context) ([]*entity.PlanCount, error) {
	query := `
		SELECT p.id, p.name, COUNT(m.id)
		FROM membership_plans p
		LEFT JOIN active_memberships m ON m.plan_id = p.id AND m.member_till >= CURRENT_DATE
		GROUP BY p.id, p.name
		ORDER BY p.name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count memberships by plan", zap.Error(err))
		return nil, fmt.Errorf("count memberships by plan: %w", err)
	}
	defer rows.Close()

	var counts []*entity.PlanCount
	for rows.Next() {
		var count entity.PlanCount
		if err := rows.Scan(&count.PlanID, &count.PlanName, &count.Members); err != nil {
			r.log.Error("Failed to scan plan count row", zap.Error(err))
			return nil, fmt.Errorf("scan plan count row: %w", err)
		}
		counts = append(counts, &count)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate plan count rows: %w", err)
	}

	return counts, nil
}

// RevenueSince sums membership sales over a window.
func (r *activeMembershipRepository) RevenueSince(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount_pence), 0)
		FROM active_memberships
		WHERE created_at >= $1
	`

	var total int64
	err := r.db.QueryRow(ctx, query, since).Scan(&total)
	if err != nil {
		r.log.Error("Database error summing membership revenue", zap.Error(err))
		return 0, fmt.Errorf("sum membership revenue: %w", err)
	}

	return total, nil
}
