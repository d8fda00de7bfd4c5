package repository

import (
	"context"
	"fmt"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DiscountRepository interface {
	Create(ctx context.Context, scheme *entity.DiscountScheme) error
	FindByID(ctx context.Context, id int) (*entity.DiscountScheme, error)
	FindAll(ctx context.Context) ([]*entity.DiscountScheme, error)
	FindQualifying(ctx context.Context, bookingCount int64) ([]*entity.DiscountScheme, error)
	Update(ctx context.Context, scheme *entity.DiscountScheme) error
	Delete(ctx context.Context, id int) error
}

type discountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDiscountRepository(db database.PgxIface, log *zap.Logger) DiscountRepository {
	return &discountRepository{
		db:  db,
		log: log.With(zap.String("repository", "discount")),
	}
}

func (r *discountRepository) Create(ctx context.Context, scheme *entity.DiscountScheme) error {
	query := `
		INSERT INTO discount_schemes (name, threshold, value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, scheme.Name, scheme.Threshold, scheme.Value).Scan(&scheme.ID, &scheme.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create discount scheme",
			zap.Error(err),
			zap.Int("threshold", scheme.Threshold),
		)
		return fmt.Errorf("create discount scheme: %w", err)
	}

	return nil
}

func (r *discountRepository) FindByID(ctx context.Context, id int) (*entity.DiscountScheme, error) {
	query := `
		SELECT id, name, threshold, value, created_at
		FROM discount_schemes
		WHERE id = $1
	`

	var scheme entity.DiscountScheme
	err := r.db.QueryRow(ctx, query, id).Scan(
		&scheme.ID,
		&scheme.Name,
		&scheme.Threshold,
		&scheme.Value,
		&scheme.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find discount scheme by ID",
			zap.Error(err),
			zap.Int("scheme_id", id),
		)
		return nil, fmt.Errorf("find discount scheme by ID %d: %w", id, err)
	}

	return &scheme, nil
}

func (r *discountRepository) FindAll(ctx context.Context) ([]*entity.DiscountScheme, error) {
	query := `
		SELECT id, name, threshold, value, created_at
		FROM discount_schemes
		ORDER BY id ASC
	`

	return r.querySchemes(ctx, query)
}

// FindQualifying returns the schemes whose threshold the booking count has
// reached, in id order so they apply deterministically.
func (r *discountRepository) FindQualifying(ctx context.Context, bookingCount int64) ([]*entity.DiscountScheme, error) {
	query := `
		SELECT id, name, threshold, value, created_at
		FROM discount_schemes
		WHERE threshold <= $1
		ORDER BY id ASC
	`

	return r.querySchemes(ctx, query, bookingCount)
}

func (r *discountRepository) querySchemes(ctx context.Context, query string, args ...any) ([]*entity.DiscountScheme, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get discount schemes", zap.Error(err))
		return nil, fmt.Errorf("find discount schemes: %w", err)
	}
	defer rows.Close()

	var schemes []*entity.DiscountScheme
	for rows.Next() {
		var scheme entity.DiscountScheme
		err := rows.Scan(
			&scheme.ID,
			&scheme.Name,
			&scheme.Threshold,
			&scheme.Value,
			&scheme.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan discount scheme row", zap.Error(err))
			return nil, fmt.Errorf("scan discount scheme row: %w", err)
		}
		schemes = append(schemes, &scheme)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate discount schemes rows: %w", err)
	}

	return schemes, nil
}

func (r *discountRepository) Update(ctx context.Context, scheme *entity.DiscountScheme) error {
	query := `
		UPDATE discount_schemes
		SET name = $2, threshold = $3, value = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, scheme.ID, scheme.Name, scheme.Threshold, scheme.Value)
	if err != nil {
		r.log.Error("Failed to update discount scheme",
			zap.Error(err),
			zap.Int("scheme_id", scheme.ID),
		)
		return fmt.Errorf("update discount scheme %d: %w", scheme.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("discount scheme %d not found", scheme.ID)
	}

	return nil
}

func (r *discountRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM discount_schemes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete discount scheme",
			zap.Error(err),
			zap.Int("id", id),
		)
		return fmt.Errorf("delete discount scheme %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("discount scheme %d not found", id)
	}

	return nil
}
