package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/starwars-api/internal/favorite/domain"
)

var tracer = otel.Tracer("favorite-repository")

// TracingFavoriteRepository wraps GormFavoriteRepository with tracing spans
type TracingFavoriteRepository struct {
	*GormFavoriteRepository
}

// NewTracingFavoriteRepository creates a favorite repository with tracing
func NewTracingFavoriteRepository(db *gorm.DB) *TracingFavoriteRepository {
	return &TracingFavoriteRepository{
		GormFavoriteRepository: NewGormFavoriteRepository(db),
	}
}

func (r *TracingFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	ctx, span := tracer.Start(ctx, "repository.favorite.Create",
		trace.WithAttributes(
			attribute.Int("favorite.user_id", int(favorite.UserID)),
			attribute.String("favorite.type", favorite.FavoriteType),
			attribute.Int("favorite.target_id", int(favorite.FavoriteID)),
		),
	)
	defer span.End()

	if err := r.GormFavoriteRepository.Create(ctx, favorite); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("favorite.id", int(favorite.ID)))
	return nil
}

func (r *TracingFavoriteRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.FindByUser",
		trace.WithAttributes(attribute.Int("favorite.user_id", int(userID))),
	)
	defer span.End()

	favorites, err := r.GormFavoriteRepository.FindByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(favorites)))
	return favorites, nil
}

func (r *TracingFavoriteRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.favorite.Delete",
		trace.WithAttributes(attribute.Int("favorite.id", int(id))),
	)
	defer span.End()

	if err := r.GormFavoriteRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *TracingFavoriteRepository) CountByTarget(ctx context.Context, favoriteType string, favoriteID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.CountByTarget",
		trace.WithAttributes(
			attribute.String("favorite.type", favoriteType),
			attribute.Int("favorite.target_id", int(favoriteID)),
		),
	)
	defer span.End()

	count, err := r.GormFavoriteRepository.CountByTarget(ctx, favoriteType, favoriteID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}
