package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/starwars-api/internal/planet/domain"
)

var tracer = otel.Tracer("planet-repository")

// TracingPlanetRepository wraps GormPlanetRepository with tracing spans
type TracingPlanetRepository struct {
	*GormPlanetRepository
}

// NewTracingPlanetRepository creates a planet repository with tracing
func NewTracingPlanetRepository(db *gorm.DB) *TracingPlanetRepository {
	return &TracingPlanetRepository{
		GormPlanetRepository: NewGormPlanetRepository(db),
	}
}

func (r *TracingPlanetRepository) Create(ctx context.Context, planet *domain.Planet) error {
	ctx, span := tracer.Start(ctx, "repository.planet.Create",
		trace.WithAttributes(attribute.String("planet.name", planet.Name)),
	)
	defer span.End()

	if err := r.GormPlanetRepository.Create(ctx, planet); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("planet.id", int(planet.ID)))
	return nil
}

func (r *TracingPlanetRepository) FindByID(ctx context.Context, id uint) (*domain.Planet, error) {
	ctx, span := tracer.Start(ctx, "repository.planet.FindByID",
		trace.WithAttributes(attribute.Int("planet.id", int(id))),
	)
	defer span.End()

	planet, err := r.GormPlanetRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return planet, nil
}

func (r *TracingPlanetRepository) FindAll(ctx context.Context) ([]domain.Planet, error) {
	ctx, span := tracer.Start(ctx, "repository.planet.FindAll")
	defer span.End()

	planets, err := r.GormPlanetRepository.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(planets)))
	return planets, nil
}

func (r *TracingPlanetRepository) Update(ctx context.Context, planet *domain.Planet) error {
	ctx, span := tracer.Start(ctx, "repository.planet.Update",
		trace.WithAttributes(attribute.Int("planet.id", int(planet.ID))),
	)
	defer span.End()

	if err := r.GormPlanetRepository.Update(ctx, planet); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *TracingPlanetRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.planet.Delete",
		trace.WithAttributes(attribute.Int("planet.id", int(id))),
	)
	defer span.End()

	if err := r.GormPlanetRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
