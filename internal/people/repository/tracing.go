package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/starwars-api/internal/people/domain"
)

var tracer = otel.Tracer("people-repository")

// TracingPeopleRepository wraps GormPeopleRepository with tracing spans
type TracingPeopleRepository struct {
	*GormPeopleRepository
}

// NewTracingPeopleRepository creates a people repository with tracing
func NewTracingPeopleRepository(db *gorm.DB) *TracingPeopleRepository {
	return &TracingPeopleRepository{
		GormPeopleRepository: NewGormPeopleRepository(db),
	}
}

func (r *TracingPeopleRepository) Create(ctx context.Context, person *domain.People) error {
	ctx, span := tracer.Start(ctx, "repository.people.Create",
		trace.WithAttributes(attribute.String("person.name", person.Name)),
	)
	defer span.End()

	if err := r.GormPeopleRepository.Create(ctx, person); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("person.id", int(person.ID)))
	return nil
}

func (r *TracingPeopleRepository) FindByID(ctx context.Context, id uint) (*domain.People, error) {
	ctx, span := tracer.Start(ctx, "repository.people.FindByID",
		trace.WithAttributes(attribute.Int("person.id", int(id))),
	)
	defer span.End()

	person, err := r.GormPeopleRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return person, nil
}

func (r *TracingPeopleRepository) FindAll(ctx context.Context) ([]domain.People, error) {
	ctx, span := tracer.Start(ctx, "repository.people.FindAll")
	defer span.End()

	people, err := r.GormPeopleRepository.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(people)))
	return people, nil
}

func (r *TracingPeopleRepository) Update(ctx context.Context, person *domain.People) error {
	ctx, span := tracer.Start(ctx, "repository.people.Update",
		trace.WithAttributes(attribute.Int("person.id", int(person.ID))),
	)
	defer span.End()

	if err := r.GormPeopleRepository.Update(ctx, person); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *TracingPeopleRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.people.Delete",
		trace.WithAttributes(attribute.Int("person.id", int(id))),
	)
	defer span.End()

	if err := r.GormPeopleRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
