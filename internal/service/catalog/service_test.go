package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memRepo хранит услуги в памяти в порядке создания
type memRepo struct {
	items []*domain.Service
	err   error
}

func (m *memRepo) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Service, 0)
	for _, s := range m.items {
		if !activeOnly || s.Active {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	m.items = append(m.items, s)
	cp := *s
	return &cp, nil
}

func (m *memRepo) Update(_ context.Context, id uuid.UUID, upd domain.ServiceUpdate) (*domain.Service, error) {
	for _, s := range m.items {
		if s.ID != id {
			continue
		}
		if upd.Name != nil {
			s.Name = *upd.Name
		}
		if upd.Description != nil {
			s.Description = *upd.Description
		}
		if upd.Price != nil {
			s.Price = *upd.Price
		}
		if upd.ImageURL != nil {
			s.ImageURL = upd.ImageURL
		}
		if upd.Active != nil {
			s.Active = *upd.Active
		}
		cp := *s
		return &cp, nil
	}
	return nil, serviceRepo.ErrServiceNotFound
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, s := range m.items {
		if s.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return serviceRepo.ErrServiceNotFound
}

func names(list []models.ServiceResponse) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Name)
	}
	return out
}

func TestCreateThenDeactivate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{}, nopLogger{})

	created, err := svc.Create(ctx, &models.CreateServiceRequest{Name: "Cat Eye", Description: "d", Price: 160})
	require.NoError(t, err)
	assert.True(t, created.Active)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat Eye"}, names(active))

	id := uuid.MustParse(created.ID)
	_, err = svc.Update(ctx, id, &models.UpdateServiceRequest{Active: ptr.Ptr(false)})
	require.NoError(t, err)

	active, err = svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat Eye"}, names(all))
}

func TestUpdate_KeepsAbsentFields(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{}, nopLogger{})

	created, err := svc.Create(ctx, &models.CreateServiceRequest{
		Name:        "Volume 5D",
		Description: "Alongamento 5D para volume intenso",
		Price:       180,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, uuid.MustParse(created.ID), &models.UpdateServiceRequest{Price: ptr.Ptr(200.0)})
	require.NoError(t, err)

	assert.Equal(t, 200.0, updated.Price)
	assert.Equal(t, "Volume 5D", updated.Name)
	assert.Equal(t, "Alongamento 5D para volume intenso", updated.Description)
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{}, nopLogger{})

	_, err := svc.Create(ctx, &models.CreateServiceRequest{Name: "  ", Price: 10})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &models.CreateServiceRequest{Name: "Capping", Price: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, uuid.New(), &models.UpdateServiceRequest{Name: ptr.Ptr("")})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{}, nopLogger{})

	_, err := svc.Update(ctx, uuid.New(), &models.UpdateServiceRequest{Name: ptr.Ptr("x")})
	require.ErrorIs(t, err, ErrServiceNotFound)

	require.ErrorIs(t, svc.Delete(ctx, uuid.New()), ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{}, nopLogger{})

	created, err := svc.Create(ctx, &models.CreateServiceRequest{Name: "Fox Eye", Price: 170})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, uuid.MustParse(created.ID)))

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepositoryError(t *testing.T) {
	svc := NewService(&memRepo{err: errors.New("db down")}, nopLogger{})

	_, err := svc.List(context.Background(), true)
	require.ErrorIs(t, err, ErrInternal)
}
