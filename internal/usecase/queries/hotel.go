package queries

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHotelNotFound = errs.New("hotel not found")

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context, limit, offset int) ([]*HotelView, int64, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	FindAll(ctx context.Context, limit, offset int32) ([]*HotelView, int64, error)
}

type hotelQueriesImpl struct {
	repo HotelReadStore
}

func NewHotelQueries(repo HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{repo: repo}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	h, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context, limit, offset int) ([]*HotelView, int64, error) {
	limit = ValidateLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindAll(ctx, int32(limit), int32(offset))
}
