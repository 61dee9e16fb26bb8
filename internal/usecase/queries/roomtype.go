package queries

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomTypeNotFound = errs.New("room type not found")

type RoomTypeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomTypeView, error)
}

type RoomTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	repo RoomTypeReadStore
}

func NewRoomTypeQueries(repo RoomTypeReadStore) RoomTypeQueries {
	return &roomTypeQueriesImpl{repo: repo}
}

func (q *roomTypeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	rt, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (q *roomTypeQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomTypeView, error) {
	return q.repo.FindByHotel(ctx, hotelID)
}
