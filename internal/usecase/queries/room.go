package queries

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound      = errs.New("room not found")
	ErrRoomHotelMismatch = errs.New("room does not belong to the hotel")
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, filters RoomFilters, limit, offset int) ([]*RoomListItem, int64, error)
	ListHistory(ctx context.Context, hotelID, roomID uuid.UUID, limit, offset int) ([]*RoomHistoryView, int64, error)
	GetSummary(ctx context.Context, hotelID uuid.UUID) ([]*RoomSummaryItem, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindByHotel(ctx context.Context, hotelID uuid.UUID, filters RoomFilters, limit, offset int32) ([]*RoomListItem, int64, error)
	FindHistory(ctx context.Context, roomID uuid.UUID, limit, offset int32) ([]*RoomHistoryView, int64, error)
	FindSummary(ctx context.Context, hotelID uuid.UUID) ([]*RoomSummaryItem, error)
}

type roomQueriesImpl struct {
	repo   RoomReadStore
	hotels HotelReadStore
}

func NewRoomQueries(repo RoomReadStore, hotels HotelReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo, hotels: hotels}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	rm, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (q *roomQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID, filters RoomFilters, limit, offset int) ([]*RoomListItem, int64, error) {
	limit = ValidateLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindByHotel(ctx, hotelID, filters, int32(limit), int32(offset))
}

// ListHistory resolves the room first so an unknown id is reported as
// not found instead of an empty page, and rejects a caller claiming the
// wrong hotel for the room.
func (q *roomQueriesImpl) ListHistory(ctx context.Context, hotelID, roomID uuid.UUID, limit, offset int) ([]*RoomHistoryView, int64, error) {
	rm, err := q.GetByID(ctx, roomID)
	if err != nil {
		return nil, 0, err
	}
	if rm.HotelID != hotelID {
		return nil, 0, ErrRoomHotelMismatch
	}

	limit = ValidateLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindHistory(ctx, roomID, int32(limit), int32(offset))
}

// GetSummary reports per-room-type occupancy-agnostic counts. The hotel
// is resolved first so an unknown id is a not-found, not an empty list.
func (q *roomQueriesImpl) GetSummary(ctx context.Context, hotelID uuid.UUID) ([]*RoomSummaryItem, error) {
	if _, err := q.hotels.FindByID(ctx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return q.repo.FindSummary(ctx, hotelID)
}
