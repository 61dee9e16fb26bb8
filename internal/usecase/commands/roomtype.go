package commands

import (
	"context"

	domroomtype "stayops/internal/domain/roomtype"
	"stayops/internal/infra"
	"stayops/internal/pkg/clock"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest = shared.CreateRoomTypeRequest

type UpdateRoomTypeRequest = shared.UpdateRoomTypeRequest

type RoomTypeCommands interface {
	CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (uuid.UUID, error)
	UpdateRoomType(ctx context.Context, roomTypeID uuid.UUID, req UpdateRoomTypeRequest) error
	DeleteRoomType(ctx context.Context, roomTypeID uuid.UUID) error
}

type roomTypeUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomTypeUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomTypeCommands {
	return &roomTypeUseCaseImpl{uow: uow, clock: clk}
}

func (uc *roomTypeUseCaseImpl) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hotel, derr := tx.Reads().HotelByID(ctx, req.HotelID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrHotelNotFoundWrite
			}
			return derr
		}
		if hotel.IsDeleted {
			return ErrHotelNotFoundWrite
		}
		if hotel.Status != "active" {
			return ErrHotelInactive
		}

		rt, derr := domroomtype.NewRoomType(uuid.Nil, req.HotelID, req.Name, req.Description, req.Capacity, req.BaseRate, req.Status, uc.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.RoomTypes().Create(ctx, tx.DB(), rt)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *roomTypeUseCaseImpl) UpdateRoomType(ctx context.Context, roomTypeID uuid.UUID, req UpdateRoomTypeRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.getRoomType(ctx, tx, roomTypeID)
		if derr != nil {
			return derr
		}

		rt := snap.ToDomain()
		if derr = rt.UpdateDetails(req.Name, req.Description, req.Capacity, req.BaseRate, req.Status, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.RoomTypes().Update(ctx, tx.DB(), rt)
	})
}

func (uc *roomTypeUseCaseImpl) DeleteRoomType(ctx context.Context, roomTypeID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RoomTypeByID(ctx, roomTypeID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomTypeNotFoundWrite
			}
			return derr
		}

		rt := snap.ToDomain()
		if !rt.Delete(uc.clock.Now()) {
			return nil
		}
		return tx.RoomTypes().Update(ctx, tx.DB(), rt)
	})
}

func (uc *roomTypeUseCaseImpl) getRoomType(ctx context.Context, tx shared.Tx, roomTypeID uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	snap, err := tx.Reads().RoomTypeByID(ctx, roomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFoundWrite
		}
		return nil, err
	}
	if snap.IsDeleted {
		return nil, ErrRoomTypeNotFoundWrite
	}
	return snap, nil
}
