package commands

import (
	"context"

	domhotel "stayops/internal/domain/hotel"
	"stayops/internal/infra"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateHotelCode = errs.New("hotel code already exists")

type CreateHotelRequest = shared.CreateHotelRequest

type UpdateHotelRequest = shared.UpdateHotelRequest

type HotelCommands interface {
	CreateHotel(ctx context.Context, req CreateHotelRequest) (uuid.UUID, error)
	UpdateHotel(ctx context.Context, hotelID uuid.UUID, req UpdateHotelRequest) error
	DeleteHotel(ctx context.Context, hotelID uuid.UUID) error
}

type hotelUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHotelUseCase(uow shared.UnitOfWork, clk clock.Clock) HotelCommands {
	return &hotelUseCaseImpl{uow: uow, clock: clk}
}

func (uc *hotelUseCaseImpl) CreateHotel(ctx context.Context, req CreateHotelRequest) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := domhotel.NewHotel(uuid.Nil, req.Code, req.Name, req.Timezone, req.Status, uc.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.Hotels().Create(ctx, tx.DB(), h)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateHotelCode
			}
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

func (uc *hotelUseCaseImpl) UpdateHotel(ctx context.Context, hotelID uuid.UUID, req UpdateHotelRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.getHotel(ctx, tx, hotelID)
		if derr != nil {
			return derr
		}

		h := snap.ToDomain()
		if derr = h.UpdateDetails(req.Code, req.Name, req.Timezone, req.Status, uc.clock.Now()); derr != nil {
			return derr
		}

		if derr = tx.Hotels().Update(ctx, tx.DB(), h); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateHotelCode
			}
			return derr
		}
		return nil
	})
}

func (uc *hotelUseCaseImpl) DeleteHotel(ctx context.Context, hotelID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().HotelByID(ctx, hotelID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrHotelNotFoundWrite
			}
			return derr
		}
		h := snap.ToDomain()
		if !h.Delete(uc.clock.Now()) {
			return nil
		}
		return tx.Hotels().Update(ctx, tx.DB(), h)
	})
}

func (uc *hotelUseCaseImpl) getHotel(ctx context.Context, tx shared.Tx, hotelID uuid.UUID) (*shared.HotelSnapshot, error) {
	snap, err := tx.Reads().HotelByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFoundWrite
		}
		return nil, err
	}
	if snap.IsDeleted {
		return nil, ErrHotelNotFoundWrite
	}
	return snap, nil
}
