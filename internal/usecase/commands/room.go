package commands

import (
	"context"

	domroom "stayops/internal/domain/room"
	"stayops/internal/infra"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFoundWrite    = errs.New("hotel not found")
	ErrHotelInactive         = errs.New("hotel is inactive")
	ErrRoomTypeNotFoundWrite = errs.New("room type not found")
	ErrRoomTypeInactive      = errs.New("room type is inactive")
	ErrRoomTypeHotelMismatch = errs.New("room type does not belong to the hotel")
	ErrRoomNotFoundWrite     = errs.New("room not found")
	ErrDuplicateRoomNumber   = errs.New("room number already exists for this hotel")
	ErrRowVersionRequired    = errs.New("row version is required")
	ErrVersionConflict       = errs.New("room was modified by another request")
)

const deletedHistoryReason = "Deleted"

type CreateRoomRequest = shared.CreateRoomRequest

type UpdateRoomRequest = shared.UpdateRoomRequest

// RoomWriteResult reports the room and its version after a write so
// handlers can hand the fresh token back to the client.
type RoomWriteResult struct {
	RoomID  uuid.UUID
	Version int64
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*RoomWriteResult, error)
	// UpdateRoom is the only version-checked write: expectedVersion must
	// carry the version the client last read.
	UpdateRoom(ctx context.Context, roomID uuid.UUID, req UpdateRoomRequest, expectedVersion *int64) (*RoomWriteResult, error)
	ChangeStatus(ctx context.Context, roomID uuid.UUID, status domroom.Status, reason *string) (*RoomWriteResult, error)
	ChangeHousekeepingStatus(ctx context.Context, roomID uuid.UUID, status domroom.HousekeepingStatus, reason *string) (*RoomWriteResult, error)
	DeleteRoom(ctx context.Context, roomID uuid.UUID) error
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, req CreateRoomRequest) (*RoomWriteResult, error) {
	var result *RoomWriteResult
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

		if derr = uc.checkRoomType(ctx, tx, req.RoomTypeID, req.HotelID); derr != nil {
			return derr
		}

		exists, derr := tx.Rooms().NumberExists(ctx, tx.DB(), req.HotelID, req.Number, nil)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicateRoomNumber
		}

		now := uc.clock.Now()
		rm, derr := domroom.NewRoom(uuid.Nil, req.HotelID, req.RoomTypeID, req.Number, req.Floor, req.Status, req.HousekeepingStatus, now)
		if derr != nil {
			return derr
		}

		id, derr := tx.Rooms().Create(ctx, tx.DB(), rm)
		if derr != nil {
			// The partial unique index is the last line of defense when two
			// creates race past the existence check.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			return derr
		}

		if derr = tx.Rooms().AppendHistory(ctx, tx.DB(), domroom.NewCreatedEntry(rm, now)); derr != nil {
			return derr
		}

		result = &RoomWriteResult{RoomID: id, Version: 1}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *roomUseCaseImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, req UpdateRoomRequest, expectedVersion *int64) (*RoomWriteResult, error) {
	if expectedVersion == nil {
		return nil, ErrRowVersionRequired
	}

	var result *RoomWriteResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.getRoom(ctx, tx, roomID)
		if derr != nil {
			return derr
		}

		if derr = uc.checkRoomType(ctx, tx, req.RoomTypeID, snap.HotelID); derr != nil {
			return derr
		}

		exists, derr := tx.Rooms().NumberExists(ctx, tx.DB(), snap.HotelID, req.Number, &roomID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicateRoomNumber
		}

		rm := snap.ToDomain()
		statusChanged := rm.Status() != req.Status
		housekeepingChanged := rm.HousekeepingStatus() != req.HousekeepingStatus

		now := uc.clock.Now()
		if derr = rm.UpdateDetails(req.RoomTypeID, req.Number, req.Floor, req.Status, req.HousekeepingStatus, now); derr != nil {
			return derr
		}

		newVersion, derr := tx.Rooms().Update(ctx, tx.DB(), rm, expectedVersion)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrVersionConflict
			}
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			return derr
		}

		if statusChanged {
			if derr = tx.Rooms().AppendHistory(ctx, tx.DB(), domroom.NewStatusChangedEntry(rm, rm.Status(), nil, now)); derr != nil {
				return derr
			}
		}
		if housekeepingChanged {
			if derr = tx.Rooms().AppendHistory(ctx, tx.DB(), domroom.NewHousekeepingChangedEntry(rm, rm.HousekeepingStatus(), nil, now)); derr != nil {
				return derr
			}
		}

		result = &RoomWriteResult{RoomID: roomID, Version: newVersion}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ChangeStatus is deliberately unconditional: operational toggles must not
// fail on stale reads, so no version token is demanded. The write still
// bumps the version so concurrent full updates notice it.
func (uc *roomUseCaseImpl) ChangeStatus(ctx context.Context, roomID uuid.UUID, status domroom.Status, reason *string) (*RoomWriteResult, error) {
	var result *RoomWriteResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.getRoom(ctx, tx, roomID)
		if derr != nil {
			return derr
		}

		rm := snap.ToDomain()
		now := uc.clock.Now()
		if !rm.ChangeStatus(status, now) {
			result = &RoomWriteResult{RoomID: roomID, Version: snap.Version}
			return nil
		}

		newVersion, derr := tx.Rooms().Update(ctx, tx.DB(), rm, nil)
		if derr != nil {
			return derr
		}

		if derr = tx.Rooms().AppendHistory(ctx, tx.DB(), domroom.NewStatusChangedEntry(rm, rm.Status(), reason, now)); derr != nil {
			return derr
		}

		result = &RoomWriteResult{RoomID: roomID, Version: newVersion}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *roomUseCaseImpl) ChangeHousekeepingStatus(ctx context.Context, roomID uuid.UUID, status domroom.HousekeepingStatus, reason *string) (*RoomWriteResult, error) {
	var result *RoomWriteResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.getRoom(ctx, tx, roomID)
		if derr != nil {
			return derr
		}

		rm := snap.ToDomain()
		now := uc.clock.Now()
		if !rm.ChangeHousekeepingStatus(status, now) {
			result = &RoomWriteResult{RoomID: roomID, Version: snap.Version}
			return nil
		}

		newVersion, derr := tx.Rooms().Update(ctx, tx.DB(), rm, nil)
		if derr != nil {
			return derr
		}

		if derr = tx.Rooms().AppendHistory(ctx, tx.DB(), domroom.NewHousekeepingChangedEntry(rm, rm.HousekeepingStatus(), reason, now)); derr != nil {
			return derr
		}

		result = &RoomWriteResult{RoomID: roomID, Version: newVersion}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *roomUseCaseImpl) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RoomByID(ctx, roomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFoundWrite
			}
			return derr
		}

		rm := snap.ToDomain()
		now := uc.clock.Now()
		if !rm.Delete(now) {
			// Already deleted; repeating the call is a no-op.
			return nil
		}

		if _, derr = tx.Rooms().Update(ctx, tx.DB(), rm, nil); derr != nil {
			return derr
		}

		reason := deletedHistoryReason
		return tx.Rooms().AppendHistory(ctx, tx.DB(), domroom.NewStatusChangedEntry(rm, rm.Status(), &reason, now))
	})
}

func (uc *roomUseCaseImpl) getRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	snap, err := tx.Reads().RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFoundWrite
		}
		return nil, err
	}
	if snap.IsDeleted {
		return nil, ErrRoomNotFoundWrite
	}
	return snap, nil
}

func (uc *roomUseCaseImpl) checkRoomType(ctx context.Context, tx shared.Tx, roomTypeID, hotelID uuid.UUID) error {
	rt, err := tx.Reads().RoomTypeByID(ctx, roomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomTypeNotFoundWrite
		}
		return err
	}
	if rt.IsDeleted {
		return ErrRoomTypeNotFoundWrite
	}
	if rt.HotelID != hotelID {
		return ErrRoomTypeHotelMismatch
	}
	if rt.Status != "active" {
		return ErrRoomTypeInactive
	}
	return nil
}
