//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	domhotel "stayops/internal/domain/hotel"
	domroom "stayops/internal/domain/room"
	domroomtype "stayops/internal/domain/roomtype"
	"stayops/internal/domain/user"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database. One mutex guards
// the whole store and is held for the duration of each transaction, so
// concurrent Within calls serialize the way competing transactions do
// against the real unique index and row version checks.
type fakeStore struct {
	mu        sync.Mutex
	hotels    map[uuid.UUID]*shared.HotelSnapshot
	roomTypes map[uuid.UUID]*shared.RoomTypeSnapshot
	rooms     map[uuid.UUID]*shared.RoomSnapshot
	history   []*domroom.HistoryEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hotels:    make(map[uuid.UUID]*shared.HotelSnapshot),
		roomTypes: make(map[uuid.UUID]*shared.RoomTypeSnapshot),
		rooms:     make(map[uuid.UUID]*shared.RoomSnapshot),
	}
}

func (s *fakeStore) addHotel(status string, deleted bool) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	s.hotels[id] = &shared.HotelSnapshot{
		ID:        id,
		Code:      "HOTEL-" + id.String()[:8],
		Name:      "Hotel " + id.String()[:8],
		Timezone:  "Asia/Tokyo",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
		IsDeleted: deleted,
	}
	return id
}

func (s *fakeStore) addRoomType(hotelID uuid.UUID, status string, deleted bool) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	s.roomTypes[id] = &shared.RoomTypeSnapshot{
		ID:        id,
		HotelID:   hotelID,
		Name:      "Standard Double",
		Capacity:  2,
		BaseRate:  120,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
		IsDeleted: deleted,
	}
	return id
}

func (s *fakeStore) addRoom(hotelID, roomTypeID uuid.UUID, number string) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	s.rooms[id] = &shared.RoomSnapshot{
		ID:                 id,
		HotelID:            hotelID,
		RoomTypeID:         roomTypeID,
		Number:             number,
		Status:             "active",
		HousekeepingStatus: "clean",
		CreatedAt:          now,
		UpdatedAt:          now,
		Version:            1,
	}
	return id
}

func (s *fakeStore) room(id uuid.UUID) *shared.RoomSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[id]
}

func (s *fakeStore) historyFor(roomID uuid.UUID) []*domroom.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []*domroom.HistoryEntry
	for _, e := range s.history {
		if e.RoomID() == roomID {
			entries = append(entries, e)
		}
	}
	return entries
}

func (s *fakeStore) liveRoomCount(hotelID uuid.UUID, number string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, snap := range s.rooms {
		if !snap.IsDeleted && snap.HotelID == hotelID && snap.Number == number {
			count++
		}
	}
	return count
}

// fakeUoW implements shared.UnitOfWork on top of fakeStore. wrapRooms,
// when set, lets a test swap the room repository seen inside the
// transaction for a doctored one.
type fakeUoW struct {
	s         *fakeStore
	wrapRooms func(shared.RoomRepository) shared.RoomRepository
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return fn(ctx, &fakeTx{s: u.s, wrapRooms: u.wrapRooms})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{s: u.s}
}

type fakeTx struct {
	s         *fakeStore
	wrapRooms func(shared.RoomRepository) shared.RoomRepository
}

func (t *fakeTx) Rooms() shared.RoomRepository {
	var repo shared.RoomRepository = &fakeRoomRepo{s: t.s}
	if t.wrapRooms != nil {
		repo = t.wrapRooms(repo)
	}
	return repo
}

func (t *fakeTx) Hotels() shared.HotelRepository       { return &fakeHotelRepo{s: t.s} }
func (t *fakeTx) RoomTypes() shared.RoomTypeRepository { return &fakeRoomTypeRepo{s: t.s} }
func (t *fakeTx) Users() shared.UserRepository         { return &fakeUserRepo{} }
func (t *fakeTx) Reads() shared.CommandReads           { return &fakeReads{s: t.s} }
func (t *fakeTx) DB() db.DBTX                          { return nil }

// fakeReads returns snapshots including soft-deleted rows, matching the
// command read store.
type fakeReads struct {
	s *fakeStore
}

func (r *fakeReads) HotelByID(_ context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	snap, ok := r.s.hotels[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "hotel not found")
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) RoomTypeByID(_ context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	snap, ok := r.s.roomTypes[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "room type not found")
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	snap, ok := r.s.rooms[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	cp := *snap
	return &cp, nil
}

type fakeRoomRepo struct {
	s *fakeStore
}

func (r *fakeRoomRepo) Create(_ context.Context, _ db.DBTX, rm *domroom.Room) (uuid.UUID, error) {
	for _, snap := range r.s.rooms {
		if !snap.IsDeleted && snap.HotelID == rm.HotelID() && snap.Number == rm.Number() {
			return uuid.Nil, infra.NewRepoErr(infra.KindDuplicateKey, "rooms unique index violation")
		}
	}
	r.s.rooms[rm.ID()] = roomSnapshotOf(rm, 1)
	return rm.ID(), nil
}

func (r *fakeRoomRepo) Update(_ context.Context, _ db.DBTX, rm *domroom.Room, expectedVersion *int64) (int64, error) {
	current, ok := r.s.rooms[rm.ID()]
	if !ok {
		return 0, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	if expectedVersion != nil && current.Version != *expectedVersion {
		return 0, infra.NewRepoErr(infra.KindConflict, "row version mismatch")
	}
	for _, snap := range r.s.rooms {
		if snap.ID != rm.ID() && !snap.IsDeleted && !rm.IsDeleted() &&
			snap.HotelID == rm.HotelID() && snap.Number == rm.Number() {
			return 0, infra.NewRepoErr(infra.KindDuplicateKey, "rooms unique index violation")
		}
	}
	next := roomSnapshotOf(rm, current.Version+1)
	next.CreatedAt = current.CreatedAt
	r.s.rooms[rm.ID()] = next
	return next.Version, nil
}

func (r *fakeRoomRepo) NumberExists(_ context.Context, _ db.DBTX, hotelID uuid.UUID, number string, excludeRoomID *uuid.UUID) (bool, error) {
	for _, snap := range r.s.rooms {
		if snap.IsDeleted || snap.HotelID != hotelID || snap.Number != number {
			continue
		}
		if excludeRoomID != nil && snap.ID == *excludeRoomID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeRoomRepo) AppendHistory(_ context.Context, _ db.DBTX, entry *domroom.HistoryEntry) error {
	r.s.history = append(r.s.history, entry)
	return nil
}

func roomSnapshotOf(rm *domroom.Room, version int64) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 rm.ID(),
		HotelID:            rm.HotelID(),
		RoomTypeID:         rm.RoomTypeID(),
		Number:             rm.Number(),
		Floor:              rm.Floor(),
		Status:             rm.Status().String(),
		HousekeepingStatus: rm.HousekeepingStatus().String(),
		CreatedAt:          rm.CreatedAt(),
		UpdatedAt:          rm.UpdatedAt(),
		IsDeleted:          rm.IsDeleted(),
		Version:            version,
	}
}

type fakeHotelRepo struct {
	s *fakeStore
}

func (r *fakeHotelRepo) Create(_ context.Context, _ db.DBTX, h *domhotel.Hotel) (uuid.UUID, error) {
	for _, snap := range r.s.hotels {
		if snap.Code == h.Code() {
			return uuid.Nil, infra.NewRepoErr(infra.KindDuplicateKey, "hotels unique index violation")
		}
	}
	r.s.hotels[h.ID()] = hotelSnapshotOf(h)
	return h.ID(), nil
}

func (r *fakeHotelRepo) Update(_ context.Context, _ db.DBTX, h *domhotel.Hotel) error {
	if _, ok := r.s.hotels[h.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "hotel not found")
	}
	snap := hotelSnapshotOf(h)
	snap.CreatedAt = r.s.hotels[h.ID()].CreatedAt
	r.s.hotels[h.ID()] = snap
	return nil
}

func hotelSnapshotOf(h *domhotel.Hotel) *shared.HotelSnapshot {
	return &shared.HotelSnapshot{
		ID:        h.ID(),
		Code:      h.Code(),
		Name:      h.Name(),
		Timezone:  h.Timezone(),
		Status:    h.Status().String(),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
		IsDeleted: h.IsDeleted(),
	}
}

type fakeRoomTypeRepo struct {
	s *fakeStore
}

func (r *fakeRoomTypeRepo) Create(_ context.Context, _ db.DBTX, rt *domroomtype.RoomType) (uuid.UUID, error) {
	r.s.roomTypes[rt.ID()] = roomTypeSnapshotOf(rt)
	return rt.ID(), nil
}

func (r *fakeRoomTypeRepo) Update(_ context.Context, _ db.DBTX, rt *domroomtype.RoomType) error {
	if _, ok := r.s.roomTypes[rt.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "room type not found")
	}
	snap := roomTypeSnapshotOf(rt)
	snap.CreatedAt = r.s.roomTypes[rt.ID()].CreatedAt
	r.s.roomTypes[rt.ID()] = snap
	return nil
}

func roomTypeSnapshotOf(rt *domroomtype.RoomType) *shared.RoomTypeSnapshot {
	return &shared.RoomTypeSnapshot{
		ID:          rt.ID(),
		HotelID:     rt.HotelID(),
		Name:        rt.Name(),
		Description: rt.Description(),
		Capacity:    rt.Capacity(),
		BaseRate:    rt.BaseRate(),
		Status:      rt.Status().String(),
		CreatedAt:   rt.CreatedAt(),
		UpdatedAt:   rt.UpdatedAt(),
		IsDeleted:   rt.IsDeleted(),
	}
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	return u.ID(), nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}
