package shared

import (
	"context"
	"time"

	"stayops/internal/domain/hotel"
	"stayops/internal/domain/room"
	"stayops/internal/domain/roomtype"
	"stayops/internal/domain/user"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Hotels() HotelRepository
	RoomTypes() RoomTypeRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	HotelByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

// Snapshots carry every persisted field so commands can rebuild the
// aggregate, apply a transition and write it back in the same transaction.
type HotelSnapshot struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Timezone  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	IsDeleted bool
}

func (s *HotelSnapshot) ToDomain() *hotel.Hotel {
	return hotel.ReconstructHotel(
		s.ID,
		s.Code,
		s.Name,
		s.Timezone,
		hotel.Status(s.Status),
		s.CreatedAt,
		s.UpdatedAt,
		s.IsDeleted,
	)
}

type RoomTypeSnapshot struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	Name        string
	Description string
	Capacity    int
	BaseRate    float64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsDeleted   bool
}

func (s *RoomTypeSnapshot) ToDomain() *roomtype.RoomType {
	return roomtype.ReconstructRoomType(
		s.ID,
		s.HotelID,
		s.Name,
		s.Description,
		s.Capacity,
		s.BaseRate,
		roomtype.Status(s.Status),
		s.CreatedAt,
		s.UpdatedAt,
		s.IsDeleted,
	)
}

type RoomSnapshot struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	RoomTypeID         uuid.UUID
	Number             string
	Floor              *int
	Status             string
	HousekeepingStatus string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	IsDeleted          bool
	Version            int64
}

func (s *RoomSnapshot) ToDomain() *room.Room {
	return room.ReconstructRoom(
		s.ID,
		s.HotelID,
		s.RoomTypeID,
		s.Number,
		s.Floor,
		room.Status(s.Status),
		room.HousekeepingStatus(s.HousekeepingStatus),
		s.CreatedAt,
		s.UpdatedAt,
		s.IsDeleted,
		s.Version,
	)
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *room.Room) (uuid.UUID, error)
	// Update persists all mutable fields and bumps the version counter.
	// A non-nil expectedVersion turns the write into a compare-and-swap;
	// a mismatch surfaces as a CONFLICT repository error. The returned
	// value is the version after the write.
	Update(ctx context.Context, tx db.DBTX, r *room.Room, expectedVersion *int64) (int64, error)
	NumberExists(ctx context.Context, tx db.DBTX, hotelID uuid.UUID, number string, excludeRoomID *uuid.UUID) (bool, error)
	AppendHistory(ctx context.Context, tx db.DBTX, entry *room.HistoryEntry) error
}

type HotelRepository interface {
	Create(ctx context.Context, tx db.DBTX, h *hotel.Hotel) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, rt *roomtype.RoomType) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rt *roomtype.RoomType) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
