package response

import (
	"stayops/internal/pkg/rowversion"
	"stayops/internal/usecase/queries"
)

type RoomResponse struct {
	ID                 string `json:"id"`
	HotelID            string `json:"hotel_id"`
	RoomTypeID         string `json:"room_type_id"`
	RoomTypeName       string `json:"room_type_name"`
	Number             string `json:"number"`
	Floor              *int   `json:"floor,omitempty"`
	Status             string `json:"status"`
	HousekeepingStatus string `json:"housekeeping_status"`
	RowVersion         string `json:"row_version"`
	CreatedAt          int64  `json:"created_at"`
	UpdatedAt          int64  `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:                 v.ID.String(),
		HotelID:            v.HotelID.String(),
		RoomTypeID:         v.RoomTypeID.String(),
		RoomTypeName:       v.RoomTypeName,
		Number:             v.Number,
		Floor:              v.Floor,
		Status:             v.Status,
		HousekeepingStatus: v.HousekeepingStatus,
		RowVersion:         rowversion.Encode(v.RowVersion),
		CreatedAt:          v.CreatedAt.Unix(),
		UpdatedAt:          v.UpdatedAt.Unix(),
	}
}

type RoomListItemResponse struct {
	ID                 string `json:"id"`
	RoomTypeID         string `json:"room_type_id"`
	RoomTypeName       string `json:"room_type_name"`
	Number             string `json:"number"`
	Floor              *int   `json:"floor,omitempty"`
	Status             string `json:"status"`
	HousekeepingStatus string `json:"housekeeping_status"`
	RowVersion         string `json:"row_version"`
	UpdatedAt          int64  `json:"updated_at"`
}

func FromRoomList(items []*queries.RoomListItem) []*RoomListItemResponse {
	res := make([]*RoomListItemResponse, len(items))
	for i, it := range items {
		res[i] = &RoomListItemResponse{
			ID:                 it.ID.String(),
			RoomTypeID:         it.RoomTypeID.String(),
			RoomTypeName:       it.RoomTypeName,
			Number:             it.Number,
			Floor:              it.Floor,
			Status:             it.Status,
			HousekeepingStatus: it.HousekeepingStatus,
			RowVersion:         rowversion.Encode(it.RowVersion),
			UpdatedAt:          it.UpdatedAt.Unix(),
		}
	}
	return res
}

// RoomWriteResponse is returned from mutations; row_version reflects the
// state after the write so clients can chain conditional requests.
type RoomWriteResponse struct {
	ID         string `json:"id"`
	RowVersion string `json:"row_version"`
}

func NewRoomWriteResponse(id string, version int64) *RoomWriteResponse {
	return &RoomWriteResponse{
		ID:         id,
		RowVersion: rowversion.Encode(version),
	}
}

type RoomHistoryResponse struct {
	ID                 string  `json:"id"`
	RoomID             string  `json:"room_id"`
	Status             *string `json:"status,omitempty"`
	HousekeepingStatus *string `json:"housekeeping_status,omitempty"`
	Action             string  `json:"action"`
	Reason             string  `json:"reason,omitempty"`
	CreatedAt          int64   `json:"created_at"`
}

func FromRoomHistory(items []*queries.RoomHistoryView) []*RoomHistoryResponse {
	res := make([]*RoomHistoryResponse, len(items))
	for i, it := range items {
		res[i] = &RoomHistoryResponse{
			ID:                 it.ID.String(),
			RoomID:             it.RoomID.String(),
			Status:             it.Status,
			HousekeepingStatus: it.HousekeepingStatus,
			Action:             it.Action,
			Reason:             it.Reason,
			CreatedAt:          it.CreatedAt.Unix(),
		}
	}
	return res
}

type RoomSummaryResponse struct {
	RoomTypeID   string `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	Total        int64  `json:"total"`
	Active       int64  `json:"active"`
	OutOfService int64  `json:"out_of_service"`
	Dirty        int64  `json:"dirty"`
}

func FromRoomSummary(items []*queries.RoomSummaryItem) []*RoomSummaryResponse {
	res := make([]*RoomSummaryResponse, len(items))
	for i, it := range items {
		res[i] = &RoomSummaryResponse{
			RoomTypeID:   it.RoomTypeID.String(),
			RoomTypeName: it.RoomTypeName,
			Total:        it.Total,
			Active:       it.Active,
			OutOfService: it.OutOfService,
			Dirty:        it.Dirty,
		}
	}
	return res
}
