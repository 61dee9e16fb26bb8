package response

import (
	"stayops/internal/usecase/queries"
)

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	HotelID     string  `json:"hotel_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Capacity    int     `json:"capacity"`
	BaseRate    float64 `json:"base_rate"`
	Status      string  `json:"status"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:          v.ID.String(),
		HotelID:     v.HotelID.String(),
		Name:        v.Name,
		Description: v.Description,
		Capacity:    v.Capacity,
		BaseRate:    v.BaseRate,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

func FromRoomTypeList(items []*queries.RoomTypeView) []*RoomTypeResponse {
	res := make([]*RoomTypeResponse, len(items))
	for i, it := range items {
		res[i] = FromRoomTypeView(it)
	}
	return res
}
