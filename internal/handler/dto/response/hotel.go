package response

import (
	"stayops/internal/usecase/queries"
)

type HotelResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		ID:        v.ID.String(),
		Code:      v.Code,
		Name:      v.Name,
		Timezone:  v.Timezone,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

func FromHotelList(items []*queries.HotelView) []*HotelResponse {
	res := make([]*HotelResponse, len(items))
	for i, it := range items {
		res[i] = FromHotelView(it)
	}
	return res
}

type CreatedResponse struct {
	ID string `json:"id"`
}
