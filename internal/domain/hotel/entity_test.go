//go:build unit

package hotel_test

import (
	"testing"
	"time"

	"stayops/internal/domain/hotel"
	"stayops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotel(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "GRAND-TOKYO", actual.Code())
		assert.Equal(t, "Grand Tokyo Hotel", actual.Name())
		assert.Equal(t, "Asia/Tokyo", actual.Timezone())
		assert.Equal(t, hotel.StatusActive, actual.Status())
		assert.False(t, actual.IsDeleted())
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.HotelBuilder)
			errIs  error
		}{
			{name: "empty code", mutate: func(b *builder.HotelBuilder) { b.WithCode("") }, errIs: hotel.ErrCodeRequired},
			{name: "whitespace code", mutate: func(b *builder.HotelBuilder) { b.WithCode("   ") }, errIs: hotel.ErrCodeRequired},
			{name: "empty name", mutate: func(b *builder.HotelBuilder) { b.WithName("") }, errIs: hotel.ErrNameRequired},
			{name: "empty timezone", mutate: func(b *builder.HotelBuilder) { b.WithTimezone("") }, errIs: hotel.ErrTimezoneRequired},
			{name: "valid inactive hotel", mutate: func(b *builder.HotelBuilder) { b.AsInactive() }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewHotelBuilder()
				tc.mutate(b)
				_, err := b.BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("status parsing", func(t *testing.T) {
		for _, valid := range []string{"active", "inactive"} {
			_, err := hotel.NewStatus(valid)
			assert.NoError(t, err, valid)
		}
		for _, invalid := range []string{"", "closed", "Active"} {
			_, err := hotel.NewStatus(invalid)
			assert.ErrorIs(t, err, hotel.ErrInvalidStatus, invalid)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		now := h.UpdatedAt().Add(time.Minute)

		require.True(t, h.Delete(now))
		assert.True(t, h.IsDeleted())
		assert.False(t, h.Delete(now.Add(time.Minute)))
		assert.Equal(t, now, h.UpdatedAt())
	})
}
