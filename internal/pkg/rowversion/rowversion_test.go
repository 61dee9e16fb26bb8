//go:build unit

package rowversion_test

import (
	"encoding/base64"
	"testing"

	"stayops/internal/pkg/rowversion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Run("round trip preserves the version", func(t *testing.T) {
		for _, v := range []int64{1, 2, 42, 1 << 31, 1 << 40} {
			token := rowversion.Encode(v)
			decoded, err := rowversion.Decode(token)
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
	})

	t.Run("tokens are opaque and URL safe", func(t *testing.T) {
		token := rowversion.Encode(7)
		assert.NotContains(t, token, "=")
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
	})

	t.Run("different versions produce different tokens", func(t *testing.T) {
		assert.NotEqual(t, rowversion.Encode(1), rowversion.Encode(2))
	})

	t.Run("garbage tokens are rejected", func(t *testing.T) {
		for _, token := range []string{"", "not-base64!", "YWJj", "1"} {
			_, err := rowversion.Decode(token)
			assert.ErrorIs(t, err, rowversion.ErrInvalidToken, token)
		}
	})

	t.Run("wrong payload length is rejected", func(t *testing.T) {
		short := base64.RawURLEncoding.EncodeToString([]byte{1, 2, 3})
		_, err := rowversion.Decode(short)
		assert.ErrorIs(t, err, rowversion.ErrInvalidToken)

		long := base64.RawURLEncoding.EncodeToString(make([]byte, 16))
		_, err = rowversion.Decode(long)
		assert.ErrorIs(t, err, rowversion.ErrInvalidToken)
	})
}
