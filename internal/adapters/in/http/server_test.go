package http

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDOrNew(t *testing.T) {
	t.Run("absent id mints a fresh one", func(t *testing.T) {
		id, err := idOrNew(nil)

		require.NoError(t, err)
		assert.NoError(t, id.Validate())
	})

	t.Run("supplied id is kept", func(t *testing.T) {
		supplied := openapi_types.UUID(uuid.New())

		id, err := idOrNew(&supplied)

		require.NoError(t, err)
		assert.Equal(t, supplied, id.Bytes())
	})

	t.Run("nil uuid is rejected, not replaced", func(t *testing.T) {
		supplied := openapi_types.UUID(uuid.Nil)

		_, err := idOrNew(&supplied)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
