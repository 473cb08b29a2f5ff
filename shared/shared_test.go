package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agendo/shared"
	"agendo/shared/constant"
)

func TestTransformFields(t *testing.T) {
	type reconcileFields struct {
		Status            string `db:"status"`
		ProviderPaymentID string `db:"provider_payment_id"`
		AmountCents       int64  `db:"amount_cents"`
	}

	t.Run("zero-valued fields never reach the update map", func(t *testing.T) {
		fields := shared.TransformFields(reconcileFields{Status: "failed"}, "system:payment")

		assert.Equal(t, "failed", fields["status"])
		assert.NotContains(t, fields, "provider_payment_id")
		assert.NotContains(t, fields, "amount_cents")
		assert.Equal(t, "system:payment", fields[constant.FieldModifiedBy])
		assert.Contains(t, fields, constant.FieldModifiedAt)
	})

	t.Run("populated fields map to their db tags", func(t *testing.T) {
		fields := shared.TransformFields(reconcileFields{
			Status:            "approved",
			ProviderPaymentID: "ch-1",
			AmountCents:       3000,
		}, "system:payment")

		assert.Equal(t, "approved", fields["status"])
		assert.Equal(t, "ch-1", fields["provider_payment_id"])
		assert.Equal(t, int64(3000), fields["amount_cents"])
	})

	t.Run("untagged fields are skipped", func(t *testing.T) {
		fields := shared.TransformFields(struct {
			Tagged   string `db:"tagged"`
			Untagged string
		}{Tagged: "a", Untagged: "b"}, "someone")

		assert.Equal(t, "a", fields["tagged"])
		assert.Len(t, fields, 3)
	})
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 0))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(11, 10))
}
