// backend/src/security/validation/sanitizers_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanField(t *testing.T) {
	assert.Equal(t, "Laura", CleanField("  Laura "))
	assert.Equal(t, "Laura", CleanField("<b>Laura</b>"))
	assert.Equal(t, "Entrega pendiente", CleanField("Entrega\x00 pendiente"))
	// Script elements are removed together with their content.
	assert.Equal(t, "", CleanField("<script>alert(1)</script>"))
	assert.Equal(t, "", CleanField("<img src=x onerror=alert(1)>"))
}

func TestValidateOneOf(t *testing.T) {
	providers := []string{"Apple", "Samsung"}
	assert.NoError(t, ValidateOneOf("Apple", providers, "provider"))
	assert.ErrorIs(t, ValidateOneOf("Nokia", providers, "provider"), ErrValidationFailed)
}

func TestAmountValidators(t *testing.T) {
	assert.NoError(t, ValidatePositiveAmount(0.01, "amount"))
	assert.Error(t, ValidatePositiveAmount(0, "amount"))
	assert.NoError(t, ValidateNonNegativeAmount(0, "cost"))
	assert.Error(t, ValidateNonNegativeAmount(-1, "cost"))
}
