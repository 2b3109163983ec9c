package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lower-cases, trims, collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "soil of mysuru", Normalize("  Soil   OF \t Mysuru \n"))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"  Soil   OF Mysuru ",
			"ಮೈಸೂರು ಜಿಲ್ಲೆಯ ಮಣ್ಣು",
			"",
			"already normal",
		}
		for _, in := range inputs {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once), "input %q", in)
		}
	})

	t.Run("empty and whitespace-only become empty", func(t *testing.T) {
		assert.Equal(t, "", Normalize("   \t\n "))
	})

	t.Run("keeps kannada text intact", func(t *testing.T) {
		assert.Equal(t, "ರಾಗಿ ಬೆಳೆ", Normalize(" ರಾಗಿ   ಬೆಳೆ "))
	})
}
