package intent

import (
	"sync"
	"testing"

	"github.com/raushankrgupta/product-clipper/models"
	"github.com/stretchr/testify/assert"
)

func TestSlot(t *testing.T) {
	t.Run("empty slot defaults to all", func(t *testing.T) {
		s := NewSlot()
		assert.False(t, s.Pending())
		assert.Equal(t, models.ActionAll, s.Consume())
	})

	t.Run("consume reads once then clears", func(t *testing.T) {
		s := NewSlot()
		s.Set(models.ActionImage)
		assert.True(t, s.Pending())

		assert.Equal(t, models.ActionImage, s.Consume())
		assert.False(t, s.Pending())
		assert.Equal(t, models.ActionAll, s.Consume())
	})

	t.Run("latest set wins", func(t *testing.T) {
		s := NewSlot()
		s.Set(models.ActionTitle)
		s.Set(models.ActionAffiliate)
		assert.Equal(t, models.ActionAffiliate, s.Consume())
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		s := NewSlot()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() { defer wg.Done(); s.Set(models.ActionTitle) }()
			go func() { defer wg.Done(); s.Consume() }()
		}
		wg.Wait()
		s.Consume()
		assert.False(t, s.Pending())
	})
}
