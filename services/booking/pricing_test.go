package booking

import (
	"testing"
	"time"

	"littlenest/models"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, _ := time.Parse(models.DateLayout, s)
	return d
}

func TestInclusiveDayCount(t *testing.T) {
	assert.Equal(t, 1, inclusiveDayCount(date(monday), date(monday)))
	assert.Equal(t, 3, inclusiveDayCount(date(monday), date(wednesday)))
	assert.Equal(t, 7, inclusiveDayCount(date(monday), date(sunday)))
}

func TestCalculateTotalAmount(t *testing.T) {
	p := &models.Provider{Price: 42.5}
	// 42.5 per child per day, 2 days, 3 children.
	assert.Equal(t, 255.0, CalculateTotalAmount(p, date(monday), date(tuesday), 3))
}
