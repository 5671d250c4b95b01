package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainingcentre/internal/domain"
)

func TestMonthlyInstallment(t *testing.T) {
	tests := []struct {
		price  int
		months int
		want   int
	}{
		{5999, 3, 2000},
		{5999, 6, 1000},
		{4999, 3, 1666},
		{4999, 6, 833},
		{2999, 3, 1000},
		{2999, 6, 500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthlyInstallment(tt.price, tt.months),
			"%d over %d months", tt.price, tt.months)
	}
}

func TestQuote(t *testing.T) {
	course := &domain.Course{ID: "ms-fabric", Title: "Microsoft Fabric Elite", Price: 5999}

	quote := Quote(course)

	assert.Equal(t, "ms-fabric", quote.CourseID)
	assert.Equal(t, 5999, quote.Price)
	assert.Equal(t, []string{"UPI / GPay / PhonePe", "Net Banking"}, quote.Channels)
	require.Len(t, quote.EMIPlans, 2)
	assert.Equal(t, EMIPlan{Months: 3, Monthly: 2000}, quote.EMIPlans[0])
	assert.Equal(t, EMIPlan{Months: 6, Monthly: 1000}, quote.EMIPlans[1])
}
