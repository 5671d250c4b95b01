package usecase

import (
	"math"

	"trainingcentre/internal/domain"
)

// EMI terms offered on the checkout screen.
var emiTerms = []int{3, 6}

// Payment channels offered on the checkout screen. Labels only; selecting
// one has no transaction effect.
var paymentChannels = []string{"UPI / GPay / PhonePe", "Net Banking"}

type EMIPlan struct {
	Months  int `json:"months"`
	Monthly int `json:"monthly"`
}

type CheckoutQuote struct {
	CourseID string    `json:"course_id"`
	Title    string    `json:"title"`
	Price    int       `json:"price"`
	Channels []string  `json:"channels"`
	EMIPlans []EMIPlan `json:"emi_plans"`
}

// Quote builds the simulated checkout breakdown for a paid course:
// full price plus per-month EMI figures rounded to the nearest whole
// currency unit.
func Quote(course *domain.Course) CheckoutQuote {
	plans := make([]EMIPlan, 0, len(emiTerms))
	for _, months := range emiTerms {
		plans = append(plans, EMIPlan{
			Months:  months,
			Monthly: MonthlyInstallment(course.Price, months),
		})
	}
	return CheckoutQuote{
		CourseID: course.ID,
		Title:    course.Title,
		Price:    course.Price,
		Channels: paymentChannels,
		EMIPlans: plans,
	}
}

// MonthlyInstallment is price/termMonths rounded to the nearest unit.
func MonthlyInstallment(price, months int) int {
	return int(math.Round(float64(price) / float64(months)))
}
