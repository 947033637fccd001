package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
)

func testRoster() []employee.Employee {
	var roster []employee.Employee
	for i := 0; i < 7; i++ {
		roster = append(roster, employee.Employee{
			ID:             fmt.Sprintf("M%d", i+1),
			FullName:       fmt.Sprintf("Monthly %d", i+1),
			EmploymentType: employee.EmploymentTypeMonthly,
		})
	}
	for i := 0; i < 3; i++ {
		roster = append(roster, employee.Employee{
			ID:             fmt.Sprintf("D%d", i+1),
			FullName:       fmt.Sprintf("Daily %d", i+1),
			EmploymentType: employee.EmploymentTypeDaily,
		})
	}
	return roster
}

func TestResolveCohort_All(t *testing.T) {
	t.Parallel()

	cohort := ResolveCohort(testRoster(), analytics.TypeFilterAll)
	assert.Len(t, cohort, 10)
}

func TestResolveCohort_ByType(t *testing.T) {
	t.Parallel()

	cohort := ResolveCohort(testRoster(), "daily")
	require.Len(t, cohort, 3)
	for id, emp := range cohort {
		assert.Equal(t, employee.EmploymentTypeDaily, emp.EmploymentType, id)
	}
}

func TestResolveCohort_UnknownTypeIsEmpty(t *testing.T) {
	t.Parallel()

	cohort := ResolveCohort(testRoster(), "contractor")
	assert.Empty(t, cohort)
}

func TestTypeDistribution_ComputedAfterFilter(t *testing.T) {
	t.Parallel()

	// filtering to one type yields a single-category distribution
	dist := TypeDistribution(ResolveCohort(testRoster(), "daily"))
	require.Len(t, dist, 1)
	assert.Equal(t, analytics.TypeCount{Type: "daily", Count: 3}, dist[0])
}

func TestTypeDistribution_SortedByType(t *testing.T) {
	t.Parallel()

	dist := TypeDistribution(ResolveCohort(testRoster(), analytics.TypeFilterAll))
	require.Len(t, dist, 2)
	assert.Equal(t, analytics.TypeCount{Type: "daily", Count: 3}, dist[0])
	assert.Equal(t, analytics.TypeCount{Type: "monthly", Count: 7}, dist[1])
}
