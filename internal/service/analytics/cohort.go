package analytics

import (
	"sort"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/domain/employee"
)

// ResolveCohort resolves the roster plus a type filter into the employees in
// scope, keyed by id. The filter "all" passes the entire roster; any other
// value keeps only employees of that employment type.
func ResolveCohort(employees []employee.Employee, typeFilter string) map[string]employee.Employee {
	cohort := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		if typeFilter != analytics.TypeFilterAll && string(emp.EmploymentType) != typeFilter {
			continue
		}
		cohort[emp.ID] = emp
	}
	return cohort
}

// TypeDistribution counts employment types inside the cohort. Because the
// cohort is already filtered, selecting a single type yields a
// single-category distribution. Output is sorted by type name so repeated
// runs are identical.
func TypeDistribution(cohort map[string]employee.Employee) []analytics.TypeCount {
	counts := make(map[string]int)
	for _, emp := range cohort {
		counts[string(emp.EmploymentType)]++
	}

	dist := make([]analytics.TypeCount, 0, len(counts))
	for name, count := range counts {
		dist = append(dist, analytics.TypeCount{Type: name, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Type < dist[j].Type })
	return dist
}
