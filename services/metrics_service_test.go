package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedMeals creates one meal per diet value, dated consecutively so the
// sequence reads oldest-first.
func seedMeals(t *testing.T, db *gorm.DB, sessionID string, diets []string) {
	t.Helper()
	svc := NewMealService(db)
	for i, diet := range diets {
		in := MealInput{
			Name:        fmt.Sprintf("meal %d", i+1),
			Description: "seeded",
			Date:        fmt.Sprintf("2024-12-%02d", i+1),
			Hour:        "12:00:00",
			Diet:        diet,
		}
		_, err := svc.CreateMeal(context.Background(), sessionID, in)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}
}

func TestSummary_ConcreteScenario(t *testing.T) {
	db := newTestDB(t)
	seedMeals(t, db, "session-a", []string{DietNo, DietYes, DietYes, DietYes, DietNo})

	out, err := NewMetricsService(db).Summary(context.Background(), "session-a")
	require.NoError(t, err)
	assert.Equal(t, 5, out.TotalMeals)
	assert.Equal(t, 3, out.InsideDiet)
	assert.Equal(t, 2, out.OutsideDiet)
	assert.Equal(t, 3, out.BestDietSequence)
}

func TestSummary_AllOutsideDiet(t *testing.T) {
	db := newTestDB(t)
	seedMeals(t, db, "session-a", []string{DietNo, DietNo, DietNo})

	out, err := NewMetricsService(db).Summary(context.Background(), "session-a")
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalMeals)
	assert.Equal(t, 0, out.InsideDiet)
	assert.Equal(t, 0, out.BestDietSequence)
}

func TestSummary_AllInsideDiet(t *testing.T) {
	db := newTestDB(t)
	seedMeals(t, db, "session-a", []string{DietYes, DietYes, DietYes, DietYes})

	out, err := NewMetricsService(db).Summary(context.Background(), "session-a")
	require.NoError(t, err)
	assert.Equal(t, 4, out.BestDietSequence)
	assert.Equal(t, out.TotalMeals, out.InsideDiet)
}

func TestSummary_CountsAlwaysConsistent(t *testing.T) {
	db := newTestDB(t)
	seedMeals(t, db, "session-a", []string{DietYes, DietNo, DietYes, DietYes, DietNo, DietYes, DietNo})

	out, err := NewMetricsService(db).Summary(context.Background(), "session-a")
	require.NoError(t, err)
	assert.Equal(t, out.TotalMeals, out.InsideDiet+out.OutsideDiet)
}

func TestSummary_OrderedByDateNotInsertion(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	ctx := context.Background()

	// Insertion order yes,yes,no but date-descending order is
	// yes(03),no(02),yes(01): the runs never join.
	for _, m := range []struct{ date, diet string }{
		{"2024-01-03", DietYes},
		{"2024-01-01", DietYes},
		{"2024-01-02", DietNo},
	} {
		_, err := svc.CreateMeal(ctx, "session-a", MealInput{
			Name: "meal", Description: "", Date: m.date, Hour: "08:00:00", Diet: m.diet,
		})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	out, err := NewMetricsService(db).Summary(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, 1, out.BestDietSequence)
}

func TestSummary_SameDayKeepsInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	ctx := context.Background()

	// Two meals on the newest day: the first-inserted one sorts first, so
	// the leading run is cut by the second before reaching the older day.
	for _, m := range []struct{ date, diet string }{
		{"2024-01-02", DietYes},
		{"2024-01-02", DietNo},
		{"2024-01-01", DietYes},
	} {
		_, err := svc.CreateMeal(ctx, "session-a", MealInput{
			Name: "meal", Description: "", Date: m.date, Hour: "08:00:00", Diet: m.diet,
		})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	out, err := NewMetricsService(db).Summary(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, 1, out.BestDietSequence)
}

func TestSummary_EmptySession(t *testing.T) {
	db := newTestDB(t)
	seedMeals(t, db, "session-b", []string{DietYes})

	out, err := NewMetricsService(db).Summary(context.Background(), "session-a")
	require.NoError(t, err)
	assert.Equal(t, &MealMetrics{}, out)
}
