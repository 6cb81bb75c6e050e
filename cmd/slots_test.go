package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
)

func TestPrintDay_Combo(t *testing.T) {
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)

	engine := slots.NewEngine(domain.DefaultVenueRules())
	facility := domain.Facility{ID: "combo", Name: "Combo", Category: domain.CategoryCombo, UnitPrice: 1500}
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, loc)
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, loc)

	view, err := engine.EvaluateDay(facility, day, nil, now)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printDay(&out, view))

	assert.Contains(t, out.String(), "Combo (combo) 2026-10-20")
	assert.Contains(t, out.String(), "6:00 AM - 7:00 AM")
	assert.Contains(t, out.String(), "7:05 AM - 8:05 AM")
}

func TestFindFacility(t *testing.T) {
	list := []domain.Facility{{ID: "turf"}, {ID: "pool"}}

	f, err := findFacility(list, "pool")
	require.NoError(t, err)
	assert.Equal(t, "pool", f.ID)

	_, err = findFacility(list, "nope")
	assert.Error(t, err)
}
