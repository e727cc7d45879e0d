package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skipit-studio/skipit-api/internal/audit"
	"github.com/skipit-studio/skipit-api/internal/cache"
	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeRepo struct {
	schedules map[string]*domain.WeeklySchedule

	savedOverride   *domain.ManualOverride
	overrideWritten bool
	patchedDay      *domain.DayPatch
	saveCalled      bool

	failReads bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{schedules: map[string]*domain.WeeklySchedule{}}
}

var errBackend = errors.New("backend unavailable")

func (f *fakeRepo) GetSchedule(_ context.Context, barberID string) (*domain.WeeklySchedule, error) {
	if f.failReads {
		return nil, errBackend
	}
	return f.schedules[barberID], nil
}

func (f *fakeRepo) SaveSchedule(_ context.Context, ws *domain.WeeklySchedule) error {
	f.saveCalled = true
	f.schedules[ws.BarberID] = ws
	return nil
}

func (f *fakeRepo) UpdateManualOverride(_ context.Context, barberID string, ov *domain.ManualOverride) error {
	f.overrideWritten = true
	f.savedOverride = ov
	if ws := f.schedules[barberID]; ws != nil {
		ws.ManualOverride = ov
	}
	return nil
}

func (f *fakeRepo) PatchDay(_ context.Context, _ string, _ domain.Weekday, patch domain.DayPatch) error {
	f.patchedDay = &patch
	return nil
}

type fakeCache struct {
	entries     map[string]cache.StatusEntry
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]cache.StatusEntry{}}
}

func (f *fakeCache) Get(_ context.Context, barberID string) (*cache.StatusEntry, error) {
	if e, ok := f.entries[barberID]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeCache) Set(_ context.Context, barberID string, entry cache.StatusEntry) error {
	f.entries[barberID] = entry
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, barberID string) error {
	f.invalidated = append(f.invalidated, barberID)
	delete(f.entries, barberID)
	return nil
}

func newDispatcher() *audit.Dispatcher {
	// A nil-db audit logger would panic on write; the buffered queue is
	// large enough that tests never force a write before assertions run.
	return audit.NewDispatcher(audit.New(nil))
}

func overridePtr(ov domain.ManualOverride) *domain.ManualOverride { return &ov }

func strPtr(s string) *string { return &s }

// --------------------------------------------------
// ToggleOverride
// --------------------------------------------------

func TestToggleOverrideSetsValue(t *testing.T) {
	repo := newFakeRepo()
	c := newFakeCache()
	uc := NewToggleOverride(repo, c, newDispatcher())

	final, err := uc.Execute(context.Background(), "b1", "u1", overridePtr(domain.OverrideOpen))
	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Equal(t, domain.OverrideOpen, *final)
	assert.Contains(t, c.invalidated, "b1")
}

func TestToggleOverrideSameValueClears(t *testing.T) {
	repo := newFakeRepo()
	ws := domain.DefaultWeekly("b1")
	ws.ManualOverride = overridePtr(domain.OverrideOpen)
	repo.schedules["b1"] = ws

	uc := NewToggleOverride(repo, newFakeCache(), newDispatcher())

	// Clicking "open" while already open reverts to schedule-driven.
	final, err := uc.Execute(context.Background(), "b1", "u1", overridePtr(domain.OverrideOpen))
	require.NoError(t, err)
	assert.Nil(t, final)
	assert.True(t, repo.overrideWritten)
	assert.Nil(t, repo.savedOverride)
}

func TestToggleOverrideDifferentValueReplaces(t *testing.T) {
	repo := newFakeRepo()
	ws := domain.DefaultWeekly("b1")
	ws.ManualOverride = overridePtr(domain.OverrideOpen)
	repo.schedules["b1"] = ws

	uc := NewToggleOverride(repo, newFakeCache(), newDispatcher())

	final, err := uc.Execute(context.Background(), "b1", "u1", overridePtr(domain.OverrideClosed))
	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Equal(t, domain.OverrideClosed, *final)
}

func TestToggleOverrideExplicitClear(t *testing.T) {
	repo := newFakeRepo()
	uc := NewToggleOverride(repo, newFakeCache(), newDispatcher())

	final, err := uc.Execute(context.Background(), "b1", "u1", nil)
	require.NoError(t, err)
	assert.Nil(t, final)
	assert.True(t, repo.overrideWritten)
}

func TestToggleOverrideRejectsUnknownValue(t *testing.T) {
	repo := newFakeRepo()
	uc := NewToggleOverride(repo, newFakeCache(), newDispatcher())

	_, err := uc.Execute(context.Background(), "b1", "u1", overridePtr(domain.ManualOverride("maybe")))
	require.Error(t, err)
	assert.False(t, repo.overrideWritten)
}

// --------------------------------------------------
// SaveSchedule
// --------------------------------------------------

func TestSaveScheduleRejectsInvalid(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSaveSchedule(repo, newFakeCache(), newDispatcher())

	days := domain.DefaultWeekly("b1").Days
	days[domain.Monday] = domain.DaySchedule{Active: true, Start: "10:00", End: "09:00"}

	errs, err := uc.Execute(context.Background(), SaveScheduleInput{
		BarberID: "b1",
		UserID:   "b1",
		Days:     days,
	})
	require.NoError(t, err)
	assert.Contains(t, errs, "monday.end")
	assert.False(t, repo.saveCalled)
}

func TestSaveSchedulePersistsAndInvalidates(t *testing.T) {
	repo := newFakeRepo()
	c := newFakeCache()
	c.entries["b1"] = cache.StatusEntry{Open: true}

	uc := NewSaveSchedule(repo, c, newDispatcher())

	errs, err := uc.Execute(context.Background(), SaveScheduleInput{
		BarberID: "b1",
		UserID:   "b1",
		Days:     domain.DefaultWeekly("b1").Days,
	})
	require.NoError(t, err)
	assert.True(t, errs.Valid())
	assert.True(t, repo.saveCalled)
	assert.Contains(t, c.invalidated, "b1")
}

// --------------------------------------------------
// UpdateDay
// --------------------------------------------------

func TestUpdateDayValidatesMergedResult(t *testing.T) {
	repo := newFakeRepo()
	ws := domain.DefaultWeekly("b1")
	monday := domain.DaySchedule{
		Active:     true,
		Start:      "09:00",
		End:        "18:00",
		BreakStart: strPtr("13:00"),
		BreakEnd:   strPtr("14:00"),
	}
	ws.Days[domain.Monday] = monday
	repo.schedules["b1"] = ws

	uc := NewUpdateDay(repo, newFakeCache(), newDispatcher())

	// Shrinking the day while keeping the break must fail: the merged
	// result is validated before anything is written.
	errs, err := uc.Execute(context.Background(), "b1", "b1", domain.Monday, domain.DayUpdate{
		Active:     true,
		Start:      "09:00",
		End:        "12:00",
		BreakStart: strPtr("13:00"),
		BreakEnd:   strPtr("14:00"),
	})
	require.NoError(t, err)
	assert.False(t, errs.Valid())
	assert.Nil(t, repo.patchedDay)
}

func TestUpdateDayOmittedBreakDeletesStored(t *testing.T) {
	repo := newFakeRepo()
	ws := domain.DefaultWeekly("b1")
	monday := domain.DaySchedule{
		Active:     true,
		Start:      "09:00",
		End:        "18:00",
		BreakStart: strPtr("13:00"),
		BreakEnd:   strPtr("14:00"),
	}
	ws.Days[domain.Monday] = monday
	repo.schedules["b1"] = ws

	uc := NewUpdateDay(repo, newFakeCache(), newDispatcher())

	errs, err := uc.Execute(context.Background(), "b1", "b1", domain.Monday, domain.DayUpdate{
		Active: true,
		Start:  "09:00",
		End:    "18:00",
	})
	require.NoError(t, err)
	assert.True(t, errs.Valid())
	require.NotNil(t, repo.patchedDay)
	assert.Equal(t, domain.FieldDelete, repo.patchedDay.BreakStart.Op)
	assert.Equal(t, domain.FieldDelete, repo.patchedDay.BreakEnd.Op)
}

func TestUpdateDayNoScheduleYet(t *testing.T) {
	repo := newFakeRepo()
	c := newFakeCache()
	uc := NewUpdateDay(repo, c, newDispatcher())

	errs, err := uc.Execute(context.Background(), "b1", "b1", domain.Friday, domain.DayUpdate{
		Active: true,
		Start:  "10:00",
		End:    "20:00",
	})
	require.NoError(t, err)
	assert.True(t, errs.Valid())
	require.NotNil(t, repo.patchedDay)
	assert.Equal(t, domain.FieldNoOp, repo.patchedDay.BreakStart.Op)
	assert.Contains(t, c.invalidated, "b1")
}

// --------------------------------------------------
// GetStatus
// --------------------------------------------------

func TestGetStatusServesFromCache(t *testing.T) {
	repo := newFakeRepo()
	repo.failReads = true // must not be reached

	c := newFakeCache()
	c.entries["b1"] = cache.StatusEntry{Open: true}

	uc := NewGetStatus(repo, c, "UTC")

	entry, err := uc.Execute(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, entry.Open)
}

func TestGetStatusEvaluatesAndCaches(t *testing.T) {
	repo := newFakeRepo()
	ws := domain.DefaultWeekly("b1")
	ws.ManualOverride = overridePtr(domain.OverrideOpen)
	repo.schedules["b1"] = ws

	c := newFakeCache()
	uc := NewGetStatus(repo, c, "UTC")

	entry, err := uc.Execute(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, entry.Open)
	require.NotNil(t, entry.ManualOverride)
	assert.Equal(t, "open", *entry.ManualOverride)

	_, cached := c.entries["b1"]
	assert.True(t, cached)
}

func TestGetStatusNoScheduleMeansClosed(t *testing.T) {
	uc := NewGetStatus(newFakeRepo(), newFakeCache(), "UTC")

	entry, err := uc.Execute(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, entry.Open)
}

func TestGetStatusPropagatesBackendFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failReads = true

	uc := NewGetStatus(repo, newFakeCache(), "UTC")

	_, err := uc.Execute(context.Background(), "b1")
	assert.ErrorIs(t, err, errBackend)
}
