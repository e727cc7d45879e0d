package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
	"github.com/skipit-studio/skipit-api/internal/models"
)

// ScheduleGormRepository persists the weekly schedule "document" as one
// schedules row plus up to seven schedule_days rows per barber.
type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSchedule(
	ctx context.Context,
	barberID string,
) (*domain.WeeklySchedule, error) {

	var doc models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		First(&doc).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var rows []models.ScheduleDay
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	byDay := make(map[domain.Weekday]models.ScheduleDay, len(rows))
	for _, row := range rows {
		if day, ok := domain.ParseWeekday(row.Day); ok {
			byDay[day] = row
		}
	}

	ws := &domain.WeeklySchedule{
		BarberID:  barberID,
		Days:      make(map[domain.Weekday]domain.DaySchedule, len(domain.DayNames)),
		UpdatedAt: doc.UpdatedAt,
	}

	// Tolerant read: old documents may miss days or time fields; fill the
	// gaps with defaults instead of handing broken data downstream.
	for _, name := range domain.DayNames {
		if row, ok := byDay[name]; ok {
			ws.Days[name] = toDomainDay(row)
		} else {
			ws.Days[name] = domain.DefaultDay()
		}
	}

	if doc.ManualOverride != nil {
		switch ov := domain.ManualOverride(*doc.ManualOverride); ov {
		case domain.OverrideOpen, domain.OverrideClosed:
			ws.ManualOverride = &ov
		}
	}

	return ws, nil
}

func toDomainDay(row models.ScheduleDay) domain.DaySchedule {
	d := domain.DaySchedule{
		Active:     row.Active,
		Start:      row.StartTime,
		End:        row.EndTime,
		BreakStart: row.BreakStart,
		BreakEnd:   row.BreakEnd,
		UpdatedAt:  row.UpdatedAt,
	}
	if d.Start == "" {
		d.Start = domain.DefaultStart
	}
	if d.End == "" {
		d.End = domain.DefaultEnd
	}
	return d
}

// --------------------------------------------------
// Full save
// --------------------------------------------------

// SaveSchedule upserts the document. For every supplied day the incoming
// fields are compared against the stored row; identical days are skipped so
// their updated_at marker survives, changed days are rewritten and get a
// fresh one. The document row is always touched.
func (r *ScheduleGormRepository) SaveSchedule(
	ctx context.Context,
	ws *domain.WeeklySchedule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := upsertDoc(tx, ws.BarberID, overrideColumn(ws.ManualOverride), true); err != nil {
			return err
		}

		var rows []models.ScheduleDay
		if err := tx.Where("barber_id = ?", ws.BarberID).Find(&rows).Error; err != nil {
			return err
		}

		current := make(map[string]models.ScheduleDay, len(rows))
		for _, row := range rows {
			current[row.Day] = row
		}

		for _, name := range domain.DayNames {
			incoming, ok := ws.Days[name]
			if !ok {
				// Merge semantics: absent days stay as they are.
				continue
			}

			row, exists := current[string(name)]
			if exists && toDomainDay(row).Equal(incoming) {
				continue
			}

			if !exists {
				newRow := models.ScheduleDay{
					BarberID:   ws.BarberID,
					Day:        string(name),
					Active:     incoming.Active,
					StartTime:  incoming.Start,
					EndTime:    incoming.End,
					BreakStart: incoming.BreakStart,
					BreakEnd:   incoming.BreakEnd,
				}
				if err := tx.Create(&newRow).Error; err != nil {
					return err
				}
				continue
			}

			updates := map[string]any{
				"active":      incoming.Active,
				"start_time":  incoming.Start,
				"end_time":    incoming.End,
				"break_start": breakColumn(incoming.BreakStart),
				"break_end":   breakColumn(incoming.BreakEnd),
			}
			if err := tx.Model(&row).Updates(updates).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Override
// --------------------------------------------------

func (r *ScheduleGormRepository) UpdateManualOverride(
	ctx context.Context,
	barberID string,
	override *domain.ManualOverride,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertDoc(tx, barberID, overrideColumn(override), true)
	})
}

// --------------------------------------------------
// Single-day patch
// --------------------------------------------------

func (r *ScheduleGormRepository) PatchDay(
	ctx context.Context,
	barberID string,
	day domain.Weekday,
	patch domain.DayPatch,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Day edits only touch the document-level timestamp, never the
		// override stored beside it.
		if err := upsertDoc(tx, barberID, nil, false); err != nil {
			return err
		}

		var row models.ScheduleDay
		err := tx.Where("barber_id = ? AND day = ?", barberID, string(day)).
			First(&row).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			materialized := patch.Day(nil)
			newRow := models.ScheduleDay{
				BarberID:   barberID,
				Day:        string(day),
				Active:     materialized.Active,
				StartTime:  materialized.Start,
				EndTime:    materialized.End,
				BreakStart: materialized.BreakStart,
				BreakEnd:   materialized.BreakEnd,
			}
			return tx.Create(&newRow).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]any{
			"active":     patch.Active,
			"start_time": patch.Start,
			"end_time":   patch.End,
		}
		patch.BreakStart.Apply("break_start", updates)
		patch.BreakEnd.Apply("break_end", updates)

		return tx.Model(&row).Updates(updates).Error
	})
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

// upsertDoc creates or touches the document-level row. When setOverride is
// false the stored override is left alone and only updated_at moves.
func upsertDoc(tx *gorm.DB, barberID string, override *string, setOverride bool) error {
	var doc models.Schedule
	err := tx.Where("barber_id = ?", barberID).First(&doc).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc = models.Schedule{
			BarberID:       barberID,
			ManualOverride: override,
		}
		return tx.Create(&doc).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if setOverride {
		updates["manual_override"] = override
	} else {
		// Force a write so updated_at is refreshed even without changes.
		updates["barber_id"] = barberID
	}

	return tx.Model(&doc).Updates(updates).Error
}

func overrideColumn(ov *domain.ManualOverride) *string {
	if ov == nil {
		return nil
	}
	s := string(*ov)
	return &s
}

func breakColumn(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
