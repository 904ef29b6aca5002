package storage

// Shared store keys written by the main application and read by this engine.
// The namespace is flat; values are last-writer-wins.
const (
	KeyTodayShiftType  = "widget_today_shift_type"
	KeyTodayShiftLabel = "widget_today_shift_label"
	KeyTodayShiftStart = "widget_today_shift_start"
	KeyTodayShiftEnd   = "widget_today_shift_end"
	KeyDaysUntilOff    = "widget_days_until_off"
	KeyWeekShifts      = "widget_week_shifts"
	KeyEnergyLatest    = "widget_energy_latest"
	KeyEnergyAvg       = "widget_energy_avg"
	KeySleepHours      = "widget_sleep_hours"
	KeySleepQuality    = "widget_sleep_quality"
	KeyLastUpdated     = "widget_last_updated"
	KeyEnergyPending   = "watch_energy_pending"
)

// Provider is the engine's port onto the shared cross-process key-value
// store. Getters report presence with the second return value and never
// fail; malformed values are treated as absent. Refresh discards any cached
// view so the next reads observe other writers.
type Provider interface {
	Init() error
	Close() error

	Refresh() error

	GetString(key string) (string, bool)
	SetString(key, value string) error
	GetInt(key string) (int64, bool)
	SetInt(key string, value int64) error
	GetFloat(key string) (float64, bool)
	SetFloat(key string, value float64) error
}
