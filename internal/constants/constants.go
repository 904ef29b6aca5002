package constants

const (
	AppName            = "change"
	DefaultKeyringUser = "store-connection"
	DefaultStorePath   = "~/.config/change/widget_store.json"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Notify constants
	NotifierLockfileName   = "change-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.chuwg.change"
	SpoolFileName          = "notify_spool.json"

	// ShiftStartLeadMin is how many minutes before shift start the reminder fires.
	ShiftStartLeadMin = 10
)
