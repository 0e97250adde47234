package domain

// Launch date/time format accepted by /setcountdown and echoed back in the
// confirmation (zone abbreviation appended on output).
const (
	DateTimeFormat     = "2006-01-02 15:04"
	DateTimeZoneFormat = "2006-01-02 15:04 MST"
)

// Timezone is the fixed civil zone used to interpret launch timestamps and
// to read the current time.
const Timezone = "America/New_York"

// User-facing message texts. The confirmation and routine update are
// fmt.Sprintf templates; the rest are fixed.
const (
	MsgConfirmation = "✅ Token Launch Countdown Set! 🚀\nLaunch Date: %s"
	MsgRoutine      = "⏳ Token Launch Incoming! 🚀\nOnly %s left until liftoff!"
	MsgLive         = "🎉 Token is LIVE! 🚀\nThe wait is over! Join the action now!"

	MsgPermissionDenied = "⚠️ Only administrators can set the launch countdown!\nUse /countdown to check the remaining time."
	MsgInvalidFormat    = "Invalid date/time format!\nPlease use: /setcountdown YYYY-MM-DD HH:MM\nExample: /setcountdown 2024-12-31 23:59"
	MsgNotConfigured    = "No launch countdown is currently set! ⏰\nAsk an admin to set one with /setcountdown."
)
