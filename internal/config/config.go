package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Rangepicker"
	AppID       = "com.github.tartampluch.go-rangepicker"
	AppCommand  = "go-rangepicker"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for log files.
	FilePermUserRW fs.FileMode = 0600

	// FilePermUserRWGroupR represents -rw-r--r--. Used for exported calendars.
	FilePermUserRWGroupR fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagLocale      = "locale"
	FlagMin         = "min"
	FlagMax         = "max"
	FlagStartAt     = "start-at"
	FlagStartView   = "start-view"
	FlagRange       = "range"
	FlagOrderPeriod = "order-period"
	FlagRTL         = "rtl"
	FlagOutput      = "out"
	FlagSummary     = "summary"

	FlagDescVersion     = "Show application version and exit"
	FlagDescDebug       = "Enable debug logging"
	FlagDescLocale      = "Locale used for month and weekday names (e.g. en, fr, de-ch)"
	FlagDescMin         = "Minimum selectable date (YYYY-MM-DD)"
	FlagDescMax         = "Maximum selectable date (YYYY-MM-DD)"
	FlagDescStartAt     = "Date the calendar opens on (YYYY-MM-DD, defaults to today)"
	FlagDescStartView   = "Initial view: month, year or multi-year"
	FlagDescRange       = "Select a date range instead of a single date"
	FlagDescOrderPeriod = "Period label cycle: multi-year (month > multi-year) or month (month > year > multi-year)"
	FlagDescRTL         = "Mirror horizontal keyboard navigation for right-to-left layouts"
	FlagDescOutput      = "Write output to a file instead of stdout"
	FlagDescSummary     = "Summary of the exported event"

	CmdUseRoot     = AppCommand
	CmdShortRoot   = "Date and date-range picker"
	CmdUsePrint    = "print"
	CmdShortPrint  = "Print the calendar grid of the start view to the terminal"
	CmdUseExport   = "export BEGIN END"
	CmdShortExport = "Export a date range as an iCalendar all-day event"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Calendar Geometry
// -----------------------------------------------------------------------------

const (
	// DaysPerWeek is the width of a month grid.
	DaysPerWeek = 7

	// YearsPerPage is the number of years shown by the multi-year view.
	YearsPerPage = 24

	// YearsPerRow is the width of the multi-year grid.
	YearsPerRow = 4

	// MonthsPerRow is the width of the year grid.
	MonthsPerRow = 4

	MonthsPerYear = 12

	// LabelMinRequiredCellsMonth is the number of blank leading cells needed
	// for the month label to share the first row.
	LabelMinRequiredCellsMonth = 3
	LabelMinRequiredCellsYear  = 2

	// PageJumpFactor multiplies PageUp/PageDown deltas when the modifier is held.
	PageJumpFactor = 10

	// PeriodSeparator joins the first and last year of a multi-year page.
	PeriodSeparator = " – "

	// RangeSeparator joins begin and end in the text input.
	RangeSeparator = " - "

	// RangeSplitChar is where range text is cut before parsing each half.
	RangeSplitChar = "-"
)

// -----------------------------------------------------------------------------
// View & Ordering Identifiers
// -----------------------------------------------------------------------------

const (
	ViewNameMonth     = "month"
	ViewNameYear      = "year"
	ViewNameMultiYear = "multi-year"

	OrderPeriodMonth     = "month"
	OrderPeriodMultiYear = "multi-year"
)

// -----------------------------------------------------------------------------
// Date Formats & Layouts
// -----------------------------------------------------------------------------

const (
	// FormatDateInput renders year, month (1-12) and day.
	FormatDateInput = "%04d-%02d-%02d"

	// FormatMonthYear renders a month name and a year.
	FormatMonthYear = "%s %d"

	// FormatDateA11y renders a long month name, a day and a year.
	FormatDateA11y = "%s %d, %d"

	// LayoutISODate is the Go layout of an ISO-8601 calendar date.
	LayoutISODate = "2006-01-02"

	LayoutISODateTime     = "2006-01-02T15:04:05"
	LayoutISODateTimeZone = "2006-01-02T15:04:05Z07:00"

	// ISOPattern matches the ISO-8601 strings accepted by Deserialize.
	ISOPattern = `^\d{4}-\d{2}-\d{2}(?:T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|(?:(?:\+|-)\d{2}:\d{2}))?)?$`
)

// ParseLayouts lists the layouts accepted when parsing user input, tried in order.
var ParseLayouts = []string{
	LayoutISODate,
	"2006/01/02",
	"1/2/2006",
	"02.01.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	WindowWidth         = 360
	WindowHeight        = 420
	SettingsWindowWidth = 420

	// Preference Keys
	PrefLanguage     = "language"
	PrefStartView    = "start_view"
	PrefOrderPeriod  = "order_period"
	PrefRangeMode    = "range_mode"
	PrefHoverEffect  = "range_hover_effect"
	PrefCloseAfter   = "close_after_selection"
	PrefFirstOnClose = "select_first_date_on_close"
	PrefRTL          = "rtl"
	PrefLastRun      = "last_run_version"

	// DateEntryRunes lists the characters accepted by the date entry.
	DateEntryRunes = "0123456789-/. "
)

// SupportedLanguages defines the UI languages shipped with the application (ISO 639-1).
var SupportedLanguages = []string{"en", "fr", "de"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// TKeyMonthFmt expects a style name and a month index (0-11).
	TKeyMonthFmt = "month_%s_%d"

	// TKeyDayFmt expects a style name and a weekday index (0 = Sunday).
	TKeyDayFmt = "day_%s_%d"

	TKeyCalendarLabel         = "calendar_label"
	TKeyOpenCalendarLabel     = "open_calendar_label"
	TKeyPrevMonthLabel        = "prev_month_label"
	TKeyNextMonthLabel        = "next_month_label"
	TKeyPrevYearLabel         = "prev_year_label"
	TKeyNextYearLabel         = "next_year_label"
	TKeyPrevMultiYearLabel    = "prev_multi_year_label"
	TKeyNextMultiYearLabel    = "next_multi_year_label"
	TKeySwitchToMonthView     = "switch_to_month_view_label"
	TKeySwitchToMultiYearView = "switch_to_multi_year_view_label"
	TKeyWinTitle              = "win_title"
	TKeyWinSettings           = "win_settings_title"
	TKeyMenuSettings          = "menu_settings"
	TKeyBtnReset              = "btn_reset"
	TKeyBtnSave               = "btn_save"
	TKeyBtnCancel             = "btn_cancel"
	TKeyBtnToday              = "btn_today"
	TKeyLblLanguage           = "lbl_language"
	TKeyLblStartView          = "lbl_start_view"
	TKeyLblOrderPeriod        = "lbl_order_period"
	TKeyLblRangeMode          = "lbl_range_mode"
	TKeyLblHoverEffect        = "lbl_range_hover_effect"
	TKeyLblCloseAfter         = "lbl_close_after_selection"
	TKeyLblFirstOnClose       = "lbl_select_first_date_on_close"
	TKeyLblRTL                = "lbl_rtl"
	TKeyLblSelection          = "lbl_selection"
	TKeyLblNoSelection        = "lbl_no_selection"
	TKeyErrParse              = "err_parse"
	TKeyErrMin                = "err_min"
	TKeyErrMax                = "err_max"
	TKeyErrFilter             = "err_filter"
	TKeyErrRange              = "err_range"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultLanguage     = "en"
	DefaultStartView    = ViewNameMonth
	DefaultOrderPeriod  = OrderPeriodMultiYear
	DefaultHoverEffect  = true
	DefaultCloseAfter   = true
	DefaultFirstWeekday = 0
	DefaultEventSummary = "Selected range"
	LocaleSeparator     = "-"
	LocalePrimaryLength = 2
	LocaleFilePrefix    = "active."
	LocaleFileSuffix    = ".json"
	LocaleDir           = "locales"
	LocaleFileExtension = "json"
	MaxDateNames        = 31
	WeekdayCount        = 7
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Rangepicker//Export//EN"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gorangepicker"

	PropUID      = "UID"
	PropSummary  = "SUMMARY"
	PropDTStart  = "DTSTART"
	PropDTEnd    = "DTEND"
	PropDTStamp  = "DTSTAMP"
	PropVersion  = "VERSION"
	PropProdid   = "PRODID"
	PropCalScale = "CALSCALE"
	PropMethod   = "METHOD"

	// FormatUID expects the begin date, the end date and the domain.
	FormatUID = "%s_%s@%s"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidDateRange = "invalid date range"
	ErrInvalidDate      = "invalid date"
	ErrMonthIndex       = "invalid month index %d, month index has to be between 0 and 11"
	ErrDayIndex         = "invalid date %d, date has to be greater than 0"
	ErrDayOverflow      = "invalid date %d for month with index %d"
	ErrMissingProvider  = "no provider found for %s, you must provide an implementation to the constructor"
	ErrUnknownView      = "unknown calendar view"
	ErrUnknownOrder     = "unknown period order"
	ErrCellOutOfRange   = "cell value outside the shown period"
	ErrParse            = "date could not be parsed"
	ErrMin              = "date is before the minimum"
	ErrMax              = "date is after the maximum"
	ErrFilter           = "date is rejected by the filter"
	ErrRange            = "range begin is after range end"
	ErrExportEmpty      = "range has no begin or end"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrWriteOutput      = "failed to write output"
	ErrRender           = "failed to render calendar"
	ErrEmptyGrid        = "grid has no cells"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrFlagDate         = "invalid date flag"
	ErrInputRegistered  = "a datepicker can only be associated with a single input"
	ErrNoInput          = "attempted to open a datepicker with no associated input"
)

// -----------------------------------------------------------------------------
// Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgViewChanged    = "Calendar view changed"
	MsgActiveChanged  = "Active date changed"
	MsgBeginSelected  = "Range begin selected"
	MsgRangeCommitted = "Range committed"
	MsgRangeReset     = "Selection reset"
	MsgDateSelected   = "Date selected"
	MsgBoundsChanged  = "Bounds changed, rebuilding view"
	MsgFocusDropped   = "Pending focus move cancelled"
	MsgExported       = "Range exported"
	MsgInputParsed    = "Input parsed"
	MsgOpenSettings   = "Opening settings window"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
	MsgPrefsSaved     = "Preferences saved"
	MsgPickerOpened   = "Datepicker opened"
	MsgPickerClosed   = "Datepicker closed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyView      = "view"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyDate      = "date"
	LogKeyBegin     = "begin"
	LogKeyEnd       = "end"
	LogKeyRangeMode = "range_mode"
	LogKeyValue     = "value"
	LogKeyBytes     = "size_bytes"
	LogKeyText      = "text"
	LogKeyValid     = "valid"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "built"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompUISet    = "ui_settings"
	CompCalendar = "calendar"
	CompPicker   = "picker"
	CompExport   = "export"
	CompMain     = "main"
	CompI18n     = "i18n"
)
