// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Branch-local calendar arithmetic:
//     loc := timezone.Location("America/Sao_Paulo")
//     start, err := timezone.AtClock(date, "09:30", loc)
//     weekday := timezone.WeekdayIndex(start, loc) // 0=Sunday .. 6=Saturday
//
//  4. Parsing dates in a given location:
//     day, err := timezone.ParseDate("2024-01-01", loc)
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "America/Sao_Paulo", "America/New_York", "Europe/London"
//
// The application default timezone is configured via the APP_TIMEZONE
// environment variable and is automatically initialized when the package is
// imported. Use standard IANA timezone database names for reliable
// cross-platform compatibility.
package timezone
