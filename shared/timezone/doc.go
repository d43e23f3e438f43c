// Package timezone pins every date the desk sees to one configured zone.
//
// The zone comes from APP_TIMEZONE and is loaded when the package is imported.
// Reservation dates, check-in dates and report bounds are all compared as
// YYYY-MM-DD strings produced by Day, so they must never be formatted in the
// server's local zone:
//
//	stamp := timezone.Day(now)   // "2024-05-01"
//	shown := timezone.Clock(now) // "09:30 AM"
package timezone
