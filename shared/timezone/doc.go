// Package timezone provides timezone utilities for the application.
//
// Booking days and slot hours are local to where the boats operate, so every
// formatted or parsed time goes through the application timezone instead of
// the server's local zone.
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// automatically initialized when the package is imported. Use standard IANA
// timezone database names ("UTC", "Europe/Madrid", "America/New_York").
package timezone
