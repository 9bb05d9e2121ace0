// Package timezone provides timezone utilities for the application.
//
// The property's local timezone is configured via the APP_TIMEZONE environment
// variable and is initialized when the package is first imported. Use standard
// IANA timezone database names ("UTC", "Asia/Kolkata", "Europe/London").
//
// Check-in and check-out dates are parsed in the property's timezone, so the
// nightly boundary follows the desk clock, not the server clock.
package timezone
