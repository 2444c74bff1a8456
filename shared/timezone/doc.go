// Package timezone anchors every time computation to the property's local
// timezone. A hotel day runs midnight to midnight where the building stands,
// so "today's arrivals" and "today's revenue" must be computed against the
// configured location and never against the server clock's zone.
//
// Typical use:
//
//	now := timezone.Now()                      // current time, property-local
//	day := timezone.StartOfDay(now)            // local midnight, window start
//	t, err := timezone.Parse("2006-01-02", v)  // parse in the property zone
//
// The location comes from the APP_TIMEZONE environment variable and is
// loaded once at package import. Use standard IANA names ("UTC",
// "Asia/Jakarta", "America/New_York"); anything else falls back to UTC.
package timezone
