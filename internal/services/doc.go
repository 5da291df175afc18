// Package services contains the business logic between the HTTP transport
// and the sheet sources: fetching category tabs, locating the student row,
// running the wide-schema decoders and assembling the portfolio document.
package services
