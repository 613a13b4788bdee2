// Package kv implements the repositories over the key-value persistence
// adapter. Every operation is read-full-collection, compute, write-back;
// correctness relies on the single-writer model of the store.
package kv

// Collection keys. Each collection is an independent top-level key; there
// are no cross-key transactions.
const (
	appointmentsKey    = "carepro-appointments"
	visitHistoryKey    = "carepro-visit-history"
	contactRequestsKey = "carepro-contact-requests"
	portalSessionKey   = "carepro-portal-session"
	portalUsersKey     = "carepro-portal-users"
	bookingSequenceKey = "carepro-booking-sequence"
)
