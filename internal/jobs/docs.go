// Package jobs contains the scheduled background work of the service.
// The only job today is the outbox dispatcher, which drains committed but
// unpublished integration events to the broker every second.
package jobs
