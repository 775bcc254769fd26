// Package events defines the inspection events emitted on the event bus.
package events
