// Package event provides the canvas change notification bus. The
// engine publishes an event after every committed mutation and
// viewport update so hosts can react (redraw, dirty-flag, sync UI)
// without polling.
//
// Delivery is synchronous and in-order on the publisher's call stack,
// matching the engine's single-owner execution model.
package event
