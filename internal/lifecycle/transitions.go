package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

type Event string

const (
	EventApprove      Event = "approve"
	EventReject       Event = "reject"
	EventShip         Event = "ship"
	EventMarkReceived Event = "mark_received"
	EventResolve      Event = "resolve"
	EventReset        Event = "reset_request"
)

const (
	ActorSystem         = "system"
	ActorAdmin          = "admin:api"
	ActorCarrierWebhook = "webhook:carrier"
	ActorLabelGenerator = "system:label_generator"
	customerActorPrefix = "customer:"
)

// CustomerActor formats the actor string for a customer-initiated change.
func CustomerActor(email string) string {
	return customerActorPrefix + email
}

type transitionKey struct {
	from  repository.ReturnStatus
	event Event
}

var transitions = map[transitionKey]repository.ReturnStatus{
	{repository.StatusRequested, EventApprove}:    repository.StatusApproved,
	{repository.StatusRequested, EventReject}:     repository.StatusRejected,
	{repository.StatusApproved, EventShip}:        repository.StatusShipped,
	{repository.StatusShipped, EventMarkReceived}: repository.StatusReceived,
	{repository.StatusReceived, EventResolve}:     repository.StatusResolved,
	{repository.StatusRejected, EventReset}:       repository.StatusRequested,
	{repository.StatusResolved, EventReset}:       repository.StatusRequested,
}

var ErrInvalidTransition = errors.New("invalid transition")

type InvalidTransitionError struct {
	From  repository.ReturnStatus
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a return request in status %s", e.Event, e.From)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Next returns the state reached by firing event from from.
func Next(from repository.ReturnStatus, event Event) (repository.ReturnStatus, error) {
	to, ok := transitions[transitionKey{from: from, event: event}]
	if !ok {
		return "", &InvalidTransitionError{From: from, Event: event}
	}
	return to, nil
}

// AvailableEvents lists the events that are legal from status.
func AvailableEvents(status repository.ReturnStatus) []Event {
	var events []Event
	for _, ev := range []Event{EventApprove, EventReject, EventShip, EventMarkReceived, EventResolve, EventReset} {
		if _, ok := transitions[transitionKey{from: status, event: ev}]; ok {
			events = append(events, ev)
		}
	}
	return events
}

var ErrUnknownCarrierStatus = errors.New("unknown carrier status")

// CarrierEvent maps a free-text carrier status onto a lifecycle event.
func CarrierEvent(status string) (Event, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "shipped":
		return EventShip, nil
	case "received", "delivered":
		return EventMarkReceived, nil
	case "resolved", "completed":
		return EventResolve, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCarrierStatus, status)
}
