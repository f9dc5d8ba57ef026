package request

import (
	"context"
	"errors"
	"fmt"

	loopfsm "github.com/looplab/fsm"
)

// Transition describes one allowed edge of the request lifecycle.
type Transition struct {
	Event Event
	Src   Status
	Dst   Status
}

// Transitions is the full request lifecycle. Cancellation is not listed
// because it removes the request rather than moving it to a state.
var Transitions = []Transition{
	{Event: EventSchedule, Src: StatusPending, Dst: StatusScheduled},
	{Event: EventComplete, Src: StatusScheduled, Dst: StatusVisited},
}

// TransitionError is returned when an event is not allowed from the current
// status, e.g. completing a visit that was never scheduled.
type TransitionError struct {
	Event   Event
	Current Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("event %q is not valid from status %q", e.Event, e.Current)
}

// events converts Transitions into looplab/fsm EventDesc format, grouping
// transitions with the same event+destination into one EventDesc with
// multiple source states.
var events = buildEvents()

func buildEvents() []loopfsm.EventDesc {
	type key struct {
		event string
		dst   string
	}
	grouped := make(map[key][]string)
	order := make([]key, 0)

	for _, t := range Transitions {
		k := key{event: string(t.Event), dst: string(t.Dst)}
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], string(t.Src))
	}

	out := make([]loopfsm.EventDesc, 0, len(order))
	for _, k := range order {
		out = append(out, loopfsm.EventDesc{
			Name: k.event,
			Src:  grouped[k],
			Dst:  k.dst,
		})
	}
	return out
}

// Apply checks whether event is valid from current and returns the
// destination status. A short-lived FSM is built per call because
// looplab/fsm tracks the current state internally.
func Apply(ctx context.Context, current Status, event Event) (Status, error) {
	machine := loopfsm.NewFSM(string(current), events, nil)

	if err := machine.Event(ctx, string(event)); err != nil {
		var invalidEvent loopfsm.InvalidEventError
		var noTransition loopfsm.NoTransitionError
		if errors.As(err, &invalidEvent) || errors.As(err, &noTransition) {
			return "", &TransitionError{
				Event:   event,
				Current: current,
			}
		}
		return "", err
	}

	return Status(machine.Current()), nil
}
