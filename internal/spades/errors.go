package spades

import "errors"

// Rule violations are reported as sentinel errors with no state mutation.
// Every rejection is recoverable: the caller surfaces a message and the
// corrected input can simply be resubmitted.
var (
	// ErrWrongPhase is returned when an action is attempted outside its
	// valid phase (e.g. a bid during play).
	ErrWrongPhase = errors.New("action not valid in current phase")

	// ErrOutOfTurn is returned when a seat acts while another seat is due.
	ErrOutOfTurn = errors.New("not this seat's turn")

	// ErrBidOutOfRange is returned for bids outside [0, 13].
	ErrBidOutOfRange = errors.New("bid must be between 0 and 13")

	// ErrCardNotInHand is returned when the acting seat does not hold the
	// card it tried to play.
	ErrCardNotInHand = errors.New("card not in hand")

	// ErrMustFollowSuit is returned for a revoke: the seat holds a card of
	// the led suit but played a different suit.
	ErrMustFollowSuit = errors.New("must follow the led suit")

	// ErrSpadesNotBroken is returned when a seat leads a spade before
	// spades have been broken while still holding another suit.
	ErrSpadesNotBroken = errors.New("cannot lead spades before they are broken")
)
