package console

const MsgGreeting = `-------------------------------
   Welcome to Battleship 6x6!
-------------------------------
Input format:  column row        e.g. "3 4"
Placement:     column row h|v    e.g. "1 1 h"
Ships may not touch each other, not even at the corners.
Type "random" at a placement prompt to have your fleet placed for you.
Legend: X hit, T miss, ■ ship, O unknown
`

const (
	MsgPromptAttack    = "Your shot (column row): "
	MsgPromptPlaceShip = "Place ship of length %d (column row direction): "
	MsgPromptRematch   = "Play again? (y/n): "

	MsgErrorTryAgain = "Error: %s. Try again\n"

	MsgHit            = "%s -> %s: Hit!\n"
	MsgMiss           = "%s -> %s: Miss!\n"
	MsgShipDestroyed  = "%s lost a ship!\n"
	MsgWinner         = "Winner: %s\n"
	MsgRandomFleet    = "Your fleet has been placed at random.\n"
	MsgGoodbye        = "Thanks for playing!\n"
)
