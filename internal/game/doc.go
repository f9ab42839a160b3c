// Package game implements a tournament-style Texas Hold'em table.
//
// The main type is Game, which seats players, rotates the button, posts
// blinds, runs the four betting rounds and settles every side pot.
//
// # Basic Usage
//
//	g, err := game.New(500, 10, 5, 6, game.WithRNG(randutil.New(42)))
//	if err != nil {
//	    return err
//	}
//	for g.IsGameRunning() {
//	    if err := g.StartHand(); err != nil {
//	        break
//	    }
//	    for g.IsHandRunning() {
//	        moves := g.AvailableMoves()
//	        // choose from moves...
//	        if err := g.TakeAction(game.Call, 0); err != nil {
//	            // state is unchanged; pick another move
//	        }
//	    }
//	}
//
// # Betting
//
// Raise amounts are "raise to" totals: the chips the player will have
// committed in the current round after the raise. A player who already acted
// may only raise again after the bet grows by a full raise (WSOP rule 96),
// so an all-in for less than a minimum raise does not reopen the betting.
//
// # Side Pots
//
// Whenever a player is all in, contributions above their level move into a
// new pot that they cannot win. Pot 0 is the main pot; a player eligible
// for pot K is eligible for every pot below it.
//
// # Replay
//
// Every hand records a History. Replay rebuilds a Game from one and yields
// the table state before each action.
package game
