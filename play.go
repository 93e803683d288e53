package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"heron-chess/engine"
	gm "heron-chess/heronmg"
)

func main() {
	depth := flag.Int("depth", 4, "engine search depth (plies)")
	fen := flag.String("fen", gm.FENStartPos, "starting position in FEN")
	flag.Parse()

	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad -fen:", err)
		os.Exit(2)
	}
	playLoop(board, *depth)
}

// playLoop runs a console game: the human plays the side to move of the
// starting position's first turn as White, the engine answers as Black.
func playLoop(board *gm.Board, depth int) {
	scanner := bufio.NewScanner(os.Stdin)
	var undoStack []gm.MoveState
	var history []uint64

	for {
		fmt.Print(board)
		fmt.Printf("Move %d, %s to play\n", board.FullmoveNumber(), colorName(board.SideToMove()))

		status := board.GameStatus(history)
		switch status {
		case gm.Checkmate:
			fmt.Printf("Checkmate! %s wins.\n", colorName(board.SideToMove().Opponent()))
			return
		case gm.Stalemate:
			fmt.Println("Stalemate! The game is a draw.")
			return
		case gm.Check:
			fmt.Println("Check!")
		case gm.DrawAdvisory:
			fmt.Println("Draw can be claimed (50-move rule or repetition); playing on.")
		}

		if board.SideToMove() == gm.White {
			if !humanMove(board, scanner, &undoStack, &history) {
				return
			}
		} else {
			fmt.Println("Engine is thinking...")
			move, _ := engine.SearchPosition(board, depth)
			if !board.PushMove(move, &undoStack, &history) {
				// Unreachable for a legal search result; bail rather than loop.
				fmt.Println("Engine produced no playable move, resigning.")
				return
			}
			fmt.Printf("Engine plays %s\n", move)
		}
	}
}

// humanMove prompts until a legal move is entered and applied. Returns false
// when the player quits or input ends.
func humanMove(board *gm.Board, scanner *bufio.Scanner, undoStack *[]gm.MoveState, history *[]uint64) bool {
	for {
		fmt.Print("Your move (e.g. e2e4, e7e8q) or 'quit': ")
		if !scanner.Scan() {
			return false
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "quit") {
			fmt.Println("Game ended.")
			return false
		}

		move, err := gm.ParseMove(board, input)
		switch {
		case err == nil:
			if board.PushMove(move, undoStack, history) {
				return true
			}
			fmt.Println("Illegal move. Try again.")
		case errors.Is(err, gm.ErrMalformedNotation):
			fmt.Println("Could not read that; use coordinate notation like e2e4.")
		case errors.Is(err, gm.ErrInvalidPromotionChoice):
			fmt.Println("Promotion needs a letter: q, r, b or n (e.g. e7e8q).")
		case errors.Is(err, gm.ErrIllegalMove):
			fmt.Println("Illegal move. Try again.")
		default:
			fmt.Println("Invalid input:", err)
		}
	}
}

func colorName(c gm.Color) string {
	if c == gm.White {
		return "White"
	}
	return "Black"
}
