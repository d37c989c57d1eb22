package inter

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"varichess/core"
)

// Run drives one or more games from the terminal: it prompts for the
// number of players, the engine's colour, and the variant, then loops
// accepting moves until the game ends or the player exits.
func Run() {
	reader := bufio.NewReader(os.Stdin)
	numPlayers := promptNumPlayers(reader)
	engineColour := core.White
	if numPlayers == 1 {
		engineColour = promptEngineColour(reader)
	}
	variant := promptVariant(reader)

	view, err := NewBoardView()
	if err != nil {
		log.Fatalf("varichess: failed to initialize terminal: %v", err)
	}
	defer view.Close()

	for playGame(view, numPlayers, engineColour, variant) {
	}
}

func promptNumPlayers(reader *bufio.Reader) int {
	fmt.Println("How many players? (0, 1, 2)")
	switch readLine(reader) {
	case "0":
		return 0
	case "2":
		return 2
	default:
		return 1
	}
}

func promptEngineColour(reader *bufio.Reader) core.Color {
	fmt.Println("Computer colour? (white, black)")
	if strings.EqualFold(readLine(reader), "white") {
		return core.White
	}
	return core.Black
}

func promptVariant(reader *bufio.Reader) core.Variant {
	fmt.Println("Variant? (standard, atomic, hill)")
	answer := strings.ToLower(readLine(reader))
	switch {
	case strings.HasPrefix(answer, "a"):
		return core.VariantAtomic
	case strings.HasPrefix(answer, "h"):
		return core.VariantHill
	default:
		return core.VariantStandard
	}
}

func readLine(reader *bufio.Reader) string {
	line, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("varichess: failed to read input: %v", err)
	}
	return strings.TrimSpace(line)
}

// playGame runs a single game to completion. It returns false when the
// player asked to exit the program entirely, true to start a fresh game
// (including after resign/retry/restart).
func playGame(view *BoardView, numPlayers int, engineColour core.Color, variant core.Variant) bool {
	history := []*core.Position{core.NewPosition(variant)}
	searcher := core.NewSearcher()

	humanToMoveFirst := numPlayers > 0 && !(numPlayers == 1 && engineColour == core.White)

	current := func() *core.Position { return history[len(history)-1] }
	view.Render(current(), FormatStatus(current()))

	for len(current().LegalMoves) > 0 {
		humanTurn := numPlayers > 0 &&
			!(len(history) == 1 && numPlayers == 1 && !humanToMoveFirst)

		if humanTurn {
			cont, shouldExit := handleHumanTurn(&history, searcher, view)
			if shouldExit {
				return false
			}
			if !cont {
				return true
			}
		}

		if numPlayers < 2 {
			move, resign := searcher.FindBestMove(current())
			if resign {
				view.Render(current(), "The engine resigns.")
				return true
			}
			if move == nil {
				break
			}
			history = append(history, core.Derive(current(), *move, true))
			view.Render(current(), FormatStatus(current()))
		}
	}

	view.Render(current(), resultMessage(current()))
	return true
}

// handleHumanTurn reads player input line by line, handling commands,
// until a move is played or the game or program is to end. The returned
// bools are (continueGame, exitProgram).
func handleHumanTurn(history *[]*core.Position, searcher *core.Searcher, view *BoardView) (bool, bool) {
	status := "Please enter your move"
	for {
		pos := (*history)[len(*history)-1]
		raw := strings.TrimSpace(view.ReadLine(status + "> "))
		input := strings.ToLower(raw)

		switch input {
		case "undo":
			if len(*history) >= 3 {
				*history = (*history)[:len(*history)-2]
			}
			view.Render((*history)[len(*history)-1], FormatStatus((*history)[len(*history)-1]))
			status = "Please enter your move"
			continue
		case "resign", "retry", "restart":
			return false, false
		case "exit", "quit":
			return false, true
		case "moves":
			status = movesSummary(pos)
			view.Render(pos, status)
			continue
		case "hint":
			move, resign := searcher.FindBestMove(pos)
			if resign || move == nil {
				status = "No hint available."
			} else {
				status = "Hint: " + FormatSAN(pos, *move)
			}
			view.Render(pos, status)
			continue
		}

		move, err := ParseSAN(pos, raw)
		if err != nil {
			status = "Failed to find a legal move matching that instruction: " + err.Error()
			view.Render(pos, status)
			continue
		}
		*history = append(*history, core.Derive(pos, move, true))
		view.Render((*history)[len(*history)-1], FormatStatus((*history)[len(*history)-1]))
		return true, false
	}
}

func movesSummary(pos *core.Position) string {
	parts := make([]string, len(pos.LegalMoves))
	for i, m := range pos.LegalMoves {
		parts[i] = FormatSAN(pos, m)
	}
	return strings.Join(parts, ", ")
}

func resultMessage(pos *core.Position) string {
	switch score := pos.Evaluate(); {
	case score == core.PosMate:
		return "Checkmate. White wins."
	case score == core.NegMate:
		return "Checkmate. Black wins."
	case score == 0:
		return "Draw."
	default:
		return "Game over. Score: " + strconv.Itoa(score)
	}
}
