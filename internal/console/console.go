// Package console plays the games in a terminal, one line of input per answer
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cardgames/pkg/deck"

	"golang.org/x/term"
)

// clearScreen moves the cursor home and clears the terminal
const clearScreen = "\033[H\033[2J"

// Console reads answers from in and writes everything else to out
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New returns a console. The screen is only cleared when both ends are a terminal
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: isTerminal(in) && isTerminal(out),
	}
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SendOutput prints the value on its own line
func (c *Console) SendOutput(v interface{}) {
	_, _ = fmt.Fprintln(c.out, v)
}

// readLine prompts and returns the trimmed answer
// io.EOF is only returned once nothing is left to read
func (c *Console) readLine(prompt string) (string, error) {
	if prompt != "" {
		_, _ = fmt.Fprintf(c.out, "%s: ", prompt)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// GetCard returns the card token as typed, e.g. H8
func (c *Console) GetCard() (string, error) {
	answer, err := c.readLine("Card to play (e.g. H8, SA, D10)")
	if err != nil {
		return "", err
	}

	return strings.ToUpper(answer), nil
}

// DrawCard returns true if the answer starts with y
func (c *Console) DrawCard() (bool, error) {
	answer, err := c.readLine("Draw a card instead? (y/N)")
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// GetSuit returns the suit. Anything unrecognised is passed on for the game to reject
func (c *Console) GetSuit() (deck.Suit, error) {
	answer, err := c.readLine("Suit (C, D, H, S)")
	if err != nil {
		return "", err
	}

	suit, err := deck.ParseSuit(answer)
	if err != nil {
		return deck.Suit(answer), nil
	}

	return suit, nil
}

// GetRank prompts until a rank is typed
func (c *Console) GetRank() (int, error) {
	for {
		answer, err := c.readLine("Rank (A, 2-10, J, Q, K)")
		if err != nil {
			return 0, err
		}

		rank, err := deck.ParseRank(answer)
		if err == nil {
			return rank, nil
		}

		c.SendOutput(fmt.Sprintf("%q is not a rank", answer))
	}
}

// GetPlayerUsername accepts a username or the candidate's number
func (c *Console) GetPlayerUsername(currentUsername string, candidates []string) (string, error) {
	options := make([]string, len(candidates))
	for i, candidate := range candidates {
		options[i] = fmt.Sprintf("[%d] %s", i+1, candidate)
	}

	answer, err := c.readLine(fmt.Sprintf("%s, pick a player %s", currentUsername, strings.Join(options, " ")))
	if err != nil {
		return "", err
	}

	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(candidates) {
		return candidates[n-1], nil
	}

	return answer, nil
}

// Stall waits for enter. On a terminal the screen is cleared for the next player
func (c *Console) Stall() error {
	if _, err := c.readLine("Press enter to continue"); err != nil {
		return err
	}

	if c.interactive {
		_, _ = io.WriteString(c.out, clearScreen)
	}

	return nil
}

// GetUserSelection returns the menu entry, -1 if the answer is not a number
func (c *Console) GetUserSelection() (int, error) {
	answer, err := c.readLine("Selection")
	if err != nil {
		return 0, err
	}

	return atoi(answer), nil
}

// GetPlayerCount returns the number of players, -1 if the answer is not a number
func (c *Console) GetPlayerCount(min, max int) (int, error) {
	answer, err := c.readLine(fmt.Sprintf("Players (%d-%d)", min, max))
	if err != nil {
		return 0, err
	}

	return atoi(answer), nil
}

// GetUsername returns the next username
func (c *Console) GetUsername() (string, error) {
	return c.readLine("Username")
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}

	return n
}
