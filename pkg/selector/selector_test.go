package selector

import (
	"errors"
	"testing"

	"cardgames/pkg/playable/playabletest"
	"cardgames/pkg/registry"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var errClosed = errors.New("input closed")

type scriptedInput struct {
	selections []int
	counts     []int
	usernames  []string
	asked      [][2]int
}

func (s *scriptedInput) GetUserSelection() (int, error) {
	if len(s.selections) == 0 {
		return 0, errClosed
	}

	sel := s.selections[0]
	s.selections = s.selections[1:]
	return sel, nil
}

func (s *scriptedInput) GetPlayerCount(min, max int) (int, error) {
	s.asked = append(s.asked, [2]int{min, max})
	if len(s.counts) == 0 {
		return 0, errClosed
	}

	count := s.counts[0]
	s.counts = s.counts[1:]
	return count, nil
}

func (s *scriptedInput) GetUsername() (string, error) {
	if len(s.usernames) == 0 {
		return "", errClosed
	}

	username := s.usernames[0]
	s.usernames = s.usernames[1:]
	return username, nil
}

type fixture struct {
	selector *Selector
	in       *scriptedInput
	out      *playabletest.Output
	gameIn   *playabletest.Input
	gameOut  *playabletest.Output
	reg      *registry.Registry
}

func newFixture(in *scriptedInput) *fixture {
	f := &fixture{
		in:      in,
		out:     &playabletest.Output{},
		gameIn:  &playabletest.Input{},
		gameOut: &playabletest.Output{},
		reg:     registry.New(),
	}

	f.selector = New(logrus.StandardLogger(), f.in, f.out, f.gameIn, f.gameOut, f.reg, 0)
	return f
}

func TestSelector_Run_exit(t *testing.T) {
	a := assert.New(t)
	f := newFixture(&scriptedInput{selections: []int{0}})

	a.NoError(f.selector.Run())
	a.True(f.out.Contains("GAME SELECT"))
	a.True(f.out.Contains("[1] CRAZY EIGHTS"))
	a.True(f.out.Contains("[2] WAR"))
	a.True(f.out.Contains("[3] GO FISH"))
	a.True(f.out.Contains("[0] EXIT"))
	a.Empty(f.gameOut.Messages)
}

func TestSelector_Run_invalidSelection(t *testing.T) {
	a := assert.New(t)
	f := newFixture(&scriptedInput{selections: []int{4, -1, 0}})

	a.NoError(f.selector.Run())
	a.Equal("Invalid menu selection.", f.out.Last())
	a.Len(f.in.selections, 0)
}

func TestSelector_Run_playsWar(t *testing.T) {
	a := assert.New(t)

	f := newFixture(&scriptedInput{
		selections: []int{2, 0},
		usernames:  []string{"Daniel", "", "Daniel", " Bradley "},
	})
	a.NoError(f.reg.AddUser("Daniel"))

	a.NoError(f.selector.Run())
	a.Empty(f.in.asked, "war is always two players")
	a.True(f.out.Contains("2 players"))
	a.True(f.out.Contains("try again"))
	a.True(f.out.Contains("Daniel is already playing, try again"))
	a.True(f.gameOut.Contains("wins!"))
	a.Greater(f.gameIn.Stalls, 0)

	users, err := f.reg.Users()
	a.NoError(err)
	a.Len(users, 2)
	// only the winner is credited, the loser has no win to give back
	played := 0
	for _, u := range users {
		a.Equal(0, u.GamesWon, u.Username)
		played += u.GamesPlayed
	}
	a.Equal(1, played)
}

func TestSelector_Run_playerCount(t *testing.T) {
	a := assert.New(t)
	f := newFixture(&scriptedInput{
		selections: []int{3},
		counts:     []int{1, 7, 2},
		usernames:  []string{"Daniel", "Bradley"},
	})

	// go fish needs answers the scripted game input does not have
	err := f.selector.Run()
	a.True(errors.Is(err, playabletest.ErrNoMoreInput))
	a.Equal([][2]int{{2, 6}, {2, 6}, {2, 6}}, f.in.asked)
	a.True(f.out.Contains("Enter a number between 2 and 6"))
	a.Contains(err.Error(), "Go Fish")

	users, _ := f.reg.Users()
	a.Len(users, 2)
}

func TestSelector_Run_inputClosed(t *testing.T) {
	f := newFixture(&scriptedInput{selections: []int{1}, counts: []int{2}})
	assert.Equal(t, errClosed, f.selector.Run())

	f = newFixture(&scriptedInput{})
	assert.Equal(t, errClosed, f.selector.Run())
}
