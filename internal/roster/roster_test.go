package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBatter() Batter {
	return Batter{
		Name: "Mike Trout", BA: 0.306, K: 132, OBP: 0.419,
		SLG: 0.582, HR: 40, RBI: 80, Hand: Right,
	}
}

func validPitcher() Pitcher {
	return Pitcher{
		Name: "Gerrit Cole", ERA: 2.63, WHIP: 0.98,
		KRate: 0.33, WalkRate: 0.06, Hand: Right,
	}
}

func TestBatter_Validate(t *testing.T) {
	b := validBatter()
	assert.NoError(t, b.Validate())

	b = validBatter()
	b.Name = "  "
	assert.Error(t, b.Validate(), "empty name")

	b = validBatter()
	b.BA = 1.2
	assert.Error(t, b.Validate(), "batting average above 1.0")

	b = validBatter()
	b.OBP = -0.1
	assert.Error(t, b.Validate(), "negative on-base percentage")

	b = validBatter()
	b.K = -3
	assert.Error(t, b.Validate(), "negative strikeouts")

	b = validBatter()
	b.HR = -1
	assert.Error(t, b.Validate(), "negative home runs")

	b = validBatter()
	b.Hand = "X"
	assert.Error(t, b.Validate(), "unrecognized handedness")
}

func TestPitcher_Validate(t *testing.T) {
	p := validPitcher()
	assert.NoError(t, p.Validate())

	p = validPitcher()
	p.ERA = -1
	assert.Error(t, p.Validate(), "negative ERA")

	p = validPitcher()
	p.KRate = 1.5
	assert.Error(t, p.Validate(), "strikeout rate above 1.0")

	p = validPitcher()
	p.Hand = Switch
	assert.Error(t, p.Validate(), "pitchers cannot be switch-handed")
}

func TestPitcher_Unknown(t *testing.T) {
	sentinel := Pitcher{Hand: Right}
	assert.True(t, sentinel.Unknown(), "all-zero stats mean no games pitched")

	p := validPitcher()
	assert.False(t, p.Unknown())

	// A single non-zero rate stat is enough to count as real data.
	p = Pitcher{WalkRate: 0.08, Hand: Left}
	assert.False(t, p.Unknown())
}

func TestParseBatterHand(t *testing.T) {
	hand, err := ParseBatterHand("s")
	require.NoError(t, err)
	assert.Equal(t, Switch, hand)

	_, err = ParseBatterHand("B")
	assert.Error(t, err)
}

func TestParsePitcherHand(t *testing.T) {
	hand, err := ParsePitcherHand("LHP")
	require.NoError(t, err)
	assert.Equal(t, Left, hand)

	hand, err = ParsePitcherHand("r")
	require.NoError(t, err)
	assert.Equal(t, Right, hand)

	_, err = ParsePitcherHand("S")
	assert.Error(t, err, "switch is not a pitcher handedness")
}

func TestParsePositions(t *testing.T) {
	positions, err := ParsePositions("ss/2b, 3B")
	require.NoError(t, err)
	assert.Equal(t, []Position{Shortstop, SecondBase, ThirdBase}, positions)

	positions, err = ParsePositions("CF,CF,cf")
	require.NoError(t, err)
	assert.Equal(t, []Position{CenterField}, positions, "duplicates collapse")

	_, err = ParsePositions("SS,DH")
	assert.Error(t, err, "DH is not a defensive position")
}

func TestFielder_Validate(t *testing.T) {
	f := Fielder{
		Name: "John Doe", FieldingPct: 0.985, Errors: 4, Putouts: 220,
		Positions: []Position{Shortstop, SecondBase},
	}
	assert.NoError(t, f.Validate())

	f.Positions = nil
	assert.Error(t, f.Validate(), "empty position set")

	f.Positions = []Position{"DH"}
	assert.Error(t, f.Validate(), "unrecognized position code")

	f = Fielder{Name: "A", FieldingPct: 1.01, Positions: []Position{Catcher}}
	assert.Error(t, f.Validate(), "fielding percentage above 1.0")

	f = Fielder{Name: "A", FieldingPct: 0.9, PassedBalls: -1, Positions: []Position{Catcher}}
	assert.Error(t, f.Validate(), "negative passed balls")
}

func TestFielder_Eligible(t *testing.T) {
	f := Fielder{Positions: []Position{LeftField, CenterField}}
	assert.True(t, f.Eligible(LeftField))
	assert.False(t, f.Eligible(Catcher))
	assert.False(t, f.CatcherEligible())
}

func TestMatchupFacts(t *testing.T) {
	facts := MatchupFacts(validBatter(), validPitcher())

	assert.Equal(t, 0.419, facts["obp"])
	assert.Equal(t, 132, facts["k"])
	assert.Equal(t, "R", facts["hand"])
	assert.Equal(t, "R", facts["pitcherHand"])
	assert.Equal(t, false, facts["unknownPitcher"])

	sentinel := Pitcher{Hand: Left}
	facts = MatchupFacts(validBatter(), sentinel)
	assert.Equal(t, true, facts["unknownPitcher"])
}
