package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeBracketTag(t *testing.T) {
	testdata := map[int]string{
		0:   "Adolescent",
		12:  "Adolescent",
		20:  "Adolescent",
		21:  "Young Adult",
		28:  "Young Adult",
		35:  "Young Adult",
		36:  "Adult",
		43:  "Adult",
		50:  "Adult",
		51:  "Elder",
		80:  "Elder",
		120: "Elder",
	}

	for age, expected := range testdata {
		assert.Equal(t, expected, AgeBracketTag(age), "wrong bracket for age %d", age)
	}
}

func TestAgeBracketTagDeterministic(t *testing.T) {
	for age := 0; age <= 120; age++ {
		first := AgeBracketTag(age)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, AgeBracketTag(age))
		}
	}
}
