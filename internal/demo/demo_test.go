package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_All(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))

	want := `== account
deposit 100: new balance: 100
withdraw 100: new balance: 0
withdraw 10: cannot perform operation: insufficient funds
Ivan's balance: 0
== car
accelerate: new speed: 10
brake: new speed: 0
brake: cannot perform operation: already stopped
== student
Ivan Fernandez average: 5.0
== employee
Ivan payroll: 4800
`
	assert.Equal(t, want, buf.String())
}

func TestRun_Selected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, "student"))
	assert.Equal(t, "== student\nIvan Fernandez average: 5.0\n", buf.String())

	err := Run(&buf, "nope")
	assert.ErrorContains(t, err, `unknown scenario "nope"`)
}
