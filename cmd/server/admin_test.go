package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	progressionv1 "github.com/KirkDiggler/rpg-progression/gen/go/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/commands"
)

func TestPrintResultListsParties(t *testing.T) {
	color.NoColor = true
	printJSON = false

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, &progressionv1.ExecuteResponse{
		Code:    string(commands.CodeSuccess),
		Message: "Public parties:",
		Parties: []*progressionv1.PartyListing{{Name: "wolves", Members: 2, MaxMembers: 8}},
	}))

	out := buf.String()
	assert.Contains(t, out, string(commands.CodeSuccess)+" Public parties:")
	assert.Contains(t, out, "wolves")
	assert.Contains(t, out, "2/8")
}

func TestPrintResultAsJSON(t *testing.T) {
	color.NoColor = true
	printJSON = true
	defer func() { printJSON = false }()

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, &progressionv1.ExecuteResponse{
		Code:    string(commands.CodeSuccess),
		Message: "Created party wolves.",
		Party:   &progressionv1.PartySnapshot{Name: "wolves", MaxMembers: 8},
	}))

	out := buf.String()
	assert.Contains(t, out, `"maxMembers"`)
	assert.Contains(t, out, `"wolves"`)
}
