package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpsalisbury/brpts/pkg/cards"
	"github.com/mpsalisbury/brpts/pkg/table"
)

const allSpades = "as ks qs js ts 9s 8s 7s 6s 5s 4s 3s 2s"

func TestOnceWithHand(t *testing.T) {
	var out bytes.Buffer
	err := run(options{hand: allSpades, once: true, output: "text"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "♠ AKQJ⑩98765432 ♥ _ ♦ _ ♣ _", lines[0])
	assert.Equal(t, "  Face Card Points   10", lines[1])
	assert.Equal(t, "  Total              28", lines[4])
}

func TestOnceJSON(t *testing.T) {
	var out bytes.Buffer
	err := run(options{hand: allSpades, once: true, output: "json"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	var v table.View
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.False(t, v.Hidden)
	assert.Equal(t, 28, v.Rows[3].Points)
}

func TestBadHand(t *testing.T) {
	err := run(options{hand: "as as", once: true}, strings.NewReader(""), &bytes.Buffer{})
	assert.True(t, errors.Is(err, cards.ErrHandSize), "got %v", err)
}

func TestInteractive(t *testing.T) {
	var out bytes.Buffer
	err := run(options{hand: allSpades, output: "text"}, strings.NewReader("\n\nq\n"), &out)
	require.NoError(t, err)

	s := out.String()
	assert.Equal(t, 1, strings.Count(s, "Total"), "points shown once, after reveal")
	assert.Contains(t, s, "[reveal] ")
	assert.Contains(t, s, "[next hand] ")
	assert.Equal(t, 2, strings.Count(s, "♠ AKQJ⑩98765432"), "hand shown hidden then revealed")
}

func TestSeats(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(options{seed: 3, seats: true, output: "json"}, nil, &out))

	var seats []seat
	require.NoError(t, json.Unmarshal(out.Bytes(), &seats))
	require.Len(t, seats, 4)
	for i, s := range seats {
		assert.Equal(t, seatNames[i], s.Seat)
		assert.Len(t, s.Points, 4)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-seed", "7", "-output", "json", "-once"})
	require.NoError(t, err)
	assert.Equal(t, options{seed: 7, output: "json", once: true}, opts)

	_, err = parseFlags([]string{"-output", "yaml"})
	assert.Error(t, err)
}

func TestParseFlagsRejectsSeatsWithHand(t *testing.T) {
	_, err := parseFlags([]string{"-seats", "-hand", allSpades})
	assert.ErrorIs(t, err, errSeatsWithHand)
}

func TestParseFlagsHelp(t *testing.T) {
	_, err := parseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestGivenHandDoesNotConsumeDeal(t *testing.T) {
	var out bytes.Buffer
	err := run(options{seed: 4, hand: allSpades, output: "json"}, strings.NewReader("\n\nq\n"), &out)
	require.NoError(t, err)

	dec := json.NewDecoder(&out)
	var views []table.View
	for dec.More() {
		var v table.View
		require.NoError(t, dec.Decode(&v))
		views = append(views, v)
	}
	require.Len(t, views, 3)

	// The hand after the given one is the seeded dealer's first hand.
	want := cards.NewDealer(rand.NewSource(4)).DealHand().Sorted().HandString()
	assert.Equal(t, want, views[2].Hand)
}
