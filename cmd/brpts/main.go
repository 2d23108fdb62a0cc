// Command brpts deals bridge hands in the terminal and counts their points.
//
// Press Enter to reveal the points of the hand, Enter again for the next
// hand, q to quit.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/mpsalisbury/brpts/internal/flags"
	"github.com/mpsalisbury/brpts/pkg/cards"
	"github.com/mpsalisbury/brpts/pkg/eval"
	"github.com/mpsalisbury/brpts/pkg/table"
)

var seatNames = []string{"North", "East", "South", "West"}

var errSeatsWithHand = errors.New("-seats deals every hand and can't be combined with -hand")

type options struct {
	seed   int64
	hand   string
	seats  bool
	once   bool
	output string
}

func parseFlags(args []string) (options, error) {
	opts := options{output: "text"}
	fs := flag.NewFlagSet("brpts", flag.ContinueOnError)
	fs.Int64Var(&opts.seed, "seed", 0, "Seed for dealing, 0 for random")
	fs.StringVar(&opts.hand, "hand", "", "Evaluate this hand instead of dealing, e.g. \"as ks 2h ...\"")
	fs.BoolVar(&opts.seats, "seats", false, "Deal all four seats and show their points")
	fs.BoolVar(&opts.once, "once", false, "Show one hand with its points and exit")
	flags.EnumFlag(fs, &opts.output, "output", []string{"text", "json"}, "Output format")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.seats && opts.hand != "" {
		return opts, errSeatsWithHand
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if errors.Is(err, errSeatsWithHand) {
		fmt.Fprintln(os.Stderr, err)
	}
	if err != nil {
		os.Exit(2)
	}
	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func newDealer(seed int64) *cards.Dealer {
	if seed == 0 {
		return cards.NewRandomDealer()
	}
	return cards.NewDealer(rand.NewSource(seed))
}

func run(opts options, in io.Reader, out io.Writer) error {
	d := newDealer(opts.seed)
	if opts.seats {
		return showSeats(d, opts.output, out)
	}

	var t *table.Table
	if opts.hand != "" {
		h, err := cards.ParseHand(opts.hand)
		if err != nil {
			return fmt.Errorf("bad -hand: %w", err)
		}
		t = table.NewWithHand(d, h)
	} else {
		t = table.New(d)
	}

	if opts.once {
		return render(out, opts.output, t.Toggle())
	}

	if err := render(out, opts.output, t.View()); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for {
		if opts.output == "text" {
			fmt.Fprintf(out, "[%s] ", t.View().Button)
		}
		if !scanner.Scan() {
			if opts.output == "text" {
				fmt.Fprintln(out)
			}
			return scanner.Err()
		}
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "q") {
			return nil
		}
		if err := render(out, opts.output, t.Toggle()); err != nil {
			return err
		}
	}
}

func render(out io.Writer, output string, v table.View) error {
	if output == "json" {
		return json.NewEncoder(out).Encode(v)
	}
	fmt.Fprintln(out, v.Hand)
	writeRows(out, v.Rows)
	return nil
}

func writeRows(out io.Writer, rows []eval.Row) {
	for _, r := range rows {
		fmt.Fprintf(out, "  %-18s %2d\n", r.Label, r.Points)
	}
}

type seat struct {
	Seat   string     `json:"seat"`
	Hand   string     `json:"hand"`
	Points []eval.Row `json:"points"`
}

func showSeats(d *cards.Dealer, output string, out io.Writer) error {
	var seats []seat
	for i, h := range d.Deal(len(seatNames)) {
		seats = append(seats, seat{seatNames[i], h.HandString(), eval.Evaluate(h).Rows()})
	}
	if output == "json" {
		return json.NewEncoder(out).Encode(seats)
	}
	for _, s := range seats {
		fmt.Fprintf(out, "%5s: %s\n", s.Seat, s.Hand)
		writeRows(out, s.Points)
	}
	return nil
}
