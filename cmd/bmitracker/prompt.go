package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"bmitracker/internal/app"
	"bmitracker/internal/domain"
)

// prompter runs the interactive line-prompt shell.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	svc    *app.MeasurementService
	limits domain.Limits
}

func newPrompter(in io.Reader, out io.Writer, svc *app.MeasurementService, limits domain.Limits) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out, svc: svc, limits: limits}
}

// Run loops until the user declines another calculation or input ends.
func (p *prompter) Run(ctx context.Context) error {
	fmt.Fprintln(p.out, "=== BMI Calculator ===")
	user, ok := p.ask("User id (blank to skip saving): ")
	if !ok {
		return p.in.Err()
	}
	user = strings.TrimSpace(user)

	for {
		res, ok := p.measure()
		if !ok {
			return p.in.Err()
		}
		fmt.Fprintln(p.out, "\n--- Results ---")
		printResult(p.out, res)
		fmt.Fprintln(p.out, "---------------")

		if user != "" {
			save, ok := p.confirm("Save this record? (y/n): ")
			if !ok {
				return p.in.Err()
			}
			if save {
				rec, err := p.svc.RecordResult(ctx, user, res)
				if err != nil {
					fmt.Fprintf(p.out, "Error: %v\n", err)
				} else {
					fmt.Fprintf(p.out, "Saved for %s.\n", rec.UserID)
				}
			}
		}

		again, ok := p.confirm("Calculate another BMI? (y/n): ")
		if !ok || !again {
			fmt.Fprintln(p.out, "Goodbye!")
			return p.in.Err()
		}
	}
}

// measure prompts until a valid, plausible measurement is entered.
func (p *prompter) measure() (domain.Result, bool) {
	for {
		weight, ok := p.ask("Enter your weight in kg: ")
		if !ok {
			return domain.Result{}, false
		}
		height, ok := p.ask("Enter your height in meters: ")
		if !ok {
			return domain.Result{}, false
		}

		w, h, err := domain.ParseMeasurement(weight, height)
		if err == nil {
			err = domain.CheckPlausible(w, h, p.limits)
		}
		var res domain.Result
		if err == nil {
			res, err = p.svc.Calculate(w, h)
		}
		if err == nil {
			return res, true
		}
		// Input and plausibility errors re-prompt.
		fmt.Fprintf(p.out, "Error: %v\n\n", err)
	}
}

func (p *prompter) ask(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return p.in.Text(), true
}

func (p *prompter) confirm(prompt string) (bool, bool) {
	answer, ok := p.ask(prompt)
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, true
	}
	return false, true
}
