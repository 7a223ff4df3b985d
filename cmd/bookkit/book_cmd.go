package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"bookkit/internal/book"

	"github.com/spf13/cobra"
)

type bookFlags struct {
	title       string
	author      string
	genre       string
	publisher   string
	released    string
	language    string
	isbn        string
	price       float64
	discount    float64
	writtenBy   string
	cheaperThan float64
}

func newBookCmd() *cobra.Command {
	var f bookFlags
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Set book fields through their validators and report the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBook(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", "", "letters, spaces and hyphens")
	flags.StringVar(&f.author, "author", "", "author name")
	flags.StringVar(&f.genre, "genre", "", "genre")
	flags.StringVar(&f.publisher, "publisher", "", "letters, digits, spaces and , . ( )")
	flags.StringVar(&f.released, "released", "", "release date as YYYY-MM-DD")
	flags.StringVar(&f.language, "language", "", "one of: "+strings.Join(book.Languages(), ", "))
	flags.StringVar(&f.isbn, "isbn", "", "ISBN-10 or ISBN-13, punctuation allowed")
	flags.Float64Var(&f.price, "price", 0, "price, greater than zero")
	flags.Float64Var(&f.discount, "discount", 0, "print the price after this percentage off")
	flags.StringVar(&f.writtenBy, "written-by", "", "check the author, ignoring case")
	flags.Float64Var(&f.cheaperThan, "cheaper-than", 0, "check against another book's price")
	return cmd
}

func runBook(cmd *cobra.Command, f bookFlags) error {
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	flags := cmd.Flags()
	b := book.New("", "", "", "", time.Time{}, "", "", 0)

	setters := []struct {
		flag string
		set  func() error
	}{
		{"title", func() error { return b.SetTitle(f.title) }},
		{"author", func() error { return b.SetAuthor(f.author) }},
		{"genre", func() error { return b.SetGenre(f.genre) }},
		{"publisher", func() error { return b.SetPublisher(f.publisher) }},
		{"released", func() error {
			date, err := time.Parse(time.DateOnly, f.released)
			if err != nil {
				return fmt.Errorf("release date must be YYYY-MM-DD: %w", err)
			}
			return b.SetReleaseDate(date)
		}},
		{"language", func() error { return b.SetLanguage(f.language) }},
		{"isbn", func() error { return b.SetISBN(f.isbn) }},
		{"price", func() error { return b.SetPrice(f.price) }},
	}

	rejected := 0
	for _, s := range setters {
		if !flags.Changed(s.flag) {
			continue
		}
		if err := s.set(); err != nil {
			rejected++
			logger.Printf("rejected flag=%s err=%v", s.flag, err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, b)
	fmt.Fprintf(out, "classic: %t\n", b.IsClassic())

	if flags.Changed("written-by") {
		fmt.Fprintf(out, "written by %s: %t\n", f.writtenBy, b.IsWrittenBy(f.writtenBy))
	}
	if flags.Changed("cheaper-than") {
		other := book.New("", "", "", "", time.Time{}, "", "", f.cheaperThan)
		fmt.Fprintf(out, "cheaper than %.2f: %t\n", f.cheaperThan, b.IsCheaperThan(other))
	}
	if flags.Changed("discount") {
		price, err := b.ApplyDiscount(f.discount)
		if err != nil {
			rejected++
			logger.Printf("rejected flag=discount err=%v", err)
		} else {
			fmt.Fprintf(out, "discounted price: %.2f\n", price)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%d value(s) rejected", rejected)
	}
	return nil
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the accepted book languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, l := range book.Languages() {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
		},
	}
}
