// Package book holds the Book entity and the rules its fields must satisfy.
//
// New stores whatever it is given. Validation only happens through the
// setters, which either store a valid value or return an error and leave the
// previous value in place. A Book is not safe for concurrent mutation.
package book

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	maxAgeYears     = 200
	classicAgeYears = 50
)

// Book represents a book entity.
type Book struct {
	title       string
	author      string
	genre       string
	publisher   string
	releaseDate time.Time
	language    string
	isbn        string
	price       float64

	now func() time.Time
}

// Option configures a Book.
type Option func(*Book)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

// New creates a Book from unchecked values. Call Validate, or the setters, to
// enforce the field rules.
func New(title, author, genre, publisher string, releaseDate time.Time, language, isbn string, price float64, opts ...Option) *Book {
	b := &Book{
		title:       title,
		author:      author,
		genre:       genre,
		publisher:   publisher,
		releaseDate: releaseDate,
		language:    language,
		isbn:        isbn,
		price:       price,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Book) Title() string          { return b.title }
func (b *Book) Author() string         { return b.author }
func (b *Book) Genre() string          { return b.genre }
func (b *Book) Publisher() string      { return b.publisher }
func (b *Book) ReleaseDate() time.Time { return b.releaseDate }
func (b *Book) Language() string       { return b.language }
func (b *Book) ISBN() string           { return b.isbn }
func (b *Book) Price() float64         { return b.price }

// ValidLanguages returns the languages SetLanguage accepts.
func (b *Book) ValidLanguages() []string { return Languages() }

// SetTitle accepts letters, whitespace and hyphens only.
func (b *Book) SetTitle(title string) error {
	if err := checkString(fieldTitle, title); err != nil {
		return err
	}
	b.title = title
	return nil
}

// SetAuthor rejects blank names.
func (b *Book) SetAuthor(author string) error {
	if err := checkString(fieldAuthor, author); err != nil {
		return err
	}
	b.author = author
	return nil
}

// SetGenre rejects blank genres.
func (b *Book) SetGenre(genre string) error {
	if err := checkString(fieldGenre, genre); err != nil {
		return err
	}
	b.genre = genre
	return nil
}

// SetPublisher accepts letters, digits, spaces, commas, periods and parentheses.
func (b *Book) SetPublisher(publisher string) error {
	if err := checkString(fieldPublisher, publisher); err != nil {
		return err
	}
	b.publisher = publisher
	return nil
}

// SetReleaseDate accepts calendar dates from 200 years ago up to today,
// both ends included. The time of day is ignored.
func (b *Book) SetReleaseDate(date time.Time) error {
	if err := b.checkReleaseDate(date); err != nil {
		return err
	}
	b.releaseDate = date
	return nil
}

func (b *Book) checkReleaseDate(date time.Time) error {
	today := b.today()
	day := dateOf(date)
	if date.IsZero() || day.After(today) || day.Before(yearsBefore(today, maxAgeYears)) {
		shown := ""
		if !date.IsZero() {
			shown = day.Format(time.DateOnly)
		}
		return &ValidationError{Field: fieldReleaseDate, Value: shown, Err: ErrOutOfRange}
	}
	return nil
}

// SetLanguage accepts exactly one of Languages.
func (b *Book) SetLanguage(language string) error {
	if err := checkString(fieldLanguage, language); err != nil {
		return err
	}
	b.language = language
	return nil
}

// SetISBN strips every non-digit and stores the remaining digits when there
// are exactly 10 or 13 of them.
func (b *Book) SetISBN(isbn string) error {
	digits := NormalizeISBN(isbn)
	if err := check(fieldISBN, digits, isbn); err != nil {
		return err
	}
	b.isbn = digits
	return nil
}

// SetPrice rejects zero, negative and NaN prices.
func (b *Book) SetPrice(price float64) error {
	if err := checkFloat(fieldPrice, price); err != nil {
		return err
	}
	b.price = price
	return nil
}

// Validate checks every stored field and joins all failures. It is the way to
// check a Book built with New. The ISBN must already be bare digits, as
// SetISBN would store it.
func (b *Book) Validate() error {
	return errors.Join(
		checkString(fieldTitle, b.title),
		checkString(fieldAuthor, b.author),
		checkString(fieldGenre, b.genre),
		checkString(fieldPublisher, b.publisher),
		b.checkReleaseDate(b.releaseDate),
		checkString(fieldLanguage, b.language),
		checkString(fieldISBN, b.isbn),
		checkFloat(fieldPrice, b.price),
	)
}

// IsCheaperThan reports whether b costs less than other. A nil other is
// never more expensive.
func (b *Book) IsCheaperThan(other *Book) bool {
	if other == nil {
		return false
	}
	return b.price < other.price
}

// IsWrittenBy compares name with the author, ignoring case.
func (b *Book) IsWrittenBy(name string) bool {
	return strings.EqualFold(b.author, name)
}

// IsClassic reports whether the book came out more than 50 years ago.
func (b *Book) IsClassic() bool {
	if b.releaseDate.IsZero() {
		return false
	}
	return dateOf(b.releaseDate).Before(yearsBefore(b.today(), classicAgeYears))
}

// ApplyDiscount returns the price after taking pct percent off. pct must lie
// in [0, 100]; the stored price never changes.
func (b *Book) ApplyDiscount(pct float64) (float64, error) {
	if err := checkFloat(fieldDiscount, pct); err != nil {
		return 0, err
	}
	return b.price * (1 - pct/100), nil
}

func (b *Book) String() string {
	released := "unknown"
	if !b.releaseDate.IsZero() {
		released = b.releaseDate.Format(time.DateOnly)
	}
	return fmt.Sprintf("%q by %s (%s; %s; %s; %s) isbn=%s price=%.2f",
		b.title, b.author, b.genre, b.publisher, released, b.language, b.isbn, b.price)
}

func (b *Book) today() time.Time {
	now := time.Now
	if b.now != nil {
		now = b.now
	}
	return dateOf(now())
}
