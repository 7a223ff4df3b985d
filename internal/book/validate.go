package book

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	fieldTitle       = "title"
	fieldAuthor      = "author"
	fieldGenre       = "genre"
	fieldPublisher   = "publisher"
	fieldReleaseDate = "release_date"
	fieldLanguage    = "language"
	fieldISBN        = "isbn"
	fieldPrice       = "price"
	fieldDiscount    = "discount"
)

var (
	// \s spelled out so \v is included.
	titlePattern     = regexp.MustCompile(`^[A-Za-z\t\n\v\f\r \-]+$`)
	publisherPattern = regexp.MustCompile(`^[A-Za-z0-9 ,.()]+$`)
	digitsPattern    = regexp.MustCompile(`^[0-9]+$`)
)

type rule struct {
	tag string
	err error
}

var rules = map[string]rule{
	fieldTitle:     {tag: "booktitle", err: ErrInvalidFormat},
	fieldAuthor:    {tag: "notblank", err: ErrEmpty},
	fieldGenre:     {tag: "notblank", err: ErrEmpty},
	fieldPublisher: {tag: "publisher", err: ErrInvalidFormat},
	fieldLanguage:  {tag: "oneof=" + strings.Join(languages[:], " "), err: ErrInvalidLanguage},
	fieldISBN:      {tag: "digits,len=10|len=13", err: ErrInvalidFormat},
	fieldPrice:     {tag: "gt=0", err: ErrNonPositive},
	fieldDiscount:  {tag: "gte=0,lte=100", err: ErrInvalidArgument},
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("booktitle", func(fl validator.FieldLevel) bool {
		return titlePattern.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("publisher", func(fl validator.FieldLevel) bool {
		return publisherPattern.MatchString(fl.Field().String())
	})
	// Stricter than the built-in numeric, which allows a sign and a decimal point.
	validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// check runs the rule registered for field against value. shown is the
// value reported back in the error, which differs from value for ISBNs.
func check(field string, value any, shown string) error {
	r := rules[field]
	if err := validate.Var(value, r.tag); err != nil {
		return &ValidationError{Field: field, Value: shown, Err: r.err}
	}
	return nil
}

func checkString(field, value string) error {
	return check(field, value, value)
}

func checkFloat(field string, value float64) error {
	return check(field, value, fmt.Sprint(value))
}
