package book

var languages = [...]string{
	"English", "Spanish", "French", "German", "Chinese",
	"Japanese", "Russian", "Arabic", "Portuguese", "Italian",
}

// Languages returns the accepted book languages in their canonical order.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages[:])
	return out
}

// IsValidLanguage reports whether language is one of Languages, compared
// case-sensitively.
func IsValidLanguage(language string) bool {
	for _, l := range languages {
		if l == language {
			return true
		}
	}
	return false
}
