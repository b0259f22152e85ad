package model

// Book names a book of the reference text. Valid names are exactly the
// entries of the canonical list, including embedded numerals ("1 Samuel").
type Book string

// canonicalBooks is the 66-book order of the reference text.
var canonicalBooks = [...]Book{
	// Old Testament
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song of Solomon", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk",
	"Zephaniah", "Haggai", "Zechariah", "Malachi",
	// New Testament
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy",
	"2 Timothy", "Titus", "Philemon", "Hebrews", "James",
	"1 Peter", "2 Peter", "1 John", "2 John", "3 John",
	"Jude", "Revelation",
}

var bookIndex = func() map[Book]int {
	idx := make(map[Book]int, len(canonicalBooks))
	for i, b := range canonicalBooks {
		idx[b] = i
	}

	return idx
}()

// BookIndex returns the zero-based canonical position of name.
// The second result is false when name is not a canonical book.
func BookIndex(name string) (int, bool) {
	i, ok := bookIndex[Book(name)]
	return i, ok
}

// IsCanonical reports whether name exactly matches a canonical book.
func IsCanonical(name string) bool {
	_, ok := bookIndex[Book(name)]
	return ok
}
