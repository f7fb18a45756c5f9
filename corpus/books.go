package corpus

import "fmt"

// bookOffset is the id of the first New Testament book.
const bookOffset = 52

// books lists the New Testament books and the verse count of each chapter.
// The corpus file holds exactly one line per verse, in this order.
var books = []struct {
	name     string
	chapters []int
}{
	{"Matt", []int{25, 23, 17, 25, 48, 34, 29, 34, 38, 42, 30, 50, 58, 36, 39, 28, 27, 35, 30, 34, 46, 46, 39, 51, 46, 75, 66, 20}},
	{"Mark", []int{45, 28, 35, 41, 43, 56, 37, 38, 50, 52, 33, 44, 37, 72, 47, 20}},
	{"Luke", []int{80, 52, 38, 44, 39, 49, 50, 56, 62, 42, 54, 59, 35, 35, 32, 31, 37, 43, 48, 47, 38, 71, 56, 53}},
	{"John", []int{51, 25, 36, 54, 47, 71, 53, 59, 41, 42, 57, 50, 38, 31, 27, 33, 26, 40, 42, 31, 25}},
	{"Acts", []int{26, 47, 26, 37, 42, 15, 60, 40, 43, 48, 30, 25, 52, 28, 41, 40, 34, 28, 41, 38, 40, 30, 35, 27, 27, 32, 44, 31}},
	{"Rom", []int{32, 29, 31, 25, 21, 23, 25, 39, 33, 21, 36, 21, 14, 23, 33, 27}},
	{"1Cor", []int{31, 16, 23, 21, 13, 20, 40, 13, 27, 33, 34, 31, 13, 40, 58, 24}},
	{"2Cor", []int{24, 17, 18, 18, 21, 18, 16, 24, 15, 18, 33, 21, 14}},
	{"Gal", []int{24, 21, 29, 31, 26, 18}},
	{"Eph", []int{23, 22, 21, 32, 33, 24}},
	{"Phil", []int{30, 30, 21, 23}},
	{"Col", []int{29, 23, 25, 18}},
	{"1Thess", []int{10, 20, 13, 18, 28}},
	{"2Thess", []int{12, 17, 18}},
	{"1Tim", []int{20, 15, 16, 16, 25, 21}},
	{"2Tim", []int{18, 26, 17, 22}},
	{"Titus", []int{16, 15, 15}},
	{"Phlm", []int{25}},
	{"Heb", []int{14, 18, 19, 16, 14, 20, 28, 13, 28, 39, 40, 29, 25}},
	{"James", []int{27, 26, 18, 17, 20}},
	{"1Peter", []int{25, 25, 22, 19, 14}},
	{"2Peter", []int{21, 22, 18}},
	{"1John", []int{10, 29, 24, 21, 21}},
	{"2John", []int{13}},
	{"3John", []int{15}},
	{"Jude", []int{25}},
	{"Rev", []int{20, 29, 22, 11, 14, 17, 17, 13, 21, 11, 19, 17, 18, 20, 8, 21, 18, 24, 21, 15, 27, 20}},
}

// VerseLabel identifies a verse.
type VerseLabel struct {
	Book    string
	BookID  int
	Chapter int
	Verse   int
}

func (l VerseLabel) String() string {
	return fmt.Sprintf("%s %d:%d", l.Book, l.Chapter, l.Verse)
}

// Location identifies a word within the corpus.
type Location struct {
	VerseLabel
	// Word is the 1-based position of the word in its verse.
	Word int
}

// String returns the fixed-width id BBCCVVVWW.
func (l Location) String() string {
	return fmt.Sprintf("%02d%02d%03d%02d", l.BookID, l.Chapter, l.Verse, l.Word)
}

// verseLabels returns the labels of every verse in corpus order.
func verseLabels() []VerseLabel {
	var labels []VerseLabel
	for i, b := range books {
		for c, n := range b.chapters {
			for v := 1; v <= n; v++ {
				labels = append(labels, VerseLabel{
					Book:    b.name,
					BookID:  bookOffset + i,
					Chapter: c + 1,
					Verse:   v,
				})
			}
		}
	}
	return labels
}
