package index

// PostingEntry represents a document that contains a word and the word's
// term frequency in that document.
type PostingEntry struct {
	DocumentID    int     `json:"document_id"`
	TermFrequency float64 `json:"term_frequency"` // occurrences / total words of the document at ingest time
}

// PostingList is a slice of PostingEntry, sorted by DocumentID ascending.
type PostingList []PostingEntry

// Postings returns a snapshot of the posting list for word.
func (ii *InvertedIndex) Postings(word string) PostingList {
	postings := make(PostingList, 0, ii.DocumentFrequency(word))
	ii.ForEachPosting(word, func(documentID int, termFrequency float64) {
		postings = append(postings, PostingEntry{DocumentID: documentID, TermFrequency: termFrequency})
	})
	return postings
}
