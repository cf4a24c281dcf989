// Package console implements the line-oriented front end of the search server:
// a stop-word line, a document count, that many document lines and a query.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/gcbaptista/search-server/internal/engine"
	"github.com/gcbaptista/search-server/internal/logger"
	"github.com/gcbaptista/search-server/model"
)

// Output formats accepted by Run.
const (
	FormatPlain = "plain"
	FormatTable = "table"
)

// Input is one parsed console session.
type Input struct {
	StopWords string
	Documents []string
	Query     string
}

// ReadInput reads a session from r. A missing trailing newline is accepted.
func ReadInput(r io.Reader) (Input, error) {
	reader := bufio.NewReader(r)

	stopWords, err := readLine(reader)
	if err != nil {
		return Input{}, fmt.Errorf("failed to read stop words: %w", err)
	}

	countLine, err := readLine(reader)
	if err != nil {
		return Input{}, fmt.Errorf("failed to read document count: %w", err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || count < 0 {
		return Input{}, fmt.Errorf("invalid document count '%s'", countLine)
	}

	input := Input{StopWords: stopWords, Documents: make([]string, 0, count)}
	for i := 0; i < count; i++ {
		text, err := readLine(reader)
		if err != nil {
			return Input{}, fmt.Errorf("failed to read document %d: %w", i, err)
		}
		input.Documents = append(input.Documents, text)
	}

	input.Query, err = readLine(reader)
	if err != nil && !errors.Is(err, io.EOF) {
		return Input{}, fmt.Errorf("failed to read query: %w", err)
	}
	return input, nil
}

// readLine returns the next line without its terminator. io.EOF is returned
// only when nothing at all is left.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// BuildServer indexes every document of input with IDs 0..n-1 and status
// Actual. Rejected documents are logged and skipped.
func BuildServer(input Input) (*engine.SearchServer, error) {
	server, err := engine.NewSearchServerFromText(input.StopWords)
	if err != nil {
		return nil, err
	}

	log := logger.WithComponent("console")
	for documentID, text := range input.Documents {
		if err := server.AddDocument(documentID, text, model.DocumentStatusActual, nil); err != nil {
			log.Warn("document skipped", "document_id", documentID, "error", err)
		}
	}
	return server, nil
}

// Run reads a session from r, searches and prints the top documents to w.
func Run(r io.Reader, w io.Writer, format string) error {
	input, err := ReadInput(r)
	if err != nil {
		return err
	}

	server, err := BuildServer(input)
	if err != nil {
		return err
	}

	documents, err := server.FindTopDocuments(input.Query)
	if err != nil {
		return err
	}

	switch format {
	case "", FormatPlain:
		for _, document := range documents {
			PrintDocument(w, document)
		}
	case FormatTable:
		PrintDocumentTable(w, documents)
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
	return nil
}

// PrintDocument writes one document as "{ document_id = …, relevance = …, rating = … }".
func PrintDocument(w io.Writer, document model.Document) {
	fmt.Fprintln(w, document.String())
}

// PrintMatchDocumentResult writes the outcome of MatchDocument on one line.
func PrintMatchDocumentResult(w io.Writer, documentID int, words []string, status model.DocumentStatus) {
	fmt.Fprintf(w, "{ document_id = %d, status = %s, words = %s }\n", documentID, status, strings.Join(words, " "))
}

// PrintDocumentTable renders documents as an aligned table.
func PrintDocumentTable(w io.Writer, documents []model.Document) {
	rows := make([][]string, 0, len(documents))
	for _, document := range documents {
		rows = append(rows, []string{
			strconv.Itoa(document.ID),
			strconv.FormatFloat(document.Relevance, 'g', 6, 64),
			strconv.Itoa(document.Rating),
		})
	}
	printTable(w, []string{"document_id", "relevance", "rating"}, rows)
}

func printTable(writer io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()
}
