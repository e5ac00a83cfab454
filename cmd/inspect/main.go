package main

import (
	"chat-room/repositories"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan, every known key space when empty")
	indexes := flag.Bool("indexes", false, "Also list secondary index keys")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	prefixes := []string{*prefix}
	if *prefix == "" {
		prefixes = repositories.InspectPrefixes
	}

	var entries []repositories.Entry
	err = db.View(func(txn *badger.Txn) error {
		for _, p := range prefixes {
			found, err := scan(txn, p, *indexes)
			if err != nil {
				return err
			}
			entries = append(entries, found...)
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	render(os.Stdout, entries)
}

func scan(txn *badger.Txn, prefix string, indexes bool) ([]repositories.Entry, error) {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	var entries []repositories.Entry
	prefixBytes := []byte(prefix)
	for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
		item := it.Item()
		key := string(item.Key())
		err := item.Value(func(v []byte) error {
			entry, ok := repositories.DecodeEntry(key, v)
			if !ok {
				fmt.Printf("Skipping undecodable key %s\n", key)
				return nil
			}
			if entry.Kind == "INDEX" && !indexes {
				return nil
			}
			entries = append(entries, entry)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func render(w io.Writer, entries []repositories.Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Owner", "Detail"})
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

	for _, e := range entries {
		timestamp := ""
		if !e.At.IsZero() {
			timestamp = e.At.Format("2006-01-02 15:04:05")
		}
		table.Append([]string{shorten(e.Key, 48), colorKind(e.Kind), timestamp, e.Owner, shorten(e.Detail, 80)})
	}
	table.Render()
}

func colorKind(kind string) string {
	switch {
	case kind == "ANSWERED":
		return color.Green.Sprint(kind)
	case strings.HasPrefix(kind, "FACT (deleted)"):
		return color.Red.Sprint(kind)
	case strings.HasPrefix(kind, "FACT"):
		return color.Cyan.Sprint(kind)
	default:
		return kind
	}
}

func shorten(s string, max int) string {
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max-1]) + "…"
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
