package main

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/evad1n/bigramstats/bigram"
)

// Opens an existing sqlite3 database
func openDatabase(path string) (*sql.DB, error) {
	// the path to the database--this could be an absolute path
	options :=
		"?" + "_busy_timeout=10000" +
			"&" + "_case_sensitive_like=OFF" +
			"&" + "_foreign_keys=ON" +
			"&" + "_journal_mode=OFF" +
			"&" + "_locking_mode=NORMAL" +
			"&" + "mode=rw" +
			"&" + "_synchronous=OFF"
	db, _ := sql.Open("sqlite3", path+options)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("opening db %s: %v", path, err)
	}
	return db, nil
}

// Creates a sqlite3 database. If the file already exists, it will be overwritten
func createDatabase(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("removing existing db: %v", err)
		}
	}

	db, err := openDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("opening new db: %v", err)
	}

	_, err = db.Exec("CREATE TABLE bigrams (key text, count integer)")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %v", err)
	}

	return db, nil
}

// Reads the bigram counts stored in the sqlite db at path into t, resolving
// duplicate keys (within the shard or against rows already in t) according to
// the policy. Reading several shard databases into one table takes the place
// of a SQL-level merge: the duplicate policy applies uniformly.
func readDatabase(path string, t bigram.Table, p bigram.Policy) error {
	db, err := openDatabase(path)
	if err != nil {
		return fmt.Errorf("opening source db: %v", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT key, count FROM bigrams")
	if err != nil {
		return fmt.Errorf("querying source db: %v", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("reading a row from source db: %v", err)
		}
		t.Add(key, count, p)
		n++
	}

	// Check for errors from iterating over rows.
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating over source db: %v", err)
	}

	slog.Debug("loaded shard", "path", path, "rows", n)
	return nil
}

// Persists the aggregate table as a sqlite snapshot at path, overwriting any
// existing file.
func writeDatabase(path string, t bigram.Table) error {
	db, err := createDatabase(path)
	if err != nil {
		return fmt.Errorf("creating snapshot db: %v", err)
	}
	defer db.Close()

	stmt, err := db.Prepare("INSERT INTO bigrams (key, count) values (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert statement: %v", err)
	}
	defer stmt.Close()

	for key, count := range t {
		if _, err := stmt.Exec(key, count); err != nil {
			return fmt.Errorf("inserting into snapshot db: %v", err)
		}
	}

	slog.Debug("wrote snapshot", "path", path, "rows", len(t))
	return nil
}

// Download a file over HTTP and store in dest path
func download(url, dest string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("http get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http get %s: status %s", url, resp.Status)
	}

	// Create the file
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating destination file: %v", err)
	}
	defer out.Close()

	// Write the body to file
	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("copying data: %v", err)
	}

	return nil
}
