package mimic

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

var outputRecords = []OutputRecord{
	{Header: "seq1", Seq: "ACDEFGHIKL"},
	{Header: "mimic|Random_1|shuffle_1", Seq: "LKIHGFEDCA"},
}

const outputText = ">seq1\nACDEFGHIKL\n>mimic|Random_1|shuffle_1\nLKIHGFEDCA\n"

func TestWriteFasta(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteFasta(&buf, outputRecords)
	if err != nil {
		t.Fatalf("WriteFasta() error = %v", err)
	}
	if n != 2 {
		t.Errorf("WriteFasta() = %d, want 2", n)
	}
	if buf.String() != outputText {
		t.Errorf("WriteFasta() wrote %q, want %q", buf.String(), outputText)
	}

	if _, err := WriteFasta(&buf, nil); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("WriteFasta(nil) error = %v, want ErrEmptyResult", err)
	}
}

func TestWriteFastaFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "out.fasta")
	if err := WriteFastaFile(plain, outputRecords); err != nil {
		t.Fatalf("WriteFastaFile() error = %v", err)
	}
	got, err := os.ReadFile(plain)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != outputText {
		t.Errorf("file content %q, want %q", got, outputText)
	}

	gz := filepath.Join(dir, "out.fasta.gz")
	if err := WriteFastaFile(gz, outputRecords); err != nil {
		t.Fatalf("WriteFastaFile(.gz) error = %v", err)
	}
	f, err := os.Open(gz)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("output is not gzip: %v", err)
	}
	unzipped, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if string(unzipped) != outputText {
		t.Errorf("gzip content %q, want %q", unzipped, outputText)
	}
}

func TestWriteFastaFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.fasta")
	if err := os.WriteFile(path, []byte("previous\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFastaFile(path, nil); !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("WriteFastaFile(nil) error = %v, want ErrEmptyResult", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "previous\n" {
		t.Errorf("existing file changed to %q", got)
	}

	missing := filepath.Join(dir, "never.fasta")
	_ = WriteFastaFile(missing, nil)
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Errorf("empty result created %s", missing)
	}
}
